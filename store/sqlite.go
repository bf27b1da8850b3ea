package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/domino14/reelwords/game"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLiteStore keeps saved games in a SQLite database, one row per user.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000; PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// migrate applies the embedded migrations in lexical order, recording each in
// _migrations so it only ever runs once.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}
		stmt, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(stmt)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

func (s *SQLiteStore) LoadByUser(ctx context.Context, userID string) (*game.Game, error) {
	var (
		sg        savedGame
		createdOn string
		panel     string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, created_on, score, reel_panel
		FROM games WHERE user_id = ?`, userID,
	).Scan(&sg.ID, &sg.UserID, &createdOn, &sg.Score, &panel)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query game: %w", err)
	}
	if sg.CreatedOn, err = time.Parse(time.RFC3339Nano, createdOn); err != nil {
		return nil, fmt.Errorf("parse created_on: %w", err)
	}
	if err := json.Unmarshal([]byte(panel), &sg.ReelPanel); err != nil {
		return nil, fmt.Errorf("decode reel panel: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT word, score FROM played_words
		WHERE game_id = ? ORDER BY position ASC`, sg.ID)
	if err != nil {
		return nil, fmt.Errorf("query played words: %w", err)
	}
	defer rows.Close()
	sg.PlayedWords = []savedWord{}
	for rows.Next() {
		var w savedWord
		if err := rows.Scan(&w.Word, &w.Score); err != nil {
			return nil, err
		}
		sg.PlayedWords = append(sg.PlayedWords, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sg.toGame()
}

func (s *SQLiteStore) Save(ctx context.Context, g *game.Game) (string, error) {
	sg := toSaved(g)
	panel, err := json.Marshal(sg.ReelPanel)
	if err != nil {
		return "", err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	// A user has one saved game; saving a different game replaces it.
	var previous string
	err = tx.QueryRowContext(ctx, `SELECT id FROM games WHERE user_id = ?`, sg.UserID).Scan(&previous)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("query game: %w", err)
	}
	for _, id := range []string{previous, sg.ID} {
		if id == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM played_words WHERE game_id = ?`, id); err != nil {
			return "", fmt.Errorf("delete played words: %w", err)
		}
	}
	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO games (user_id, id, created_on, score, reel_panel, updated_at)
		VALUES (?, ?, ?, ?, ?, datetime('now'))`,
		sg.UserID, sg.ID, sg.CreatedOn.Format(time.RFC3339Nano), sg.Score, string(panel))
	if err != nil {
		return "", fmt.Errorf("insert game: %w", err)
	}
	for i, w := range sg.PlayedWords {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO played_words (game_id, position, word, score)
			VALUES (?, ?, ?, ?)`, sg.ID, i, w.Word, w.Score); err != nil {
			return "", fmt.Errorf("insert played word: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	log.Debug().Str("user", sg.UserID).Str("game", sg.ID).Msg("game saved")
	return sg.ID, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
