// Package store saves and loads games, one saved game per user.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/domino14/reelwords/config"
	"github.com/domino14/reelwords/game"
	"github.com/domino14/reelwords/reel"
)

var ErrUnknownStore = errors.New("unknown store kind")

// Repository persists games. LoadByUser returns (nil, nil) when the user has
// no saved game. Save returns the id of the saved game.
type Repository interface {
	LoadByUser(ctx context.Context, userID string) (*game.Game, error)
	Save(ctx context.Context, g *game.Game) (string, error)
}

// Store is a Repository holding resources that must be released.
type Store interface {
	Repository
	Close() error
}

// Open returns the store selected by the configuration.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch kind := cfg.GetString(config.ConfigStore); kind {
	case config.StoreFile, "":
		s, err := NewFileStore(cfg.GetString(config.ConfigSavedGamesPath),
			Format(cfg.GetString(config.ConfigSaveFormat)))
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.StoreSqlite:
		s, err := NewSQLiteStore(ctx, cfg.GetString(config.ConfigSqlitePath))
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStore, kind)
	}
}

type savedWord struct {
	Word  string `json:"word" yaml:"word"`
	Score int    `json:"score" yaml:"score"`
}

// savedGame is the persisted form of a game. The reel panel is kept as its
// rows, top to bottom.
type savedGame struct {
	ID          string      `json:"id" yaml:"id"`
	UserID      string      `json:"userId" yaml:"userId"`
	CreatedOn   time.Time   `json:"createdOn" yaml:"createdOn"`
	Score       int         `json:"score" yaml:"score"`
	ReelPanel   []string    `json:"reelPanel" yaml:"reelPanel"`
	PlayedWords []savedWord `json:"playedWords" yaml:"playedWords"`
}

func toSaved(g *game.Game) savedGame {
	p := g.Panel()
	rows := make([]string, p.Rows())
	for i := range rows {
		rows[i] = string(p.ReelByRow(i))
	}
	played := g.PlayedWords()
	words := make([]savedWord, len(played))
	for i, w := range played {
		words[i] = savedWord{Word: w.Value, Score: w.Score}
	}
	return savedGame{
		ID:          g.ID(),
		UserID:      g.UserID(),
		CreatedOn:   g.CreatedOn(),
		Score:       g.Score(),
		ReelPanel:   rows,
		PlayedWords: words,
	}
}

func (s savedGame) toGame() (*game.Game, error) {
	if len(s.ReelPanel) == 0 {
		return nil, errors.New("saved game has no reels")
	}
	cols := utf8.RuneCountInString(s.ReelPanel[0])
	p, err := reel.NewPanel(len(s.ReelPanel), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range s.ReelPanel {
		if utf8.RuneCountInString(row) != cols {
			return nil, fmt.Errorf("saved reel %d has %d letters, expected %d",
				i, utf8.RuneCountInString(row), cols)
		}
		p.AddReel(i, []rune(row))
	}
	words := make([]game.Word, len(s.PlayedWords))
	for i, w := range s.PlayedWords {
		words[i] = game.Word{Value: w.Word, Score: w.Score}
	}
	return game.Restore(s.ID, s.UserID, s.CreatedOn, p, words, s.Score)
}
