package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/reelwords/config"
	"github.com/domino14/reelwords/game"
	"github.com/domino14/reelwords/testhelpers"
)

func playedGame(t *testing.T, user string) *game.Game {
	t.Helper()
	g, err := game.New(user, testhelpers.PanelFromRows("xyzq", "tcab", "hent"))
	if err != nil {
		t.Fatal(err)
	}
	g.SubmitWord("ten", 4)
	g.SubmitWord("cat", 6)
	g.SubtractScore(2)
	return g
}

func assertSameGame(t *testing.T, exp, got *game.Game) {
	t.Helper()
	assert.Equal(t, exp.ID(), got.ID())
	assert.Equal(t, exp.UserID(), got.UserID())
	assert.True(t, exp.CreatedOn().Equal(got.CreatedOn()), "created on %v vs %v",
		exp.CreatedOn(), got.CreatedOn())
	assert.Equal(t, exp.Score(), got.Score())
	assert.Equal(t, exp.PlayedWords(), got.PlayedWords())
	assert.Equal(t, exp.Panel().String(), got.Panel().String())
}

func testRoundTrip(t *testing.T, s Store) {
	is := is.New(t)
	ctx := context.Background()

	g, err := s.LoadByUser(ctx, "jesse")
	is.NoErr(err)
	is.True(g == nil)

	orig := playedGame(t, "jesse")
	id, err := s.Save(ctx, orig)
	is.NoErr(err)
	is.Equal(id, orig.ID())

	loaded, err := s.LoadByUser(ctx, "jesse")
	is.NoErr(err)
	assertSameGame(t, orig, loaded)

	// saving again overwrites
	loaded.SubmitWord("hen", 8)
	_, err = s.Save(ctx, loaded)
	is.NoErr(err)
	again, err := s.LoadByUser(ctx, "jesse")
	is.NoErr(err)
	assertSameGame(t, loaded, again)

	// a new game for the same user replaces the old one
	fresh, _ := game.New("jesse", testhelpers.DefaultPanel())
	_, err = s.Save(ctx, fresh)
	is.NoErr(err)
	again, err = s.LoadByUser(ctx, "jesse")
	is.NoErr(err)
	assertSameGame(t, fresh, again)
	is.Equal(len(again.PlayedWords()), 0)

	// other users are unaffected
	other, err := s.LoadByUser(ctx, "cesar")
	is.NoErr(err)
	is.True(other == nil)
}

func TestFileStoreJSON(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "saved"), FormatJSON)
	assert.NoError(t, err)
	testRoundTrip(t, s)
	_, err = os.Stat(filepath.Join(s.dir, "jesse.json"))
	assert.NoError(t, err)
}

func TestFileStoreYAML(t *testing.T) {
	s, err := NewFileStore(t.TempDir(), FormatYAML)
	assert.NoError(t, err)
	testRoundTrip(t, s)
	_, err = os.Stat(filepath.Join(s.dir, "jesse.yaml"))
	assert.NoError(t, err)
}

func TestFileStoreBadFormat(t *testing.T) {
	is := is.New(t)
	_, err := NewFileStore(t.TempDir(), "xml")
	is.True(errors.Is(err, ErrUnknownFormat))
}

func TestFileStoreCorrupt(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	is.NoErr(os.WriteFile(filepath.Join(dir, "jesse.json"), []byte("{not json"), 0o644))
	s, _ := NewFileStore(dir, FormatJSON)
	_, err := s.LoadByUser(context.Background(), "jesse")
	is.True(err != nil)
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "db", "games.db"))
	assert.NoError(t, err)
	defer s.Close()
	testRoundTrip(t, s)
}

func TestSQLiteMigrationsRunOnce(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "games.db")
	s, err := NewSQLiteStore(ctx, path)
	is.NoErr(err)
	_, err = s.Save(ctx, playedGame(t, "jesse"))
	is.NoErr(err)
	is.NoErr(s.Close())

	s, err = NewSQLiteStore(ctx, path)
	is.NoErr(err)
	defer s.Close()
	g, err := s.LoadByUser(ctx, "jesse")
	is.NoErr(err)
	is.Equal(g.Score(), 8)
}

func TestOpen(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigSavedGamesPath, t.TempDir())
	s, err := Open(ctx, cfg)
	is.NoErr(err)
	_, ok := s.(*FileStore)
	is.True(ok)

	cfg.Set(config.ConfigStore, config.StoreSqlite)
	cfg.Set(config.ConfigSqlitePath, filepath.Join(t.TempDir(), "r.db"))
	s, err = Open(ctx, cfg)
	is.NoErr(err)
	_, ok = s.(*SQLiteStore)
	is.True(ok)
	is.NoErr(s.Close())

	cfg.Set(config.ConfigStore, "redis")
	_, err = Open(ctx, cfg)
	is.True(errors.Is(err, ErrUnknownStore))
}
