package lexicon

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/reelwords/cache"
	"github.com/domino14/reelwords/config"
)

func writeWords(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestByWordSize(t *testing.T) {
	path := writeWords(t, "cat\n\n  hat  \nelephant\nzebras\n")
	words, err := (&FileSource{Path: path}).ByWordSize(context.Background(), 6)
	assert.NoError(t, err)
	assert.Equal(t, []string{"cat", "hat", "zebras"}, words)
}

func TestByWordSizeMissingFile(t *testing.T) {
	is := is.New(t)
	_, err := (&FileSource{Path: filepath.Join(t.TempDir(), "nope")}).ByWordSize(context.Background(), 7)
	is.True(err != nil)
}

func TestBuild(t *testing.T) {
	is := is.New(t)
	path := writeWords(t, "Cat\ncan\nelephant\n")
	tr, err := Build(context.Background(), &FileSource{Path: path}, 7)
	is.NoErr(err)
	is.True(tr.Search("cat"))
	is.True(tr.Search("can"))
	is.True(!tr.Search("elephant"))
	is.True(!tr.Search("ca"))
}

func TestSourceLoader(t *testing.T) {
	is := is.New(t)
	path := writeWords(t, "cat\n")
	l := &SourceLoader{Source: &FileSource{Path: path}}
	t1, err := l.Dictionary(context.Background(), 7)
	is.NoErr(err)
	t2, err := l.Dictionary(context.Background(), 7)
	is.NoErr(err)
	is.True(t1 != t2)
	is.True(t1.Search("cat"))
}

func TestCachedLoader(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	path := writeWords(t, "cat\nhorse\n")
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigWordsFile, path)
	l := NewCachedLoader(cfg)

	t1, err := l.Dictionary(ctx, 7)
	is.NoErr(err)
	t2, err := l.Dictionary(ctx, 7)
	is.NoErr(err)
	is.True(t1 == t2)

	// a different word size is a different dictionary
	t3, err := l.Dictionary(ctx, 3)
	is.NoErr(err)
	is.True(t3 != t1)
	is.True(!t3.Search("horse"))

	cache.Evict(cacheKey(path, 7))
	t4, err := l.Dictionary(ctx, 7)
	is.NoErr(err)
	is.True(t1 != t4)
	is.True(t4.Search("horse"))
}

func TestCacheLoadFuncBadKey(t *testing.T) {
	is := is.New(t)
	_, err := CacheLoadFunc(nil, "trie:abc")
	is.True(err != nil)
}
