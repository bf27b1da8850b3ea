// Package lexicon provides the word list the game accepts.
package lexicon

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/domino14/reelwords/cache"
	"github.com/domino14/reelwords/config"
	"github.com/domino14/reelwords/trie"
)

// Source lists the dictionary words that are at most maxLen letters long.
type Source interface {
	ByWordSize(ctx context.Context, maxLen int) ([]string, error)
}

// FileSource reads a word list with one word per line.
type FileSource struct {
	Path string
}

func (s *FileSource) ByWordSize(ctx context.Context, maxLen int) ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		w := strings.TrimSpace(scanner.Text())
		if w == "" || utf8.RuneCountInString(w) > maxLen {
			continue
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Debug().Str("path", s.Path).Int("words", len(words)).Int("max-len", maxLen).
		Msg("read word list")
	return words, nil
}

// Build loads every word of the source that fits maxLen into a new trie.
func Build(ctx context.Context, src Source, maxLen int) (*trie.Trie, error) {
	words, err := src.ByWordSize(ctx, maxLen)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary: %w", err)
	}
	return trie.FromWords(words), nil
}

const CacheKeyPrefix = "trie:"

func cacheKey(path string, maxLen int) string {
	return CacheKeyPrefix + strconv.Itoa(maxLen) + ":" + path
}

// CacheLoadFunc builds the trie named by a cache key.
func CacheLoadFunc(cfg *config.Config, key string) (any, error) {
	rest := strings.TrimPrefix(key, CacheKeyPrefix)
	size, path, ok := strings.Cut(rest, ":")
	if !ok {
		return nil, fmt.Errorf("malformed dictionary cache key: %s", key)
	}
	maxLen, err := strconv.Atoi(size)
	if err != nil {
		return nil, fmt.Errorf("malformed dictionary cache key: %s", key)
	}
	return Build(context.Background(), &FileSource{Path: path}, maxLen)
}

// Loader provides the dictionary trie for a word size.
type Loader interface {
	Dictionary(ctx context.Context, maxLen int) (*trie.Trie, error)
}

// SourceLoader builds a fresh trie from its source on every call.
type SourceLoader struct {
	Source Source
}

func (l *SourceLoader) Dictionary(ctx context.Context, maxLen int) (*trie.Trie, error) {
	return Build(ctx, l.Source, maxLen)
}

// CachedLoader builds the trie for the configured words file once per
// process.
type CachedLoader struct {
	cfg *config.Config
}

func NewCachedLoader(cfg *config.Config) *CachedLoader {
	return &CachedLoader{cfg: cfg}
}

func (l *CachedLoader) Dictionary(ctx context.Context, maxLen int) (*trie.Trie, error) {
	obj, err := cache.Load(l.cfg, cacheKey(l.cfg.WordsPath(), maxLen), CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	t, ok := obj.(*trie.Trie)
	if !ok {
		return nil, errors.New("could not read dictionary from cache")
	}
	return t, nil
}
