package alphabet

import (
	"context"
	"errors"
	"strings"

	"github.com/domino14/reelwords/cache"
	"github.com/domino14/reelwords/config"
)

var CacheKeyPrefix = "letterscores:"

// CacheLoadFunc is the function that loads an object into the global cache.
func CacheLoadFunc(cfg *config.Config, key string) (any, error) {
	src := &FileScoreSource{Path: strings.TrimPrefix(key, CacheKeyPrefix)}
	return src.All(context.Background())
}

// CachedScoreSource serves the score table of a file, reading the file only
// once per process.
type CachedScoreSource struct {
	cfg  *config.Config
	path string
}

func NewCachedScoreSource(cfg *config.Config) *CachedScoreSource {
	return &CachedScoreSource{cfg: cfg, path: cfg.ScoresPath()}
}

func (s *CachedScoreSource) All(ctx context.Context) (LetterScores, error) {
	obj, err := cache.Load(s.cfg, CacheKeyPrefix+s.path, CacheLoadFunc)
	if err != nil {
		return nil, err
	}
	ret, ok := obj.(LetterScores)
	if !ok {
		return nil, errors.New("could not read letter scores from cache")
	}
	return ret, nil
}
