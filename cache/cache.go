package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/reelwords/config"
)

// The cache holds objects that are expensive to build and never change during
// a process, such as the dictionary trie and the letter score table. Keys
// usually carry a type prefix and the path of the file the object came from.

type cache struct {
	sync.Mutex
	objects map[string]any
}

type loadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is our global object cache, of course.
var (
	GlobalObjectCache *cache
	globalMu          sync.Mutex
)

func (c *cache) load(cfg *config.Config, key string, loadFunc loadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(cfg *config.Config, key string, loadFunc loadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	if err := c.load(cfg, key, loadFunc); err != nil {
		return nil, err
	}
	return c.objects[key], nil
}

func (c *cache) evict(key string) {
	c.Lock()
	defer c.Unlock()
	delete(c.objects, key)
}

func CreateGlobalObjectCache() {
	globalMu.Lock()
	defer globalMu.Unlock()
	GlobalObjectCache = &cache{objects: make(map[string]any)}
}

func global() *cache {
	globalMu.Lock()
	defer globalMu.Unlock()
	if GlobalObjectCache == nil {
		GlobalObjectCache = &cache{objects: make(map[string]any)}
	}
	return GlobalObjectCache
}

// Load returns the object stored under key, building it with loadFunc the
// first time it is asked for.
func Load(cfg *config.Config, key string, loadFunc loadFunc) (any, error) {
	return global().get(cfg, key, loadFunc)
}

// Evict drops a key so the next Load rebuilds it.
func Evict(key string) {
	global().evict(key)
}
