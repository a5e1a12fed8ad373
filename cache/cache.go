package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/gridrush/gridrush/config"
)

// The cache holds large read-only objects we only want to load once per
// process — in practice, vocabulary indexes keyed by language, shared by
// every search that uses the same language.

type cache struct {
	sync.Mutex
	objects map[string]any
}

type LoadFunc func(cfg *config.Config, key string) (any, error)

var globalObjectCache *cache

func (c *cache) load(cfg *config.Config, key string, loadFunc LoadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	var ok bool
	var obj any
	c.Lock()
	defer c.Unlock()
	if obj, ok = c.objects[key]; !ok {
		err := c.load(cfg, key, loadFunc)
		if err != nil {
			return nil, err
		}
		return c.objects[key], nil
	}
	log.Debug().Str("key", key).Msg("getting obj from cache")

	return obj, nil
}

func createGlobalObjectCache() {
	globalObjectCache = &cache{objects: make(map[string]any)}
}

// Load fetches the object stored under name, calling loadFunc to create it
// on a miss.
func Load(cfg *config.Config, name string, loadFunc LoadFunc) (any, error) {
	if globalObjectCache == nil {
		createGlobalObjectCache()
	}
	return globalObjectCache.get(cfg, name, loadFunc)
}

// Reset drops every cached object. Intended for tests.
func Reset() {
	globalObjectCache = nil
}
