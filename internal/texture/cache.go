package texture

import (
	"fmt"
	"image"
	"os"
	"sync"
)

// Resolver resolves a texture path to a decoded RGBA image.
type Resolver interface {
	Resolve(path string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache shared by render workers.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	img *image.NRGBA
	err error // load failure, remembered so it is reported once
}

// NewCache creates a texture cache. index may be nil, in which case only
// paths that exist on disk resolve.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches a texture. The path is tried as given first,
// then by stem in the index. Returns nil if not found or undecodable.
func (c *Cache) Resolve(path string) *image.NRGBA {
	if _, err := os.Stat(path); err != nil {
		var ok bool
		if path, ok = c.index.ResolvePath(path); !ok {
			return nil
		}
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, err := LoadTexture(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.img
	}
	c.items[path] = &cacheEntry{img: img, err: err}
	return img
}

// Errors returns the load failures seen so far, one per path.
func (c *Cache) Errors() []error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var errs []error
	for _, e := range c.items {
		if e.err != nil {
			errs = append(errs, e.err)
		}
	}
	return errs
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cache) String() string {
	return fmt.Sprintf("texture cache: %d loaded, %d indexed", c.Len(), c.index.Len())
}
