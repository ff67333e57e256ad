package raster

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of grids a Cache keeps when no size is given.
const DefaultCacheSize = 16

// Cache holds recently decoded grids keyed by file path.
//
// Once a map image is loaded, subsequent Load calls for the same path return
// the cached grid without disk I/O. The least recently used grid is dropped
// when the cache is full. Cache is safe for concurrent use.
//
// The cache is keyed by the exact path string. An edited file keeps its stale
// grid until it is evicted.
type Cache struct {
	grids *lru.Cache[string, *Grid]
}

// NewCache creates a cache holding up to size grids. A size below one uses
// DefaultCacheSize.
func NewCache(size int) *Cache {
	if size < 1 {
		size = DefaultCacheSize
	}
	// lru.New only fails for non-positive sizes.
	grids, _ := lru.New[string, *Grid](size)
	return &Cache{grids: grids}
}

// Load returns the cached grid for path or decodes it from disk.
func (c *Cache) Load(path string) (*Grid, error) {
	if g, ok := c.grids.Get(path); ok {
		return g, nil
	}

	g, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.grids.Add(path, g)
	return g, nil
}

// Evict removes the grid stored for path, if any.
func (c *Cache) Evict(path string) {
	c.grids.Remove(path)
}

// Clear removes every cached grid.
func (c *Cache) Clear() {
	c.grids.Purge()
}

// Len returns the number of cached grids.
func (c *Cache) Len() int {
	return c.grids.Len()
}
