package cover

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

type cacheKey struct {
	id    string
	width int
}

// Cache keeps recently rendered covers in memory so frames do not decode
// and scale the image again.
type Cache struct {
	lru *lru.Cache[cacheKey, *Art]
}

// NewCache creates a cache holding up to limit covers.
func NewCache(limit int) *Cache {
	c, err := lru.New[cacheKey, *Art](max(limit, 1))
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}
	return &Cache{lru: c}
}

// Get returns the art for id at width, decoding data on a miss. Covers that
// are empty or fail to decode get the placeholder; the decode error is
// returned alongside it. An empty cover is not an error.
func (c *Cache) Get(id string, data []byte, width int) (*Art, error) {
	key := cacheKey{id: id, width: width}
	if art, ok := c.lru.Get(key); ok {
		return art, nil
	}

	img, err := Decode(data)
	if err != nil {
		img = Default(width)
		if len(data) == 0 {
			err = nil
		}
	}
	art := New(img, width)
	c.lru.Add(key, art)
	return art, err
}

// Len returns the number of cached covers.
func (c *Cache) Len() int { return c.lru.Len() }
