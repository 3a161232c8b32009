// Package memo provides a bounded, thread-safe memo table for pure functions.
package memo

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/golang-lru/simplelru"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("memo")

// Cache is an LRU memo table from string keys to V.
//
// Lookup does not hold the lock while computing, so compute may itself call
// Lookup on the same cache (recursive formulas). Two goroutines missing the
// same key concurrently both compute it; the results of a pure function are
// equal, so either one may win.
type Cache[V any] struct {
	name   string
	mux    sync.Mutex
	lru    *simplelru.LRU
	hits   atomic.Int64
	misses atomic.Int64
}

// New returns a cache holding at most size entries. It panics if size is not positive.
func New[V any](name string, size int) *Cache[V] {
	l, err := simplelru.NewLRU(size, nil)
	if err != nil {
		panic(fmt.Errorf("memo: %s: %w", name, err))
	}
	return &Cache[V]{name: name, lru: l}
}

// Lookup returns the cached value for key, computing and storing it on a miss.
func (c *Cache[V]) Lookup(key string, compute func() V) V {
	c.mux.Lock()
	v, ok := c.lru.Get(key)
	c.mux.Unlock()
	if ok {
		c.hits.Add(1)
		return v.(V)
	}
	c.misses.Add(1)
	ret := compute()
	c.mux.Lock()
	if c.lru.Add(key, ret) {
		log.Debugf("%s: evicted oldest entry, %d entries", c.name, c.lru.Len())
	}
	c.mux.Unlock()
	return ret
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.lru.Len()
}

// Purge drops every entry and resets the counters.
func (c *Cache[V]) Purge() {
	c.mux.Lock()
	c.lru.Purge()
	c.mux.Unlock()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Stats returns the hit and miss counts since creation or the last Purge.
func (c *Cache[V]) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
