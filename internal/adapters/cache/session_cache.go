package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

// RistrettoSessionCache keeps one value per user that expires after ttl of inactivity.
type RistrettoSessionCache[V any] struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewSessionCache[V any](maxItems int64, ttl time.Duration) (*RistrettoSessionCache[V], error) {
	if maxItems <= 0 {
		maxItems = 10_000
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create session cache failed: %w", err)
	}
	return &RistrettoSessionCache[V]{cache: c, ttl: ttl}, nil
}

func (c *RistrettoSessionCache[V]) Get(userID int64) (V, bool) {
	if v, ok := c.cache.Get(userID); ok {
		s, ok := v.(V)
		return s, ok
	}
	var zero V
	return zero, false
}

// Set refreshes the ttl. It waits for the write buffer so the next Get sees the value.
func (c *RistrettoSessionCache[V]) Set(userID int64, v V) {
	c.cache.SetWithTTL(userID, v, 1, c.ttl)
	c.cache.Wait()
}

func (c *RistrettoSessionCache[V]) Delete(userID int64) {
	c.cache.Del(userID)
}

func (c *RistrettoSessionCache[V]) Close() { c.cache.Close() }
