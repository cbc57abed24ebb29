package cache

import (
	"context"
	"sync"
	"time"

	"payplan/internal/usecase/interfaces"
)

const (
	defaultMemoryMaxEntries = 10000
	memorySweepInterval     = time.Minute
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryQuoteCache is an in-process IQuoteCache used when Redis is not
// configured. Expired entries are dropped on read and swept on Set at most
// once per memorySweepInterval. The map never holds more than maxEntries;
// when full, the entry closest to expiry is evicted.
type MemoryQuoteCache struct {
	mu         sync.RWMutex
	data       map[string]memoryEntry
	maxEntries int
	lastSweep  time.Time
	now        func() time.Time
}

var _ interfaces.IQuoteCache = (*MemoryQuoteCache)(nil)

func NewMemoryQuoteCache() *MemoryQuoteCache {
	return &MemoryQuoteCache{
		data:       make(map[string]memoryEntry),
		maxEntries: defaultMemoryMaxEntries,
		now:        time.Now,
	}
}

func (c *MemoryQuoteCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		return "", false, nil
	}
	if e.expired(c.now()) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return "", false, nil
	}
	return e.value, true, nil
}

// Set stores value; a ttl <= 0 never expires.
func (c *MemoryQuoteCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	now := c.now()
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	_, exists := c.data[key]
	full := !exists && c.maxEntries > 0 && len(c.data) >= c.maxEntries
	if full || now.Sub(c.lastSweep) >= memorySweepInterval {
		c.sweepLocked(now)
	}
	if !exists && c.maxEntries > 0 && len(c.data) >= c.maxEntries {
		c.evictLocked()
	}
	c.data[key] = e
	return nil
}

func (c *MemoryQuoteCache) sweepLocked(now time.Time) {
	for k, e := range c.data {
		if e.expired(now) {
			delete(c.data, k)
		}
	}
	c.lastSweep = now
}

// evictLocked drops the entry expiring soonest; entries without a ttl go last.
func (c *MemoryQuoteCache) evictLocked() {
	var (
		victim string
		oldest time.Time
		found  bool
	)
	for k, e := range c.data {
		if !found {
			victim, oldest, found = k, e.expiresAt, true
			continue
		}
		if e.expiresAt.IsZero() {
			continue
		}
		if oldest.IsZero() || e.expiresAt.Before(oldest) {
			victim, oldest = k, e.expiresAt
		}
	}
	if found {
		delete(c.data, victim)
	}
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}
