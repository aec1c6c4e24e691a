package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// Entry is a cached value with its expiry.
type Entry struct {
	Value     any
	ExpiresAt time.Time
}

// Stats is a point-in-time snapshot of cache performance counters.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Keys      int   `json:"keys"`
	TTLSecs   int   `json:"ttl_seconds"`
}

// Cache is a thread-safe in-memory TTL cache. It is a pure decorator: the
// recommendation engine owns no cache and is correct whether or not one sits
// in front of it.
type Cache struct {
	mu        sync.RWMutex
	entries   map[string]Entry
	ttl       time.Duration
	hits      int64
	misses    int64
	evictions int64
}

// New creates a cache with the given TTL and starts a background sweep of
// expired entries. The sweep goroutine runs for the cache lifetime.
func New(ttl time.Duration) *Cache {
	c := &Cache{
		entries: make(map[string]Entry),
		ttl:     ttl,
	}
	go c.cleanupLoop()
	return c
}

// Key canonicalizes an arbitrary input tuple into a stable cache key.
func Key(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func (c *Cache) Get(key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.ExpiresAt) {
		c.mu.Lock()
		if ok {
			delete(c.entries, key)
			c.evictions++
		}
		c.misses++
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
	return entry.Value, true
}

func (c *Cache) Set(key string, value any) {
	if key == "" {
		return
	}
	c.mu.Lock()
	c.entries[key] = Entry{Value: value, ExpiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Clear drops all entries and returns how many were removed.
func (c *Cache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.entries)
	c.entries = make(map[string]Entry)
	return n
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Keys:      len(c.entries),
		TTLSecs:   int(c.ttl.Seconds()),
	}
}

func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		c.mu.Lock()
		for key, entry := range c.entries {
			if now.After(entry.ExpiresAt) {
				delete(c.entries, key)
				c.evictions++
			}
		}
		c.mu.Unlock()
	}
}
