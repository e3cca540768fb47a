// Package cache holds small in-process caches with an injectable clock.
package cache

import (
	"sync"
	"time"
)

// Observer is notified on every lookup.
type Observer interface {
	CacheHit()
	CacheMiss()
}

type entry[T any] struct {
	val T
	exp time.Time
}

// TTL is a concurrency-safe map whose entries expire a fixed duration after
// they are set. Expired entries are dropped lazily on lookup.
type TTL[T any] struct {
	mu  sync.RWMutex
	m   map[string]entry[T]
	ttl time.Duration
	now func() time.Time
	obs Observer
}

// NewTTL creates a cache. A nil now uses time.Now and a nil obs is allowed.
func NewTTL[T any](ttl time.Duration, now func() time.Time, obs Observer) *TTL[T] {
	if now == nil {
		now = time.Now
	}
	return &TTL[T]{m: make(map[string]entry[T]), ttl: ttl, now: now, obs: obs}
}

func (c *TTL[T]) Get(key string) (T, bool) {
	var zero T
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()

	if ok && !c.now().Before(e.exp) {
		c.mu.Lock()
		if cur, still := c.m[key]; still && cur.exp.Equal(e.exp) {
			delete(c.m, key)
		}
		c.mu.Unlock()
		ok = false
	}

	if !ok {
		if c.obs != nil {
			c.obs.CacheMiss()
		}
		return zero, false
	}
	if c.obs != nil {
		c.obs.CacheHit()
	}
	return e.val, true
}

func (c *TTL[T]) Set(key string, v T) {
	c.mu.Lock()
	c.m[key] = entry[T]{val: v, exp: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *TTL[T]) Delete(key string) {
	c.mu.Lock()
	delete(c.m, key)
	c.mu.Unlock()
}

// Len counts entries, including expired ones not yet looked up.
func (c *TTL[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
