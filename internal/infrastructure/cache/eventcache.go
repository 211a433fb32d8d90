// Package cache holds in-process caches. Events are immutable once created,
// so an event cached by slug never goes stale.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/orris-inc/photobooth/internal/domain/event"
	"github.com/orris-inc/photobooth/internal/infrastructure/metrics"
)

const (
	defaultEventCacheSize = 256
	defaultEventCacheTTL  = 10 * time.Minute
)

// EventCache is an expiring LRU of events keyed by slug.
type EventCache struct {
	lru *expirable.LRU[string, *event.Event]
}

func NewEventCache(size int, ttl time.Duration) *EventCache {
	if size <= 0 {
		size = defaultEventCacheSize
	}
	if ttl <= 0 {
		ttl = defaultEventCacheTTL
	}
	return &EventCache{lru: expirable.NewLRU[string, *event.Event](size, nil, ttl)}
}

func (c *EventCache) Get(slug string) (*event.Event, bool) {
	e, ok := c.lru.Get(slug)
	if ok {
		metrics.EventCacheHit()
		return e, true
	}
	metrics.EventCacheMiss()
	return nil, false
}

func (c *EventCache) Set(e *event.Event) {
	if e == nil {
		return
	}
	c.lru.Add(e.Slug(), e)
}

func (c *EventCache) Len() int {
	return c.lru.Len()
}
