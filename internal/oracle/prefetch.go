package oracle

import (
	"context"
	"sync"
	"time"

	"github.com/brightpath/tutor/internal/curriculum"
	"github.com/brightpath/tutor/internal/logging"
)

type cacheEntry struct {
	text      string
	expiresAt time.Time
}

// narrativeCache is an in-memory TTL cache for generated narratives.
// It is bounded: when full, expired entries are evicted first, then an
// arbitrary entry.
type narrativeCache struct {
	mu         sync.Mutex
	data       map[string]cacheEntry
	maxEntries int
}

func newNarrativeCache(maxEntries int) *narrativeCache {
	return &narrativeCache{
		data:       make(map[string]cacheEntry),
		maxEntries: maxEntries,
	}
}

func (c *narrativeCache) get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.data[key]
	if !ok {
		return "", false
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.data, key)
		return "", false
	}
	return entry.text, true
}

func (c *narrativeCache) set(key, text string, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.data) >= c.maxEntries {
		c.evictLocked()
	}
	c.data[key] = cacheEntry{text: text, expiresAt: time.Now().Add(ttl)}
}

func (c *narrativeCache) evictLocked() {
	now := time.Now()
	for k, e := range c.data {
		if now.After(e.expiresAt) {
			delete(c.data, k)
		}
	}
	if len(c.data) < c.maxEntries {
		return
	}
	for k := range c.data {
		delete(c.data, k)
		return
	}
}

// PrefetchNarrator wraps a Narrator with a TTL cache and background
// warming. Warm generates teaching and hint text ahead of need so the
// session path can serve narratives without waiting on the oracle.
type PrefetchNarrator struct {
	*Narrator
	cache *narrativeCache
	ttl   time.Duration
	log   *logging.Logger
}

// NewPrefetchNarrator creates a PrefetchNarrator. maxEntries bounds the
// cache; ttl controls how long warmed narratives stay usable.
func NewPrefetchNarrator(n *Narrator, maxEntries int, ttl time.Duration, log *logging.Logger) *PrefetchNarrator {
	return &PrefetchNarrator{
		Narrator: n,
		cache:    newNarrativeCache(maxEntries),
		ttl:      ttl,
		log:      log,
	}
}

// Warm pre-generates teaching and hint narratives for a concept in the
// background. Failures are logged and otherwise ignored; the live path
// falls back to canned text.
func (p *PrefetchNarrator) Warm(ctx context.Context, node *curriculum.ConceptNode) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.log.Error("narrative prefetch panic", "concept", node.ID, "panic", r)
			}
		}()
		teaching := p.Narrator.Teaching(ctx, node)
		p.cache.set(teachingKey(node.ID), teaching, p.ttl)
		hint := p.Narrator.Hint(ctx, node, 0)
		p.cache.set(hintKey(node.ID), hint, p.ttl)
	}()
}

// Teaching serves from the cache when warm, otherwise generates.
func (p *PrefetchNarrator) Teaching(ctx context.Context, node *curriculum.ConceptNode) string {
	if text, ok := p.cache.get(teachingKey(node.ID)); ok {
		return text
	}
	return p.Narrator.Teaching(ctx, node)
}

// Hint serves the warmed generic hint for the first miss; targeted
// hints (wrongStreak > 0) always go to the oracle.
func (p *PrefetchNarrator) Hint(ctx context.Context, node *curriculum.ConceptNode, wrongStreak int) string {
	if wrongStreak == 0 {
		if text, ok := p.cache.get(hintKey(node.ID)); ok {
			return text
		}
	}
	return p.Narrator.Hint(ctx, node, wrongStreak)
}

func teachingKey(conceptID string) string { return "teaching:" + conceptID }
func hintKey(conceptID string) string     { return "hint:" + conceptID }
