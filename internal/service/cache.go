// Package service contains the business logic for the deal service.
package service

import (
	"container/list"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/deal-service/internal/domain/model"
	"github.com/guttosm/deal-service/internal/metrics"
	"github.com/guttosm/deal-service/internal/service/cache"
)

const (
	defaultCacheShards   = 16
	cacheCleanupInterval = time.Minute
)

// ShardedCache spreads entries over several LRU shards to reduce lock contention.
// The cache_size and cache_capacity gauges follow every change in size.
type ShardedCache struct {
	shards    []*ttlCache
	shardMask uint64
	size      int64
	capacity  int
}

// NewShardedCache creates a sharded cache with the given total capacity and TTL.
// numShards is rounded up to a power of two; values <= 0 select 16 shards.
func NewShardedCache(capacity int, ttl time.Duration, numShards int) *ShardedCache {
	if numShards <= 0 {
		numShards = defaultCacheShards
	}
	n := 1
	for n < numShards {
		n <<= 1
	}

	perShard := capacity / n
	if perShard < 1 {
		perShard = 1
	}

	sc := &ShardedCache{
		shards:    make([]*ttlCache, n),
		shardMask: uint64(n - 1),
		capacity:  perShard * n,
	}
	for i := range sc.shards {
		sc.shards[i] = newTTLCache(perShard, ttl)
		sc.shards[i].onResize = sc.resized
	}
	metrics.UpdateCacheMetrics(0, sc.capacity)

	return sc
}

func (sc *ShardedCache) resized(delta int) {
	size := atomic.AddInt64(&sc.size, int64(delta))
	metrics.UpdateCacheMetrics(int(size), sc.capacity)
}

func (sc *ShardedCache) shard(quantity int64) *ttlCache {
	return sc.shards[uint64(quantity)&sc.shardMask]
}

// Get retrieves a value from the owning shard.
func (sc *ShardedCache) Get(quantity int64) (model.DealResult, bool) {
	return sc.shard(quantity).Get(quantity)
}

// Set stores a value in the owning shard.
func (sc *ShardedCache) Set(quantity int64, value model.DealResult) {
	sc.shard(quantity).Set(quantity, value)
}

// Invalidate removes a key from the owning shard.
func (sc *ShardedCache) Invalidate(quantity int64) {
	sc.shard(quantity).Invalidate(quantity)
}

// Clear removes all entries from all shards.
func (sc *ShardedCache) Clear() {
	for _, s := range sc.shards {
		s.Clear()
	}
}

// Stop shuts down the cleanup goroutine of every shard.
func (sc *ShardedCache) Stop() {
	for _, s := range sc.shards {
		s.Stop()
	}
}

// NumShards returns the number of shards.
func (sc *ShardedCache) NumShards() int {
	return len(sc.shards)
}

// Metrics returns metrics aggregated over all shards.
func (sc *ShardedCache) Metrics() cache.Metrics {
	var total cache.Metrics
	for _, s := range sc.shards {
		m := s.Metrics()
		total.Hits += m.Hits
		total.Misses += m.Misses
		total.Evictions += m.Evictions
		total.Size += m.Size
		total.Capacity += m.Capacity
	}
	return total
}

// ttlCache is a thread-safe LRU cache whose entries also expire after ttl.
type ttlCache struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	items     map[int64]*list.Element
	order     *list.List // front = most recently used
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
	onResize  func(delta int)
}

type cacheEntry struct {
	key       int64
	value     model.DealResult
	expiresAt time.Time
}

// newTTLCache creates a cache and starts its background cleanup.
func newTTLCache(capacity int, ttl time.Duration) *ttlCache {
	c := &ttlCache{
		capacity: capacity,
		ttl:      ttl,
		items:    make(map[int64]*list.Element, capacity),
		order:    list.New(),
		stopCh:   make(chan struct{}),
	}
	go c.cleanupLoop(cacheCleanupInterval)
	return c
}

// Get returns the cached value if present and not expired.
func (c *ttlCache) Get(quantity int64) (model.DealResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[quantity]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "miss")
		return model.DealResult{}, false
	}

	entry := el.Value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.removeElement(el)
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation("get", "expired")
		return model.DealResult{}, false
	}

	c.order.MoveToFront(el)
	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation("get", "hit")
	return entry.value, true
}

// Set adds or replaces a value, evicting the least recently used entry when full.
func (c *ttlCache) Set(quantity int64, value model.DealResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(c.ttl)
	if el, ok := c.items[quantity]; ok {
		entry := el.Value.(*cacheEntry)
		entry.value = value
		entry.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.items[quantity] = c.order.PushFront(&cacheEntry{
		key:       quantity,
		value:     value,
		expiresAt: expiresAt,
	})
	c.resized(1)

	if c.order.Len() > c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
			atomic.AddInt64(&c.evictions, 1)
			metrics.RecordCacheOperation("evict", "capacity")
		}
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate removes a specific key.
func (c *ttlCache) Invalidate(quantity int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[quantity]; ok {
		c.removeElement(el)
		metrics.RecordCacheOperation("invalidate", "success")
	}
}

// Clear removes all entries and resets the counters.
func (c *ttlCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := len(c.items)
	c.items = make(map[int64]*list.Element, c.capacity)
	c.order.Init()
	c.resized(-removed)
	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation("clear", "success")
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (c *ttlCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns the current counters.
func (c *ttlCache) Metrics() cache.Metrics {
	c.mu.Lock()
	size := len(c.items)
	c.mu.Unlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      size,
		Capacity:  c.capacity,
	}
}

func (c *ttlCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired(time.Now())
		case <-c.stopCh:
			return
		}
	}
}

// removeExpired drops every entry that expired before now.
func (c *ttlCache) removeExpired(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*cacheEntry).expiresAt) {
			c.removeElement(el)
			removed++
		}
		el = prev
	}
	return removed
}

func (c *ttlCache) removeElement(el *list.Element) {
	delete(c.items, el.Value.(*cacheEntry).key)
	c.order.Remove(el)
	c.resized(-1)
}

// resized is called with c.mu held.
func (c *ttlCache) resized(delta int) {
	if c.onResize != nil && delta != 0 {
		c.onResize(delta)
	}
}
