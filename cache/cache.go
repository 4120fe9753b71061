package cache

import (
	"math/bits"
	"slices"
	"sync"
	"sync/atomic"
)

const (
	// DefaultCapacity is used when New is given a non-positive capacity.
	DefaultCapacity = 128

	// minShardCapacity is the smallest number of entries a shard holds
	// when the shard count is chosen automatically.
	minShardCapacity = 8

	// maxShards bounds the automatic shard count.
	maxShards = 64
)

// Hashable is implemented by cache keys.
//
// Equal must be consistent with Hash: keys that are Equal have the same
// Hash.
type Hashable[K any] interface {
	Hash() uint64
	Equal(other K) bool
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	shards int
}

// WithShards sets the number of shards, rounded up to a power of two and
// limited to the capacity. Zero or negative values select the count
// automatically.
func WithShards(n int) Option {
	return func(o *options) {
		o.shards = n
	}
}

// Cache is a thread-safe, sharded LRU cache with a bounded total size.
type Cache[K Hashable[K], V any] struct {
	shards   []*shard[K, V]
	mask     uint64
	capacity int

	// Statistics (atomic for zero-allocation reads)
	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// shard is a single shard of the cache.
// Each shard has its own mutex for reduced contention.
type shard[K Hashable[K], V any] struct {
	mu       sync.Mutex
	buckets  map[uint64][]*entry[K, V]
	lru      lruList[K, V]
	capacity int
}

// New creates a cache holding at most capacity entries in total.
// If capacity <= 0, DefaultCapacity is used.
func New[K Hashable[K], V any](capacity int, opts ...Option) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	n := shardCount(capacity, o.shards)
	c := &Cache[K, V]{
		shards:   make([]*shard[K, V], n),
		mask:     uint64(n - 1),
		capacity: capacity,
	}

	// Spread the remainder so the shard capacities sum to capacity.
	base, extra := capacity/n, capacity%n
	for i := range c.shards {
		sc := base
		if i < extra {
			sc++
		}
		c.shards[i] = &shard[K, V]{
			buckets:  make(map[uint64][]*entry[K, V]),
			capacity: sc,
		}
	}

	return c
}

// shardCount returns a power of two no larger than capacity.
func shardCount(capacity, requested int) int {
	n := requested
	if n <= 0 {
		n = min(capacity/minShardCapacity, maxShards)
	}
	n = min(max(n, 1), capacity)

	// Round up to a power of two, then back down if that overshoots.
	p := 1 << bits.Len(uint(n-1))
	if p > capacity {
		p >>= 1
	}
	return p
}

// getShard returns the shard for a hash.
// Uses bitwise AND for fast modulo (shard count is a power of 2).
func (c *Cache[K, V]) getShard(hash uint64) *shard[K, V] {
	return c.shards[hash&c.mask]
}

// Get retrieves a cached value by key.
// Returns (value, true) if found, (zero, false) otherwise.
//
// On cache hit, the entry becomes the most recently used in its shard.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	hash := key.Hash()
	s := c.getShard(hash)

	s.mu.Lock()
	e := s.find(hash, key)
	if e == nil {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.lru.MoveToFront(e)
	value := e.value
	s.mu.Unlock()

	c.hits.Add(1)
	return value, true
}

// Set stores a value in the cache, replacing any value for an equal key.
// If the shard is full, its least recently used entry is evicted.
//
// The value is stored as-is (not copied). Callers should not modify it
// after caching.
func (c *Cache[K, V]) Set(key K, value V) {
	hash := key.Hash()
	s := c.getShard(hash)

	s.mu.Lock()
	evicted := s.set(hash, key, value)
	s.mu.Unlock()

	if evicted > 0 {
		c.evictions.Add(uint64(evicted))
	}
}

// GetOrCreate returns the cached value for key, or calls create, stores
// its result and returns it.
//
// create runs without any lock held.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	if value, ok := c.Get(key); ok {
		return value
	}

	value := create()
	c.Set(key, value)
	return value
}

// GetOrTryCreate is like GetOrCreate for a fallible create function.
// When create fails, nothing is stored and its error is returned.
func (c *Cache[K, V]) GetOrTryCreate(key K, create func() (V, error)) (V, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}

	value, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.Set(key, value)
	return value, nil
}

// Delete removes an entry from the cache.
// Returns true if the entry was found and removed.
func (c *Cache[K, V]) Delete(key K) bool {
	hash := key.Hash()
	s := c.getShard(hash)

	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.find(hash, key)
	if e == nil {
		return false
	}
	s.remove(e)
	return true
}

// Clear removes all entries from the cache.
func (c *Cache[K, V]) Clear() {
	for _, s := range c.shards {
		s.mu.Lock()
		s.buckets = make(map[uint64][]*entry[K, V])
		s.lru.Clear()
		s.mu.Unlock()
	}
}

// Len returns the total number of entries across all shards.
func (c *Cache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += s.lru.Len()
		s.mu.Unlock()
	}
	return total
}

// Capacity returns the maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Shards returns the number of shards.
func (c *Cache[K, V]) Shards() int {
	return len(c.shards)
}

// Stats returns current cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	hits := c.hits.Load()
	misses := c.misses.Load()

	var hitRate float64
	if total := hits + misses; total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Shards:    len(c.shards),
		Hits:      hits,
		Misses:    misses,
		HitRate:   hitRate,
		Evictions: c.evictions.Load(),
	}
}

// ResetStats resets all statistics counters to zero.
func (c *Cache[K, V]) ResetStats() {
	c.hits.Store(0)
	c.misses.Store(0)
	c.evictions.Store(0)
}

// Stats contains cache statistics.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the maximum number of entries.
	Capacity int
	// Shards is the number of shards.
	Shards int
	// Hits is the number of lookups that found an entry.
	Hits uint64
	// Misses is the number of lookups that did not.
	Misses uint64
	// HitRate is Hits / (Hits + Misses), or 0 before any lookup.
	HitRate float64
	// Evictions is the number of entries dropped to make room.
	Evictions uint64
}

// find returns the entry for key, or nil. Caller must hold s.mu.
func (s *shard[K, V]) find(hash uint64, key K) *entry[K, V] {
	for _, e := range s.buckets[hash] {
		if e.key.Equal(key) {
			return e
		}
	}
	return nil
}

// set inserts or replaces an entry and returns how many entries were
// evicted. Caller must hold s.mu.
func (s *shard[K, V]) set(hash uint64, key K, value V) int {
	if e := s.find(hash, key); e != nil {
		e.value = value
		s.lru.MoveToFront(e)
		return 0
	}

	evicted := 0
	for s.lru.Len() >= s.capacity {
		oldest := s.lru.Oldest()
		if oldest == nil {
			break
		}
		s.remove(oldest)
		evicted++
	}

	e := &entry[K, V]{hash: hash, key: key, value: value}
	s.buckets[hash] = append(s.buckets[hash], e)
	s.lru.PushFront(e)
	return evicted
}

// remove drops an entry from its bucket and the LRU list.
// Caller must hold s.mu.
func (s *shard[K, V]) remove(e *entry[K, V]) {
	bucket := s.buckets[e.hash]
	if i := slices.Index(bucket, e); i >= 0 {
		bucket = slices.Delete(bucket, i, i+1)
	}
	if len(bucket) == 0 {
		delete(s.buckets, e.hash)
	} else {
		s.buckets[e.hash] = bucket
	}
	s.lru.Remove(e)
}
