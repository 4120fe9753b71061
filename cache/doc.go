// Package cache provides a bounded, concurrent LRU cache keyed by values
// that carry their own hash and equality.
//
// Keys implement Hashable. The hash selects a shard and a bucket inside
// it; Equal resolves collisions, so two distinct keys with the same hash
// never alias.
//
//	c := cache.New[MyKey, Bounds](128)
//	b, err := c.GetOrTryCreate(key, func() (Bounds, error) {
//	    return compute(key)
//	})
//
// # Sharding
//
// Entries are spread over a power-of-two number of shards, each with its
// own lock and LRU list. The shard count is chosen so that every shard
// holds at least eight entries; WithShards overrides it, and WithShards(1)
// gives exact global LRU order.
//
// # Creation
//
// GetOrCreate and GetOrTryCreate call the create function without holding
// any lock, so create may itself use the cache. Two goroutines that miss
// on the same key at the same time may both compute; the last one to
// finish wins. A failing GetOrTryCreate stores nothing.
//
// # Thread Safety
//
// All methods are safe for concurrent use. Statistics are kept in atomic
// counters and can be exported with NewCollector.
package cache
