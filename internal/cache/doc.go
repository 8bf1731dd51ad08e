// Package cache provides the LRU cache behind robust.Registry.
//
// A Registry keeps one filtered predicate per distinct persistent
// configuration. Building a predicate is cheap, but its exact state is
// materialized lazily and can be expensive, so the registry keeps recently
// used instances alive and lets old ones go.
//
//	c := cache.New[string, int](100)
//	v, err := c.GetOrCreate("key", func() (int, error) { return 42, nil })
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
