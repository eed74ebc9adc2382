// Package cache provides a small generic LRU cache used to memoize derived
// font data, such as the decoration metrics of a face at a given size.
//
//	c := cache.New[uint64, text.FontMetrics](32)
//	m := c.GetOrCreate(key, func() text.FontMetrics { return compute() })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
