// Package cache provides a byte-budgeted LRU cache for immutable blobs.
//
// Values are charged by their length against the capacity. Values larger than
// the capacity are never cached. Returned slices must be treated as read-only.
package cache
