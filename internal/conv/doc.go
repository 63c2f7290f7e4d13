// Package conv provides checked numeric conversions.
//
// These functions perform bounds checking to prevent overflow, underflow and
// silent truncation when converting between Go's platform-dependent int, the
// fixed-width integer types and the element types stored in flat trees.
//
// Use cases:
//   - Validating untrusted data from disk (file headers, counts, offsets)
//   - Storing a child count inside a tree element type (FromUint64/ToUint64)
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
