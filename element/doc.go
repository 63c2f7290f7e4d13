// Package element describes how tree element types store structural numbers.
//
// The fixed-slot encoding appends the tree's maximum child count to the flat
// array as a value of the element type itself, so a reader holding only the
// array can recover the fan-out. A Kind knows how to build that marker for a
// given element type and how to read it back.
//
// Two families are provided:
//
//   - Scalar: any numeric type; the count is a checked numeric cast.
//   - Pair and Triple: tuple-like structs of numeric fields; every field
//     carries the count so markers are built consistently across fields.
//
// Custom element types implement Kind directly.
package element
