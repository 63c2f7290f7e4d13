// Package compact implements an offsets-based flat encoding.
//
// Node values are stored breadth-first next to a cumulative child count per
// node. There is no sentinel and no padding, so the encoding suits trees whose
// fan-out varies widely. Path queries report why a path failed through typed
// errors, and can use binary search when siblings are sorted.
package compact
