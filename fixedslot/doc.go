// Package fixedslot implements the fixed-slot flat encoding of ordered trees.
//
// Every node reserves MaxChildren slots for its children. Unused slots hold a
// caller-provided sentinel and the array ends with MaxChildren cast into the
// element type:
//
//	[root, block(node 0), block(node 1), ..., marker]
//
// Blocks appear in breadth-first node order, so the array splits into levels
// whose lengths follow from the number of real values in the previous level.
// Path queries run directly on the array without rebuilding the tree.
package fixedslot
