// Package bitmap implements the bitmap ("lots of children") flat encoding.
//
// The tree shape is kept as a hierarchy of existence bits, one for the root
// and MaxChildren for every real node, while only real values are stored in
// a packed data array. The hierarchy is held in a roaring bitmap, so wide
// trees with sparse fan-out stay small.
//
// The data index of a set bit is recovered from the prefix sums of set bits
// per level plus a rank query inside the level.
package bitmap
