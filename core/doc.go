// Package core holds the types shared by every flattree encoding: the error
// kinds returned by encoders and queries, the Variant enum and the Span type
// used to describe breadth-first levels inside a flat array.
package core
