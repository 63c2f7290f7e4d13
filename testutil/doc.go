// Package testutil provides testing utilities for flattree.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic random tree generator and a naive reference
// path query to check flat encodings against.
//
// # Random Trees
//
//	rng := testutil.NewRNG(seed)
//	root := rng.Tree(testutil.TreeShape{Nodes: 100, MaxFanout: 4, ValueRange: 8})
//
// # Reference Queries
//
//	want, ok := testutil.ChildrenByPath(root, path)
package testutil
