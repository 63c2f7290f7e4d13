// Package tree provides the in-memory tree that flat encodings decode into,
// and the capability interface encoders read source trees through.
//
// Any tree implementation can be encoded as long as it exposes a Source:
// its root, a node's value, a node's direct children in stable order and a
// node's child count. Node implements the interface through NodeSource, and
// FuncSource adapts arbitrary external trees from plain functions.
package tree
