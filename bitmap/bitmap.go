package bitmap

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/flattree/core"
	"github.com/hupe1980/flattree/tree"
)

// maxBits is the hierarchy length addressable with 32-bit positions.
const maxBits = uint64(math.MaxUint32) + 1

// Tree is an immutable bitmap encoding. Levels and value counts are computed
// once at construction. Slices returned by accessors alias internal storage
// unless documented otherwise.
type Tree[T comparable] struct {
	hierarchy      *roaring.Bitmap
	length         uint64
	data           []T
	maxChildren    uint64
	levels         []uint64
	valuesPerLevel []uint64
}

// Slot is one child slot of a node: Ok is false for an empty slot.
type Slot[T comparable] struct {
	Value T
	Ok    bool
}

// Encode flattens src into a bitmap Tree.
func Encode[N any, T comparable](src tree.Source[N, T]) (*Tree[T], error) {
	m := uint64(tree.MaxChildren(src))

	rb := roaring.New()
	rb.Add(0)
	root := src.Root()
	data := []T{src.Value(root)}
	pos := uint64(1)

	var tooLarge error
	tree.BreadthFirst(src, func(n N, _ int) bool {
		if pos+m > maxBits {
			tooLarge = fmt.Errorf("%w: hierarchy needs more than %d bits", core.ErrTooLarge, maxBits)
			return false
		}
		children := src.Children(n)
		for i, child := range children {
			rb.Add(uint32(pos + uint64(i)))
			data = append(data, src.Value(child))
		}
		pos += m
		return true
	})
	if tooLarge != nil {
		return nil, core.NewConfigError("tree size", tooLarge)
	}

	return newTree(rb, pos, data, m)
}

// FromParts rebuilds a Tree from an explicit bit sequence.
func FromParts[T comparable](hierarchy []bool, data []T, maxChildren uint64) (*Tree[T], error) {
	if uint64(len(hierarchy)) > maxBits {
		return nil, fmt.Errorf("%w: %d hierarchy bits", core.ErrCorrupt, len(hierarchy))
	}
	rb := roaring.New()
	for i, set := range hierarchy {
		if set {
			rb.Add(uint32(i))
		}
	}
	return FromBitmap(rb, uint64(len(hierarchy)), data, maxChildren)
}

// FromBitmap rebuilds a Tree from a roaring bitmap of set positions and the
// hierarchy bit length. The bitmap is owned by the returned Tree.
func FromBitmap[T comparable](rb *roaring.Bitmap, length uint64, data []T, maxChildren uint64) (*Tree[T], error) {
	switch {
	case length == 0 || length > maxBits:
		return nil, fmt.Errorf("%w: hierarchy length %d", core.ErrCorrupt, length)
	case !rb.Contains(0):
		return nil, fmt.Errorf("%w: root bit not set", core.ErrCorrupt)
	case uint64(rb.Maximum()) >= length:
		return nil, fmt.Errorf("%w: bit %d set beyond length %d", core.ErrCorrupt, rb.Maximum(), length)
	case rb.GetCardinality() != uint64(len(data)):
		return nil, fmt.Errorf("%w: %d set bits for %d values", core.ErrCorrupt, rb.GetCardinality(), len(data))
	}
	return newTree(rb, length, data, maxChildren)
}

func newTree[T comparable](rb *roaring.Bitmap, length uint64, data []T, maxChildren uint64) (*Tree[T], error) {
	t := &Tree[T]{
		hierarchy:   rb,
		length:      length,
		data:        data,
		maxChildren: maxChildren,
	}
	if err := t.calculateLevels(); err != nil {
		return nil, err
	}
	t.valuesPerLevel = make([]uint64, len(t.levels))
	for i, end := range t.levels {
		t.valuesPerLevel[i] = rb.Rank(uint32(end - 1))
	}
	return t, nil
}

// calculateLevels walks the hierarchy level by level: every level holds
// MaxChildren bits per set bit of the previous level.
func (t *Tree[T]) calculateLevels() error {
	t.levels = []uint64{1}
	setBits := uint64(1)
	start := uint64(1)
	for start < t.length {
		if t.maxChildren != 0 && setBits > (t.length-start)/t.maxChildren {
			return fmt.Errorf("%w: level %d exceeds hierarchy length %d", core.ErrCorrupt, len(t.levels), t.length)
		}
		size := setBits * t.maxChildren
		if size == 0 {
			break
		}
		end := start + size
		t.levels = append(t.levels, end)
		setBits = t.setBits(start, end)
		start = end
	}
	if start != t.length {
		return fmt.Errorf("%w: levels end at %d, hierarchy has %d bits", core.ErrCorrupt, start, t.length)
	}
	return nil
}

// setBits counts the set bits in [from, to).
func (t *Tree[T]) setBits(from, to uint64) uint64 {
	if to <= from {
		return 0
	}
	n := t.hierarchy.Rank(uint32(to - 1))
	if from > 0 {
		n -= t.hierarchy.Rank(uint32(from - 1))
	}
	return n
}

// Hierarchy returns a copy of the existence bits.
func (t *Tree[T]) Hierarchy() []bool {
	bits := make([]bool, t.length)
	it := t.hierarchy.Iterator()
	for it.HasNext() {
		bits[it.Next()] = true
	}
	return bits
}

// Bitmap returns a copy of the set hierarchy positions.
func (t *Tree[T]) Bitmap() *roaring.Bitmap { return t.hierarchy.Clone() }

// HierarchyLen returns the number of hierarchy bits.
func (t *Tree[T]) HierarchyLen() uint64 { return t.length }

// Data returns the packed breadth-first node values.
func (t *Tree[T]) Data() []T { return t.data }

// Variant returns core.VariantBitmap.
func (t *Tree[T]) Variant() core.Variant { return core.VariantBitmap }

// MaxChildren returns the number of bits reserved per node.
func (t *Tree[T]) MaxChildren() uint64 { return t.maxChildren }

// NodeCount returns the number of real nodes.
func (t *Tree[T]) NodeCount() int { return len(t.data) }

// Levels returns the cumulative level end positions in the hierarchy.
func (t *Tree[T]) Levels() []uint64 { return t.levels }

// ValuesPerLevel returns the number of real values up to and including each level.
func (t *Tree[T]) ValuesPerLevel() []uint64 { return t.valuesPerLevel }

// MarkerForEmpty reports the value of an empty hierarchy slot.
func (t *Tree[T]) MarkerForEmpty() bool { return false }

// LevelWithOptionalValues returns the child slots of the node-th real node of
// level-1. Level 0 has a single slot, the root.
func (t *Tree[T]) LevelWithOptionalValues(level, node int) ([]Slot[T], error) {
	if level < 0 || level >= len(t.levels) {
		return nil, core.NewOutOfRange("level", level, len(t.levels))
	}
	if level == 0 {
		if node != 0 {
			return nil, core.NewOutOfRange("node", node, 1)
		}
		return []Slot[T]{{Value: t.data[0], Ok: true}}, nil
	}

	start, end := t.levels[level-1], t.levels[level]
	parents := int((end - start) / t.maxChildren)
	if node < 0 || node >= parents {
		return nil, core.NewOutOfRange("node", node, parents)
	}

	blockStart := start + uint64(node)*t.maxChildren
	idx := t.valuesPerLevel[level-1] + t.setBits(start, blockStart)

	slots := make([]Slot[T], t.maxChildren)
	for j := range slots {
		if t.hierarchy.Contains(uint32(blockStart + uint64(j))) {
			slots[j] = Slot[T]{Value: t.data[idx], Ok: true}
			idx++
		}
	}
	return slots, nil
}

// Decode rebuilds the pointer-based tree.
func (t *Tree[T]) Decode() *tree.Node[T] {
	root := tree.New(t.data[0])
	parents := []*tree.Node[T]{root}
	idx := 1

	for level := 1; level < len(t.levels); level++ {
		start, end := t.levels[level-1], t.levels[level]
		next := make([]*tree.Node[T], 0, int(t.setBits(start, end)))
		for p := start; p < end; p++ {
			if !t.hierarchy.Contains(uint32(p)) {
				continue
			}
			next = append(next, parents[(p-start)/t.maxChildren].Add(t.data[idx]))
			idx++
		}
		parents = next
	}

	return root
}
