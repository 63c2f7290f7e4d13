package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample builds
//
//	0
//	├── 1
//	│   ├── 3
//	│   └── 4
//	└── 2
//	    ├── 5
//	    └── 6
//	        └── 7
func sample() *Node[int] {
	root := New(0)
	one := root.Add(1)
	two := root.Add(2)
	one.Add(3)
	one.Add(4)
	two.Add(5)
	two.Add(6).Add(7)
	return root
}

func TestNode(t *testing.T) {
	root := sample()

	assert.Equal(t, 2, root.Len())
	assert.Equal(t, 8, root.Size())
	assert.Equal(t, 4, root.Depth())
	assert.Equal(t, 2, root.Child(1).Value)
	assert.Nil(t, root.Child(2))
	assert.True(t, root.Contains(7))
	assert.False(t, root.Contains(8))
}

func TestNode_Equal(t *testing.T) {
	assert.True(t, sample().Equal(sample()))

	other := sample()
	other.Child(1).Child(1).Add(8)
	assert.False(t, sample().Equal(other))

	swapped := New(0)
	swapped.AddNode(sample().Child(1)).AddNode(sample().Child(0))
	assert.False(t, sample().Equal(swapped))

	var nilNode *Node[int]
	assert.True(t, nilNode.Equal(nil))
	assert.False(t, nilNode.Equal(New(0)))
}

func TestBreadthFirst(t *testing.T) {
	src := FromNode(sample())

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, Values[*Node[int], int](src))
	assert.Equal(t, 2, MaxChildren[*Node[int], int](src))

	var depths []int
	BreadthFirst[*Node[int], int](src, func(_ *Node[int], d int) bool {
		depths = append(depths, d)
		return true
	})
	assert.Equal(t, []int{0, 1, 1, 2, 2, 2, 2, 3}, depths)

	t.Run("stop early", func(t *testing.T) {
		visited := 0
		BreadthFirst[*Node[int], int](src, func(*Node[int], int) bool {
			visited++
			return visited < 3
		})
		assert.Equal(t, 3, visited)
	})
}

type external struct {
	label string
	kids  []*external
}

func TestFuncSource(t *testing.T) {
	root := &external{label: "a", kids: []*external{{label: "b"}, {label: "c", kids: []*external{{label: "d"}}}}}
	src := FuncSource[*external, string]{
		RootNode:   root,
		ValueFn:    func(n *external) string { return n.label },
		ChildrenFn: func(n *external) []*external { return n.kids },
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, Values[*external, string](src))
	assert.Equal(t, 2, src.ChildCount(root))

	src.CountFn = func(*external) int { return 42 }
	assert.Equal(t, 42, src.ChildCount(root))
}

func TestPrint(t *testing.T) {
	out := Print(sample())
	require.NotEmpty(t, out)
	assert.Contains(t, out, "0\n")
	for _, label := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		assert.Contains(t, out, label)
	}
	assert.Empty(t, Print[int](nil))
}
