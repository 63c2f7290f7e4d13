package tree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Print renders the tree rooted at n as an indented ASCII tree.
func Print[T comparable](n *Node[T]) string {
	if n == nil {
		return ""
	}
	out := treeprint.NewWithRoot(fmt.Sprint(n.Value))
	addBranches(out, n)
	return out.String()
}

func addBranches[T comparable](branch treeprint.Tree, n *Node[T]) {
	for _, child := range n.Children {
		if len(child.Children) == 0 {
			branch.AddNode(fmt.Sprint(child.Value))
			continue
		}
		addBranches(branch.AddBranch(fmt.Sprint(child.Value)), child)
	}
}
