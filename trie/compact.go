package trie

// Compact performs radix compression below n: as long as a node's only child
// is non-terminal and itself has exactly one child, the grandchild replaces
// the child and inherits the concatenated label. Multi-way branches and
// terminal nodes are left untouched, so after Compact the children of a node
// with two or more children still have one-byte labels.
func Compact(n *Node) {
	if len(n.children) == 1 {
		for {
			child := n.children[0]
			if child.terminal || len(child.children) != 1 {
				break
			}
			grandchild := child.children[0]
			grandchild.Label = child.Label + grandchild.Label
			n.children[0] = grandchild
		}
	}
	for _, child := range n.children {
		Compact(child)
	}
}
