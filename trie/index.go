package trie

// Preorder numbers n and its descendants in preorder (n = 0, children in
// stored order) and returns them in that order.
func Preorder(n *Node) []*Node {
	ix := indexer{}
	ix.visit(n)
	return ix.nodes
}

type indexer struct {
	next  int
	nodes []*Node
}

func (ix *indexer) visit(n *Node) {
	n.Index = ix.next
	ix.next++
	ix.nodes = append(ix.nodes, n)
	for _, child := range n.children {
		ix.visit(child)
	}
}
