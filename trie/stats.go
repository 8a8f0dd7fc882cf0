package trie

// Stats summarizes the shape of a trie.
type Stats struct {
	Nodes     int
	Terminals int
	Leaves    int
	MaxDepth  int // Edges from the root to the deepest node
	MaxFanout int
}

// Collect computes Stats for the trie rooted at n.
func Collect(n *Node) Stats {
	var s Stats
	collect(n, 0, &s)
	return s
}

func collect(n *Node, depth int, s *Stats) {
	s.Nodes++
	if n.terminal {
		s.Terminals++
	}
	if len(n.children) == 0 {
		s.Leaves++
	}
	s.MaxDepth = max(s.MaxDepth, depth)
	s.MaxFanout = max(s.MaxFanout, len(n.children))
	for _, child := range n.children {
		collect(child, depth+1, s)
	}
}
