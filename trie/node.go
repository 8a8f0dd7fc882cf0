package trie

// Node is one trie node. Label is the edge from the parent into this node:
// a single byte after Build, possibly several after Compact. The root has an
// empty label.
type Node struct {
	Index    int
	Label    string
	Terminal string
	terminal bool
	children []*Node
}

// NewRoot returns an empty root node.
func NewRoot() *Node {
	return &Node{}
}

// IsTerminal reports whether some key ends at n.
func (n *Node) IsTerminal() bool {
	return n.terminal
}

// SetTerminal marks n as the end of a key. It fails if n is already terminal.
func (n *Node) SetTerminal(value string) error {
	if n.terminal {
		return ErrDuplicateTerminal
	}
	n.Terminal = value
	n.terminal = true
	return nil
}

// Children returns the children in insertion order. The slice must not be
// modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Len returns the number of children.
func (n *Node) Len() int {
	return len(n.children)
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// Child returns the child whose label starts with c.
func (n *Node) Child(c byte) *Node {
	for _, child := range n.children {
		if child.Label[0] == c {
			return child
		}
	}
	return nil
}

// AddChild creates and appends a child reached over label.
func (n *Node) AddChild(label string) *Node {
	child := &Node{Label: label}
	n.children = append(n.children, child)
	return child
}

// Walk visits n and its descendants in preorder. Returning false from fn
// skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// Find follows key from n exactly along the edges and returns the node where
// it ends, or nil when key leaves the trie or stops inside an edge.
func (n *Node) Find(key string) *Node {
	cur := n
	for key != "" {
		next := cur.Child(key[0])
		if next == nil || len(key) < len(next.Label) || key[:len(next.Label)] != next.Label {
			return nil
		}
		key = key[len(next.Label):]
		cur = next
	}
	return cur
}
