package trie

import (
	"fmt"

	"github.com/joshuapare/entitytrie/trie/source"
)

// Build inserts every entry of table, keyed by its name without the sigil,
// into a fresh uncompacted trie. Every edge of the result is one byte.
func Build(table source.Table) (*Node, error) {
	root := NewRoot()
	for _, e := range table {
		if err := root.Insert(e.Key(), e.Value); err != nil {
			return nil, fmt.Errorf("insert %q: %w", e.Name, err)
		}
	}
	return root, nil
}

// Insert adds key with value below n, creating one node per byte.
func (n *Node) Insert(key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	cur := n
	for i := 0; i < len(key); i++ {
		next := cur.Child(key[i])
		if next == nil {
			next = cur.AddChild(key[i : i+1])
		}
		cur = next
	}
	return cur.SetTerminal(value)
}
