package trie

import "errors"

var (
	// ErrDuplicateTerminal indicates two keys end at the same node.
	ErrDuplicateTerminal = errors.New("trie: terminal assigned twice")
	// ErrEmptyKey indicates a key with no bytes, which would make the root terminal.
	ErrEmptyKey = errors.New("trie: empty key")
)
