// Package lookup finds the longest character-reference name at the start of
// an input by walking a compiled trie blob in place.
//
// The walk never allocates and never parses the blob up front: each step
// decodes one node header and follows at most one pointer. Because names may
// be prefixes of one another ("amp" and "amp;"), the walk continues as far as
// the input allows and returns the deepest terminal it passed.
//
//	t := lookup.New(blob)
//	value, n, ok := t.Match([]byte("amp;rest"))
//	// value = "&", n = 4, ok = true
package lookup

import (
	"bytes"

	"github.com/joshuapare/entitytrie/internal/format"
)

// Match is a longest-match result: the decoded value and the number of input
// bytes it consumed.
type Match struct {
	Value string
	Len   int
}

// Trie is a read-only view over a compiled blob. It is safe for concurrent
// use.
type Trie struct {
	data  []byte
	close func() error
}

// New wraps data. data must not be modified while the Trie is in use.
func New(data []byte) *Trie {
	return &Trie{data: data}
}

// Bytes returns the underlying blob.
func (t *Trie) Bytes() []byte {
	return t.data
}

// Consume returns the longest name that prefixes input.
func (t *Trie) Consume(input []byte) (Match, bool) {
	value, n, ok := t.Match(input)
	if !ok {
		return Match{}, false
	}
	return Match{Value: string(value), Len: n}, true
}

// Consume is a convenience for New(data).Consume(input).
func Consume(data, input []byte) (Match, bool) {
	return New(data).Consume(input)
}

// Match is the allocation-free form of Consume. value aliases the blob.
func (t *Trie) Match(input []byte) (value []byte, n int, ok bool) {
	off := format.RootAddress
	consumed := 0
	for {
		node, err := format.DecodeNode(t.data, off)
		if err != nil {
			return value, n, ok
		}
		if node.TerminalLen > 0 {
			value, n, ok = node.Terminal, consumed, true
		}
		target, step := t.next(node, input[consumed:])
		if target == 0 {
			return value, n, ok
		}
		off = int(target)
		consumed += step
	}
}

// next returns the address reached from node over the start of rest and the
// number of bytes consumed, or 0 when no edge matches.
func (t *Trie) next(node format.Node, rest []byte) (uint16, int) {
	switch node.Kind() {
	case format.KindInline:
		target, label := node.InlineTarget(t.data)
		if bytes.HasPrefix(rest, label) {
			return target, len(label)
		}
	case format.KindDense:
		if len(rest) == 0 {
			return 0, 0
		}
		if slot, ok := format.DenseIndex(rest[0]); ok {
			return node.DenseSlot(t.data, slot), 1
		}
	case format.KindSparse:
		if len(rest) == 0 {
			return 0, 0
		}
		for i := 0; i < int(node.NextLen); i++ {
			if c, target := node.SparseEntry(t.data, i); c == rest[0] {
				return target, 1
			}
		}
	}
	return 0, 0
}
