// Package verify checks compiled trie blobs against the invariants of the
// wire format. It is used by the compiler before any output is written, by
// the verify command, and by tests.
package verify

import (
	"fmt"
	"unicode/utf8"

	"github.com/joshuapare/entitytrie/internal/format"
	"github.com/joshuapare/entitytrie/trie/lookup"
	"github.com/joshuapare/entitytrie/trie/source"
)

// ValidationError describes the first invariant a blob violates.
type ValidationError struct {
	Type    string
	Message string
	Offset  int
	Details map[string]interface{}
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset 0x%X: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Report summarizes a successful structural walk.
type Report struct {
	Nodes     int
	Terminals int
	Edges     int
	ByKind    map[format.Kind]int
}

// AllInvariants validates every node reachable from the root and returns the
// first violation, or nil.
func AllInvariants(data []byte) error {
	_, err := Walk(data)
	return err
}

// Walk validates every node reachable from the root:
//   - the header, terminal and children region lie inside the blob
//   - terminals are valid UTF-8
//   - next_off is header + terminal plus at most one pad byte
//   - children regions of non-leaf nodes start at even offsets
//   - inline labels are 1..127 bytes
//   - pointers are non-zero, inside the blob and point forward
//   - sparse reserved bytes are zero and sparse labels are unique
func Walk(data []byte) (*Report, error) {
	if len(data) < format.HeaderSize {
		return nil, &ValidationError{
			Type:    "Blob",
			Message: fmt.Sprintf("too small: %d bytes (need %d)", len(data), format.HeaderSize),
			Offset:  -1,
		}
	}
	r := &Report{ByKind: make(map[format.Kind]int)}
	seen := make(map[int]bool)
	stack := []int{format.RootAddress}
	for len(stack) > 0 {
		off := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[off] {
			return nil, &ValidationError{Type: "Pointer", Message: "node reached twice", Offset: off}
		}
		seen[off] = true

		n, err := format.DecodeNode(data, off)
		if err != nil {
			return nil, &ValidationError{Type: "Node", Message: err.Error(), Offset: off}
		}
		if err := checkNode(data, n); err != nil {
			return nil, err
		}
		targets, err := childTargets(data, n)
		if err != nil {
			return nil, err
		}

		r.Nodes++
		r.ByKind[n.Kind()]++
		r.Edges += len(targets)
		if n.TerminalLen > 0 {
			r.Terminals++
		}
		for i := len(targets) - 1; i >= 0; i-- {
			stack = append(stack, targets[i])
		}
	}
	return r, nil
}

func checkNode(data []byte, n format.Node) error {
	if !utf8.Valid(n.Terminal) {
		return &ValidationError{Type: "Terminal", Message: "terminal is not valid UTF-8", Offset: n.Offset}
	}
	if n.Kind() == format.KindLeaf {
		return nil
	}
	if !format.IsAligned(n.ChildrenOffset()) {
		return &ValidationError{
			Type:    "Alignment",
			Message: fmt.Sprintf("%s children region at odd offset 0x%X", n.Kind(), n.ChildrenOffset()),
			Offset:  n.Offset,
		}
	}
	if n.Kind() == format.KindInline && (n.InlineLen() < 1 || n.InlineLen() > format.MaxInlineLen) {
		return &ValidationError{
			Type:    "Inline",
			Message: fmt.Sprintf("inline label length %d outside 1..%d", n.InlineLen(), format.MaxInlineLen),
			Offset:  n.Offset,
		}
	}
	return nil
}

func childTargets(data []byte, n format.Node) ([]int, error) {
	var raw []uint16
	switch n.Kind() {
	case format.KindInline:
		target, _ := n.InlineTarget(data)
		raw = append(raw, target)
	case format.KindSparse:
		labels := make(map[byte]bool, n.NextLen)
		for i := 0; i < int(n.NextLen); i++ {
			c, target := n.SparseEntry(data, i)
			if data[n.ChildrenOffset()+i*format.SparseEntrySize+format.SparseReservedOffset] != 0 {
				return nil, &ValidationError{
					Type:    "Sparse",
					Message: fmt.Sprintf("entry %d reserved byte is not zero", i),
					Offset:  n.Offset,
				}
			}
			if labels[c] {
				return nil, &ValidationError{
					Type:    "Sparse",
					Message: fmt.Sprintf("label %q appears twice", c),
					Offset:  n.Offset,
				}
			}
			labels[c] = true
			raw = append(raw, target)
		}
	case format.KindDense:
		for slot := 0; slot < format.DenseTableRange; slot++ {
			if target := n.DenseSlot(data, slot); target != 0 {
				raw = append(raw, target)
			}
		}
		if len(raw) == 0 {
			return nil, &ValidationError{Type: "Dense", Message: "dense table has no children", Offset: n.Offset}
		}
	}

	out := make([]int, 0, len(raw))
	for _, target := range raw {
		if int(target) <= n.Offset || int(target) >= len(data) {
			return nil, &ValidationError{
				Type:    "Pointer",
				Message: fmt.Sprintf("%s child pointer 0x%X outside (0x%X, 0x%X)", n.Kind(), target, n.Offset, len(data)),
				Offset:  n.Offset,
				Details: map[string]interface{}{"target": target},
			}
		}
		out = append(out, int(target))
	}
	return out, nil
}

// RoundTrip checks that every key of table decodes to its value and consumes
// the whole key.
func RoundTrip(data []byte, table source.Table) error {
	t := lookup.New(data)
	for _, e := range table {
		key := e.Key()
		got, ok := t.Consume([]byte(key))
		if !ok || got.Value != e.Value || got.Len != len(key) {
			return &ValidationError{
				Type:    "RoundTrip",
				Message: fmt.Sprintf("%q decoded to (%q, %d, %v), want (%q, %d)", key, got.Value, got.Len, ok, e.Value, len(key)),
				Offset:  -1,
				Details: map[string]interface{}{"key": key},
			}
		}
	}
	return nil
}
