package format

import (
	"fmt"

	"github.com/joshuapare/entitytrie/internal/buf"
)

// Kind identifies the child-encoding shape of a node.
type Kind uint8

const (
	KindLeaf   Kind = iota // No children
	KindInline             // One compacted edge: pointer + label bytes
	KindSparse             // (byte, reserved, pointer) pairs
	KindDense              // Direct-indexed pointer table
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindInline:
		return "inline"
	case KindSparse:
		return "sparse"
	case KindDense:
		return "dense"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// KindOf maps a next_len discriminant to its child shape. Any value that is
// neither zero, inline-flagged nor the dense sentinel is a sparse count.
func KindOf(nextLen uint8) Kind {
	switch {
	case nextLen == LeafDiscriminant:
		return KindLeaf
	case nextLen&InlineFlag != 0:
		return KindInline
	case nextLen == DenseTableRange:
		return KindDense
	default:
		return KindSparse
	}
}

// Node is a decoded view over one node of the blob. Terminal aliases the
// underlying buffer.
//
//	Offset  Size  Field
//	0x00    1     terminal_len
//	0x01    1     next_len (discriminant)
//	0x02    1     next_off
//	0x03    n     terminal bytes (UTF-8)
//	...     0/1   pad
//	next_off      children region
type Node struct {
	Offset      int
	TerminalLen uint8
	NextLen     uint8
	NextOff     uint8
	Terminal    []byte
}

// Kind returns the node's child shape.
func (n Node) Kind() Kind {
	return KindOf(n.NextLen)
}

// ChildrenOffset returns the absolute offset of the children region.
func (n Node) ChildrenOffset() int {
	return n.Offset + int(n.NextOff)
}

// InlineLen returns the label length of an inline edge.
func (n Node) InlineLen() int {
	return int(n.NextLen & InlineLenMask)
}

// ChildrenSize returns the number of bytes the children region occupies.
func (n Node) ChildrenSize() int {
	switch n.Kind() {
	case KindInline:
		return PointerSize + n.InlineLen()
	case KindSparse:
		return int(n.NextLen) * SparseEntrySize
	case KindDense:
		return DenseTableSize
	default:
		return 0
	}
}

// DecodeNode decodes the node header at off and checks that the terminal and
// children region fit in b.
func DecodeNode(b []byte, off int) (Node, error) {
	hdr, ok := buf.Slice(b, off, HeaderSize)
	if !ok {
		return Node{}, fmt.Errorf("node @0x%X: %w (have %d, need %d)", off, ErrTruncated, len(b), off+HeaderSize)
	}
	n := Node{
		Offset:      off,
		TerminalLen: hdr[TerminalLenOffset],
		NextLen:     hdr[NextLenOffset],
		NextOff:     hdr[NextOffOffset],
	}
	if n.TerminalLen > 0 {
		term, ok := buf.Slice(b, off+TerminalOffset, int(n.TerminalLen))
		if !ok {
			return Node{}, fmt.Errorf("node @0x%X terminal: %w", off, ErrTruncated)
		}
		n.Terminal = term
	}
	if n.Kind() == KindLeaf {
		return n, nil
	}
	minOff := HeaderSize + int(n.TerminalLen)
	if int(n.NextOff) < minOff || int(n.NextOff) > minOff+PointerAlignmentMask {
		return Node{}, fmt.Errorf("node @0x%X: %w (next_off=%d, terminal_len=%d)",
			off, ErrBadNextOff, n.NextOff, n.TerminalLen)
	}
	if n.Kind() == KindInline && n.InlineLen() == 0 {
		return Node{}, fmt.Errorf("node @0x%X: %w (empty inline label)", off, ErrBadDiscriminant)
	}
	if _, err := buf.CheckListBounds(len(b), n.ChildrenOffset(), 1, n.ChildrenSize()); err != nil {
		return Node{}, fmt.Errorf("node @0x%X %s children: %w: %w", off, n.Kind(), ErrTruncated, err)
	}
	return n, nil
}

// InlineTarget returns the target address and label of an inline edge.
func (n Node) InlineTarget(b []byte) (uint16, []byte) {
	at := n.ChildrenOffset()
	return buf.U16LE(b[at:]), b[at+InlineLabelOffset : at+InlineLabelOffset+n.InlineLen()]
}

// SparseEntry returns the label byte and target address of sparse entry i.
func (n Node) SparseEntry(b []byte, i int) (byte, uint16) {
	at := n.ChildrenOffset() + i*SparseEntrySize
	return b[at+SparseLabelOffset], buf.U16LE(b[at+SparseTargetOffset:])
}

// DenseSlot returns the target address stored in dense slot i, 0 if empty.
func (n Node) DenseSlot(b []byte, i int) uint16 {
	return buf.U16LE(b[n.ChildrenOffset()+i*PointerSize:])
}

// DenseIndex maps an input byte to its dense slot.
func DenseIndex(c byte) (int, bool) {
	if c < DenseTableBase {
		return 0, false
	}
	i := int(c - DenseTableBase)
	if i >= DenseTableRange {
		return 0, false
	}
	return i, true
}

// Edge is one outgoing edge of a decoded node.
type Edge struct {
	Label  []byte // Aliases the blob for inline edges
	Target uint16
}

// Edges lists the non-empty outgoing edges of n in stored order. Dense
// labels are the byte each slot stands for.
func (n Node) Edges(b []byte) []Edge {
	switch n.Kind() {
	case KindInline:
		target, label := n.InlineTarget(b)
		return []Edge{{Label: label, Target: target}}
	case KindSparse:
		edges := make([]Edge, 0, n.NextLen)
		for i := 0; i < int(n.NextLen); i++ {
			c, target := n.SparseEntry(b, i)
			edges = append(edges, Edge{Label: []byte{c}, Target: target})
		}
		return edges
	case KindDense:
		var edges []Edge
		for slot := 0; slot < DenseTableRange; slot++ {
			if target := n.DenseSlot(b, slot); target != 0 {
				edges = append(edges, Edge{Label: []byte{byte(DenseTableBase + slot)}, Target: target})
			}
		}
		return edges
	default:
		return nil
	}
}
