package layout

import (
	"fmt"

	"github.com/joshuapare/entitytrie/internal/format"
	"github.com/joshuapare/entitytrie/trie"
)

// Shape is the child encoding chosen for one node. It is one of Leaf,
// Inline, Sparse or Dense.
type Shape interface {
	Kind() format.Kind
	// Discriminant is the next_len byte stored in the node header.
	Discriminant() uint8
	// Size is the number of bytes the children region occupies.
	Size() int
}

// Edge is a one-byte branch to a child.
type Edge struct {
	Byte   byte
	Target *trie.Node
}

// Leaf has no children region.
type Leaf struct{}

func (Leaf) Kind() format.Kind { return format.KindLeaf }
func (Leaf) Discriminant() uint8 { return format.LeafDiscriminant }
func (Leaf) Size() int { return 0 }

// Inline is a single compacted edge: a pointer followed by the label bytes.
type Inline struct {
	Label  string
	Target *trie.Node
}

func (Inline) Kind() format.Kind { return format.KindInline }
func (s Inline) Discriminant() uint8 { return format.InlineFlag | uint8(len(s.Label)) }
func (s Inline) Size() int { return format.PointerSize + len(s.Label) }

// Sparse is a list of (byte, reserved, pointer) entries scanned linearly.
type Sparse struct {
	Edges []Edge
}

func (Sparse) Kind() format.Kind { return format.KindSparse }
func (s Sparse) Discriminant() uint8 { return uint8(len(s.Edges)) }
func (s Sparse) Size() int { return len(s.Edges) * format.SparseEntrySize }

// DenseEdge is a child placed in a dense table slot.
type DenseEdge struct {
	Slot   int
	Target *trie.Node
}

// Dense is a pointer table indexed by byte - '1'.
type Dense struct {
	Edges []DenseEdge
}

func (Dense) Kind() format.Kind { return format.KindDense }
func (Dense) Discriminant() uint8 { return format.DenseTableRange }
func (Dense) Size() int { return format.DenseTableSize }

// Classify picks the shape for n's children. denseThreshold is the child
// count at which the dense table is used; 0 disables dense tables.
func Classify(n *trie.Node, denseThreshold int) (Shape, error) {
	children := n.Children()
	switch {
	case len(children) == 0:
		return Leaf{}, nil

	case len(children) == 1:
		child := children[0]
		if len(child.Label) > format.MaxInlineLen {
			return nil, fmt.Errorf("node %d edge %q: %w (%d bytes)",
				n.Index, child.Label, ErrInlineTooLong, len(child.Label))
		}
		return Inline{Label: child.Label, Target: child}, nil

	case denseThreshold > 0 && len(children) >= denseThreshold:
		edges := make([]DenseEdge, 0, len(children))
		for _, child := range children {
			if len(child.Label) != 1 {
				return nil, fmt.Errorf("node %d edge %q: %w", n.Index, child.Label, ErrLabelTooLong)
			}
			slot, ok := format.DenseIndex(child.Label[0])
			if !ok {
				return nil, fmt.Errorf("node %d edge %q: %w (slot %d, range [0,%d))",
					n.Index, child.Label, ErrDenseSlot,
					int(child.Label[0])-format.DenseTableBase, format.DenseTableRange)
			}
			edges = append(edges, DenseEdge{Slot: slot, Target: child})
		}
		return Dense{Edges: edges}, nil

	default:
		if len(children) == format.DenseTableRange || len(children) > format.InlineLenMask {
			return nil, fmt.Errorf("node %d: %w (%d children)", n.Index, ErrSparseCount, len(children))
		}
		edges := make([]Edge, 0, len(children))
		for _, child := range children {
			if len(child.Label) != 1 {
				return nil, fmt.Errorf("node %d edge %q: %w", n.Index, child.Label, ErrLabelTooLong)
			}
			edges = append(edges, Edge{Byte: child.Label[0], Target: child})
		}
		return Sparse{Edges: edges}, nil
	}
}
