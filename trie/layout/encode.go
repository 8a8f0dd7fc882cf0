package layout

import (
	"fmt"

	"github.com/joshuapare/entitytrie/internal/buf"
	"github.com/joshuapare/entitytrie/internal/format"
	"github.com/joshuapare/entitytrie/trie"
)

// unassigned marks a node index with no address yet.
const unassigned = -1

// Relocation is a 2-byte little-endian field at At that must receive the
// address of node Target.
type Relocation struct {
	Target int
	At     int
}

// Layout is the serialized trie plus the bookkeeping used to produce it.
type Layout struct {
	// Data is the blob. Pointer fields are zero until Resolve.
	Data []byte
	// Addresses maps node index to byte offset.
	Addresses []int
	// Shapes maps node index to its child encoding.
	Shapes []Shape
	// Relocations lists every pointer field in emission order.
	Relocations []Relocation

	resolved bool
}

// Encode lays out nodes, which must be the result of trie.Preorder, into a
// single buffer. Child pointers are left as zero placeholders and recorded as
// relocations; call Resolve to patch them.
func Encode(nodes []*trie.Node, opts Options) (*Layout, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	l := &Layout{
		Addresses: make([]int, len(nodes)),
		Shapes:    make([]Shape, len(nodes)),
	}
	for i := range l.Addresses {
		l.Addresses[i] = unassigned
	}

	for i, n := range nodes {
		if n.Index != i {
			return nil, fmt.Errorf("node at position %d: %w (index %d)", i, ErrIndexMismatch, n.Index)
		}
		shape, err := Classify(n, opts.DenseThreshold)
		if err != nil {
			return nil, err
		}
		l.Shapes[i] = shape
		if err := l.emit(n, shape); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// emit appends one node at the end of the buffer.
func (l *Layout) emit(n *trie.Node, shape Shape) error {
	addr := len(l.Data)
	l.Addresses[n.Index] = addr

	var terminal string
	if n.IsTerminal() {
		terminal = n.Terminal
		if terminal == "" {
			return fmt.Errorf("node %d: %w", n.Index, ErrEmptyTerminal)
		}
		if len(terminal) > format.MaxTerminalLen {
			return fmt.Errorf("node %d: %w (%d bytes, max %d)",
				n.Index, ErrTerminalTooLong, len(terminal), format.MaxTerminalLen)
		}
	}

	nextOff := format.HeaderSize + len(terminal)
	pad := format.PadFor(addr, nextOff)
	nextOff += pad

	l.Data = append(l.Data, uint8(len(terminal)), shape.Discriminant(), uint8(nextOff))
	l.Data = append(l.Data, terminal...)

	switch s := shape.(type) {
	case Leaf:
		// The children region is empty, so the pad byte is not written.
	case Inline:
		l.pad(pad)
		l.placeholder(s.Target)
		l.Data = append(l.Data, s.Label...)
	case Sparse:
		l.pad(pad)
		for _, e := range s.Edges {
			l.Data = append(l.Data, e.Byte, 0)
			l.placeholder(e.Target)
		}
	case Dense:
		l.pad(pad)
		base := len(l.Data)
		l.Data = append(l.Data, make([]byte, format.DenseTableSize)...)
		for _, e := range s.Edges {
			l.Relocations = append(l.Relocations, Relocation{
				Target: e.Target.Index,
				At:     base + e.Slot*format.PointerSize,
			})
		}
	default:
		return fmt.Errorf("node %d: unknown shape %T", n.Index, shape)
	}
	return nil
}

func (l *Layout) pad(n int) {
	for i := 0; i < n; i++ {
		l.Data = append(l.Data, 0)
	}
}

// placeholder reserves a zero pointer at the end of the buffer for target.
func (l *Layout) placeholder(target *trie.Node) {
	l.Relocations = append(l.Relocations, Relocation{Target: target.Index, At: len(l.Data)})
	l.Data = buf.AppendU16LE(l.Data, 0)
}

// Resolve patches every relocation with its target's address. It requires
// every node to have been encoded and may run only once.
func (l *Layout) Resolve() error {
	if l.resolved {
		return ErrAlreadyResolved
	}
	for _, r := range l.Relocations {
		if r.Target < 0 || r.Target >= len(l.Addresses) || l.Addresses[r.Target] == unassigned {
			return fmt.Errorf("relocation @0x%X -> node %d: %w", r.At, r.Target, ErrUnresolved)
		}
	}

	patched := make(map[int]struct{}, len(l.Relocations))
	for _, r := range l.Relocations {
		if _, dup := patched[r.At]; dup {
			return fmt.Errorf("relocation @0x%X: %w", r.At, ErrPatchTwice)
		}
		patched[r.At] = struct{}{}

		addr := l.Addresses[r.Target]
		if addr > format.MaxAddress {
			return fmt.Errorf("relocation @0x%X -> node %d at 0x%X: %w",
				r.At, r.Target, addr, ErrAddressOverflow)
		}
		if !buf.PutU16LE(l.Data, r.At, uint16(addr)) {
			return fmt.Errorf("relocation @0x%X: %w", r.At, format.ErrTruncated)
		}
	}
	l.resolved = true
	return nil
}

// Resolved reports whether Resolve has completed.
func (l *Layout) Resolved() bool {
	return l.resolved
}
