// Package format houses the low-level layout of the character-reference trie
// blob: node header offsets, child-shape discriminants and the fixed dense
// table range. It is shared by the encoder, the lookup routine and the
// verifier so all three agree on a single definition of the wire format.
package format

const (
	// HeaderSize is the size of the fixed node header in bytes.
	// Layout:
	//   0x00  terminal_len (u8)
	//   0x01  next_len     (u8) child-shape discriminant
	//   0x02  next_off     (u8) offset from node start to children region
	HeaderSize = 3

	TerminalLenOffset = 0x00
	NextLenOffset     = 0x01
	NextOffOffset     = 0x02

	// TerminalOffset is where terminal value bytes start within a node.
	TerminalOffset = HeaderSize

	// MaxTerminalLen keeps next_off (header + terminal + pad) within a byte.
	MaxTerminalLen = 0xFF - HeaderSize - 1

	// PointerSize is the size of a little-endian node address.
	PointerSize = 2

	// MaxAddress is the highest node address a pointer can hold.
	MaxAddress = 0xFFFF

	// PointerAlignment is the required alignment of every children region.
	PointerAlignment = 2

	// PointerAlignmentMask is PointerAlignment - 1.
	PointerAlignmentMask = PointerAlignment - 1
)

// Child-shape discriminants stored in next_len.
const (
	// LeafDiscriminant marks a node without children.
	LeafDiscriminant = 0x00

	// InlineFlag marks a single compacted edge; the low 7 bits hold the label
	// length.
	InlineFlag = 0x80

	// InlineLenMask extracts the label length from an inline discriminant.
	InlineLenMask = 0x7F

	// MaxInlineLen is the longest label an inline edge can carry.
	MaxInlineLen = InlineLenMask

	// MinSparseCount is the smallest child count stored as a sparse list.
	MinSparseCount = 2

	// MaxSparseCount is the largest child count stored as a sparse list when
	// dense tables are enabled.
	MaxSparseCount = 7

	// DefaultDenseThreshold is the child count at which the dense table
	// replaces the sparse list.
	DefaultDenseThreshold = MaxSparseCount + 1

	// DenseTableRange is both the dense discriminant and the number of slots
	// in a dense table.
	DenseTableRange = 74

	// DenseTableBase is the byte value mapped to slot 0. Slots cover
	// '1' (0x31) through 'z' (0x7A).
	DenseTableBase = '1'

	// DenseTableSize is the size of the dense pointer table in bytes.
	DenseTableSize = DenseTableRange * PointerSize
)

const (
	// SparseEntrySize is the size of one sparse list entry.
	// Layout:
	//   0x00  label byte
	//   0x01  reserved (zero)
	//   0x02  target address (u16 LE)
	SparseEntrySize = 4

	SparseLabelOffset    = 0x00
	SparseReservedOffset = 0x01
	SparseTargetOffset   = 0x02

	// InlineLabelOffset is where the label bytes follow the inline pointer.
	InlineLabelOffset = PointerSize
)

// RootAddress is the address of the root node. No pointer ever targets it,
// so a zero pointer always means "absent".
const RootAddress = 0
