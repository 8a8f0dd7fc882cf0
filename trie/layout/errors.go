package layout

import "errors"

// Encoding-contract violations. Each one means the key set no longer fits the
// assumptions of the wire format, so compilation stops instead of emitting a
// malformed blob.
var (
	// ErrInlineTooLong indicates a compacted edge longer than 127 bytes.
	ErrInlineTooLong = errors.New("layout: inline label exceeds 127 bytes")
	// ErrDenseSlot indicates a dense child whose byte lies outside '1'..'z'.
	ErrDenseSlot = errors.New("layout: dense slot out of range")
	// ErrLabelTooLong indicates a sparse or dense child with a multi-byte label.
	ErrLabelTooLong = errors.New("layout: branch label longer than one byte")
	// ErrSparseCount indicates a child count that cannot be stored as a sparse list.
	ErrSparseCount = errors.New("layout: child count not representable as sparse list")
	// ErrTerminalTooLong indicates a terminal value that overflows next_off.
	ErrTerminalTooLong = errors.New("layout: terminal value too long")
	// ErrEmptyTerminal indicates a terminal with no bytes, indistinguishable from none.
	ErrEmptyTerminal = errors.New("layout: empty terminal value")
	// ErrAddressOverflow indicates a pointer target beyond the 16-bit address space.
	ErrAddressOverflow = errors.New("layout: node address exceeds 16 bits")
	// ErrIndexMismatch indicates nodes were not passed in preorder index order.
	ErrIndexMismatch = errors.New("layout: node index does not match position")
	// ErrUnresolved indicates a relocation whose target was never encoded.
	ErrUnresolved = errors.New("layout: relocation target has no address")
	// ErrPatchTwice indicates a placeholder patched more than once.
	ErrPatchTwice = errors.New("layout: placeholder already patched")
	// ErrAlreadyResolved indicates Resolve was called twice.
	ErrAlreadyResolved = errors.New("layout: relocations already resolved")
	// ErrBadOptions indicates invalid encoder options.
	ErrBadOptions = errors.New("layout: invalid options")
)
