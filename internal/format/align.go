package format

// Align2 returns n aligned up to the next 2-byte boundary.
//
// Example:
//
//	Align2(0) = 0
//	Align2(3) = 4
//	Align2(4) = 4
func Align2(n int) int {
	return (n + PointerAlignmentMask) & ^PointerAlignmentMask
}

// PadFor returns the number of pad bytes needed so that a region starting at
// base+off begins on a pointer-aligned address.
func PadFor(base, off int) int {
	return (base + off) & PointerAlignmentMask
}

// IsAligned reports whether off lies on a pointer-aligned address.
func IsAligned(off int) bool {
	return off&PointerAlignmentMask == 0
}
