package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// CheckListBounds validates that count elements of elementSize bytes fit in a
// buffer of bufLen bytes starting at offset. Returns the end offset.
//
//	end, err := buf.CheckListBounds(len(data), off, count, format.SparseEntrySize)
//	if err != nil {
//	    return fmt.Errorf("sparse list: %w", err)
//	}
func CheckListBounds(bufLen, offset, count, elementSize int) (int, error) {
	switch {
	case offset < 0:
		return 0, fmt.Errorf("negative offset: %d", offset)
	case count < 0:
		return 0, fmt.Errorf("negative count: %d", count)
	case elementSize < 0:
		return 0, fmt.Errorf("negative element size: %d", elementSize)
	}
	if count != 0 && elementSize > math.MaxInt/count {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elementSize)
	}
	end, ok := AddOverflowSafe(offset, count*elementSize)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", offset, count*elementSize)
	}
	if end > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", end, bufLen)
	}
	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
