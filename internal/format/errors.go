package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrBadNextOff indicates next_off does not follow the header and terminal.
	ErrBadNextOff = errors.New("format: inconsistent next_off")
	// ErrBadDiscriminant indicates next_len names no known child shape.
	ErrBadDiscriminant = errors.New("format: invalid child discriminant")
)
