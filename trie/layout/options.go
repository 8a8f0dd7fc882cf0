package layout

import (
	"fmt"

	"github.com/joshuapare/entitytrie/internal/format"
)

// Options configures the encoder.
type Options struct {
	// DenseThreshold is the child count from which a node is encoded as a
	// dense table. 0 disables dense tables; every branch then uses a sparse
	// list, which must stay below 128 entries and must not be exactly 74.
	// Default: 8
	DenseThreshold int
}

// DefaultOptions returns the encoder settings matching the reference decoder.
func DefaultOptions() Options {
	return Options{
		DenseThreshold: format.DefaultDenseThreshold,
	}
}

func (o Options) validate() error {
	if o.DenseThreshold < 0 || o.DenseThreshold == 1 {
		return fmt.Errorf("%w: dense threshold %d", ErrBadOptions, o.DenseThreshold)
	}
	return nil
}
