package layout

import "github.com/joshuapare/entitytrie/internal/format"

// Stats counts nodes per shape and the space they use.
type Stats struct {
	Bytes       int
	Nodes       int
	Leaf        int
	Inline      int
	Sparse      int
	Dense       int
	Relocations int
	PadBytes    int
	EmptySlots  int // Unused dense table slots
}

// Stats summarizes the layout.
func (l *Layout) Stats() Stats {
	s := Stats{
		Bytes:       len(l.Data),
		Nodes:       len(l.Shapes),
		Relocations: len(l.Relocations),
	}
	for i, shape := range l.Shapes {
		switch sh := shape.(type) {
		case Leaf:
			s.Leaf++
			continue
		case Inline:
			s.Inline++
		case Sparse:
			s.Sparse++
		case Dense:
			s.Dense++
			s.EmptySlots += format.DenseTableRange - len(sh.Edges)
		}
		addr := l.Addresses[i]
		terminalLen := int(l.Data[addr+format.TerminalLenOffset])
		if int(l.Data[addr+format.NextOffOffset]) > format.HeaderSize+terminalLen {
			s.PadBytes++
		}
	}
	return s
}
