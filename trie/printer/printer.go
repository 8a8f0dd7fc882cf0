// Package printer renders compiled trie blobs for inspection, either as the
// node tree or as the flat list of entries the blob encodes.
package printer

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/entitytrie/internal/format"
	"github.com/joshuapare/entitytrie/trie/source"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text.
	FormatText Format = "text"

	// FormatJSON outputs JSON. Entries use the entities.json shape.
	FormatJSON Format = "json"
)

// ErrCycle indicates a pointer that does not lead forward in the blob.
var ErrCycle = errors.New("printer: pointer does not lead forward")

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per tree level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how many levels of the tree are printed (0 = unlimited).
	// Default: 0
	MaxDepth int

	// ShowOffsets includes node offsets and shapes.
	// Default: true
	ShowOffsets bool

	// RuneNames annotates terminal values with Unicode character names.
	// Default: true
	RuneNames bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:      FormatText,
		IndentSize:  DefaultIndentSize,
		MaxDepth:    DefaultMaxDepth,
		ShowOffsets: true,
		RuneNames:   true,
	}
}

// Printer writes a blob to w.
type Printer struct {
	opts   Options
	writer io.Writer
	data   []byte
}

// New creates a Printer over data.
//
// Example:
//
//	p := printer.New(blob, os.Stdout, printer.DefaultOptions())
//	p.PrintTree()
func New(data []byte, w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{
		opts:   opts,
		writer: w,
		data:   data,
	}
}

// PrintTree prints every node reachable from the root.
func (p *Printer) PrintTree() error {
	root, err := p.tree(format.RootAddress, nil, 0)
	if err != nil {
		return err
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printTreeJSON(root)
	default:
		return p.printTreeText(root, 0)
	}
}

// PrintEntries prints every key the blob encodes with its value, in blob
// order. Keys carry the '&' sigil.
func (p *Printer) PrintEntries() error {
	table, err := Entries(p.data)
	if err != nil {
		return err
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printEntriesJSON(table)
	default:
		return p.printEntriesText(table)
	}
}

// node is a decoded tree used by both output formats.
type node struct {
	format.Node
	label    []byte
	children []*node
	elided   int // children not expanded because of MaxDepth
}

func (p *Printer) tree(off int, label []byte, depth int) (*node, error) {
	n, err := format.DecodeNode(p.data, off)
	if err != nil {
		return nil, err
	}
	out := &node{Node: n, label: label}
	edges := n.Edges(p.data)
	if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
		out.elided = len(edges)
		return out, nil
	}
	for _, e := range edges {
		if int(e.Target) <= off {
			return nil, fmt.Errorf("node @0x%X edge %q -> 0x%X: %w", off, e.Label, e.Target, ErrCycle)
		}
		child, err := p.tree(int(e.Target), e.Label, depth+1)
		if err != nil {
			return nil, err
		}
		out.children = append(out.children, child)
	}
	return out, nil
}

// Entries decodes every key/value pair stored in data.
func Entries(data []byte) (source.Table, error) {
	var table source.Table
	var walk func(off int, key []byte) error
	walk = func(off int, key []byte) error {
		n, err := format.DecodeNode(data, off)
		if err != nil {
			return err
		}
		if n.TerminalLen > 0 {
			table.Add(string(source.Sigil)+string(key), string(n.Terminal))
		}
		for _, e := range n.Edges(data) {
			if int(e.Target) <= off {
				return fmt.Errorf("node @0x%X edge %q -> 0x%X: %w", off, e.Label, e.Target, ErrCycle)
			}
			if err := walk(int(e.Target), append(key[:len(key):len(key)], e.Label...)); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(format.RootAddress, nil); err != nil {
		return nil, err
	}
	return table, nil
}
