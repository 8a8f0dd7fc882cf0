// Package fixture generates the exhaustive lookup test for a compiled trie:
// one assertion per source key, expecting the key's value and the full key
// length as the consumed length.
package fixture

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"io"
	"path"
	"text/template"

	"github.com/joshuapare/entitytrie/trie/source"
)

//go:embed fixture.go.tmpl
var fixtureTmpl string

var tmpl = template.Must(template.New("fixture").Parse(fixtureTmpl))

// ErrBadOptions indicates options that would produce an invalid Go file.
var ErrBadOptions = errors.New("fixture: invalid options")

// Options configures the generated file.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// Blob is the path embedded with //go:embed, relative to the generated file.
	Blob string
	// TestName is the generated test function name.
	// Default: TestAllEntities
	TestName string
}

// Case is one generated assertion.
type Case struct {
	Input string
	Value string
	Len   int
}

type data struct {
	Options
	Cases []Case
}

// Cases lists one case per entry of table in source order.
func Cases(table source.Table) []Case {
	cases := make([]Case, 0, len(table))
	for _, e := range table {
		key := e.Key()
		cases = append(cases, Case{Input: key, Value: e.Value, Len: len(key)})
	}
	return cases
}

// Write renders and gofmts the fixture for table into w.
func Write(w io.Writer, table source.Table, opts Options) error {
	if opts.TestName == "" {
		opts.TestName = "TestAllEntities"
	}
	if opts.Package == "" || opts.Blob == "" {
		return fmt.Errorf("%w: package and blob are required", ErrBadOptions)
	}
	opts.Blob = path.Clean(opts.Blob)

	var out bytes.Buffer
	if err := tmpl.Execute(&out, data{Options: opts, Cases: Cases(table)}); err != nil {
		return fmt.Errorf("render fixture: %w", err)
	}
	src, err := format.Source(out.Bytes())
	if err != nil {
		return fmt.Errorf("%w: generated source does not parse: %w", ErrBadOptions, err)
	}
	_, err = w.Write(src)
	return err
}
