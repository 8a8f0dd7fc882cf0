// Package compiler turns a character-reference table into the trie blob and
// its test fixture.
//
// Compile runs the phases in a fixed order, each exactly once:
//
//	build -> compact -> index -> encode -> resolve [-> verify]
//
// CompileFiles wraps it with file handling: nothing is written unless the
// whole pipeline, including verification, succeeded.
package compiler

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/joshuapare/entitytrie/trie"
	"github.com/joshuapare/entitytrie/trie/layout"
	"github.com/joshuapare/entitytrie/trie/source"
	"github.com/joshuapare/entitytrie/trie/verify"
)

var log = logrus.WithField("component", "compiler")

// Result is a compiled trie.
type Result struct {
	Data   []byte
	Trie   trie.Stats
	Layout layout.Stats
}

// Compile builds the blob for table.
func Compile(table source.Table, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log
	}

	root, err := trie.Build(table)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	raw := trie.Collect(root)
	logger.WithField("nodes", raw.Nodes).Debug("built raw trie")

	trie.Compact(root)
	nodes := trie.Preorder(root)
	stats := trie.Collect(root)
	logger.WithFields(logrus.Fields{
		"nodes":   stats.Nodes,
		"removed": raw.Nodes - stats.Nodes,
	}).Debug("compacted trie")

	l, err := layout.Encode(nodes, opts.Layout)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	if err := l.Resolve(); err != nil {
		return nil, fmt.Errorf("resolve: %w", err)
	}

	if opts.Verify {
		if err := verify.AllInvariants(l.Data); err != nil {
			return nil, fmt.Errorf("verify: %w", err)
		}
		if err := verify.RoundTrip(l.Data, table); err != nil {
			return nil, fmt.Errorf("verify: %w", err)
		}
	}

	res := &Result{Data: l.Data, Trie: stats, Layout: l.Stats()}
	logger.WithFields(logrus.Fields{
		"keys":        len(table),
		"bytes":       res.Layout.Bytes,
		"leaf":        res.Layout.Leaf,
		"inline":      res.Layout.Inline,
		"sparse":      res.Layout.Sparse,
		"dense":       res.Layout.Dense,
		"relocations": res.Layout.Relocations,
	}).Info("compiled trie")
	return res, nil
}
