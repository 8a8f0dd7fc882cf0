package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/entitytrie/trie/lookup"
	"github.com/joshuapare/entitytrie/trie/printer"
)

var (
	dumpEntries   bool
	dumpDepth     int
	dumpNoOffsets bool
	dumpNoNames   bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().BoolVar(&dumpEntries, "entries", false, "List key/value pairs instead of the node tree")
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum tree depth (0 = unlimited)")
	cmd.Flags().BoolVar(&dumpNoOffsets, "no-offsets", false, "Hide node offsets and shapes")
	cmd.Flags().BoolVar(&dumpNoNames, "no-names", false, "Hide Unicode character names")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <blob>",
		Short: "Human-readable dump of a compiled trie",
		Long: `The dump command prints the node tree of a compiled trie, or with --entries
the key/value pairs it encodes. With --json --entries the output has the
entities.json shape and can be compiled again.

Example:
  entitytrie dump trie_little_endian.bin
  entitytrie dump trie_little_endian.bin --depth 2 --no-names
  entitytrie dump trie_little_endian.bin --entries --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	blobPath := args[0]
	printVerbose("Opening trie: %s\n", blobPath)

	t, err := lookup.Open(blobPath)
	if err != nil {
		return err
	}
	defer t.Close()

	opts := printer.DefaultOptions()
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	opts.MaxDepth = dumpDepth
	opts.ShowOffsets = !dumpNoOffsets
	opts.RuneNames = !dumpNoNames

	p := printer.New(t.Bytes(), os.Stdout, opts)
	if dumpEntries {
		err = p.PrintEntries()
	} else {
		err = p.PrintTree()
	}
	if err != nil {
		return fmt.Errorf("failed to dump %s: %w", blobPath, err)
	}
	return nil
}
