package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/entitytrie/trie/lookup"
	"github.com/joshuapare/entitytrie/trie/source"
	"github.com/joshuapare/entitytrie/trie/verify"
)

var verifySource string

func init() {
	cmd := newVerifyCmd()
	cmd.Flags().StringVar(&verifySource, "source", "", "Also check every key of this entity table round-trips")
	rootCmd.AddCommand(cmd)
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <blob>",
		Short: "Check a compiled trie for structural errors",
		Long: `The verify command walks every node of a compiled trie and checks header
bounds, children alignment, inline label lengths, sparse entries, dense tables
and pointer ranges. With --source it also decodes every key of the table.

Example:
  entitytrie verify trie_little_endian.bin
  entitytrie verify trie_little_endian.bin --source entities.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
	return cmd
}

type verifyResult struct {
	Valid     bool           `json:"valid"`
	Nodes     int            `json:"nodes"`
	Terminals int            `json:"terminals"`
	Edges     int            `json:"edges"`
	ByKind    map[string]int `json:"by_kind"`
	Checked   int            `json:"checked,omitempty"`
}

func runVerify(args []string) error {
	blobPath := args[0]
	printVerbose("Opening trie: %s\n", blobPath)

	t, err := lookup.Open(blobPath)
	if err != nil {
		return err
	}
	defer t.Close()

	report, err := verify.Walk(t.Bytes())
	if err != nil {
		return fmt.Errorf("%s: %w", blobPath, err)
	}

	res := verifyResult{
		Valid:     true,
		Nodes:     report.Nodes,
		Terminals: report.Terminals,
		Edges:     report.Edges,
		ByKind:    make(map[string]int, len(report.ByKind)),
	}
	for kind, n := range report.ByKind {
		res.ByKind[kind.String()] = n
	}

	if verifySource != "" {
		table, err := source.Load(verifySource)
		if err != nil {
			return err
		}
		if err := verify.RoundTrip(t.Bytes(), table); err != nil {
			return fmt.Errorf("%s: %w", blobPath, err)
		}
		res.Checked = len(table)
	}

	if jsonOut {
		return printJSON(res)
	}
	printInfo("%s: OK (%d nodes, %d terminals, %d edges)\n", blobPath, res.Nodes, res.Terminals, res.Edges)
	for _, kind := range []string{"leaf", "inline", "sparse", "dense"} {
		printVerbose("  %s: %d\n", kind, res.ByKind[kind])
	}
	if res.Checked > 0 {
		printInfo("%d keys round-trip\n", res.Checked)
	}
	return nil
}
