package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/entitytrie/trie/lookup"
)

var errNoMatch = errors.New("no match")

func init() {
	rootCmd.AddCommand(newLookupCmd())
}

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <blob> <input>...",
		Short: "Find the longest character reference at the start of each input",
		Long: `The lookup command decodes inputs against a compiled trie the way an HTML
tokenizer would: it reports the longest name that prefixes the input, its
value and how many bytes it consumed. Inputs are given without the '&'.

Example:
  entitytrie lookup trie_little_endian.bin "amp;"
  entitytrie lookup trie_little_endian.bin "notin;" "ampfoo" --json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(args)
		},
	}
	return cmd
}

type lookupResult struct {
	Input    string `json:"input"`
	Match    bool   `json:"match"`
	Value    string `json:"value,omitempty"`
	Consumed int    `json:"consumed"`
}

func runLookup(args []string) error {
	blobPath := args[0]
	printVerbose("Opening trie: %s\n", blobPath)

	t, err := lookup.Open(blobPath)
	if err != nil {
		return err
	}
	defer t.Close()

	results := make([]lookupResult, 0, len(args)-1)
	missed := 0
	for _, input := range args[1:] {
		m, ok := t.Consume([]byte(input))
		if !ok {
			missed++
		}
		results = append(results, lookupResult{Input: input, Match: ok, Value: m.Value, Consumed: m.Len})
	}

	if jsonOut {
		if err := printJSON(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Match {
				printInfo("%s\t%+q\t%d\n", r.Input, r.Value, r.Consumed)
			} else {
				printInfo("%s\t(no match)\n", r.Input)
			}
		}
	}

	if missed > 0 {
		return fmt.Errorf("%d of %d inputs: %w", missed, len(results), errNoMatch)
	}
	return nil
}
