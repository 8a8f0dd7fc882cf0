package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/joshuapare/entitytrie/trie/compiler"
	"github.com/joshuapare/entitytrie/trie/layout"
	"github.com/joshuapare/entitytrie/trie/source"
)

var (
	buildSource         string
	buildOutput         string
	buildFixture        string
	buildFixturePackage string
	buildDenseThreshold int
	buildNoFixture      bool
	buildNoVerify       bool
)

func init() {
	cmd := newBuildCmd()
	addBuildFlags(cmd.Flags())
	rootCmd.AddCommand(cmd)
}

// addBuildFlags registers the build flags on fs. The root command and the
// build subcommand share the same variables.
func addBuildFlags(fs *pflag.FlagSet) {
	fs.StringVar(&buildSource, "source", compiler.DefaultSource, "Entity table to compile")
	fs.StringVar(&buildOutput, "output", compiler.DefaultOutput, "Trie blob to write")
	fs.StringVar(&buildFixture, "fixture", compiler.DefaultFixture, "Generated Go test to write")
	fs.StringVar(&buildFixturePackage, "fixture-package", compiler.DefaultFixturePackage, "Package clause of the generated test")
	fs.IntVar(&buildDenseThreshold, "dense-threshold", layout.DefaultOptions().DenseThreshold, "Child count that selects a dense table (0 = never)")
	fs.BoolVar(&buildNoFixture, "no-fixture", false, "Skip generating the Go test")
	fs.BoolVar(&buildNoVerify, "no-verify", false, "Skip verifying the blob before writing")
}

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile entities.json into a trie blob and test fixture",
		Long: `The build command compiles the entity table into the binary trie and writes
the exhaustive lookup test next to it. Nothing is written unless compilation
and verification succeed.

Example:
  entitytrie build
  entitytrie build --source data/entities.json --output data/trie.bin
  entitytrie build --no-fixture --dense-threshold 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild()
		},
	}
	return cmd
}

type buildResult struct {
	Source      string `json:"source"`
	Output      string `json:"output"`
	Fixture     string `json:"fixture,omitempty"`
	Bytes       int    `json:"bytes"`
	Nodes       int    `json:"nodes"`
	Terminals   int    `json:"terminals"`
	Leaf        int    `json:"leaf"`
	Inline      int    `json:"inline"`
	Sparse      int    `json:"sparse"`
	Dense       int    `json:"dense"`
	Relocations int    `json:"relocations"`
}

func runBuild() error {
	opts := compiler.DefaultOptions()
	opts.Layout.DenseThreshold = buildDenseThreshold
	opts.Verify = !buildNoVerify

	cfg := compiler.Config{
		Source:         buildSource,
		Output:         buildOutput,
		Fixture:        buildFixture,
		FixturePackage: buildFixturePackage,
		Options:        opts,
	}
	if buildNoFixture {
		cfg.Fixture = ""
	}

	printVerbose("Compiling %s\n", cfg.Source)
	res, err := compiler.CompileFiles(cfg)
	if errors.Is(err, source.ErrSourceNotFound) {
		return fmt.Errorf("%s not found: %s", cfg.Source, source.DownloadHint)
	}
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if jsonOut {
		return printJSON(buildResult{
			Source:      cfg.Source,
			Output:      cfg.Output,
			Fixture:     cfg.Fixture,
			Bytes:       res.Layout.Bytes,
			Nodes:       res.Layout.Nodes,
			Terminals:   res.Trie.Terminals,
			Leaf:        res.Layout.Leaf,
			Inline:      res.Layout.Inline,
			Sparse:      res.Layout.Sparse,
			Dense:       res.Layout.Dense,
			Relocations: res.Layout.Relocations,
		})
	}

	printInfo("Wrote %s (%d bytes, %d nodes, %d entries)\n", cfg.Output, res.Layout.Bytes, res.Layout.Nodes, res.Trie.Terminals)
	if cfg.Fixture != "" {
		printInfo("Wrote %s\n", cfg.Fixture)
	}
	printVerbose("  leaf: %d, inline: %d, sparse: %d, dense: %d\n",
		res.Layout.Leaf, res.Layout.Inline, res.Layout.Sparse, res.Layout.Dense)
	printVerbose("  relocations: %d, pad bytes: %d, empty dense slots: %d\n",
		res.Layout.Relocations, res.Layout.PadBytes, res.Layout.EmptySlots)
	return nil
}
