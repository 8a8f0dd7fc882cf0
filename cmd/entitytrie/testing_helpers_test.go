package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/entitytrie/internal/testutil"
	"github.com/joshuapare/entitytrie/trie/compiler"
	"github.com/joshuapare/entitytrie/trie/layout"
	"github.com/joshuapare/entitytrie/trie/source"
)

// resetFlags restores every package-level flag variable to its default.
func resetFlags(t *testing.T) {
	t.Helper()
	verbose, quiet, jsonOut = false, false, false
	cfgFile, logLevel = "", "warning"

	buildSource = compiler.DefaultSource
	buildOutput = compiler.DefaultOutput
	buildFixture = compiler.DefaultFixture
	buildFixturePackage = compiler.DefaultFixturePackage
	buildDenseThreshold = layout.DefaultOptions().DenseThreshold
	buildNoFixture, buildNoVerify = false, false

	dumpEntries, dumpDepth, dumpNoOffsets, dumpNoNames = false, 0, false, false
	verifySource = ""
}

// chdir changes the working directory to dir and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

// buildSample compiles table into dir and returns the source and blob paths.
func buildSample(t *testing.T, dir string, table source.Table) (string, string) {
	t.Helper()
	src := testutil.WriteSource(t, dir, table)
	blob := filepath.Join(dir, compiler.DefaultOutput)

	opts := compiler.DefaultOptions()
	_, err := compiler.CompileFiles(compiler.Config{Source: src, Output: blob, Options: opts})
	require.NoError(t, err)
	return src, blob
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	done := make(chan []byte)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.Bytes()
	}()

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout
	out := <-done
	r.Close()

	return string(out), fnErr
}

// assertJSON checks that output is valid JSON and decodes it into v
func assertJSON(t *testing.T, output string, v interface{}) {
	t.Helper()
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(output, v), "output: %s", output)
}
