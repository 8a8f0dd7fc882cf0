package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/entitytrie/internal/testutil"
	"github.com/joshuapare/entitytrie/trie/source"
)

func TestBuildCommand(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	buildSource = testutil.WriteSource(t, dir, testutil.HTMLSample())
	buildOutput = filepath.Join(dir, "trie.bin")
	buildFixture = filepath.Join(dir, "all_entities_test.go")

	output, err := captureOutput(t, runBuild)
	require.NoError(t, err)
	assert.Contains(t, output, "Wrote "+buildOutput)
	assert.Contains(t, output, "Wrote "+buildFixture)
	assert.FileExists(t, buildOutput)
	assert.FileExists(t, buildFixture)
}

func TestBuildCommand_JSON(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	buildSource = testutil.WriteSource(t, dir, testutil.Letters())
	buildOutput = filepath.Join(dir, "trie.bin")
	buildNoFixture = true
	jsonOut = true

	output, err := captureOutput(t, runBuild)
	require.NoError(t, err)

	var res buildResult
	assertJSON(t, output, &res)
	assert.Equal(t, 10, res.Nodes)
	assert.Equal(t, 9, res.Terminals)
	assert.Equal(t, 1, res.Dense)
	assert.Empty(t, res.Fixture)
	assert.NoFileExists(t, filepath.Join(dir, "all_entities_test.go"))
}

func TestBuildCommand_MissingSource(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	buildSource = filepath.Join(dir, "entities.json")
	buildOutput = filepath.Join(dir, "trie.bin")
	buildFixture = filepath.Join(dir, "all_entities_test.go")

	_, err := captureOutput(t, runBuild)
	require.Error(t, err)
	assert.Contains(t, err.Error(), source.DownloadHint)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLookupCommand(t *testing.T) {
	resetFlags(t)
	_, blob := buildSample(t, t.TempDir(), testutil.HTMLSample())

	output, err := captureOutput(t, func() error {
		return runLookup([]string{blob, "amp;", "ampfoo", "notinva;"})
	})
	require.NoError(t, err)
	assert.Contains(t, output, "amp;\t\"&\"\t4\n")
	assert.Contains(t, output, "ampfoo\t\"&\"\t3\n")
	assert.Contains(t, output, "notinva;\t\"\\u2209\"\t8\n")

	output, err = captureOutput(t, func() error {
		return runLookup([]string{blob, "bogus"})
	})
	assert.ErrorIs(t, err, errNoMatch)
	assert.Contains(t, output, "bogus\t(no match)")
}

func TestLookupCommand_JSON(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	_, blob := buildSample(t, t.TempDir(), testutil.HTMLSample())

	output, err := captureOutput(t, func() error {
		return runLookup([]string{blob, "frac12x"})
	})
	require.NoError(t, err)

	var got []lookupResult
	assertJSON(t, output, &got)
	assert.Equal(t, []lookupResult{{Input: "frac12x", Match: true, Value: "½", Consumed: 6}}, got)
}

func TestDumpCommand(t *testing.T) {
	_, blob := buildSample(t, t.TempDir(), source.FromPairs("&amp", "&", "&amp;", "&"))

	tests := []struct {
		name        string
		setup       func()
		wantContain []string
		wantJSON    bool
	}{
		{
			name:        "tree",
			wantContain: []string{"(root) @0x0000 inline", `"amp" @0x0009 inline = "&" (U+0026 AMPERSAND)`},
		},
		{
			name:        "plain tree",
			setup:       func() { dumpNoOffsets, dumpNoNames = true, true },
			wantContain: []string{"(root)\n", `";" = "&"`},
		},
		{
			name:        "entries",
			setup:       func() { dumpEntries = true },
			wantContain: []string{"&amp\t\"&\"", "&amp;\t\"&\""},
		},
		{
			name:        "entries as JSON",
			setup:       func() { dumpEntries, jsonOut = true, true },
			wantContain: []string{`"&amp;"`, `"characters"`},
			wantJSON:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			if tt.setup != nil {
				tt.setup()
			}

			output, err := captureOutput(t, func() error {
				return runDump([]string{blob})
			})
			require.NoError(t, err)
			if tt.wantJSON {
				var v interface{}
				assertJSON(t, output, &v)
			}
			for _, want := range tt.wantContain {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestDumpCommand_MissingBlob(t *testing.T) {
	resetFlags(t)
	_, err := captureOutput(t, func() error {
		return runDump([]string{filepath.Join(t.TempDir(), "missing.bin")})
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVerifyCommand(t *testing.T) {
	resetFlags(t)
	src, blob := buildSample(t, t.TempDir(), testutil.HTMLSample())
	verifySource = src

	output, err := captureOutput(t, func() error {
		return runVerify([]string{blob})
	})
	require.NoError(t, err)
	assert.Contains(t, output, ": OK (")
	assert.Contains(t, output, "58 keys round-trip")
}

func TestVerifyCommand_Corrupt(t *testing.T) {
	resetFlags(t)
	jsonOut = true
	dir := t.TempDir()
	_, blob := buildSample(t, dir, source.FromPairs("&amp", "&", "&amp;", "&"))

	data, err := os.ReadFile(blob)
	require.NoError(t, err)
	data[4] = 0xF0
	require.NoError(t, os.WriteFile(blob, data, 0o644))

	_, err = captureOutput(t, func() error {
		return runVerify([]string{blob})
	})
	assert.ErrorContains(t, err, "Pointer")
}
