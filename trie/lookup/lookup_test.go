package lookup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ampBlob is the compiled form of {"&amp": "&", "&amp;": "&"}:
//
//	0x00  root    inline "amp" -> 0x09 (one pad byte before the pointer)
//	0x09  "&"     inline ";"   -> 0x11 (one pad byte)
//	0x11  "&"     leaf
var ampBlob = []byte{
	0x00, 0x83, 0x04, 0x00, 0x09, 0x00, 'a', 'm', 'p',
	0x01, 0x81, 0x05, '&', 0x00, 0x11, 0x00, ';',
	0x01, 0x00, 0x05, '&',
}

// sparseBlob is {"&lt": "<", "&gt": ">"}: a sparse root with two entries.
//
//	0x00  root  sparse ('l' -> 0x0C, 'g' -> 0x17)
//	0x0C  -     inline "t" -> 0x13
//	0x13  "<"   leaf
//	0x17  -     inline "t" -> 0x1D (already aligned, no pad)
//	0x1D  ">"   leaf
var sparseBlob = []byte{
	0x00, 0x02, 0x04, 0x00,
	'l', 0x00, 0x0C, 0x00,
	'g', 0x00, 0x17, 0x00,
	0x00, 0x81, 0x04, 0x00, 0x13, 0x00, 't',
	0x01, 0x00, 0x05, '<',
	0x00, 0x81, 0x03, 0x1D, 0x00, 't',
	0x01, 0x00, 0x05, '>',
}

func TestConsume_LongestMatch(t *testing.T) {
	tr := New(ampBlob)

	tests := []struct {
		input string
		want  Match
		ok    bool
	}{
		{"amp;rest", Match{"&", 4}, true},
		{"ampmore", Match{"&", 3}, true},
		{"amp;", Match{"&", 4}, true},
		{"amp", Match{"&", 3}, true},
		{"am", Match{}, false},
		{" amp", Match{}, false},
		{"", Match{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := tr.Consume([]byte(tt.input))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConsume_Sparse(t *testing.T) {
	tr := New(sparseBlob)

	got, ok := tr.Consume([]byte("lt;"))
	require.True(t, ok)
	assert.Equal(t, Match{"<", 2}, got)

	got, ok = tr.Consume([]byte("gt"))
	require.True(t, ok)
	assert.Equal(t, Match{">", 2}, got)

	_, ok = tr.Consume([]byte("l"))
	assert.False(t, ok)
	_, ok = tr.Consume([]byte("x"))
	assert.False(t, ok)
}

func TestMatch_AliasesBlob(t *testing.T) {
	value, n, ok := New(ampBlob).Match([]byte("amp;"))
	require.True(t, ok)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte("&"), value)
	assert.Same(t, &ampBlob[0x14], &value[0])
}

func TestMatch_DoesNotAllocate(t *testing.T) {
	tr := New(ampBlob)
	input := []byte("amp;x")
	allocs := testing.AllocsPerRun(100, func() {
		_, _, _ = tr.Match(input)
	})
	assert.Zero(t, allocs)
}

func TestConsume_TruncatedBlob(t *testing.T) {
	// Every prefix of a valid blob must fail gracefully, never panic.
	for i := 0; i < len(ampBlob); i++ {
		assert.NotPanics(t, func() {
			_, _ = Consume(ampBlob[:i], []byte("amp;"))
		}, "prefix %d", i)
	}
	_, ok := Consume(nil, []byte("amp"))
	assert.False(t, ok)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trie_little_endian.bin")
	require.NoError(t, os.WriteFile(path, ampBlob, 0o644))

	tr, err := Open(path)
	require.NoError(t, err)
	got, ok := tr.Consume([]byte("amp"))
	require.True(t, ok)
	assert.Equal(t, Match{"&", 3}, got)

	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.bin"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
