package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/entitytrie/internal/buf"
	"github.com/joshuapare/entitytrie/internal/format"
	"github.com/joshuapare/entitytrie/internal/testutil"
	"github.com/joshuapare/entitytrie/trie"
	"github.com/joshuapare/entitytrie/trie/source"
)

func nodesFor(t *testing.T, table source.Table) []*trie.Node {
	t.Helper()
	root, err := trie.Build(table)
	require.NoError(t, err)
	trie.Compact(root)
	return trie.Preorder(root)
}

func encode(t *testing.T, table source.Table) *Layout {
	t.Helper()
	l, err := Encode(nodesFor(t, table), DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, l.Resolve())
	return l
}

func TestEncode_AmpGolden(t *testing.T) {
	l := encode(t, source.FromPairs("&amp", "&", "&amp;", "&"))

	want := []byte{
		0x00, 0x83, 0x04, 0x00, 0x09, 0x00, 'a', 'm', 'p',
		0x01, 0x81, 0x05, '&', 0x00, 0x11, 0x00, ';',
		0x01, 0x00, 0x05, '&',
	}
	assert.Equal(t, want, l.Data)
	assert.Equal(t, []int{0, 9, 17}, l.Addresses)
	assert.Equal(t, []Relocation{{Target: 1, At: 4}, {Target: 2, At: 14}}, l.Relocations)
}

func TestEncode_SparseGolden(t *testing.T) {
	l := encode(t, source.FromPairs("&lt", "<", "&gt", ">"))

	want := []byte{
		0x00, 0x02, 0x04, 0x00,
		'l', 0x00, 0x0C, 0x00,
		'g', 0x00, 0x17, 0x00,
		0x00, 0x81, 0x04, 0x00, 0x13, 0x00, 't',
		0x01, 0x00, 0x05, '<',
		0x00, 0x81, 0x03, 0x1D, 0x00, 't',
		0x01, 0x00, 0x05, '>',
	}
	assert.Equal(t, want, l.Data)
}

func TestEncode_DenseLetters(t *testing.T) {
	l := encode(t, testutil.Letters())

	require.IsType(t, Dense{}, l.Shapes[0])
	assert.Equal(t, byte(format.DenseTableRange), l.Data[format.NextLenOffset])

	root, err := format.DecodeNode(l.Data, 0)
	require.NoError(t, err)
	assert.Equal(t, format.KindDense, root.Kind())
	assert.Equal(t, 4, root.ChildrenOffset())

	// Nine 4-byte leaves follow the 152-byte root in source order.
	for i, c := 0, byte('a'); c <= 'i'; i, c = i+1, c+1 {
		slot, ok := format.DenseIndex(c)
		require.True(t, ok)
		assert.Equal(t, uint16(152+4*i), root.DenseSlot(l.Data, slot), "slot for %q", c)
	}
	used := 0
	for slot := 0; slot < format.DenseTableRange; slot++ {
		if root.DenseSlot(l.Data, slot) != 0 {
			used++
		}
	}
	assert.Equal(t, 9, used)
	assert.Equal(t, format.DenseTableRange-9, l.Stats().EmptySlots)
}

func TestEncode_ShapeSelection(t *testing.T) {
	tests := []struct {
		name      string
		children  int
		threshold int
		want      format.Kind
		disc      byte
	}{
		{"two children sparse", 2, 8, format.KindSparse, 2},
		{"seven children sparse", 7, 8, format.KindSparse, 7},
		{"eight children dense", 8, 8, format.KindDense, 74},
		{"custom threshold", 4, 4, format.KindDense, 74},
		{"dense disabled", 9, 0, format.KindSparse, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var table source.Table
			for i := 0; i < tt.children; i++ {
				table.Add("&"+string(rune('a'+i)), "x")
			}
			l, err := Encode(nodesFor(t, table), Options{DenseThreshold: tt.threshold})
			require.NoError(t, err)
			require.NoError(t, l.Resolve())

			assert.Equal(t, tt.want, l.Shapes[0].Kind())
			assert.Equal(t, tt.disc, l.Data[format.NextLenOffset])
		})
	}
}

func TestEncode_ChildrenRegionsAligned(t *testing.T) {
	l := encode(t, testutil.HTMLSample())

	for i, addr := range l.Addresses {
		n, err := format.DecodeNode(l.Data, addr)
		require.NoError(t, err, "node %d", i)
		assert.Equal(t, l.Shapes[i].Kind(), n.Kind(), "node %d", i)
		if n.Kind() == format.KindLeaf {
			continue
		}
		assert.True(t, format.IsAligned(n.ChildrenOffset()), "node %d children at 0x%X", i, n.ChildrenOffset())
		assert.Equal(t, l.Shapes[i].Size(), n.ChildrenSize(), "node %d", i)
	}
}

func TestEncode_InlineLabelLength(t *testing.T) {
	l := encode(t, source.FromPairs("&"+strings.Repeat("a", format.MaxInlineLen), "x"))
	require.IsType(t, Inline{}, l.Shapes[0])
	assert.Equal(t, byte(format.InlineFlag|format.MaxInlineLen), l.Data[format.NextLenOffset])

	_, err := Encode(nodesFor(t, source.FromPairs("&"+strings.Repeat("a", format.MaxInlineLen+1), "x")), DefaultOptions())
	assert.ErrorIs(t, err, ErrInlineTooLong)
}

func TestEncode_DenseSlotOutOfRange(t *testing.T) {
	table := testutil.Letters()
	table.Add("&0", "zero")

	_, err := Encode(nodesFor(t, table), DefaultOptions())
	assert.ErrorIs(t, err, ErrDenseSlot)

	// The same byte is fine in a sparse list.
	_, err = Encode(nodesFor(t, source.FromPairs("&0", "zero", "&a", "A")), DefaultOptions())
	assert.NoError(t, err)
}

func TestEncode_TerminalLimits(t *testing.T) {
	l, err := Encode(nodesFor(t, source.FromPairs("&a", strings.Repeat("v", format.MaxTerminalLen))), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, byte(format.MaxTerminalLen), l.Data[len(l.Data)-format.MaxTerminalLen-format.HeaderSize])

	_, err = Encode(nodesFor(t, source.FromPairs("&a", strings.Repeat("v", format.MaxTerminalLen+1))), DefaultOptions())
	assert.ErrorIs(t, err, ErrTerminalTooLong)

	_, err = Encode(nodesFor(t, source.FromPairs("&a", "")), DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyTerminal)
}

func TestEncode_MultiByteBranchLabel(t *testing.T) {
	root := trie.NewRoot()
	require.NoError(t, root.AddChild("ab").SetTerminal("x"))
	require.NoError(t, root.AddChild("c").SetTerminal("y"))

	_, err := Encode(trie.Preorder(root), DefaultOptions())
	assert.ErrorIs(t, err, ErrLabelTooLong)
}

func TestEncode_SparseCountAmbiguous(t *testing.T) {
	var table source.Table
	for c := byte(format.DenseTableBase); c < format.DenseTableBase+format.DenseTableRange; c++ {
		table.Add("&"+string(c), "x")
	}

	_, err := Encode(nodesFor(t, table), Options{DenseThreshold: 0})
	assert.ErrorIs(t, err, ErrSparseCount)

	l, err := Encode(nodesFor(t, table), DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, l.Resolve())
	assert.Equal(t, 0, l.Stats().EmptySlots)
}

func TestEncode_RequiresPreorder(t *testing.T) {
	root := trie.NewRoot()
	root.AddChild("a")
	nodes := []*trie.Node{root, root.Children()[0]}

	_, err := Encode(nodes, DefaultOptions())
	assert.ErrorIs(t, err, ErrIndexMismatch)
}

func TestEncode_BadOptions(t *testing.T) {
	nodes := nodesFor(t, source.FromPairs("&a", "x"))
	for _, threshold := range []int{-1, 1} {
		_, err := Encode(nodes, Options{DenseThreshold: threshold})
		assert.ErrorIs(t, err, ErrBadOptions, "threshold %d", threshold)
	}
}

func TestResolve_PatchesEveryPlaceholderOnce(t *testing.T) {
	l, err := Encode(nodesFor(t, testutil.HTMLSample()), DefaultOptions())
	require.NoError(t, err)

	for _, r := range l.Relocations {
		assert.Zero(t, buf.U16LE(l.Data[r.At:]), "placeholder @0x%X before resolve", r.At)
	}
	assert.False(t, l.Resolved())

	require.NoError(t, l.Resolve())
	assert.True(t, l.Resolved())

	// Every node but the root is the target of exactly one pointer.
	targets := make(map[int]int)
	at := make(map[int]bool)
	for _, r := range l.Relocations {
		assert.Equal(t, l.Addresses[r.Target], int(buf.U16LE(l.Data[r.At:])))
		assert.False(t, at[r.At], "placeholder @0x%X listed twice", r.At)
		at[r.At] = true
		targets[r.Target]++
	}
	assert.Len(t, targets, len(l.Addresses)-1)
	for target, count := range targets {
		assert.NotZero(t, target)
		assert.Equal(t, 1, count, "node %d", target)
	}

	assert.ErrorIs(t, l.Resolve(), ErrAlreadyResolved)
}

func TestResolve_Failures(t *testing.T) {
	tests := []struct {
		name string
		l    *Layout
		want error
	}{
		{
			name: "unassigned target",
			l:    &Layout{Data: make([]byte, 4), Addresses: []int{0, unassigned}, Relocations: []Relocation{{Target: 1, At: 2}}},
			want: ErrUnresolved,
		},
		{
			name: "unknown target",
			l:    &Layout{Data: make([]byte, 4), Addresses: []int{0}, Relocations: []Relocation{{Target: 3, At: 2}}},
			want: ErrUnresolved,
		},
		{
			name: "same field twice",
			l:    &Layout{Data: make([]byte, 4), Addresses: []int{0, 2}, Relocations: []Relocation{{Target: 1, At: 2}, {Target: 1, At: 2}}},
			want: ErrPatchTwice,
		},
		{
			name: "address overflow",
			l:    &Layout{Data: make([]byte, 4), Addresses: []int{0, format.MaxAddress + 1}, Relocations: []Relocation{{Target: 1, At: 2}}},
			want: ErrAddressOverflow,
		},
		{
			name: "field past the end",
			l:    &Layout{Data: make([]byte, 4), Addresses: []int{0, 2}, Relocations: []Relocation{{Target: 1, At: 3}}},
			want: format.ErrTruncated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.l.Resolve()
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, tt.l.Resolved())
		})
	}
}

func TestLayoutStats(t *testing.T) {
	l := encode(t, testutil.HTMLSample())
	s := l.Stats()

	assert.Equal(t, len(l.Data), s.Bytes)
	assert.Equal(t, len(l.Addresses), s.Nodes)
	assert.Equal(t, s.Nodes, s.Leaf+s.Inline+s.Sparse+s.Dense)
	assert.Equal(t, s.Nodes-1, s.Relocations)
	assert.Equal(t, 1, s.Dense, "only the root branches eight ways")
}
