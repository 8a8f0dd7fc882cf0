// Package layout serializes a compacted, preorder-indexed trie into the flat
// little-endian blob read by package lookup.
//
// # Node Format
//
// Every node starts with a 3-byte header:
//
//	Offset  Size  Field
//	0x00    1     terminal_len   UTF-8 length of the terminal value, 0 if none
//	0x01    1     next_len       child-shape discriminant
//	0x02    1     next_off       offset from the node to its children region
//	0x03    n     terminal bytes
//	...     0/1   pad so the children region starts on an even address
//
// The discriminant selects one of four shapes:
//
//	0            leaf     no children region
//	0x80 | N     inline   u16 pointer, then the N-byte edge label
//	2..7         sparse   count x (u8 label, u8 reserved, u16 pointer)
//	74           dense    74 x u16 pointer, slot = byte - '1'
//
// Addresses are byte offsets from the start of the blob; the root lives at 0,
// so a zero pointer in a dense table means "no child".
//
// # Relocation
//
// Nodes are written in preorder, so a parent is always emitted before its
// children and their addresses are unknown when the parent's pointers are
// written. Encode reserves a zero placeholder for every pointer and records a
// Relocation; Resolve runs once all nodes have an address and patches each
// placeholder exactly once.
//
//	nodes := trie.Preorder(root)
//	l, err := layout.Encode(nodes, layout.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	if err := l.Resolve(); err != nil {
//	    return err
//	}
//	os.WriteFile("trie_little_endian.bin", l.Data, 0o644)
//
// # Contract Violations
//
// The format only fits the key alphabet it was designed for. Inline labels
// over 127 bytes, dense children outside '1'..'z', terminals over 251 bytes
// and pointers past 0xFFFF are reported as errors and no blob is produced.
package layout
