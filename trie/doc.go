// Package trie builds the in-memory character trie that the layout encoder
// serializes.
//
// # Overview
//
// Compilation starts here with three sequential passes:
//
//  1. Build inserts every key byte by byte, creating one node per byte and
//     setting the terminal value on the node where the key ends.
//  2. Compact collapses chains of single-child, non-terminal nodes into one
//     multi-byte edge (radix compression).
//  3. Preorder assigns every node its index (root = 0) and returns the nodes
//     in traversal order. Indexes are bookkeeping for the encoder and are never
//     written to the blob.
//
// # Ordering
//
// Children keep insertion order, so the source table order decides both the
// preorder and the final byte layout. Building the same table twice always
// yields the same trie.
//
// # Prefix Keys
//
// Keys are not required to be prefix-free. "amp" and "amp;" both terminate:
//
//	root -"amp"-> [&] -";"-> [&]
//
// The node for "amp" carries a terminal value and still has a child.
package trie
