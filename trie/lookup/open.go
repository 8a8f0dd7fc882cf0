package lookup

import (
	"fmt"

	"github.com/joshuapare/entitytrie/internal/mmfile"
)

// Open maps the blob at path read-only. Close releases the mapping; the Trie
// and any value slices returned by Match are invalid afterwards.
func Open(path string) (*Trie, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("open trie %s: %w", path, err)
	}
	return &Trie{data: data, close: cleanup}, nil
}

// Close releases resources held by a Trie from Open. It is a no-op for
// tries created with New.
func (t *Trie) Close() error {
	if t.close == nil {
		return nil
	}
	err := t.close()
	t.close = nil
	t.data = nil
	return err
}
