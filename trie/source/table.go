// Package source reads the key/value table the trie is compiled from.
//
// The table uses the WHATWG entities.json shape:
//
//	{
//	  "&AElig": { "codepoints": [198], "characters": "Æ" },
//	  "&amp;":  { "codepoints": [38],  "characters": "&" }
//	}
//
// Every name carries a one-byte sigil ('&') that is not part of the key.
// Source order is kept because it decides child order, and with it the exact
// bytes of the compiled blob.
package source

import (
	"fmt"
)

// Sigil is the conventional first byte of every entity name.
const Sigil = '&'

// Entry is one named character reference.
type Entry struct {
	Name       string // Name including the sigil, e.g. "&amp;"
	Value      string // Decoded UTF-8 value
	Codepoints []rune // Code points as listed by the source, may be nil
}

// Key returns the name with its one-byte sigil removed.
func (e Entry) Key() string {
	return StripSigil(e.Name)
}

// StripSigil drops the first byte of name.
func StripSigil(name string) string {
	if name == "" {
		return ""
	}
	return name[1:]
}

// Table is an ordered list of entries.
type Table []Entry

// Add appends an entry named name (sigil included) with value.
func (t *Table) Add(name, value string) {
	*t = append(*t, Entry{Name: name, Value: value})
}

// FromPairs builds a table from alternating name, value arguments.
//
//	tbl := source.FromPairs("&amp;", "&", "&amp", "&")
func FromPairs(pairs ...string) Table {
	if len(pairs)%2 != 0 {
		panic("source: FromPairs needs an even number of arguments")
	}
	t := make(Table, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		t.Add(pairs[i], pairs[i+1])
	}
	return t
}

// Validate checks that every entry is usable as a trie key.
func (t Table) Validate() error {
	seen := make(map[string]struct{}, len(t))
	for i, e := range t {
		if e.Key() == "" {
			return fmt.Errorf("entry %d %q: %w", i, e.Name, ErrEmptyKey)
		}
		if e.Value == "" {
			return fmt.Errorf("entry %d %q: %w", i, e.Name, ErrEmptyValue)
		}
		if len(e.Codepoints) > 0 && string(e.Codepoints) != e.Value {
			return fmt.Errorf("entry %d %q: %w (characters=%+q, codepoints=%U)",
				i, e.Name, ErrCodepointMismatch, e.Value, e.Codepoints)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("entry %d %q: %w", i, e.Name, ErrDuplicateKey)
		}
		seen[e.Name] = struct{}{}
	}
	return nil
}
