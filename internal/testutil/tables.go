// Package testutil provides shared source tables and fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"

	"github.com/joshuapare/entitytrie/trie/source"
)

// HTMLSample is a slice of the real WHATWG table. It covers prefix pairs
// ("amp"/"amp;"), case variants, digits in names, multi-code-point values,
// supplementary-plane values and enough distinct first letters to force a
// dense root.
func HTMLSample() source.Table {
	return source.FromPairs(
		"&AElig", "Æ",
		"&AElig;", "Æ",
		"&AMP", "&",
		"&AMP;", "&",
		"&Aacute", "Á",
		"&Aacute;", "Á",
		"&Afr;", "𝔄",
		"&Bfr;", "𝔅",
		"&Cap;", "⋒",
		"&DD;", "ⅅ",
		"&Dagger;", "‡",
		"&GT", ">",
		"&GT;", ">",
		"&LT", "<",
		"&LT;", "<",
		"&NotEqualTilde;", "≂\u0338",
		"&ThickSpace;", "\u205f\u200a",
		"&ZeroWidthSpace;", "\u200b",
		"&acE;", "∾\u0333",
		"&amp", "&",
		"&amp;", "&",
		"&and;", "∧",
		"&angle;", "∠",
		"&bne;", "=\u20e5",
		"&bsol;", "\\",
		"&cent", "¢",
		"&cent;", "¢",
		"&copy", "©",
		"&copy;", "©",
		"&eacute", "é",
		"&eacute;", "é",
		"&fjlig;", "fj",
		"&frac12", "½",
		"&frac12;", "½",
		"&frac14", "¼",
		"&frac14;", "¼",
		"&frac34", "¾",
		"&frac34;", "¾",
		"&gt", ">",
		"&gt;", ">",
		"&hearts;", "♥",
		"&lt", "<",
		"&lt;", "<",
		"&nbsp", "\u00a0",
		"&nbsp;", "\u00a0",
		"&not", "¬",
		"&notin;", "∉",
		"&notinva;", "∉",
		"&quot", "\"",
		"&quot;", "\"",
		"&sup1", "¹",
		"&sup1;", "¹",
		"&sup2", "²",
		"&sup2;", "²",
		"&there4;", "∴",
		"&yen", "¥",
		"&yen;", "¥",
		"&zwj;", "\u200d",
	)
}

// Letters returns nine one-letter keys "a".."i" whose values are the upper
// case letters. The root of the resulting trie has nine children.
func Letters() source.Table {
	var t source.Table
	for c := byte('a'); c <= 'i'; c++ {
		t.Add("&"+string(c), string(c-'a'+'A'))
	}
	return t
}

type entityRecord struct {
	Codepoints []rune `json:"codepoints"`
	Characters string `json:"characters"`
}

// WriteSource writes table as entities.json into dir and returns its path.
// Keys keep table order.
func WriteSource(t *testing.T, dir string, table source.Table) string {
	t.Helper()

	stream := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowStream(nil)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, e := range table {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(e.Name)
		stream.WriteVal(entityRecord{Codepoints: []rune(e.Value), Characters: e.Value})
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		t.Fatalf("encode source: %v", stream.Error)
	}

	path := filepath.Join(dir, "entities.json")
	if err := os.WriteFile(path, stream.Buffer(), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}
