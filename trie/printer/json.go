package printer

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/text/unicode/runenames"

	"github.com/joshuapare/entitytrie/trie/source"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonNode represents a trie node in JSON format.
type jsonNode struct {
	Label      *string     `json:"label,omitempty"`
	Offset     *int        `json:"offset,omitempty"`
	Kind       string      `json:"kind,omitempty"`
	Terminal   *string     `json:"terminal,omitempty"`
	Codepoints []jsonRune  `json:"codepoints,omitempty"`
	Elided     int         `json:"elided,omitempty"`
	Children   []*jsonNode `json:"children,omitempty"`
}

// jsonRune represents one code point of a terminal value.
type jsonRune struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// jsonEntry matches one value of the WHATWG entities.json object.
type jsonEntry struct {
	Codepoints []rune `json:"codepoints"`
	Characters string `json:"characters"`
}

func (p *Printer) toJSON(n *node) *jsonNode {
	out := &jsonNode{Elided: n.elided}
	if n.label != nil {
		label := string(n.label)
		out.Label = &label
	}
	if p.opts.ShowOffsets {
		off := n.Offset
		out.Offset = &off
		out.Kind = n.Kind().String()
	}
	if n.TerminalLen > 0 {
		term := string(n.Terminal)
		out.Terminal = &term
		if p.opts.RuneNames {
			for _, r := range term {
				out.Codepoints = append(out.Codepoints, jsonRune{
					Code: fmt.Sprintf("%U", r),
					Name: runenames.Name(r),
				})
			}
		}
	}
	for _, child := range n.children {
		out.Children = append(out.Children, p.toJSON(child))
	}
	return out
}

func (p *Printer) printTreeJSON(root *node) error {
	data, err := json.MarshalIndent(p.toJSON(root), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

// printEntriesJSON writes table as an entities.json object. Keys keep blob
// order, which a map would lose.
func (p *Printer) printEntriesJSON(table source.Table) error {
	stream := jsoniter.NewStream(json, p.writer, 4096)
	stream.WriteObjectStart()
	for i, e := range table {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(e.Name)
		stream.WriteVal(jsonEntry{Codepoints: []rune(e.Value), Characters: e.Value})
	}
	stream.WriteObjectEnd()
	stream.WriteRaw("\n")
	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}
