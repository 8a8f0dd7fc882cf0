package printer

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"

	"github.com/joshuapare/entitytrie/trie/source"
)

func (p *Printer) printTreeText(n *node, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	var line strings.Builder
	line.WriteString(indent)
	if n.label == nil {
		line.WriteString("(root)")
	} else {
		fmt.Fprintf(&line, "%q", n.label)
	}
	if p.opts.ShowOffsets {
		fmt.Fprintf(&line, " @0x%04X %s", n.Offset, n.Kind())
	}
	if n.TerminalLen > 0 {
		fmt.Fprintf(&line, " = %+q", n.Terminal)
		if p.opts.RuneNames {
			fmt.Fprintf(&line, " (%s)", describe(string(n.Terminal)))
		}
	}
	if n.elided > 0 {
		fmt.Fprintf(&line, " [+%d]", n.elided)
	}
	if _, err := fmt.Fprintln(p.writer, line.String()); err != nil {
		return err
	}

	for _, child := range n.children {
		if err := p.printTreeText(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printEntriesText(table source.Table) error {
	for _, e := range table {
		var err error
		if p.opts.RuneNames {
			_, err = fmt.Fprintf(p.writer, "%s\t%+q\t%s\n", e.Name, e.Value, describe(e.Value))
		} else {
			_, err = fmt.Fprintf(p.writer, "%s\t%+q\n", e.Name, e.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// describe names every code point of s, e.g. "U+0026 AMPERSAND".
func describe(s string) string {
	parts := make([]string, 0, len(s))
	for _, r := range s {
		parts = append(parts, runeName(r))
	}
	return strings.Join(parts, ", ")
}

func runeName(r rune) string {
	name := runenames.Name(r)
	if name == "" {
		return fmt.Sprintf("%U", r)
	}
	return fmt.Sprintf("%U %s", r, name)
}
