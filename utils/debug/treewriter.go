// Package debug produces human readable dumps of selector structures.
package debug

import (
	"fmt"
	"strconv"
	"strings"

	"cssel/selector"
)

type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Field writes label and quoted value, empty values are left unquoted.
func (tw TreeWriter) Field(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(quote(value))
	tw.w.WriteByte('\n')
}

// Selector dumps selector as a tree: combined selectors show combinator and
// both operands, compound selectors list their parts in order.
func (tw TreeWriter) Selector(depth int, sel selector.Selector) {
	switch s := sel.(type) {
	case nil:
		tw.Line(depth, "<empty>")
	case selector.Combined:
		c := s.Combinator()
		if c.IsValid() {
			tw.Line(depth, "combined %s (%s)", quote(string(c)), c.Name())
		} else {
			tw.Line(depth, "combined %s (non-standard)", quote(string(c)))
		}
		tw.Line(depth+1, "left:")
		tw.Selector(depth+2, s.Left())
		tw.Line(depth+1, "right:")
		tw.Selector(depth+2, s.Right())
	case selector.Builder:
		tw.Field(depth, "compound", s.String())
		for _, p := range s.Parts() {
			tw.Field(depth+1, p.Kind.String(), p.Value)
		}
	default:
		tw.Field(depth, fmt.Sprintf("%T", sel), sel.String())
	}
}

// DumpSelector returns tree representation of a selector.
func DumpSelector(sel selector.Selector) string {
	tw := NewTreeWriter()
	tw.Selector(0, sel)
	return tw.String()
}

func quote(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
