package stylesheet

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"cssel/selector"
)

// Rule represents a single CSS rule (selector + properties).
type Rule struct {
	Selector   string           // Selector text
	Properties map[string]Value // Property name -> value
}

// NewRule creates rule for built selector, property values are parsed with ParseValue.
func NewRule(sel selector.Selector, props map[string]string) Rule {
	rule := Rule{
		Selector:   sel.String(),
		Properties: make(map[string]Value, len(props)),
	}
	for name, raw := range props {
		rule.Properties[name] = ParseValue(raw)
	}
	return rule
}

// GetProperty returns the value for a property, or empty Value if not found.
func (r Rule) GetProperty(name string) (Value, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// Stylesheet is an ordered list of rules.
type Stylesheet struct {
	Rules    []Rule   // Rules in source order
	Warnings []string // Warnings for skipped content
}

// Add appends rule for sel to the stylesheet.
func (s *Stylesheet) Add(sel selector.Selector, props map[string]string) {
	s.Rules = append(s.Rules, NewRule(sel, props))
}

// Selectors returns selector text of every rule in source order.
func (s *Stylesheet) Selectors() []string {
	sels := make([]string, 0, len(s.Rules))
	for _, r := range s.Rules {
		sels = append(sels, r.Selector)
	}
	return sels
}

// RulesBySelector returns all rules with selector equal to sel, whitespace
// differences are ignored.
func (s *Stylesheet) RulesBySelector(sel string) []Rule {
	want := NormalizeSelector(sel)
	var matches []Rule
	for _, r := range s.Rules {
		if NormalizeSelector(r.Selector) == want {
			matches = append(matches, r)
		}
	}
	return matches
}

// NormalizeSelector collapses whitespace runs to a single space and drops
// whitespace around explicit combinators, so "ul  >li" and "ul > li" compare
// equal.
func NormalizeSelector(sel string) string {
	fields := strings.Fields(sel)
	var sb strings.Builder
	for i, f := range fields {
		if i > 0 && !isCombinatorEdge(fields[i-1], f) {
			sb.WriteByte(' ')
		}
		sb.WriteString(f)
	}
	return sb.String()
}

func isCombinatorEdge(prev, next string) bool {
	return strings.ContainsAny(prev[len(prev)-1:], ">+~") || strings.ContainsAny(next[:1], ">+~")
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := range s.Rules {
		n, err := writeRule(w, &s.Rules[i])
		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between rules (except after last)
		if i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single CSS rule to w.
func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector)
	total += n
	if err != nil {
		return total, err
	}
	n, err = writeProperties(w, rule.Properties)
	total += n
	if err != nil {
		return total, err
	}
	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}

// writeProperties writes property declarations sorted alphabetically.
func writeProperties(w io.Writer, props map[string]Value) (int, error) {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)

	var total int
	for _, name := range names {
		n, err := fmt.Fprintf(w, "  %s: %s;\n", name, props[name].Raw)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
