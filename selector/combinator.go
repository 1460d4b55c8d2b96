package selector

import (
	"fmt"
	"strings"
)

// Combinator joins two selectors. Any text is accepted by Combine, only the
// constants below are valid CSS.
type Combinator string

const (
	Descendant        Combinator = " "
	Child             Combinator = ">"
	NextSibling       Combinator = "+"
	SubsequentSibling Combinator = "~"
)

var combinatorNames = map[Combinator]string{
	Descendant:        "descendant",
	Child:             "child",
	NextSibling:       "next-sibling",
	SubsequentSibling: "subsequent-sibling",
}

// IsValid reports whether c is one of the CSS combinators.
func (c Combinator) IsValid() bool {
	_, ok := combinatorNames[c]
	return ok
}

// Name returns the human readable name of a valid combinator or its token otherwise.
func (c Combinator) Name() string {
	if n, ok := combinatorNames[c]; ok {
		return n
	}
	return string(c)
}

// ParseCombinator accepts either combinator token or its name (case insensitive).
func ParseCombinator(s string) (Combinator, error) {
	if c := Combinator(s); c.IsValid() {
		return c, nil
	}
	name := strings.ToLower(strings.TrimSpace(s))
	for c, n := range combinatorNames {
		if n == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrInvalidCombinator)
}
