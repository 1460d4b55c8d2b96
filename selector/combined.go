package selector

import (
	"fmt"
	"strings"
)

// Selector is implemented by Builder and Combined, the only values which may
// be used as combination operands.
type Selector interface {
	fmt.Stringer
	render(sb *strings.Builder)
}

// Combined is two selectors joined by a combinator. It owns its operands, so
// rendering is repeatable and independent of any builder it came from.
type Combined struct {
	left       Selector
	right      Selector
	combinator Combinator
}

// Combine joins left and right. Combinator is taken verbatim and rendered
// with a single space on each side, so Descendant produces three spaces
// between operands.
func Combine(left Selector, c Combinator, right Selector) Combined {
	return Combined{left: left, right: right, combinator: c}
}

// CombineStrict is Combine which rejects tokens outside of CSS combinators.
func CombineStrict(left Selector, c Combinator, right Selector) (Combined, error) {
	if !c.IsValid() {
		return Combined{}, fmt.Errorf("%q: %w", string(c), ErrInvalidCombinator)
	}
	return Combine(left, c, right), nil
}

// Combine joins c with right, c being the left operand.
func (c Combined) Combine(comb Combinator, right Selector) Combined {
	return Combine(c, comb, right)
}

func (c Combined) Left() Selector         { return c.left }
func (c Combined) Right() Selector        { return c.right }
func (c Combined) Combinator() Combinator { return c.combinator }

// String renders "<left> <combinator> <right>".
func (c Combined) String() string {
	var sb strings.Builder
	c.render(&sb)
	return sb.String()
}

func (c Combined) render(sb *strings.Builder) {
	renderOperand(sb, c.left)
	sb.WriteByte(' ')
	sb.WriteString(string(c.combinator))
	sb.WriteByte(' ')
	renderOperand(sb, c.right)
}

func renderOperand(sb *strings.Builder, s Selector) {
	if s != nil {
		s.render(sb)
	}
}
