package selector

import (
	"fmt"
	"strings"
)

// Part is a single write into one selector category.
type Part struct {
	Kind  Kind   `yaml:"kind" json:"kind"`
	Value string `yaml:"value" json:"value"`
}

func (p Part) String() string {
	return p.Kind.String() + "=" + p.Value
}

// ParsePart converts "kind=value" text (for example "class=container") into a Part.
func ParsePart(s string) (Part, error) {
	name, value, found := strings.Cut(s, "=")
	if !found {
		return Part{}, fmt.Errorf("malformed part %q, expected kind=value", s)
	}
	k, err := ParseKind(strings.TrimSpace(name))
	if err != nil {
		return Part{}, err
	}
	return Part{Kind: k, Value: value}, nil
}

// Element returns type selector part.
func Element(name string) Part { return Part{Kind: KindElement, Value: name} }

// ID returns id selector part, value is written without "#".
func ID(value string) Part { return Part{Kind: KindId, Value: value} }

// Class returns class selector part, value is written without ".".
func Class(value string) Part { return Part{Kind: KindClass, Value: value} }

// Attr returns attribute selector part, value is the body between brackets, e.g. `href$=".png"`.
func Attr(value string) Part { return Part{Kind: KindAttr, Value: value} }

// PseudoClass returns pseudo-class part, value is written without ":".
func PseudoClass(value string) Part { return Part{Kind: KindPseudoClass, Value: value} }

// PseudoElement returns pseudo-element part, value is written without "::".
func PseudoElement(value string) Part { return Part{Kind: KindPseudoElement, Value: value} }

// Builder assembles a compound selector. Builder is an immutable value: every
// write returns a new Builder and leaves the receiver untouched, so any
// builder may be safely reused, branched or shared between goroutines. Zero
// value is an empty selector.
//
// Parts must be written in grammar order: element, id, classes, attributes,
// pseudo-classes, pseudo-element. Element, id and pseudo-element may be
// written once. Violations are reported by the offending call, in which case
// the receiver is returned unchanged together with *PartError.
type Builder struct {
	d Descriptor
}

// New returns an empty builder.
func New() Builder {
	return Builder{}
}

// Build applies parts to an empty builder.
func Build(parts ...Part) (Builder, error) {
	return New().Apply(parts...)
}

// Must returns b or panics if err is not nil. Intended for fixed selectors
// in variable initialization and tests.
func Must(b Builder, err error) Builder {
	if err != nil {
		panic(err)
	}
	return b
}

func (b Builder) Element(name string) (Builder, error) { return b.add(KindElement, name) }

func (b Builder) ID(value string) (Builder, error) { return b.add(KindId, value) }

func (b Builder) Class(value string) (Builder, error) { return b.add(KindClass, value) }

func (b Builder) Attr(value string) (Builder, error) { return b.add(KindAttr, value) }

func (b Builder) PseudoClass(value string) (Builder, error) { return b.add(KindPseudoClass, value) }

func (b Builder) PseudoElement(value string) (Builder, error) {
	return b.add(KindPseudoElement, value)
}

// Apply writes parts in order, stopping on the first rejected one.
func (b Builder) Apply(parts ...Part) (Builder, error) {
	cur := b
	for i, p := range parts {
		next, err := cur.add(p.Kind, p.Value)
		if err != nil {
			return b, fmt.Errorf("part %d (%s): %w", i, p, err)
		}
		cur = next
	}
	return cur, nil
}

func (b Builder) add(k Kind, v string) (Builder, error) {
	if !k.IsValid() {
		return b, fmt.Errorf("%s is %w", k, ErrInvalidKind)
	}
	if v == "" {
		return b, &PartError{Part: k, Conflict: k, Err: ErrEmptyPart}
	}
	if k.single() && b.d.has(k) {
		return b, &PartError{Part: k, Conflict: k, Err: ErrDuplicatePart}
	}
	if last, ok := b.d.last(); ok && last > k {
		return b, &PartError{Part: k, Conflict: last, Err: ErrOrder}
	}
	return Builder{d: b.d.with(k, v)}, nil
}

// Combine joins b with right, b being the left operand.
func (b Builder) Combine(c Combinator, right Selector) Combined {
	return Combine(b, c, right)
}

// Descriptor returns a copy of accumulated parts.
func (b Builder) Descriptor() Descriptor {
	return b.d.clone()
}

// Parts lists accumulated parts in grammar order.
func (b Builder) Parts() []Part {
	var parts []Part
	for k := KindElement; k <= KindPseudoElement; k++ {
		for _, v := range b.d.values(k) {
			parts = append(parts, Part{Kind: k, Value: v})
		}
	}
	return parts
}

// IsEmpty reports whether no parts were written.
func (b Builder) IsEmpty() bool {
	_, ok := b.d.last()
	return !ok
}

// String renders compound selector text, e.g. `a[href$=".png"]:focus`.
func (b Builder) String() string {
	return b.d.String()
}

func (b Builder) render(sb *strings.Builder) {
	b.d.render(sb)
}
