package selector

import (
	"slices"
	"strings"
)

// Descriptor is a snapshot of the parts accumulated by a Builder. Empty
// string means that single-valued category is absent.
type Descriptor struct {
	Element       string
	ID            string
	Classes       []string
	Attributes    []string
	PseudoClasses []string
	PseudoElement string
}

// clone returns deep copy of d.
func (d Descriptor) clone() Descriptor {
	d.Classes = slices.Clone(d.Classes)
	d.Attributes = slices.Clone(d.Attributes)
	d.PseudoClasses = slices.Clone(d.PseudoClasses)
	return d
}

// values returns values held by category k.
func (d *Descriptor) values(k Kind) []string {
	switch k {
	case KindElement:
		return single(d.Element)
	case KindId:
		return single(d.ID)
	case KindClass:
		return d.Classes
	case KindAttr:
		return d.Attributes
	case KindPseudoClass:
		return d.PseudoClasses
	case KindPseudoElement:
		return single(d.PseudoElement)
	default:
		return nil
	}
}

func single(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

func (d *Descriptor) has(k Kind) bool {
	return len(d.values(k)) > 0
}

// last returns the greatest category holding a value.
func (d *Descriptor) last() (Kind, bool) {
	for k := KindPseudoElement; k >= KindElement; k-- {
		if d.has(k) {
			return k, true
		}
	}
	return KindElement, false
}

// with returns a copy of d with v written into category k. No checks are
// performed here.
func (d Descriptor) with(k Kind, v string) Descriptor {
	n := d.clone()
	switch k {
	case KindElement:
		n.Element = v
	case KindId:
		n.ID = v
	case KindClass:
		n.Classes = append(n.Classes, v)
	case KindAttr:
		n.Attributes = append(n.Attributes, v)
	case KindPseudoClass:
		n.PseudoClasses = append(n.PseudoClasses, v)
	case KindPseudoElement:
		n.PseudoElement = v
	}
	return n
}

func (d *Descriptor) render(sb *strings.Builder) {
	for k := KindElement; k <= KindPseudoElement; k++ {
		for _, v := range d.values(k) {
			sb.WriteString(k.prefix())
			sb.WriteString(v)
			sb.WriteString(k.suffix())
		}
	}
}

// String renders descriptor as compound selector text.
func (d Descriptor) String() string {
	var sb strings.Builder
	d.render(&sb)
	return sb.String()
}
