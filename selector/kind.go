package selector

// Kind is a selector part category. Values are declared in grammar order:
// a part may never be written after a part of a greater Kind.
// ENUM(element, id, class, attr, pseudoClass, pseudoElement)
type Kind int

// single reports whether category holds at most one value per selector.
func (x Kind) single() bool {
	return x == KindElement || x == KindId || x == KindPseudoElement
}

// prefix returns text written in front of every value of the category.
func (x Kind) prefix() string {
	switch x {
	case KindId:
		return "#"
	case KindClass:
		return "."
	case KindAttr:
		return "["
	case KindPseudoClass:
		return ":"
	case KindPseudoElement:
		return "::"
	default:
		return ""
	}
}

// suffix returns text written after every value of the category.
func (x Kind) suffix() string {
	if x == KindAttr {
		return "]"
	}
	return ""
}
