// Package selector builds CSS selector text from discrete parts.
//
// A compound selector is assembled with Builder, one part at a time, in
// grammar order:
//
//	b, err := selector.Build(
//		selector.Element("a"),
//		selector.Attr(`href$=".png"`),
//		selector.PseudoClass("focus"),
//	)
//	// b.String() == `a[href$=".png"]:focus`
//
// Builders never change: each write returns a new value, so a partially
// built selector can be branched freely. Compound selectors are joined with
// Combine, results of which may be combined again.
package selector
