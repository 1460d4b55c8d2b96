package selector_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"cssel/selector"
)

const page = `<html><body>
<div id="main" class="container draggable">
  <a href="/img/logo.png" class="thumb">logo</a>
  <a href="/about">about</a>
</div>
<table id="data">
  <tr><td>1</td><td>2</td></tr>
  <tr><td>3</td><td>4</td></tr>
</table>
<ul class="menu"><li>one</li><li class="active">two</li></ul>
</body></html>`

// Rendered selectors must be accepted by a real selector engine.
func TestBuiltSelectorsMatchDocument(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("failed to parse page: %v", err)
	}

	tests := []struct {
		name string
		sel  selector.Selector
		want int
	}{
		{"attribute", selector.Must(selector.Build(selector.Element("a"), selector.Attr(`href$=".png"`))), 1},
		{"id and classes", selector.Must(selector.Build(selector.Element("div"), selector.ID("main"), selector.Class("container"), selector.Class("draggable"))), 1},
		{"child", selector.Combine(
			selector.Must(selector.Build(selector.Element("ul"), selector.Class("menu"))),
			selector.Child,
			selector.Must(selector.Build(selector.Element("li"), selector.Class("active")))), 1},
		{"descendant nth", selector.Combine(
			selector.Must(selector.Build(selector.Element("tr"), selector.PseudoClass("nth-of-type(even)"))),
			selector.Descendant,
			selector.Must(selector.Build(selector.Element("td")))), 2},
		{"subsequent sibling", selector.Combine(
			selector.Must(selector.Build(selector.Element("div"), selector.ID("main"))),
			selector.SubsequentSibling,
			selector.Must(selector.Build(selector.Element("ul")))), 1},
		{"next sibling", selector.Combine(
			selector.Must(selector.Build(selector.Element("div"), selector.ID("main"))),
			selector.NextSibling,
			selector.Must(selector.Build(selector.Element("table"), selector.ID("data")))), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.Find(tt.sel.String()).Length(); got != tt.want {
				t.Errorf("Find(%q) matched %d, want %d", tt.sel.String(), got, tt.want)
			}
		})
	}
}
