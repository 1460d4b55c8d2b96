package stylesheet_test

import (
	"strings"
	"testing"

	"cssel/selector"
	"cssel/stylesheet"
)

func TestStylesheet_WriteTo(t *testing.T) {
	var sheet stylesheet.Stylesheet
	sheet.Add(selector.Must(selector.Build(selector.Element("p"), selector.Class("lead"))), map[string]string{
		"margin":      "0 auto",
		"font-weight": "bold",
	})
	sheet.Add(selector.Combine(
		selector.Must(selector.Build(selector.Element("ul"))),
		selector.Child,
		selector.Must(selector.Build(selector.Element("li"))),
	), map[string]string{"color": "#333"})

	want := `p.lead {
  font-weight: bold;
  margin: 0 auto;
}

ul > li {
  color: #333;
}
`
	var sb strings.Builder
	n, err := sheet.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if got := sb.String(); got != want {
		t.Errorf("WriteTo() =\n%s\nwant\n%s", got, want)
	}
	if n != int64(len(want)) {
		t.Errorf("WriteTo() returned %d bytes, want %d", n, len(want))
	}
	if sheet.String() != want {
		t.Error("String() differs from WriteTo()")
	}
}

func TestStylesheet_RulesBySelector(t *testing.T) {
	var sheet stylesheet.Stylesheet
	sheet.Add(selector.Combine(
		selector.Must(selector.Build(selector.Element("ul"))),
		selector.Child,
		selector.Must(selector.Build(selector.Element("li"))),
	), nil)

	if got := len(sheet.RulesBySelector("ul>li")); got != 1 {
		t.Errorf("RulesBySelector() found %d rules, want 1", got)
	}
	if got := len(sheet.RulesBySelector("ul li")); got != 0 {
		t.Errorf("RulesBySelector() found %d rules, want 0", got)
	}
}

func TestNormalizeSelector(t *testing.T) {
	tests := map[string]string{
		"ul > li":                   "ul>li",
		"  a   b ":                  "a b",
		"tr:nth-of-type(even)   td": "tr:nth-of-type(even) td",
		"h1 +p ~ div":               "h1+p~div",
		"#main.container":           "#main.container",
	}
	for in, want := range tests {
		if got := stylesheet.NormalizeSelector(in); got != want {
			t.Errorf("NormalizeSelector(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw     string
		value   float64
		unit    string
		keyword string
		numeric bool
	}{
		{"1.5em", 1.5, "em", "", true},
		{"50%", 50, "%", "", true},
		{"0", 0, "", "", true},
		{"BOLD", 0, "", "bold", false},
		{`"Georgia"`, 0, "", "Georgia", false},
		{"#ff0000", 0, "", "#ff0000", false},
		{"0 auto", 0, "", "0 auto", false},
		{"rgb(1, 2, 3)", 0, "", "rgb(1, 2, 3)", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v := stylesheet.ParseValue(tt.raw)
			if v.Value != tt.value || v.Unit != tt.unit || v.Keyword != tt.keyword {
				t.Errorf("ParseValue(%q) = %+v", tt.raw, v)
			}
			if v.IsNumeric() != tt.numeric {
				t.Errorf("IsNumeric() = %v, want %v", v.IsNumeric(), tt.numeric)
			}
		})
	}
}

func TestValue_Equal(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"1.5em", "1.50EM", true},
		{"1.5em", "1.5px", false},
		{"0", "0px", false},
		{"50%", "50.0%", true},
		{"Bold", "bold", true},
		{"#EEE", "#eee", true},
		{`"Georgia"`, `'Georgia'`, true},
		{"0 auto", "0  auto", true},
		{"0 auto", "0 0", false},
		{"rgb(1,2,3)", "rgb(1, 2, 3)", true},
		{"rgb(1, 2, 3)", "rgb(1, 2, 4)", false},
		{"none", "1px solid", false},
	}
	for _, tt := range tests {
		t.Run(tt.a+"="+tt.b, func(t *testing.T) {
			a, b := stylesheet.ParseValue(tt.a), stylesheet.ParseValue(tt.b)
			if got := a.Equal(b); got != tt.want {
				t.Errorf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := b.Equal(a); got != tt.want {
				t.Errorf("Equal(%q, %q) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}
