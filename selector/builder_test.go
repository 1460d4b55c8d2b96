package selector_test

import (
	"errors"
	"testing"

	"cssel/selector"
)

func TestBuilder_Fixtures(t *testing.T) {
	b, err := selector.New().Element("a")
	if err != nil {
		t.Fatalf("Element() error = %v", err)
	}
	if b, err = b.Attr(`href$=".png"`); err != nil {
		t.Fatalf("Attr() error = %v", err)
	}
	if b, err = b.PseudoClass("focus"); err != nil {
		t.Fatalf("PseudoClass() error = %v", err)
	}
	if got, want := b.String(), `a[href$=".png"]:focus`; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	b = selector.Must(selector.Build(selector.ID("main"), selector.Class("container"), selector.Class("editable")))
	if got, want := b.String(), "#main.container.editable"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilder_GrammarOrder(t *testing.T) {
	tests := []struct {
		name  string
		parts []selector.Part
		want  string
	}{
		{"empty", nil, ""},
		{"element", []selector.Part{selector.Element("div")}, "div"},
		{"id only", []selector.Part{selector.ID("main")}, "#main"},
		{"pseudo element only", []selector.Part{selector.PseudoElement("before")}, "::before"},
		{"all parts", []selector.Part{
			selector.Element("input"),
			selector.ID("email"),
			selector.Class("field"),
			selector.Class("wide"),
			selector.Attr(`type="text"`),
			selector.Attr("required"),
			selector.PseudoClass("focus"),
			selector.PseudoClass("hover"),
			selector.PseudoElement("placeholder"),
		}, `input#email.field.wide[type="text"][required]:focus:hover::placeholder`},
		{"skip id and attr", []selector.Part{
			selector.Element("li"),
			selector.Class("item"),
			selector.PseudoClass("first-child"),
		}, "li.item:first-child"},
		{"repeated class", []selector.Part{selector.Class("a"), selector.Class("a")}, ".a.a"},
		{"class then pseudo element", []selector.Part{selector.Class("note"), selector.PseudoElement("after")}, ".note::after"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := selector.Build(tt.parts...)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilder_Duplicate(t *testing.T) {
	tests := []struct {
		name  string
		first selector.Part
		kind  selector.Kind
	}{
		{"element", selector.Element("div"), selector.KindElement},
		{"id", selector.ID("main"), selector.KindId},
		{"pseudo element", selector.PseudoElement("before"), selector.KindPseudoElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := selector.Must(selector.Build(tt.first))
			_, err := b.Apply(selector.Part{Kind: tt.kind, Value: "again"})
			if !errors.Is(err, selector.ErrDuplicatePart) {
				t.Fatalf("expected ErrDuplicatePart, got %v", err)
			}
			var pe *selector.PartError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *PartError, got %T", err)
			}
			if pe.Part != tt.kind {
				t.Errorf("PartError.Part = %s, want %s", pe.Part, tt.kind)
			}
		})
	}
}

func TestBuilder_DuplicateCheckedBeforeOrder(t *testing.T) {
	b := selector.Must(selector.Build(selector.Element("div"), selector.Class("x")))
	_, err := b.Element("span")
	if !errors.Is(err, selector.ErrDuplicatePart) {
		t.Fatalf("expected ErrDuplicatePart, got %v", err)
	}
}

func TestBuilder_Order(t *testing.T) {
	kinds := []selector.Kind{
		selector.KindElement,
		selector.KindId,
		selector.KindClass,
		selector.KindAttr,
		selector.KindPseudoClass,
		selector.KindPseudoElement,
	}

	for _, later := range kinds {
		for _, earlier := range kinds {
			if earlier >= later {
				continue
			}
			t.Run(earlier.String()+" after "+later.String(), func(t *testing.T) {
				b := selector.Must(selector.Build(selector.Part{Kind: later, Value: "x"}))
				got, err := b.Apply(selector.Part{Kind: earlier, Value: "y"})
				if !errors.Is(err, selector.ErrOrder) {
					t.Fatalf("expected ErrOrder, got %v", err)
				}
				var pe *selector.PartError
				if !errors.As(err, &pe) {
					t.Fatalf("expected *PartError, got %T", err)
				}
				if pe.Part != earlier || pe.Conflict != later {
					t.Errorf("PartError = %s/%s, want %s/%s", pe.Part, pe.Conflict, earlier, later)
				}
				if got.String() != b.String() {
					t.Errorf("rejected write changed builder: %q", got.String())
				}
			})
		}
	}
}

func TestBuilder_RepeatedWritesInMultiValuedGates(t *testing.T) {
	b := selector.Must(selector.Build(
		selector.Class("a"), selector.Class("b"),
		selector.Attr("x"), selector.Attr("y"),
		selector.PseudoClass("hover"), selector.PseudoClass("focus"),
	))
	if got, want := b.String(), ".a.b[x][y]:hover:focus"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuilder_EmptyValue(t *testing.T) {
	_, err := selector.New().Class("")
	if !errors.Is(err, selector.ErrEmptyPart) {
		t.Fatalf("expected ErrEmptyPart, got %v", err)
	}
}

func TestBuilder_InvalidKind(t *testing.T) {
	_, err := selector.Build(selector.Part{Kind: selector.Kind(42), Value: "x"})
	if !errors.Is(err, selector.ErrInvalidKind) {
		t.Fatalf("expected ErrInvalidKind, got %v", err)
	}
}

func TestBuilder_Idempotent(t *testing.T) {
	b := selector.Must(selector.Build(selector.Element("p"), selector.Class("lead")))
	first, second := b.String(), b.String()
	if first != second {
		t.Errorf("String() not idempotent: %q != %q", first, second)
	}
}

func TestBuilder_Immutable(t *testing.T) {
	root := selector.New()
	base := selector.Must(root.Element("div"))
	base = selector.Must(base.Class("card"))

	// branch twice from the same parent, appends must not share storage
	left := selector.Must(base.Class("left"))
	right := selector.Must(base.Class("right"))

	if got := root.String(); got != "" {
		t.Errorf("root changed: %q", got)
	}
	if got := base.String(); got != "div.card" {
		t.Errorf("parent changed: %q", got)
	}
	if got := left.String(); got != "div.card.left" {
		t.Errorf("left = %q", got)
	}
	if got := right.String(); got != "div.card.right" {
		t.Errorf("right = %q", got)
	}

	d := left.Descriptor()
	d.Classes[0] = "mutated"
	if got := left.String(); got != "div.card.left" {
		t.Errorf("descriptor copy leaked into builder: %q", got)
	}
}

func TestBuilder_Parts(t *testing.T) {
	want := []selector.Part{
		selector.Element("a"),
		selector.ID("home"),
		selector.Class("nav"),
		selector.Attr("href"),
		selector.PseudoClass("visited"),
		selector.PseudoElement("after"),
	}
	b := selector.Must(selector.Build(want...))
	got := b.Parts()
	if len(got) != len(want) {
		t.Fatalf("Parts() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Parts()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if !selector.New().IsEmpty() || b.IsEmpty() {
		t.Error("IsEmpty() mismatch")
	}
}

func TestParsePart(t *testing.T) {
	p, err := selector.ParsePart(`attr=href$=".png"`)
	if err != nil {
		t.Fatalf("ParsePart() error = %v", err)
	}
	if p.Kind != selector.KindAttr || p.Value != `href$=".png"` {
		t.Errorf("ParsePart() = %v", p)
	}

	if _, err := selector.ParsePart("div"); err == nil {
		t.Error("expected error for part without kind")
	}
	if _, err := selector.ParsePart("tag=div"); !errors.Is(err, selector.ErrInvalidKind) {
		t.Errorf("expected ErrInvalidKind, got %v", err)
	}
}

func TestMust_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	selector.Must(selector.Build(selector.Class("a"), selector.Element("b")))
}
