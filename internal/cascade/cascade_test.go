package cascade

import (
	"strings"
	"testing"

	"github.com/dshills/specificity/internal/specificity"
	"github.com/dshills/specificity/internal/stylesheet"
)

func rule(sel string, order int, decls ...stylesheet.Declaration) stylesheet.Rule {
	return stylesheet.Rule{
		Selector:     sel,
		Specificity:  specificity.FromSelector(sel),
		Order:        order,
		Line:         order + 1,
		Declarations: decls,
	}
}

func decl(prop, val string) stylesheet.Declaration {
	return stylesheet.Declaration{Property: prop, Value: val}
}

func important(prop, val string) stylesheet.Declaration {
	return stylesheet.Declaration{Property: prop, Value: val, Important: true}
}

func TestSort(t *testing.T) {
	rules := []stylesheet.Rule{
		rule("#id", 0),
		rule(".b", 1),
		rule("div", 2),
		rule(".a", 3),
		rule("ul li", 4),
	}

	Sort(rules)

	expected := []string{"div", "ul li", ".b", ".a", "#id"}
	for i, sel := range expected {
		if rules[i].Selector != sel {
			t.Errorf("position %d: got %s, want %s", i, rules[i].Selector, sel)
		}
	}
}

func TestSortTiesBySourceOrder(t *testing.T) {
	rules := []stylesheet.Rule{rule(".x", 5), rule(".y", 2), rule(".z", 9)}
	Sort(rules)
	expected := []int{2, 5, 9}
	for i, o := range expected {
		if rules[i].Order != o {
			t.Errorf("position %d: got order %d, want %d", i, rules[i].Order, o)
		}
	}
}

func TestResolve(t *testing.T) {
	rules := []stylesheet.Rule{
		rule("#main p", 0, decl("color", "red"), decl("margin", "0")),
		rule("p", 1, decl("color", "black"), important("margin", "1em"), decl("padding", "2px")),
		rule(".lead", 2, decl("color", "navy"), decl("padding", "4px")),
		rule(".lead", 3, decl("padding", "8px")),
	}

	got := Resolve(rules)

	want := []struct {
		prop, value, selector string
	}{
		{"color", "red", "#main p"},
		{"margin", "1em", "p"},
		{"padding", "8px", ".lead"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d declarations, want %d: %+v", len(got), len(want), got)
	}
	for i, w := range want {
		if got[i].Property != w.prop || got[i].Value != w.value || got[i].Selector != w.selector {
			t.Errorf("declaration %d = %s: %s from %q, want %s: %s from %q",
				i, got[i].Property, got[i].Value, got[i].Selector, w.prop, w.value, w.selector)
		}
	}
	if rules[0].Selector != "#main p" {
		t.Error("Resolve reordered its input")
	}
}

func TestResolveLaterImportantWins(t *testing.T) {
	rules := []stylesheet.Rule{
		rule("#a", 0, important("color", "red")),
		rule("div", 1, important("color", "blue")),
		rule(".c", 2, decl("color", "green")),
	}
	got := Resolve(rules)
	if len(got) != 1 || got[0].Value != "red" {
		t.Errorf("got %+v, want color red from #a", got)
	}
}

func TestResolveEmpty(t *testing.T) {
	if got := Resolve(nil); len(got) != 0 {
		t.Errorf("expected no declarations, got %+v", got)
	}
}

func TestMatching(t *testing.T) {
	rules := []stylesheet.Rule{rule("ul > li", 0), rule("P", 1), rule(".x", 2), rule("p", 3)}
	got := Matching(rules, []string{"ul  >\tli", "p"})
	if len(got) != 3 {
		t.Fatalf("got %d rules, want 3", len(got))
	}
	for i, o := range []int{0, 1, 3} {
		if got[i].Order != o {
			t.Errorf("match %d order = %d, want %d", i, got[i].Order, o)
		}
	}
}

func TestForMedia(t *testing.T) {
	rules := []stylesheet.Rule{
		{Selector: "a"},
		{Selector: "b", Media: "@media print"},
		{Selector: "c", Media: "@media screen and (min-width: 40em)"},
		{Selector: "d", Media: "@media not print"},
		{Selector: "e", Media: "@media only screen, tv"},
		{Selector: "f", Media: "@media (min-width: 40em)"},
		{Selector: "g", Media: "@media print @supports (display: grid)"},
		{Selector: "h", Media: "@supports (display: grid) @media not screen"},
		{Selector: "i", Media: "@media screenreader"},
	}
	tests := []struct {
		media string
		want  []string
	}{
		{"", []string{"a"}},
		{"print", []string{"a", "b", "f", "g", "h"}},
		{"SCREEN", []string{"a", "c", "d", "e", "f"}},
		{"tv", []string{"a", "d", "e", "f", "h"}},
	}
	for _, tt := range tests {
		t.Run(tt.media, func(t *testing.T) {
			got := ForMedia(rules, tt.media)
			var sels []string
			for _, r := range got {
				sels = append(sels, r.Selector)
			}
			if strings.Join(sels, " ") != strings.Join(tt.want, " ") {
				t.Errorf("ForMedia(%q) = %v, want %v", tt.media, sels, tt.want)
			}
		})
	}
}

func TestForMediaNegatedQueryDoesNotApply(t *testing.T) {
	rules := []stylesheet.Rule{
		rule("a", 0, decl("color", "red")),
		rule("a", 1, decl("color", "blue")),
	}
	rules[1].Media = "@media not print"
	rules[1].Line = 2

	got := Resolve(ForMedia(rules, "print"))
	if len(got) != 1 || got[0].Value != "red" {
		t.Fatalf("print resolved to %+v, want color: red", got)
	}

	got = Resolve(ForMedia(rules, "screen"))
	if len(got) != 1 || got[0].Value != "blue" || got[0].Line != 2 {
		t.Errorf("screen resolved to %+v, want color: blue from line 2", got)
	}
}
