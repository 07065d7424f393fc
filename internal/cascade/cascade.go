// Package cascade orders style rules by specificity and resolves the
// declarations that win for a single element.
package cascade

import (
	"sort"
	"strings"

	"github.com/dshills/specificity/internal/specificity"
	"github.com/dshills/specificity/internal/stylesheet"
)

// Applied is a declaration that won the cascade, with the rule it came from.
type Applied struct {
	Property    string                  `json:"property" yaml:"property"`
	Value       string                  `json:"value" yaml:"value"`
	Important   bool                    `json:"important,omitempty" yaml:"important,omitempty"`
	Selector    string                  `json:"selector" yaml:"selector"`
	Specificity specificity.Specificity `json:"specificity" yaml:"specificity"`
	Line        int                     `json:"line" yaml:"line"`
}

// Sort orders rules for application: lower specificity first, then by
// source order. Applying rules in this order lets the last one win.
func Sort(rules []stylesheet.Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		a, b := rules[i].Specificity, rules[j].Specificity
		if !a.Equal(b) {
			return a.Less(b)
		}
		return rules[i].Order < rules[j].Order
	})
}

// Resolve applies rules that all match one element and returns the
// winning declaration per property, sorted by property name. An
// !important declaration beats any normal one regardless of order.
// rules is not modified.
func Resolve(rules []stylesheet.Rule) []Applied {
	ordered := append([]stylesheet.Rule(nil), rules...)
	Sort(ordered)

	won := make(map[string]Applied)
	for _, r := range ordered {
		for _, d := range r.Declarations {
			cur, ok := won[d.Property]
			if ok && cur.Important && !d.Important {
				continue
			}
			won[d.Property] = Applied{
				Property:    d.Property,
				Value:       d.Value,
				Important:   d.Important,
				Selector:    r.Selector,
				Specificity: r.Specificity,
				Line:        r.Line,
			}
		}
	}

	out := make([]Applied, 0, len(won))
	for _, a := range won {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Property < out[j].Property })
	return out
}

// Matching returns the rules whose selector is one of selectors. Text is
// compared case-insensitively with whitespace runs collapsed.
func Matching(rules []stylesheet.Rule, selectors []string) []stylesheet.Rule {
	want := make([]string, len(selectors))
	for i, s := range selectors {
		want[i] = normalize(s)
	}
	var out []stylesheet.Rule
	for _, r := range rules {
		sel := normalize(r.Selector)
		for _, w := range want {
			if strings.EqualFold(sel, w) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// ForMedia keeps unconditional rules plus, when media is not empty, the
// conditional rules that apply to that media type. Every @media query list
// in a rule's condition chain must hold; other grouping rules (@supports,
// @layer, ...) are assumed to hold. Media features are not evaluated.
func ForMedia(rules []stylesheet.Rule, media string) []stylesheet.Rule {
	media = strings.ToLower(strings.TrimSpace(media))
	var out []stylesheet.Rule
	for _, r := range rules {
		if r.Media == "" || (media != "" && conditionHolds(r.Media, media)) {
			out = append(out, r)
		}
	}
	return out
}

// conditionHolds splits a chain such as "@media print @supports (x: y)"
// into its at-rules and checks each @media prelude against media.
func conditionHolds(chain, media string) bool {
	var name string
	var prelude []string
	check := func() bool {
		return name != "@media" || queryListMatches(strings.Join(prelude, " "), media)
	}
	for _, tok := range strings.Fields(strings.ToLower(chain)) {
		if strings.HasPrefix(tok, "@") {
			if name != "" && !check() {
				return false
			}
			name, prelude = tok, nil
			continue
		}
		prelude = append(prelude, tok)
	}
	return name == "" || check()
}

// queryListMatches reports whether any comma separated query in list
// selects media. A query without a media type means "all"; "only" is
// ignored and "not" negates the whole query.
func queryListMatches(list, media string) bool {
	if strings.TrimSpace(list) == "" {
		return true
	}
	for _, query := range strings.Split(list, ",") {
		fields := strings.Fields(query)
		negated := false
		if len(fields) > 0 && (fields[0] == "not" || fields[0] == "only") {
			negated = fields[0] == "not"
			fields = fields[1:]
		}
		mediaType := "all"
		if len(fields) > 0 && !strings.HasPrefix(fields[0], "(") {
			mediaType = fields[0]
		}
		if (mediaType == "all" || mediaType == media) != negated {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
