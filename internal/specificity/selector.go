package specificity

import (
	"regexp"
	"slices"
	"strings"
)

// The category patterns follow the approximation used by
// premailer/css_parser (lib/css_parser/regexps.rb). They are not a
// selector grammar: each pattern is scanned over the whole text on its own.

var pseudoClasses = []string{
	"link", "visited", "active",
	"hover", "focus",
	"lang",
	"target",
	"enabled", "disabled", "checked", "indeterminate",
	"root",
	"nth-child", "nth-last-child", "nth-of-type", "nth-last-of-type",
	"first-child", "last-child", "first-of-type", "last-of-type",
	"only-child", "only-of-type",
	"empty", "contains",
}

var pseudoElements = []string{
	"after", "before",
	"first-letter", "first-line",
	"selection",
}

var (
	// IDs
	idPattern = regexp.MustCompile(`#`)
	// Classes, attributes, pseudo-classes
	classPattern = regexp.MustCompile(`(?i)(\.\w+)|\[(\w+)|(:(` + strings.Join(pseudoClasses, "|") + `))`)
	// Elements, pseudo-elements
	typePattern = regexp.MustCompile(`(?i)((^|[\s+>~]+)\w+|:{1,2}(` + strings.Join(pseudoElements, "|") + `))`)
	// Any pseudo selector, counted or not
	pseudoPattern = regexp.MustCompile(`::?([\w-]+)`)
)

// FromSelector derives the specificity of a single selector. It never
// fails: any text is counted on a best effort basis.
func FromSelector(selector string) Specificity {
	return New(
		count(idPattern, selector),
		count(classPattern, selector),
		count(typePattern, selector),
	)
}

func count(re *regexp.Regexp, s string) int {
	return len(re.FindAllStringIndex(s, -1))
}

// PseudoClasses returns the pseudo-class names counted towards b.
func PseudoClasses() []string {
	return append([]string(nil), pseudoClasses...)
}

// PseudoElements returns the pseudo-element names counted towards c.
func PseudoElements() []string {
	return append([]string(nil), pseudoElements...)
}

// Uncounted returns the pseudo selectors in selector that FromSelector
// does not recognise, such as :is or :not, in order of appearance.
func Uncounted(selector string) []string {
	var out []string
	for _, m := range pseudoPattern.FindAllStringSubmatch(selector, -1) {
		name := strings.ToLower(m[1])
		if !known(name) {
			out = append(out, m[0])
		}
	}
	return out
}

func known(name string) bool {
	return slices.Contains(pseudoClasses, name) || slices.Contains(pseudoElements, name)
}
