// Package lint checks stylesheet rules against the limits of a profile.
package lint

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/specificity/internal/profile"
	"github.com/dshills/specificity/internal/report"
	"github.com/dshills/specificity/internal/specificity"
	"github.com/dshills/specificity/internal/stylesheet"
)

// Entries converts rules into report entries in source order.
func Entries(rules []stylesheet.Rule) []report.Entry {
	entries := make([]report.Entry, len(rules))
	for i, r := range rules {
		entries[i] = report.Entry{
			Selector:    r.Selector,
			Specificity: r.Specificity,
			Line:        r.Line,
			Media:       r.Media,
		}
	}
	return entries
}

// Check runs every enabled check of prof over rules. Findings are sorted
// and numbered F-0001, F-0002, ...
func Check(rules []stylesheet.Rule, prof *profile.Profile) []report.Finding {
	var findings []report.Finding
	add := func(c report.Category, r stylesheet.Rule, format string, args ...any) {
		sev, ok := prof.Severity(c)
		if !ok {
			return
		}
		findings = append(findings, report.Finding{
			Severity: sev,
			Category: c,
			Selector: r.Selector,
			Line:     r.Line,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	limit, hasLimit := prof.Limits.Max()
	seen := make(map[string]int)

	for _, r := range rules {
		if hasLimit && r.Specificity.CompareTo(limit) > 0 {
			add(report.CategoryOverSpecific, r, "specificity %s exceeds limit %s", r.Specificity, limit)
		}

		if maxIDs := prof.Limits.MaxIDs; maxIDs != nil {
			if ids := r.Specificity.Values()[0]; ids > *maxIDs {
				add(report.CategoryIDSelector, r, "%d ID selector(s), limit %d", ids, *maxIDs)
			}
		}

		if maxDepth := prof.Limits.MaxCompound; maxDepth != nil {
			if n := Compounds(r.Selector); n > *maxDepth {
				add(report.CategoryDeepSelector, r, "%d compound selectors chained, limit %d", n, *maxDepth)
			}
		}

		key := r.Media + "\x00" + r.Selector
		if line, ok := seen[key]; ok {
			add(report.CategoryDuplicateSelector, r, "selector already defined at line %d", line)
		} else {
			seen[key] = r.Line
		}

		if pseudo := specificity.Uncounted(r.Selector); len(pseudo) > 0 {
			add(report.CategoryUncountedPseudo, r, "%s not counted, specificity may be understated", strings.Join(pseudo, ", "))
		}

		var props []string
		for _, d := range r.Declarations {
			if d.Important {
				props = append(props, d.Property)
			}
		}
		if len(props) > 0 {
			add(report.CategoryImportant, r, "!important on %s", strings.Join(props, ", "))
		}
	}

	report.SortFindings(findings)
	for i := range findings {
		findings[i].ID = fmt.Sprintf("F-%04d", i+1)
	}
	return findings
}

// Compounds returns the number of compound selectors joined by
// combinators in selector. Text inside parentheses and brackets is not
// split.
func Compounds(selector string) int {
	n, depth := 0, 0
	inCompound := false
	for _, r := range selector {
		switch {
		case r == '(' || r == '[':
			depth++
		case (r == ')' || r == ']') && depth > 0:
			depth--
		case depth == 0 && (unicode.IsSpace(r) || r == '>' || r == '+' || r == '~'):
			inCompound = false
			continue
		}
		if !inCompound {
			n++
			inCompound = true
		}
	}
	return n
}
