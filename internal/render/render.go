// Package render produces human readable output from a report.
package render

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dshills/specificity/internal/report"
)

// Markdown renders a report as a Markdown document.
func Markdown(r *report.Report) string {
	var b strings.Builder

	// Summary
	b.WriteString("# Specificity Report\n\n")
	if r.Input.File != "" {
		fmt.Fprintf(&b, "**Stylesheet:** %s\n", r.Input.File)
	}
	if r.Input.Profile != "" {
		fmt.Fprintf(&b, "**Profile:** %s\n", r.Input.Profile)
	}
	fmt.Fprintf(&b, "**Verdict:** %s\n", r.Summary.Verdict)
	fmt.Fprintf(&b, "**Score:** %d / 100\n", r.Summary.Score)
	fmt.Fprintf(&b, "**Selectors:** %d, highest specificity %s\n", r.Summary.SelectorCount, r.Summary.Max)
	fmt.Fprintf(&b, "**Findings:** %d critical, %d warnings, %d info\n\n",
		r.Summary.CriticalCount, r.Summary.WarnCount, r.Summary.InfoCount)

	// Findings by severity
	criticals := filterFindings(r.Findings, report.SeverityCritical)
	warns := filterFindings(r.Findings, report.SeverityWarn)
	infos := filterFindings(r.Findings, report.SeverityInfo)

	if len(criticals) > 0 {
		b.WriteString("## Critical\n\n")
		renderFindings(&b, criticals)
	}
	if len(warns) > 0 {
		b.WriteString("## Warnings\n\n")
		renderFindings(&b, warns)
	}
	if len(infos) > 0 {
		b.WriteString("## Info\n\n")
		renderFindings(&b, infos)
	}
	if len(r.Findings) == 0 {
		b.WriteString("No findings.\n\n")
	}

	// Selectors
	if len(r.Selectors) > 0 {
		b.WriteString("## Selectors\n\n")
		b.WriteString("| Specificity | Selector | Line |\n")
		b.WriteString("|---|---|---|\n")
		for _, e := range r.Selectors {
			sel := e.Selector
			if e.Media != "" {
				sel += " (" + e.Media + ")"
			}
			fmt.Fprintf(&b, "| %s | `%s` | %d |\n", e.Specificity, escapePipes(sel), e.Line)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Table renders entries as aligned text columns: specificity, selector.
func Table(entries []report.Entry) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Specificity, e.Selector)
	}
	w.Flush()
	return b.String()
}

func filterFindings(findings []report.Finding, sev report.Severity) []report.Finding {
	var result []report.Finding
	for _, f := range findings {
		if f.Severity == sev {
			result = append(result, f)
		}
	}
	return result
}

func renderFindings(b *strings.Builder, findings []report.Finding) {
	for _, f := range findings {
		if f.Category == report.CategoryTruncated {
			fmt.Fprintf(b, "- **%s**: %s\n", f.ID, f.Message)
			continue
		}
		fmt.Fprintf(b, "- **%s** `%s` (L%d, %s): %s\n", f.ID, escapePipes(f.Selector), f.Line, f.Category, f.Message)
	}
	b.WriteString("\n")
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
