package render

import (
	"strings"
	"testing"

	"github.com/dshills/specificity/internal/report"
	"github.com/dshills/specificity/internal/specificity"
)

func sampleReport() *report.Report {
	selectors := []report.Entry{
		{Selector: "#header .nav > li a:hover", Specificity: specificity.New(1, 2, 2), Line: 12},
		{Selector: ".lead", Specificity: specificity.New(0, 1, 0), Line: 23, Media: "@media print"},
		{Selector: `[lang|="en"]`, Specificity: specificity.New(0, 1, 0), Line: 30},
	}
	findings := []report.Finding{
		{
			ID: "F-0001", Severity: report.SeverityCritical, Category: report.CategoryOverSpecific,
			Selector: "#header .nav > li a:hover", Line: 12, Message: "specificity 1,2,2 exceeds limit 0,3,2",
		},
		{
			ID: "F-0002", Severity: report.SeverityWarn, Category: report.CategoryImportant,
			Selector: "#header .nav > li a:hover", Line: 12, Message: "!important on color",
		},
		{
			ID: "F-0003", Severity: report.SeverityInfo, Category: report.CategoryDuplicateSelector,
			Selector: ".lead", Line: 33, Message: "selector already defined at line 7",
		},
	}
	return &report.Report{
		Tool:      "specificity",
		Version:   "1.0",
		Input:     report.Input{File: "site.css", Profile: "strict"},
		Summary:   report.ComputeSummary(selectors, findings),
		Selectors: selectors,
		Findings:  findings,
	}
}

func TestMarkdownContainsSections(t *testing.T) {
	md := Markdown(sampleReport())

	checks := []string{
		"# Specificity Report",
		"**Stylesheet:** site.css",
		"**Profile:** strict",
		"**Verdict:** OVER_SPECIFIC",
		"**Score:** 79 / 100",
		"**Selectors:** 3, highest specificity 1,2,2",
		"1 critical, 1 warnings, 1 info",
		"## Critical",
		"## Warnings",
		"## Info",
		"**F-0001** `#header .nav > li a:hover` (L12, OVER_SPECIFIC)",
		"## Selectors",
		"| 0,1,0 | `.lead (@media print)` | 23 |",
		"`[lang\\|=\"en\"]`",
	}
	for _, want := range checks {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestMarkdownTruncationNotice(t *testing.T) {
	r := sampleReport()
	report.Truncate(r, 2)
	r.Summary = report.ComputeSummary(r.Selectors, r.Findings)
	md := Markdown(r)

	if !strings.Contains(md, "- **F-TRUNC**: The number of findings exceeded") {
		t.Errorf("missing truncation notice:\n%s", md)
	}
	if strings.Contains(md, "(truncated)") || strings.Contains(md, "TRUNCATED") {
		t.Errorf("truncation notice rendered as a selector finding:\n%s", md)
	}
}

func TestMarkdownNoFindings(t *testing.T) {
	r := &report.Report{
		Tool:    "specificity",
		Version: "1.0",
		Summary: report.Summary{Verdict: report.VerdictClean, Score: 100},
	}
	md := Markdown(r)
	if !strings.Contains(md, "No findings.") {
		t.Error("expected 'No findings.' message")
	}
	if strings.Contains(md, "## Selectors") {
		t.Error("did not expect a selectors section")
	}
}

func TestTable(t *testing.T) {
	out := Table([]report.Entry{
		{Selector: "div", Specificity: specificity.New(0, 0, 1)},
		{Selector: "#main .content", Specificity: specificity.New(1, 1, 0)},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out)
	}
	if lines[0] != "0,0,1  div" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "1,1,0  #main .content" {
		t.Errorf("line 1 = %q", lines[1])
	}
}
