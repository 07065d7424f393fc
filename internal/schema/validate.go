// Package schema validates check reports and user supplied profiles.
package schema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dshills/specificity/internal/profile"
	"github.com/dshills/specificity/internal/report"
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks a Report for structural validity.
// lineCount is the total number of lines in the stylesheet (0 to skip line range checks).
func Validate(r *report.Report, lineCount int) []ValidationError {
	var errs []ValidationError

	if r.Tool == "" {
		errs = append(errs, ValidationError{"tool", "required"})
	}
	if r.Version == "" {
		errs = append(errs, ValidationError{"version", "required"})
	}
	if !r.Summary.Verdict.Valid() {
		errs = append(errs, ValidationError{"summary.verdict", fmt.Sprintf("invalid verdict: %q", r.Summary.Verdict)})
	}

	// Verify the summary against a recomputation
	expected := report.ComputeSummary(r.Selectors, r.Findings)
	if r.Summary.Score != expected.Score {
		errs = append(errs, ValidationError{"summary.score", fmt.Sprintf("score %d does not match computed %d", r.Summary.Score, expected.Score)})
	}
	if r.Summary.SelectorCount != expected.SelectorCount {
		errs = append(errs, ValidationError{"summary.selector_count", fmt.Sprintf("expected %d, got %d", expected.SelectorCount, r.Summary.SelectorCount)})
	}
	if r.Summary.CriticalCount != expected.CriticalCount {
		errs = append(errs, ValidationError{"summary.critical_count", fmt.Sprintf("expected %d, got %d", expected.CriticalCount, r.Summary.CriticalCount)})
	}
	if r.Summary.WarnCount != expected.WarnCount {
		errs = append(errs, ValidationError{"summary.warn_count", fmt.Sprintf("expected %d, got %d", expected.WarnCount, r.Summary.WarnCount)})
	}
	if r.Summary.InfoCount != expected.InfoCount {
		errs = append(errs, ValidationError{"summary.info_count", fmt.Sprintf("expected %d, got %d", expected.InfoCount, r.Summary.InfoCount)})
	}
	if !r.Summary.Max.Equal(expected.Max) {
		errs = append(errs, ValidationError{"summary.max", fmt.Sprintf("expected %s, got %s", expected.Max, r.Summary.Max)})
	}
	if !r.Summary.Total.Equal(expected.Total) {
		errs = append(errs, ValidationError{"summary.total", fmt.Sprintf("expected %s, got %s", expected.Total, r.Summary.Total)})
	}

	for i, e := range r.Selectors {
		prefix := fmt.Sprintf("selectors[%d]", i)
		if e.Selector == "" {
			errs = append(errs, ValidationError{prefix + ".selector", "required"})
		}
		for j, v := range e.Specificity.Values() {
			if v < 0 {
				errs = append(errs, ValidationError{fmt.Sprintf("%s.specificity[%d]", prefix, j), "must be >= 0"})
			}
		}
		errs = append(errs, validateLine(prefix+".line", e.Line, lineCount)...)
	}

	findingIDs := make(map[string]bool)
	for i, f := range r.Findings {
		prefix := fmt.Sprintf("findings[%d]", i)
		if f.ID == "" {
			errs = append(errs, ValidationError{prefix + ".id", "required"})
		} else if findingIDs[f.ID] {
			errs = append(errs, ValidationError{prefix + ".id", fmt.Sprintf("duplicate ID: %q", f.ID)})
		} else {
			findingIDs[f.ID] = true
		}
		if !f.Severity.Valid() {
			errs = append(errs, ValidationError{prefix + ".severity", fmt.Sprintf("invalid: %q", f.Severity)})
		}
		if !f.Category.Valid() {
			errs = append(errs, ValidationError{prefix + ".category", fmt.Sprintf("invalid: %q", f.Category)})
		}
		if f.Selector == "" {
			errs = append(errs, ValidationError{prefix + ".selector", "required"})
		}
		if f.Message == "" {
			errs = append(errs, ValidationError{prefix + ".message", "required"})
		}
		errs = append(errs, validateLine(prefix+".line", f.Line, lineCount)...)
	}

	return errs
}

func validateLine(path string, line, lineCount int) []ValidationError {
	if line < 1 {
		return []ValidationError{{path, "must be >= 1"}}
	}
	if lineCount > 0 && line > lineCount {
		return []ValidationError{{path, fmt.Sprintf("exceeds stylesheet line count (%d)", lineCount)}}
	}
	return nil
}

// ValidateProfile checks a profile loaded from a user file.
func ValidateProfile(p *profile.Profile) []ValidationError {
	var errs []ValidationError

	if p.Name == "" {
		errs = append(errs, ValidationError{"name", "required"})
	}
	if p.Version < 1 {
		errs = append(errs, ValidationError{"version", "must be >= 1"})
	}

	if n := len(p.Limits.MaxSpecificity); n != 0 && n != 3 {
		errs = append(errs, ValidationError{"limits.max_specificity", fmt.Sprintf("want 3 values, got %d", n)})
	}
	for i, v := range p.Limits.MaxSpecificity {
		if v < 0 {
			errs = append(errs, ValidationError{fmt.Sprintf("limits.max_specificity[%d]", i), "must be >= 0"})
		}
	}
	if p.Limits.MaxIDs != nil && *p.Limits.MaxIDs < 0 {
		errs = append(errs, ValidationError{"limits.max_ids", "must be >= 0"})
	}
	if p.Limits.MaxCompound != nil && *p.Limits.MaxCompound < 1 {
		errs = append(errs, ValidationError{"limits.max_compound", "must be >= 1"})
	}

	for key, sev := range p.Checks {
		path := "checks." + key
		if !slices.Contains(report.Categories, report.Category(strings.ToUpper(key))) {
			errs = append(errs, ValidationError{path, "unknown check"})
			continue
		}
		if strings.EqualFold(sev, profile.Off) {
			continue
		}
		if _, ok := report.ParseSeverity(sev); !ok {
			errs = append(errs, ValidationError{path, fmt.Sprintf("invalid severity: %q", sev)})
		}
	}

	return errs
}
