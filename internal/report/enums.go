package report

import "strings"

// Verdict summarises how specific the stylesheet is overall.
type Verdict string

const (
	VerdictClean        Verdict = "CLEAN"
	VerdictNeedsReview  Verdict = "NEEDS_REVIEW"
	VerdictOverSpecific Verdict = "OVER_SPECIFIC"
)

func (v Verdict) Valid() bool {
	switch v {
	case VerdictClean, VerdictNeedsReview, VerdictOverSpecific:
		return true
	}
	return false
}

// Severity indicates the importance of a finding.
type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarn     Severity = "WARN"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeverityWarn, SeverityCritical:
		return true
	}
	return false
}

// Order returns a sort key (lower = more important).
func (s Severity) Order() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarn:
		return 1
	case SeverityInfo:
		return 2
	default:
		return 3
	}
}

// ParseSeverity accepts a severity name in any case.
func ParseSeverity(s string) (Severity, bool) {
	sev := Severity(strings.ToUpper(strings.TrimSpace(s)))
	return sev, sev.Valid()
}

// Category classifies a finding.
type Category string

const (
	CategoryOverSpecific      Category = "OVER_SPECIFIC"
	CategoryIDSelector        Category = "ID_SELECTOR"
	CategoryDeepSelector      Category = "DEEP_SELECTOR"
	CategoryDuplicateSelector Category = "DUPLICATE_SELECTOR"
	CategoryUncountedPseudo   Category = "UNCOUNTED_PSEUDO"
	CategoryImportant         Category = "IMPORTANT_OVERRIDE"

	// CategoryTruncated marks the notice Truncate appends. It is not a
	// check and cannot be configured in a profile.
	CategoryTruncated Category = "TRUNCATED"
)

// Categories lists every lint check category in report order.
var Categories = []Category{
	CategoryOverSpecific, CategoryIDSelector, CategoryDeepSelector,
	CategoryDuplicateSelector, CategoryUncountedPseudo, CategoryImportant,
}

func (c Category) Valid() bool {
	switch c {
	case CategoryOverSpecific, CategoryIDSelector, CategoryDeepSelector,
		CategoryDuplicateSelector, CategoryUncountedPseudo, CategoryImportant,
		CategoryTruncated:
		return true
	}
	return false
}

// Key is the lower-case name used for the category in profiles.
func (c Category) Key() string {
	return strings.ToLower(string(c))
}
