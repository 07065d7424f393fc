package report

const DefaultMaxFindings = 100

// Truncate caps findings to maxFindings. If the list exceeds the limit it
// is cut and a synthetic WARN finding is appended noting the truncation.
func Truncate(r *Report, maxFindings int) {
	if maxFindings <= 0 {
		maxFindings = DefaultMaxFindings
	}
	if len(r.Findings) <= maxFindings {
		return
	}
	r.Findings = append(r.Findings[:maxFindings-1], Finding{
		ID:       "F-TRUNC",
		Severity: SeverityWarn,
		Category: CategoryTruncated,
		Selector: "(truncated)",
		Line:     1,
		Message:  "The number of findings exceeded the configured limit. Re-run with a higher --max-findings to see all results.",
	})
}
