package report

// ComputeScore calculates a deterministic score from finding severities.
// Starts at 100, subtracts 15 per CRITICAL, 5 per WARN, 1 per INFO, clamps at 0.
func ComputeScore(findings []Finding) int {
	score := 100
	for _, f := range findings {
		switch f.Severity {
		case SeverityCritical:
			score -= 15
		case SeverityWarn:
			score -= 5
		case SeverityInfo:
			score -= 1
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}
