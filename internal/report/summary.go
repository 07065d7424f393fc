package report

import "github.com/dshills/specificity/internal/specificity"

// ComputeSummary derives the verdict, score, counts and specificity totals.
func ComputeSummary(entries []Entry, findings []Finding) Summary {
	var crit, warn, info int
	for _, f := range findings {
		switch f.Severity {
		case SeverityCritical:
			crit++
		case SeverityWarn:
			warn++
		case SeverityInfo:
			info++
		}
	}

	var verdict Verdict
	switch {
	case crit > 0:
		verdict = VerdictOverSpecific
	case warn > 0:
		verdict = VerdictNeedsReview
	default:
		verdict = VerdictClean
	}

	var total specificity.Specificity
	values := make([]specificity.Specificity, len(entries))
	for i, e := range entries {
		values[i] = e.Specificity
		total = total.Add(e.Specificity)
	}

	return Summary{
		Verdict:       verdict,
		Score:         ComputeScore(findings),
		SelectorCount: len(entries),
		CriticalCount: crit,
		WarnCount:     warn,
		InfoCount:     info,
		Max:           specificity.Max(values...),
		Total:         total,
	}
}
