package report

import "sort"

// SortFindings sorts findings by severity (CRITICAL > WARN > INFO),
// then by line ascending.
func SortFindings(findings []Finding) {
	sort.SliceStable(findings, func(i, j int) bool {
		oi := findings[i].Severity.Order()
		oj := findings[j].Severity.Order()
		if oi != oj {
			return oi < oj
		}
		return findings[i].Line < findings[j].Line
	})
}

// SortEntries puts the most specific selectors first. Equal specificity
// keeps source order.
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Specificity.CompareTo(entries[j].Specificity) > 0
	})
}
