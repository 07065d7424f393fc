// Package report defines the output of a stylesheet specificity check.
package report

import "github.com/dshills/specificity/internal/specificity"

// Report is the top-level output object.
type Report struct {
	Tool      string    `json:"tool" yaml:"tool"`
	Version   string    `json:"version" yaml:"version"`
	Input     Input     `json:"input" yaml:"input"`
	Summary   Summary   `json:"summary" yaml:"summary"`
	Selectors []Entry   `json:"selectors" yaml:"selectors"`
	Findings  []Finding `json:"findings" yaml:"findings"`
}

// Input describes the stylesheet and profile used for the check.
type Input struct {
	File    string `json:"file" yaml:"file"`
	Hash    string `json:"hash" yaml:"hash"`
	Profile string `json:"profile,omitempty" yaml:"profile,omitempty"`
}

// Summary holds the verdict, score, severity counts and specificity totals.
type Summary struct {
	Verdict       Verdict                 `json:"verdict" yaml:"verdict"`
	Score         int                     `json:"score" yaml:"score"`
	SelectorCount int                     `json:"selector_count" yaml:"selector_count"`
	CriticalCount int                     `json:"critical_count" yaml:"critical_count"`
	WarnCount     int                     `json:"warn_count" yaml:"warn_count"`
	InfoCount     int                     `json:"info_count" yaml:"info_count"`
	Max           specificity.Specificity `json:"max" yaml:"max"`
	Total         specificity.Specificity `json:"total" yaml:"total"`
}

// Entry is one selector of the stylesheet with its specificity.
type Entry struct {
	Selector    string                  `json:"selector" yaml:"selector"`
	Specificity specificity.Specificity `json:"specificity" yaml:"specificity"`
	Line        int                     `json:"line" yaml:"line"`
	Media       string                  `json:"media,omitempty" yaml:"media,omitempty"`
}

// Finding is a lint result attached to a selector.
type Finding struct {
	ID       string   `json:"id" yaml:"id"`
	Severity Severity `json:"severity" yaml:"severity"`
	Category Category `json:"category" yaml:"category"`
	Selector string   `json:"selector" yaml:"selector"`
	Line     int      `json:"line" yaml:"line"`
	Message  string   `json:"message" yaml:"message"`
}
