// Package stylesheet reads CSS files and splits them into one rule per
// selector, each carrying its specificity and source position.
package stylesheet

import (
	"crypto/sha256"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/specificity/internal/specificity"
)

// Sheet holds a loaded stylesheet with its content and metadata.
type Sheet struct {
	FilePath string
	Raw      string
	Lines    []string
	Hash     string
	Rules    []Rule
}

// Declaration is a single property: value pair from a rule body.
type Declaration struct {
	Property  string `json:"property" yaml:"property"`
	Value     string `json:"value" yaml:"value"`
	Important bool   `json:"important,omitempty" yaml:"important,omitempty"`
}

// Rule is one selector of a style rule. A rule written as "a, b { ... }"
// yields two Rules sharing the same declarations.
type Rule struct {
	Selector     string
	Specificity  specificity.Specificity
	Media        string
	Line         int
	Order        int
	Declarations []Declaration
}

// Load reads a stylesheet, computes its SHA-256 hash and parses its rules.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stylesheet.Load: %w", err)
	}
	raw := string(data)
	h := sha256.Sum256(data)
	return &Sheet{
		FilePath: path,
		Raw:      raw,
		Lines:    strings.Split(raw, "\n"),
		Hash:     fmt.Sprintf("sha256:%x", h),
		Rules:    Parse(raw),
	}, nil
}

// Selectors returns the selector text of every rule in source order.
func (s *Sheet) Selectors() []string {
	out := make([]string, len(s.Rules))
	for i, r := range s.Rules {
		out[i] = r.Selector
	}
	return out
}
