// Package profile handles loading and describing specificity lint profiles.
package profile

import (
	"embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dshills/specificity/internal/report"
	"github.com/dshills/specificity/internal/specificity"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Off disables a check in the checks map.
const Off = "off"

// Profile defines the limits and check severities for a lint run.
type Profile struct {
	Name        string            `yaml:"name"`
	Version     int               `yaml:"version"`
	Description string            `yaml:"description"`
	Limits      Limits            `yaml:"limits"`
	Checks      map[string]string `yaml:"checks"`
}

// Limits bounds selector weight. Unset limits are not checked.
type Limits struct {
	MaxSpecificity []int `yaml:"max_specificity"`
	MaxIDs         *int  `yaml:"max_ids"`
	MaxCompound    *int  `yaml:"max_compound"`
}

// Max returns the max_specificity limit and whether one is set.
func (l Limits) Max() (specificity.Specificity, bool) {
	if len(l.MaxSpecificity) != 3 {
		return specificity.Specificity{}, false
	}
	return specificity.New(l.MaxSpecificity[0], l.MaxSpecificity[1], l.MaxSpecificity[2]), true
}

// Severity returns the configured severity for a category. It reports
// false when the check is off or not listed.
func (p *Profile) Severity(c report.Category) (report.Severity, bool) {
	v, ok := p.Checks[c.Key()]
	if !ok || strings.EqualFold(v, Off) {
		return "", false
	}
	return report.ParseSeverity(v)
}

// LoadBuiltin loads a built-in profile by name.
func LoadBuiltin(name string) (*Profile, error) {
	filename := name + ".yaml"
	data, err := builtinFS.ReadFile("builtin/" + filename)
	if err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: unknown profile %q: %w", name, err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile.LoadBuiltin: parse %q: %w", name, err)
	}
	return &p, nil
}

// LoadFile loads a user profile from a YAML file.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile.LoadFile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("profile.LoadFile: parse %q: %w", path, err)
	}
	return &p, nil
}

// List returns the names of all available built-in profiles.
func List() ([]string, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		n := e.Name()
		if strings.HasSuffix(n, ".yaml") {
			names = append(names, strings.TrimSuffix(n, ".yaml"))
		}
	}
	return names, nil
}

// Describe renders the profile as human readable text.
func Describe(p *Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Profile: %s (version %d)\n\n", p.Name, p.Version)
	if p.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", strings.TrimSpace(p.Description))
	}

	b.WriteString("Limits:\n")
	if limit, ok := p.Limits.Max(); ok {
		fmt.Fprintf(&b, "- max_specificity: %s\n", limit)
	}
	if p.Limits.MaxIDs != nil {
		fmt.Fprintf(&b, "- max_ids: %d\n", *p.Limits.MaxIDs)
	}
	if p.Limits.MaxCompound != nil {
		fmt.Fprintf(&b, "- max_compound: %d\n", *p.Limits.MaxCompound)
	}
	b.WriteString("\n")

	if len(p.Checks) > 0 {
		b.WriteString("Checks:\n")
		keys := make([]string, 0, len(p.Checks))
		for k := range p.Checks {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "- %s: %s\n", k, p.Checks[k])
		}
	}

	return b.String()
}
