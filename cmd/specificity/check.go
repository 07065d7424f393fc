package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/specificity/internal/lint"
	"github.com/dshills/specificity/internal/profile"
	"github.com/dshills/specificity/internal/render"
	"github.com/dshills/specificity/internal/report"
	"github.com/dshills/specificity/internal/schema"
	"github.com/dshills/specificity/internal/stylesheet"
	"github.com/spf13/cobra"
)

type checkFlags struct {
	format            string
	out               string
	profileName       string
	profileFile       string
	maxFindings       int
	severityThreshold string
	failOn            string
	verbose           bool
}

func newCheckCmd() *cobra.Command {
	f := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <stylesheet>",
		Short: "Report selector specificity and lint it against a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], f, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "json", "Output format: json, md or yaml")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.profileName, "profile", "default", "Built-in profile name")
	flags.StringVar(&f.profileFile, "profile-file", "", "Load the profile from a YAML file instead")
	flags.IntVar(&f.maxFindings, "max-findings", report.DefaultMaxFindings, "Maximum number of findings to report")
	flags.StringVar(&f.severityThreshold, "severity-threshold", "info", "Minimum severity: info, warn, or critical")
	flags.StringVar(&f.failOn, "fail-on", "", "Exit non-zero if the verdict meets this level: review or over_specific")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")

	return cmd
}

func runCheck(path string, f *checkFlags, w io.Writer) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	if f.failOn != "" {
		if _, err := verdictMeetsThreshold(report.VerdictClean, f.failOn); err != nil {
			return exitError(3, "%v", err)
		}
	}

	// 1. Load stylesheet
	verbose("Loading stylesheet: %s", path)
	sheet, err := stylesheet.Load(path)
	if err != nil {
		return exitError(3, "failed to load stylesheet: %v", err)
	}
	verbose("Parsed %d selectors", len(sheet.Rules))

	// 2. Load profile
	prof, err := loadProfile(f, verbose)
	if err != nil {
		return err
	}

	// 3. Lint
	findings := lint.Check(sheet.Rules, prof)
	verbose("Found %d findings", len(findings))

	rep := report.Report{
		Tool:    "specificity",
		Version: version,
		Input: report.Input{
			File:    filepath.Base(path),
			Hash:    sheet.Hash,
			Profile: prof.Name,
		},
		Selectors: lint.Entries(sheet.Rules),
		Findings:  findings,
	}

	// 4. Post-process
	report.SortEntries(rep.Selectors)
	report.Truncate(&rep, f.maxFindings)
	rep.Findings = filterBySeverity(rep.Findings, f.severityThreshold)
	rep.Summary = report.ComputeSummary(rep.Selectors, rep.Findings)

	// 5. Validate
	if errs := schema.Validate(&rep, len(sheet.Lines)); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "Report validation errors:")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		return exitError(5, "report failed schema validation")
	}

	// 6. Output
	var output string
	switch f.format {
	case "md":
		output = render.Markdown(&rep)
	default:
		out, ok, err := encode(f.format, rep)
		if !ok {
			return exitError(3, "unknown format: %s", f.format)
		}
		if err != nil {
			return err
		}
		output = out
	}
	if f.out != "" {
		verbose("Writing output to %s", f.out)
	}
	if err := emit(w, f.out, output); err != nil {
		return err
	}

	// 7. Exit code based on --fail-on
	if f.failOn != "" {
		meets, _ := verdictMeetsThreshold(rep.Summary.Verdict, f.failOn)
		if meets {
			return exitError(2, "verdict %s meets fail threshold %s", rep.Summary.Verdict, f.failOn)
		}
	}

	return nil
}

func loadProfile(f *checkFlags, verbose func(string, ...any)) (*profile.Profile, error) {
	if f.profileFile == "" {
		verbose("Loading profile: %s", f.profileName)
		prof, err := profile.LoadBuiltin(f.profileName)
		if err != nil {
			return nil, exitError(3, "failed to load profile: %v", err)
		}
		return prof, nil
	}

	verbose("Loading profile file: %s", f.profileFile)
	prof, err := profile.LoadFile(f.profileFile)
	if err != nil {
		return nil, exitError(3, "failed to load profile: %v", err)
	}
	if errs := schema.ValidateProfile(prof); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "Profile validation errors:")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  %s\n", e)
		}
		return nil, exitError(5, "profile %s failed schema validation", f.profileFile)
	}
	return prof, nil
}

func filterBySeverity(findings []report.Finding, threshold string) []report.Finding {
	minOrder := severityThresholdOrder(threshold)
	var result []report.Finding
	for _, fd := range findings {
		if !fd.Severity.Valid() || fd.Severity.Order() <= minOrder {
			result = append(result, fd)
		}
	}
	return result
}

func severityThresholdOrder(threshold string) int {
	switch strings.ToLower(threshold) {
	case "critical":
		return 0
	case "warn":
		return 1
	default:
		return 2 // info shows everything
	}
}

func verdictMeetsThreshold(verdict report.Verdict, failOn string) (bool, error) {
	verdictLevel := map[report.Verdict]int{
		report.VerdictClean:        0,
		report.VerdictNeedsReview:  1,
		report.VerdictOverSpecific: 2,
	}
	thresholdLevel := map[string]int{
		"clean":         0,
		"review":        1,
		"needs_review":  1,
		"needs-review":  1,
		"over_specific": 2,
		"over-specific": 2,
		"critical":      2,
	}

	tl, ok := thresholdLevel[strings.ToLower(failOn)]
	if !ok {
		return false, fmt.Errorf("unrecognized --fail-on value %q", failOn)
	}
	vl, ok := verdictLevel[verdict]
	if !ok {
		return false, nil
	}
	return vl >= tl, nil
}
