package main

import (
	"io"

	"github.com/dshills/specificity/internal/render"
	"github.com/dshills/specificity/internal/report"
	"github.com/dshills/specificity/internal/specificity"
	"github.com/spf13/cobra"
)

type calcFlags struct {
	format string
	sorted bool
}

func newCalcCmd() *cobra.Command {
	f := &calcFlags{}

	cmd := &cobra.Command{
		Use:   "calc <selector>...",
		Short: "Print the specificity of each selector",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(args, f, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "text", "Output format: text, json or yaml")
	flags.BoolVar(&f.sorted, "sort", false, "List the most specific selector first")

	return cmd
}

// runCalc reports each selector with its position among the arguments in
// the line field.
func runCalc(selectors []string, f *calcFlags, w io.Writer) error {
	entries := make([]report.Entry, 0, len(selectors))
	for i, sel := range selectors {
		entries = append(entries, report.Entry{
			Selector:    sel,
			Specificity: specificity.FromSelector(sel),
			Line:        i + 1,
		})
	}
	if f.sorted {
		report.SortEntries(entries)
	}

	if f.format == "text" {
		return emit(w, "", render.Table(entries))
	}
	out, ok, err := encode(f.format, entries)
	if !ok {
		return exitError(3, "unknown format: %s", f.format)
	}
	if err != nil {
		return err
	}
	return emit(w, "", out)
}
