package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dshills/specificity/internal/cascade"
	"github.com/dshills/specificity/internal/stylesheet"
	"github.com/spf13/cobra"
)

type cascadeFlags struct {
	match   []string
	media   string
	format  string
	verbose bool
}

func newCascadeCmd() *cobra.Command {
	f := &cascadeFlags{}

	cmd := &cobra.Command{
		Use:   "cascade <stylesheet>",
		Short: "Resolve the declarations an element receives from matching selectors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCascade(args[0], f, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&f.match, "match", nil, "Selector known to match the element (may be repeated)")
	flags.StringVar(&f.media, "media", "", "Also apply rules whose @media queries hold for this media type, e.g. print")
	flags.StringVar(&f.format, "format", "text", "Output format: text, json or yaml")
	flags.BoolVar(&f.verbose, "verbose", false, "Print processing steps to stderr")
	_ = cmd.MarkFlagRequired("match")

	return cmd
}

func runCascade(path string, f *cascadeFlags, w io.Writer) error {
	logger := log.New(os.Stderr, "", 0)
	verbose := func(msg string, args ...any) {
		if f.verbose {
			logger.Printf(msg, args...)
		}
	}

	if len(f.match) == 0 {
		return exitError(3, "at least one --match selector is required")
	}

	verbose("Loading stylesheet: %s", path)
	sheet, err := stylesheet.Load(path)
	if err != nil {
		return exitError(3, "failed to load stylesheet: %v", err)
	}

	rules := cascade.ForMedia(sheet.Rules, f.media)
	rules = cascade.Matching(rules, f.match)
	verbose("%d of %d rules match", len(rules), len(sheet.Rules))

	applied := cascade.Resolve(rules)

	if f.format == "text" {
		var b strings.Builder
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		for _, a := range applied {
			value := a.Value
			if a.Important {
				value += " !important"
			}
			fmt.Fprintf(tw, "%s: %s;\t%s\t%s\tL%d\n", a.Property, value, a.Specificity, a.Selector, a.Line)
		}
		tw.Flush()
		return emit(w, "", b.String())
	}
	out, ok, err := encode(f.format, applied)
	if !ok {
		return exitError(3, "unknown format: %s", f.format)
	}
	if err != nil {
		return err
	}
	return emit(w, "", out)
}
