package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dshills/specificity/internal/specificity"
	"github.com/spf13/cobra"
)

type compareFlags struct {
	format string
}

type comparison struct {
	Left   side   `json:"left" yaml:"left"`
	Right  side   `json:"right" yaml:"right"`
	Winner string `json:"winner" yaml:"winner"`
}

type side struct {
	Selector    string                  `json:"selector" yaml:"selector"`
	Specificity specificity.Specificity `json:"specificity" yaml:"specificity"`
}

func newCompareCmd() *cobra.Command {
	f := &compareFlags{}

	cmd := &cobra.Command{
		Use:   "compare <left> <right>",
		Short: "Show which of two selectors wins the cascade",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(args[0], args[1], f, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&f.format, "format", "text", "Output format: text, json or yaml")

	return cmd
}

func runCompare(left, right string, f *compareFlags, w io.Writer) error {
	c := comparison{
		Left:   side{Selector: left, Specificity: specificity.FromSelector(left)},
		Right:  side{Selector: right, Specificity: specificity.FromSelector(right)},
		Winner: "equal",
	}
	switch cmp := c.Left.Specificity.CompareTo(c.Right.Specificity); {
	case cmp > 0:
		c.Winner = "left"
	case cmp < 0:
		c.Winner = "right"
	}

	if f.format == "text" {
		var b strings.Builder
		tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "left\t%s\t%s\n", c.Left.Specificity, left)
		fmt.Fprintf(tw, "right\t%s\t%s\n", c.Right.Specificity, right)
		tw.Flush()
		fmt.Fprintf(&b, "winner: %s\n", c.Winner)
		return emit(w, "", b.String())
	}
	out, ok, err := encode(f.format, c)
	if !ok {
		return exitError(3, "unknown format: %s", f.format)
	}
	if err != nil {
		return err
	}
	return emit(w, "", out)
}
