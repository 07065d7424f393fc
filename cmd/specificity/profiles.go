package main

import (
	"fmt"
	"io"

	"github.com/dshills/specificity/internal/profile"
	"github.com/spf13/cobra"
)

func newProfilesCmd() *cobra.Command {
	var show string

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List built-in lint profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfiles(show, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&show, "show", "", "Describe the named profile")

	return cmd
}

func runProfiles(show string, w io.Writer) error {
	if show != "" {
		p, err := profile.LoadBuiltin(show)
		if err != nil {
			return exitError(3, "failed to load profile: %v", err)
		}
		return emit(w, "", profile.Describe(p))
	}

	names, err := profile.List()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
	return nil
}
