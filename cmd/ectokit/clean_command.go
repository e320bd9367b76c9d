// ABOUTME: The clean subcommand
// ABOUTME: Removes generated wav/info/zip artifacts under a directory
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ectokit/ectokit-go/internal/cleanup"
)

func newCleanCommand() *cobra.Command {
	var dryRun bool
	var patterns []string

	cmd := &cobra.Command{
		Use:   "clean [dir]",
		Short: "Remove generated patch artifacts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := "."
			if len(args) == 1 {
				base = args[0]
			}

			targets, err := cleanup.Collect(base, patterns)
			if err != nil {
				return err
			}
			processed, err := cleanup.Remove(targets, dryRun)
			if err != nil {
				return err
			}

			verb := "Removed"
			if dryRun {
				verb = "Would remove"
			}
			for _, path := range processed {
				fmt.Printf("%s %s\n", verb, path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List files without deleting them")
	cmd.Flags().StringArrayVar(&patterns, "pattern", cleanup.DefaultPatterns, "Glob pattern to delete (repeatable)")

	return cmd
}
