// ABOUTME: The build subcommand
// ABOUTME: Runs a full patch build from a config file
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ectokit/ectokit-go/internal/patch"
)

func newBuildCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build <config.toml>",
		Short: "Slice the source audio and build the patch archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := patch.Build(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %d slices -> %s\n", len(result.Rendered), result.WavDir)
			fmt.Printf("Wrote %d info files -> %s\n", len(result.Rendered), result.InfoDir)
			fmt.Printf("Created zip -> %s\n", result.ZipPath)
			return nil
		},
	}
}
