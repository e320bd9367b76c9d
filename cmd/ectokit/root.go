// ABOUTME: Root cobra command wiring for the ectokit CLI
// ABOUTME: Registers the build, plan, clean, preview and version commands
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ectokit/ectokit-go/internal/version"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ectokit",
		Short:         "Build sampler patch assets from a patch config",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newPlanCommand())
	rootCmd.AddCommand(newCleanCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the ectokit version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s %s\n", version.Product, version.Version)
		},
	}
}
