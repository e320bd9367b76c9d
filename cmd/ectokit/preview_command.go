// ABOUTME: The preview subcommand
// ABOUTME: Renders one slice and plays it through the default audio device
package main

import (
	"github.com/spf13/cobra"

	"github.com/ectokit/ectokit-go/internal/patch"
	"github.com/ectokit/ectokit-go/internal/preview"
)

func newPreviewCommand() *cobra.Command {
	var sliceIdx int

	cmd := &cobra.Command{
		Use:   "preview <config.toml>",
		Short: "Audition one rendered slice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pcm, channels, sampleRate, err := patch.RenderSlice(args[0], sliceIdx)
			if err != nil {
				return err
			}
			return preview.Play(pcm, channels, sampleRate)
		},
	}

	cmd.Flags().IntVar(&sliceIdx, "slice", 0, "Slice index to play")

	return cmd
}
