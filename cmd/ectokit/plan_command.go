// ABOUTME: The plan subcommand
// ABOUTME: Prints the slice plan a build would use, without writing output
package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/ectokit/ectokit-go/internal/patch"
)

var sliceTypeNames = map[int8]string{
	0: "default",
	1: "kick",
	2: "snare",
	3: "transient",
	4: "random",
}

func newPlanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <config.toml>",
		Short: "Show the slice plan for a patch config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := patch.Inspect(args[0])
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.AppendHeader(table.Row{"Device", "Start", "Stop", "Frames", "Type"})
			tw.SetColumnConfigs([]table.ColumnConfig{
				{Number: 1, Align: text.AlignRight},
				{Number: 2, Align: text.AlignRight},
				{Number: 3, Align: text.AlignRight},
				{Number: 4, Align: text.AlignRight},
			})
			for i, slc := range summary.Plan.Slices {
				device := fmt.Sprintf("%d.%d", summary.StartIndex+i, summary.Variation)
				tw.AppendRow(table.Row{
					device,
					strconv.Itoa(slc.Start),
					strconv.Itoa(slc.Stop),
					strconv.Itoa(slc.Length()),
					sliceTypeNames[summary.Types[i]],
				})
			}

			fmt.Printf("%s: %d slices at %d Hz\n", summary.PatchName,
				len(summary.Plan.Slices), summary.Plan.SampleRate)
			fmt.Println(tw.Render())
			return nil
		},
	}
}
