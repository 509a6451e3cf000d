package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"karasync/internal/timeline"
)

func newInspectCommand() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:         "inspect <timeline.json>",
		Short:       "Display a synchronized timeline",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			tl, err := timeline.Load(args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, tl)
			}

			out := cmd.OutOrStdout()
			if tl.Title != "" {
				fmt.Fprintln(out, songLabel(tl.Title, tl.Artist))
			}

			headers := []string{"#", "Start", "End", "Duration", "Words", "Text"}
			aligns := []columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft}
			rows := make([][]string, 0, len(tl.Lines))
			for i, line := range tl.Lines {
				rows = append(rows, []string{
					fmt.Sprintf("%d", i+1),
					fmt.Sprintf("%.2f", line.Start),
					fmt.Sprintf("%.2f", line.End),
					fmt.Sprintf("%.2f", line.End-line.Start),
					fmt.Sprintf("%d", len(line.Words)),
					line.Text,
				})
			}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the timeline as JSON")
	return cmd
}
