package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reclaim/internal/census"
)

func newCountCommand(ctx *commandContext) *cobra.Command {
	var includeHidden bool

	cmd := &cobra.Command{
		Use:         "count [dir]",
		Short:       "Count file types recursively",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			report, err := census.Count(root, includeHidden)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if report.Total == 0 {
				fmt.Fprintln(out, "No files found.")
				return nil
			}

			rows := make([][]string, 0, len(report.Entries))
			for _, entry := range report.Entries {
				name := entry.Extension
				if name == census.NoExtension {
					name = "(no extension)"
				}
				rows = append(rows, []string{
					name,
					strconv.Itoa(entry.Count),
					fmt.Sprintf("%.1f%%", entry.Percent),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Type", "Files", "Share"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight},
				[]string{"Total", strconv.Itoa(report.Total), ""},
			))

			for _, path := range report.Unreadable {
				fmt.Fprintf(out, "unreadable: %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeHidden, "include-hidden", false, "Include hidden files and directories")
	return cmd
}
