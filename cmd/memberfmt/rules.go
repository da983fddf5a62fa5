package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/memberfmt/internal/rules"
)

func newRulesCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the registered rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)

			header := table.Row{"ID", "Title", "Category", "Severity", "Enabled"}
			if verbose {
				header = append(header, "Description")
			}
			t.AppendHeader(header)

			for _, r := range rules.All() {
				d := r.Descriptor()
				row := table.Row{d.ID, d.Title, d.Category, d.Severity, d.EnabledByDefault}
				if verbose {
					row = append(row, d.Description)
				}
				t.AppendRow(row)
			}

			t.Render()
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include rule descriptions")
	return cmd
}
