package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetgraph-go/internal/style"
	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph"
)

func newSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <workbook>",
		Short: "List a workbook's sheets and row counts",
		Args:  cobra.ExactArgs(1),
		RunE:  runSheets,
	}
}

func runSheets(cmd *cobra.Command, args []string) error {
	g, err := sheetgraph.ReadFile(args[0], readOptions())
	if err != nil {
		return fmt.Errorf("reading %s failed: %w", args[0], err)
	}

	for _, name := range g.SheetNames() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
			style.Sheet.Render(name), style.Dim.Render(fmt.Sprintf("%d rows", len(g[name]))))
	}
	return nil
}
