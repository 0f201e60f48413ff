package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetgraph-go/internal/style"
	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph"
	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph/output"
)

func newDumpCmd() *cobra.Command {
	dumpCmd := &cobra.Command{
		Use:   "dump <workbook>",
		Short: "Write a workbook's typed data as JSON beside it",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	dumpCmd.Flags().StringVarP(&outputPath, "output", "o", "", `Output file path (default: <workbook>.json, "-" for stdout)`)
	return dumpCmd
}

func runDump(cmd *cobra.Command, args []string) error {
	jsonData, err := snapshot(args[0])
	if err != nil {
		return err
	}

	if outputPath == "-" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	}

	target := outputPath
	if target == "" {
		target = snapshotPath(args[0])
	}
	if err := os.WriteFile(target, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), style.Wrote(target))
	return nil
}

// snapshot reads a workbook and serializes its graph.
func snapshot(path string) ([]byte, error) {
	g, err := sheetgraph.ReadFile(path, readOptions())
	if err != nil {
		return nil, fmt.Errorf("reading %s failed: %w", path, err)
	}

	jsonData, err := output.ToJSON(g, pretty)
	if err != nil {
		return nil, fmt.Errorf("serialization failed: %w", err)
	}
	return jsonData, nil
}

// writeSnapshot writes a workbook's snapshot beside it and returns the
// snapshot path.
func writeSnapshot(path string) (string, error) {
	jsonData, err := snapshot(path)
	if err != nil {
		return "", err
	}

	target := snapshotPath(path)
	if err := os.WriteFile(target, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return target, nil
}

// snapshotPath swaps a workbook path's extension for .json.
func snapshotPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".json"
}
