// Package main provides the CLI entry point for sheetgraph.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetgraph-go/internal/config"
	"github.com/ukaji3/sheetgraph-go/internal/style"
	"github.com/ukaji3/sheetgraph-go/pkg/sheetgraph"
)

var (
	configPath   string
	trim         bool
	pretty       bool
	withMetadata bool
	outputPath   string

	cfg *config.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Error.Render("Error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetgraph",
		Short: "Turn annotated spreadsheets into typed JSON snapshots",
		Long: `sheetgraph reads workbooks whose column headers carry type annotations
(e.g. "quantity:num", "owner:customer:ref") and writes the typed data graph
as canonical JSON, or diffs the snapshots of two workbooks.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: "+config.DefaultPath+")")
	flags.BoolVar(&trim, "trim", false, "Trim whitespace around string values")
	flags.BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	flags.BoolVar(&withMetadata, "with-metadata", false, "Keep cell metadata in snapshots")

	rootCmd.AddCommand(newDumpCmd(), newDiffCmd(), newSheetsCmd())
	return rootCmd
}

// loadConfig reads the config file and applies it to every flag the user
// did not set explicitly.
func loadConfig(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	loaded, err := config.Load(configPath, flags.Changed("config"))
	if err != nil {
		return err
	}
	cfg = loaded

	if !flags.Changed("trim") {
		trim = cfg.Trim
	}
	if !flags.Changed("pretty") {
		pretty = cfg.Pretty
	}
	if !flags.Changed("with-metadata") {
		withMetadata = cfg.WithMetadata
	}
	return nil
}

// readOptions returns the graph options selected by flags and config.
func readOptions() sheetgraph.Options {
	opts := sheetgraph.DefaultOptions()
	opts.ExcludeMetadata = !withMetadata
	opts.Trim = trim
	return opts
}
