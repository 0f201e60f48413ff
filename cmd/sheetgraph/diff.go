package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetgraph-go/internal/config"
	"github.com/ukaji3/sheetgraph-go/internal/diffcmd"
	"github.com/ukaji3/sheetgraph-go/internal/style"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <old> <new> [command-template]",
		Short: "Diff the JSON snapshots of two workbooks with an external tool",
		Long: `diff writes a JSON snapshot beside each workbook and runs an external diff
command on them. The command template may use ${left}, ${right} and ${quote}
(a literal double quote). Without a template argument, diff_command from the
config file or ` + config.DiffCommandEnv + ` is used.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: runDiff,
	}
}

func runDiff(cmd *cobra.Command, args []string) error {
	template := cfg.DiffCommand
	if len(args) == 3 {
		template = args[2]
	}
	if template == "" {
		return fmt.Errorf("%w: pass a template or set %s", diffcmd.ErrNoTemplate, config.DiffCommandEnv)
	}

	left, err := writeSnapshot(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), style.Wrote(left))

	right, err := writeSnapshot(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), style.Wrote(right))

	command := diffcmd.Expand(template, left, right)
	return diffcmd.Run(cmd.Context(), command, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
