// Package diffcmd expands and runs external diff command templates.
package diffcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
)

// Placeholders recognized in a template.
const (
	Left  = "${left}"
	Right = "${right}"
	Quote = "${quote}"
)

// ErrNoTemplate indicates no diff command was configured.
var ErrNoTemplate = errors.New("no diff command configured")

// Expand substitutes the snapshot paths into template. A template wrapped
// in double quotes is unwrapped first; ${quote} becomes a literal double
// quote.
func Expand(template, left, right string) string {
	if len(template) >= 2 && strings.HasPrefix(template, `"`) && strings.HasSuffix(template, `"`) {
		template = template[1 : len(template)-1]
	}
	return strings.NewReplacer(Left, left, Right, right, Quote, `"`).Replace(template)
}

// Run executes command through the platform shell, relaying its output.
func Run(ctx context.Context, command string, stdout, stderr io.Writer) error {
	if strings.TrimSpace(command) == "" {
		return ErrNoTemplate
	}

	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", command)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", command)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %q: %w", command, err)
	}
	return nil
}
