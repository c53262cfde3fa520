// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor by handing commands to the system
// shell.
type Executor struct{}

// NewExecutor creates an Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs command through "sh -c". env entries are appended to the
// inherited process environment. When the context carries a telemetry
// vertex the command's output streams into it, otherwise it goes to the
// process's own stdout and stderr.
func (e *Executor) Execute(ctx context.Context, command string, env []string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command) //nolint:gosec // user provided command
	cmd.Env = append(os.Environ(), env...)

	if vertex, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = vertex.Stdout()
		cmd.Stderr = vertex.Stderr()
	} else {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		exitCode := -1 // unknown or signal
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}
	return nil
}
