// Package rules implements the rule types that bind graph targets to the
// actions producing them.
package rules

import (
	"context"

	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ domain.Rule = (*ShellRule)(nil)

// ShellRule produces its target by running a shell command.
type ShellRule struct {
	target   domain.DynamicNode
	deps     []domain.Node
	command  string
	executor ports.Executor
	logger   ports.Logger
}

// NewShellRule creates a rule that builds target from deps by running
// command.
func NewShellRule(
	target domain.DynamicNode,
	deps []domain.Node,
	command string,
	executor ports.Executor,
	logger ports.Logger,
) *ShellRule {
	return &ShellRule{
		target:   target,
		deps:     deps,
		command:  command,
		executor: executor,
		logger:   logger,
	}
}

// Target returns the node the rule produces.
func (r *ShellRule) Target() domain.DynamicNode { return r.target }

// DependsOn returns the nodes the target is built from.
func (r *ShellRule) DependsOn() []domain.Node { return r.deps }

// Command returns the shell command the rule runs.
func (r *ShellRule) Command() string { return r.command }

// UpToDate reports whether the target is newer than all its dependencies.
func (r *ShellRule) UpToDate() (bool, error) {
	return domain.UpToDate(r.target, r.deps), nil
}

// Execute logs the command and runs it through the executor.
func (r *ShellRule) Execute(ctx context.Context) error {
	r.logger.Info(r.command)

	if err := r.executor.Execute(ctx, r.command, nil); err != nil {
		err = zerr.Wrap(err, domain.ErrCommandFailed.Error())
		err = zerr.With(err, "command", r.command)
		return zerr.With(err, "target", r.target.ID())
	}
	return nil
}
