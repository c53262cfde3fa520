package rules

import (
	"strings"

	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCompiler is used when a compile rule names no compiler.
const DefaultCompiler = "cc"

// NewCompileRule creates a ShellRule whose command compiles sources into
// target: `<compiler> <flags> <sources> -o <target>`. The extras are
// additional dependencies, typically headers, that appear in the command
// line only through their effect on the up-to-date decision. Target and
// sources must be file-backed so their paths can appear in the command.
func NewCompileRule(
	target domain.DynamicNode,
	sources []domain.Node,
	extras []domain.Node,
	flags []string,
	compiler string,
	executor ports.Executor,
	logger ports.Logger,
) (*ShellRule, error) {
	targetFile, ok := target.(domain.FileNode)
	if !ok {
		return nil, zerr.With(zerr.New("compile target is not file-backed"), "target", target.ID())
	}
	if compiler == "" {
		compiler = DefaultCompiler
	}

	parts := make([]string, 0, len(flags)+len(sources)+3)
	parts = append(parts, compiler)
	parts = append(parts, flags...)

	deps := make([]domain.Node, 0, len(sources)+len(extras))
	for _, source := range sources {
		sourceFile, ok := source.(domain.FileNode)
		if !ok {
			return nil, zerr.With(zerr.New("compile source is not file-backed"), "source", source.ID())
		}
		parts = append(parts, sourceFile.Path())
		deps = append(deps, source)
	}
	deps = append(deps, extras...)

	parts = append(parts, "-o", targetFile.Path())

	return NewShellRule(target, deps, strings.Join(parts, " "), executor, logger), nil
}
