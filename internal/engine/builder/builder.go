// Package builder implements the build, clean and dag operations over a
// verified dependency graph.
package builder

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder runs the engine operations over a graph. Rules execute one at a
// time in dependency order; the graph's requesters index stays reserved
// for scheduling independent rules in parallel.
type Builder struct {
	store  ports.StateStore
	tel    ports.Telemetry
	logger ports.Logger
}

// New creates a Builder.
func New(store ports.StateStore, tel ports.Telemetry, logger ports.Logger) *Builder {
	return &Builder{store: store, tel: tel, logger: logger}
}

// WithTelemetry returns a copy of the builder that records progress to tel.
func (b *Builder) WithTelemetry(tel ports.Telemetry) *Builder {
	clone := *b
	clone.tel = tel
	return &clone
}

// Build brings the target up to date, building stale dependencies first.
// An empty target builds every node known to the graph.
func (b *Builder) Build(ctx context.Context, g *domain.Graph, target string) error {
	starts, err := startNodes(g, target)
	if err != nil {
		return err
	}

	exit := func(n domain.Node, _ int) error {
		rule, ok := g.Rule(n.ID())
		if !ok {
			return nil
		}
		return b.buildNode(ctx, n, rule)
	}

	_, err = g.Traverse(starts, nil, exit)
	return err
}

// buildNode runs a single rule unless its target is already current. The
// node's dependencies are guaranteed up to date by the post-order walk.
func (b *Builder) buildNode(ctx context.Context, n domain.Node, rule domain.Rule) error {
	upToDate, err := rule.UpToDate()
	if err != nil {
		return err
	}

	if upToDate {
		b.logger.Debug("up to date: " + n.ID())
		_, vertex := b.tel.Record(ctx, n.ID())
		vertex.Cached()
		return nil
	}

	vctx, vertex := b.tel.Record(ctx, n.ID())
	err = rule.Execute(vctx)
	vertex.Complete(err)
	return err
}

// Clean removes the target and its transitive dependencies. A full clean
// (empty target) erases the state database afterwards.
func (b *Builder) Clean(ctx context.Context, g *domain.Graph, target string) error {
	starts, err := startNodes(g, target)
	if err != nil {
		return err
	}

	exit := func(n domain.Node, _ int) error {
		dyn, ok := n.(domain.DynamicNode)
		if !ok {
			return nil
		}
		return dyn.Clean()
	}

	if _, err := g.Traverse(starts, nil, exit); err != nil {
		return err
	}

	if target == "" {
		return b.store.Clear()
	}
	return nil
}

// DAG writes the dependency tree under the target to w, one node per line,
// indented by one "+--" per dependency level. Nodes reachable through
// several paths are printed under the first path that reaches them.
func (b *Builder) DAG(g *domain.Graph, target string, w io.Writer) error {
	starts, err := startNodes(g, target)
	if err != nil {
		return err
	}

	enter := func(n domain.Node, depth int) error {
		_, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("+--", depth), n.ID())
		return err
	}

	_, err = g.Traverse(starts, enter, nil)
	return err
}

// startNodes resolves the traversal roots for an operation: every node in
// the graph for an empty target, the named node alone otherwise.
func startNodes(g *domain.Graph, target string) ([]domain.Node, error) {
	if target == "" {
		return g.AllNodes(), nil
	}
	n, ok := g.Node(target)
	if !ok {
		return nil, zerr.With(domain.ErrTargetNotFound, "target", target)
	}
	return []domain.Node{n}, nil
}
