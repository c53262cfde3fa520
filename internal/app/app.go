// Package app implements the application layer for remake.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/remake/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/remake/internal/engine/builder"
	"go.trai.ch/zerr"
)

// Options configure a single engine operation.
type Options struct {
	// ConfigPath is the manifest location.
	ConfigPath string
	// Target is the node to operate on; empty means the whole graph.
	Target string
	// Progress enables the console progress recorder.
	Progress bool
}

// App ties the manifest loader, the builder and the state store together.
type App struct {
	loader  ports.ConfigLoader
	builder *builder.Builder
	store   ports.StateStore
	logger  ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, b *builder.Builder, store ports.StateStore, logger ports.Logger) *App {
	return &App{
		loader:  loader,
		builder: b,
		store:   store,
		logger:  logger,
	}
}

// Build brings the target up to date. The state store is flushed on every
// return path past loading.
func (a *App) Build(ctx context.Context, opts Options) (err error) {
	graph, err := a.load(opts)
	if err != nil {
		return err
	}

	defer func() {
		if flushErr := a.store.Flush(); flushErr != nil && err == nil {
			err = flushErr
		}
	}()

	b := a.builder
	if opts.Progress {
		rec := progrock.NewConsole(os.Stderr)
		defer func() {
			if closeErr := rec.Close(); closeErr != nil {
				a.logger.Error(closeErr)
			}
		}()
		b = b.WithTelemetry(rec)
	}

	if err := b.Build(ctx, graph, opts.Target); err != nil {
		return zerr.Wrap(err, domain.ErrBuildExecutionFailed.Error())
	}
	return nil
}

// Clean removes generated targets and restores modified files. Mutations
// persist as they happen and a full clean must leave no state database
// behind, so this path does not flush.
func (a *App) Clean(ctx context.Context, opts Options) error {
	graph, err := a.load(opts)
	if err != nil {
		return err
	}

	if err := a.builder.Clean(ctx, graph, opts.Target); err != nil {
		return zerr.Wrap(err, "clean failed")
	}
	return nil
}

// DAG writes the dependency tree under the target to w.
func (a *App) DAG(_ context.Context, opts Options, w io.Writer) error {
	graph, err := a.load(opts)
	if err != nil {
		return err
	}
	return a.builder.DAG(graph, opts.Target, w)
}

func (a *App) load(opts Options) (*domain.Graph, error) {
	graph, err := a.loader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return graph, nil
}
