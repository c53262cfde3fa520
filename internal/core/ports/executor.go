// Package ports defines the core interfaces for the application.
package ports

import "context"

// Executor defines the interface for running rule commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the given shell command with the specified extra
	// environment.
	//
	// The env parameter contains environment variables in "KEY=VALUE"
	// format and is appended to the inherited process environment.
	//
	// It returns an error if the command cannot be started or exits
	// non-zero.
	Execute(ctx context.Context, command string, env []string) error
}
