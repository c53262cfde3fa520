package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/remake/internal/adapters/shell"
	"go.trai.ch/zerr"
)

func TestExecutor_Execute(t *testing.T) {
	executor := shell.NewExecutor()
	out := filepath.Join(t.TempDir(), "out.txt")

	require.NoError(t, executor.Execute(context.Background(), "echo hello > "+out, nil))

	data, err := os.ReadFile(out) //nolint:gosec // Test file path
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestExecutor_Execute_Environment(t *testing.T) {
	executor := shell.NewExecutor()
	out := filepath.Join(t.TempDir(), "out.txt")

	err := executor.Execute(context.Background(), `echo "$GREETING" > `+out, []string{"GREETING=hi there"})
	require.NoError(t, err)

	data, err := os.ReadFile(out) //nolint:gosec // Test file path
	require.NoError(t, err)
	assert.Equal(t, "hi there\n", string(data))
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	executor := shell.NewExecutor()

	err := executor.Execute(context.Background(), "exit 3", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
}

func TestExecutor_Execute_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := shell.NewExecutor().Execute(ctx, "sleep 5", nil)
	require.Error(t, err)
}
