package progrock_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/remake/internal/adapters/telemetry/progrock"
	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
)

func TestConsoleRecorder(t *testing.T) {
	var buf bytes.Buffer
	rec := progrock.NewConsole(&buf)
	ctx := context.Background()

	vctx, vertex := rec.Record(ctx, "a.o")
	carried, ok := ports.VertexFromContext(vctx)
	require.True(t, ok)
	assert.Same(t, vertex, carried)

	fmt.Fprint(vertex.Stdout(), "object code written\n")
	vertex.Log(domain.LogLevelInfo, "compiling")
	vertex.Complete(nil)

	_, cached := rec.Record(ctx, "prog")
	cached.Cached()

	_, failed := rec.Record(ctx, "b.o")
	failed.Complete(errors.New("exit status 1"))

	require.NoError(t, rec.Close())

	out := buf.String()
	assert.Contains(t, out, "=> a.o\n")
	assert.Contains(t, out, "=> a.o DONE")
	assert.Contains(t, out, "object code written\n")
	assert.Contains(t, out, "[INFO] compiling\n")
	assert.Contains(t, out, "=> prog CACHED\n")
	assert.Contains(t, out, "=> b.o ERROR: exit status 1\n")
}

func TestConsoleRecorder_RepeatedUpdates(t *testing.T) {
	var buf bytes.Buffer
	rec := progrock.NewConsole(&buf)

	_, vertex := rec.Record(context.Background(), "a.o")
	fmt.Fprint(vertex.Stdout(), "chunk one\n")
	fmt.Fprint(vertex.Stdout(), "chunk two\n")
	vertex.Complete(nil)
	require.NoError(t, rec.Close())

	// The vertex transitions print once each, log chunks all pass through.
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("=> a.o\n")))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("=> a.o DONE")))
	assert.Contains(t, buf.String(), "chunk one\n")
	assert.Contains(t, buf.String(), "chunk two\n")
}
