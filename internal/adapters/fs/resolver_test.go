package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/remake/internal/adapters/fs"
)

func TestResolver_ResolveInputs_Glob(t *testing.T) {
	tmpDir := t.TempDir()

	files := []string{"a.c", "b.c", "c.h"}
	for _, f := range files {
		err := os.WriteFile(filepath.Join(tmpDir, f), []byte("content"), 0o600)
		require.NoError(t, err)
	}

	resolver := fs.NewResolver()

	resolved, err := resolver.ResolveInputs([]string{"*.c"}, tmpDir)
	require.NoError(t, err)

	require.Len(t, resolved, 2)
	assert.Contains(t, resolved[0], "a.c")
	assert.Contains(t, resolved[1], "b.c")
}

func TestResolver_ResolveInputs_LiteralPassthrough(t *testing.T) {
	resolver := fs.NewResolver()

	// Literal paths survive resolution whether or not they exist, so
	// targets that have not been built yet stay in the graph.
	resolved, err := resolver.ResolveInputs([]string{"prog", "a.o"}, ".")
	require.NoError(t, err)

	assert.Equal(t, []string{"prog", "a.o"}, resolved)
}

func TestResolver_ResolveInputs_OrderAndDeduplication(t *testing.T) {
	tmpDir := t.TempDir()

	files := []string{"z.c", "a.c"}
	for _, f := range files {
		err := os.WriteFile(filepath.Join(tmpDir, f), []byte("content"), 0o600)
		require.NoError(t, err)
	}

	resolver := fs.NewResolver()

	resolved, err := resolver.ResolveInputs([]string{"z.c", "*.c", "z.c"}, tmpDir)
	require.NoError(t, err)

	// The literal entry keeps its manifest position; the glob fills in the
	// rest in sorted order and duplicates collapse onto the first mention.
	require.Len(t, resolved, 2)
	assert.Contains(t, resolved[0], "z.c")
	assert.Contains(t, resolved[1], "a.c")
}

func TestResolver_ResolveInputs_GlobError(t *testing.T) {
	resolver := fs.NewResolver()

	_, err := resolver.ResolveInputs([]string{"["}, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to glob pattern")
}

func TestResolver_ResolveInputs_NoMatches(t *testing.T) {
	resolver := fs.NewResolver()

	_, err := resolver.ResolveInputs([]string{"*.nonexistent"}, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pattern matched no files")
}
