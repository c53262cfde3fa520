package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/remake/internal/adapters/config"
	"go.trai.ch/remake/internal/adapters/fs"
	"go.trai.ch/remake/internal/adapters/state"
	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports/mocks"
	"go.trai.ch/remake/internal/engine/rules"
	"go.uber.org/mock/gomock"
)

// chdirTemp switches the test into a fresh temp directory so manifest
// paths resolve against it.
func chdirTemp(t *testing.T) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(cwd))
	})
	require.NoError(t, os.Chdir(t.TempDir()))
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile("remake.yaml", []byte(content), 0o600))
	return "remake.yaml"
}

func newTestLoader(t *testing.T, ctrl *gomock.Controller) *config.Loader {
	t.Helper()

	store, err := state.NewStore(".remake/state.json")
	require.NoError(t, err)

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	return config.NewLoader(mocks.NewMockExecutor(ctrl), fs.NewHasher(), store, fs.NewResolver(), logger)
}

func TestLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chdirTemp(t)
	require.NoError(t, os.WriteFile("a.c", []byte("int a;"), 0o600))
	require.NoError(t, os.WriteFile("b.c", []byte("int b;"), 0o600))
	require.NoError(t, os.WriteFile("conf.h", []byte("#define X 1\n"), 0o600))

	path := writeManifest(t, `
version: "1"
rules:
  - target: a.o
    deps: [a.c]
    run: cc -c a.c -o a.o
  - target: b.o
    deps: [b.c]
    run: cc -c b.c -o b.o
  - target: prog
    compile:
      sources: [a.o, b.o]
      flags: [-O2]
  - modify: conf.h
    key: banner
    run: "printf '// banner\n' >> conf.h"
`)

	g, err := newTestLoader(t, ctrl).Load(path)
	require.NoError(t, err)

	// a.o, a.c, b.o, b.c, prog, conf.h_banner, conf.h
	assert.Equal(t, 7, g.Len())

	// Source files are static, rule targets generated, even when they only
	// appear as dependencies of other rules.
	_, ok := mustNode(t, g, "a.c").(*fs.StaticFile)
	assert.True(t, ok)
	_, ok = mustNode(t, g, "a.o").(*fs.GeneratedFile)
	assert.True(t, ok)

	// The compile form produced a shell rule with the full command line.
	prog, ok := mustRule(t, g, "prog").(*rules.ShellRule)
	require.True(t, ok)
	assert.Equal(t, "cc -O2 a.o b.o -o prog", prog.Command())

	// The modification rule hangs off the file it modifies.
	mod, ok := mustRule(t, g, "conf.h_banner").(*rules.ModifyRule)
	require.True(t, ok)
	require.NotEmpty(t, mod.DependsOn())
	assert.Equal(t, "conf.h", mod.DependsOn()[0].ID())
}

func mustNode(t *testing.T, g *domain.Graph, id string) domain.Node {
	t.Helper()
	n, ok := g.Node(id)
	require.True(t, ok, "node %s not in graph", id)
	return n
}

func mustRule(t *testing.T, g *domain.Graph, id string) domain.Rule {
	t.Helper()
	r, ok := g.Rule(id)
	require.True(t, ok, "no rule for %s", id)
	return r
}

func TestLoader_Load_TargetAsDependency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chdirTemp(t)

	// Neither file exists on disk; both are produced by rules, so loading
	// must not demand their existence.
	path := writeManifest(t, `
rules:
  - target: a.o
    run: touch a.o
  - target: prog
    deps: [a.o]
    run: cc a.o -o prog
`)

	g, err := newTestLoader(t, ctrl).Load(path)
	require.NoError(t, err)

	_, ok := mustNode(t, g, "a.o").(*fs.GeneratedFile)
	assert.True(t, ok)
	assert.Equal(t, []string{"prog"}, g.Requesters("a.o"))
}

func TestLoader_Load_ModifyGeneratedFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chdirTemp(t)

	path := writeManifest(t, `
rules:
  - target: out.txt
    run: echo base > out.txt
  - modify: out.txt
    key: stamp
    run: echo stamp >> out.txt
`)

	g, err := newTestLoader(t, ctrl).Load(path)
	require.NoError(t, err)

	// The modification depends on the rule that generates the file, so a
	// build produces it before modifying it.
	mod := mustRule(t, g, "out.txt_stamp")
	require.NotEmpty(t, mod.DependsOn())
	dep := mod.DependsOn()[0]
	assert.Equal(t, "out.txt", dep.ID())
	_, ok := dep.(*fs.GeneratedFile)
	assert.True(t, ok)
}

func TestLoader_Load_GlobDeps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chdirTemp(t)
	require.NoError(t, os.WriteFile("a.c", []byte("int a;"), 0o600))
	require.NoError(t, os.WriteFile("b.c", []byte("int b;"), 0o600))

	path := writeManifest(t, `
rules:
  - target: all.o
    deps: ["*.c"]
    run: cc -c *.c
`)

	g, err := newTestLoader(t, ctrl).Load(path)
	require.NoError(t, err)

	rule := mustRule(t, g, "all.o")
	ids := make([]string, 0, 2)
	for _, dep := range rule.DependsOn() {
		ids = append(ids, dep.ID())
	}
	assert.Equal(t, []string{"a.c", "b.c"}, ids)
}

func TestLoader_Load_MissingSourceFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chdirTemp(t)

	path := writeManifest(t, `
rules:
  - target: a.o
    deps: [missing.c]
    run: cc -c missing.c -o a.o
`)

	_, err := newTestLoader(t, ctrl).Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStaticNodeMissing)
}

func TestLoader_Load_DuplicateTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chdirTemp(t)

	path := writeManifest(t, `
rules:
  - target: a.o
    run: one
  - target: a.o
    run: two
`)

	_, err := newTestLoader(t, ctrl).Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateRuleTarget)
}

func TestLoader_Load_Cycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chdirTemp(t)

	path := writeManifest(t, `
rules:
  - target: first
    deps: [second]
    run: touch first
  - target: second
    deps: [first]
    run: touch second
`)

	_, err := newTestLoader(t, ctrl).Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCycleDetected)
}

func TestLoader_Load_MalformedRules(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		wantMsg  string
	}{
		{
			name: "neither form",
			manifest: `
rules:
  - deps: [a.c]
`,
			wantMsg: "rule is neither a creation nor a modification",
		},
		{
			name: "both forms",
			manifest: `
rules:
  - target: a.o
    modify: a.c
    key: k
    run: touch a.o
`,
			wantMsg: "rule mixes creation and modification",
		},
		{
			name: "no action",
			manifest: `
rules:
  - target: a.o
    deps: [a.c]
`,
			wantMsg: "creation rule has no action",
		},
		{
			name: "two actions",
			manifest: `
rules:
  - target: a.o
    run: cc
    compile:
      sources: [a.c]
`,
			wantMsg: "creation rule has both run and compile",
		},
		{
			name: "modify without key",
			manifest: `
rules:
  - modify: a.c
    run: echo hi >> a.c
`,
			wantMsg: "modification rule has no key",
		},
		{
			name: "modify without command",
			manifest: `
rules:
  - modify: a.c
    key: banner
`,
			wantMsg: "modification rule has no command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			chdirTemp(t)
			path := writeManifest(t, tt.manifest)

			_, err := newTestLoader(t, ctrl).Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoader_Load_BadManifest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	chdirTemp(t)
	loader := newTestLoader(t, ctrl)

	_, err := loader.Load("remake.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")

	path := writeManifest(t, "rules: {not a list}\nversion: [")
	_, err = loader.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse manifest")

	path = writeManifest(t, "version: \"2\"\nrules: []\n")
	_, err = loader.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported manifest version")
}
