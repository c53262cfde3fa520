// Package config loads the YAML build manifest into a verified graph.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/remake/internal/adapters/fs" //nolint:depguard // Manifest entries become fs nodes
	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/remake/internal/engine/rules" //nolint:depguard // Manifest entries become engine rules
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the manifest looked up when no path is given.
	DefaultFilename = "remake.yaml"

	// Version is the manifest format version this loader understands.
	Version = "1"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for YAML manifests.
type Loader struct {
	executor ports.Executor
	hasher   ports.Hasher
	store    ports.StateStore
	resolver ports.InputResolver
	logger   ports.Logger
}

// NewLoader creates a Loader. The collaborators are handed through to the
// rules and nodes the manifest describes.
func NewLoader(
	executor ports.Executor,
	hasher ports.Hasher,
	store ports.StateStore,
	resolver ports.InputResolver,
	logger ports.Logger,
) *Loader {
	return &Loader{
		executor: executor,
		hasher:   hasher,
		store:    store,
		resolver: resolver,
		logger:   logger,
	}
}

// Load reads the manifest at path and returns the verified build graph it
// describes. Paths in the manifest are relative to the manifest's
// directory.
func (l *Loader) Load(path string) (*domain.Graph, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest")
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest")
	}

	if manifest.Version != "" && manifest.Version != Version {
		return nil, zerr.With(zerr.New("unsupported manifest version"), "version", manifest.Version)
	}

	b := &graphBuilder{
		loader:  l,
		root:    filepath.Dir(path),
		targets: make(map[string]bool),
		mods:    make(map[string]*fs.ModifiedFile),
		nodes:   make(map[string]domain.Node),
	}
	return b.build(&manifest)
}

// graphBuilder tracks the node identities of one manifest while its rules
// are assembled.
type graphBuilder struct {
	loader  *Loader
	root    string
	targets map[string]bool
	mods    map[string]*fs.ModifiedFile
	nodes   map[string]domain.Node
}

func (b *graphBuilder) build(manifest *Manifest) (*domain.Graph, error) {
	// First pass: every creation target and modification id must be known
	// before dependencies resolve, or a dep on a not-yet-built target
	// would be mistaken for a missing source file.
	for i, dto := range manifest.Rules {
		if err := b.index(i, dto); err != nil {
			return nil, err
		}
	}

	ruleSet := make([]domain.Rule, 0, len(manifest.Rules))
	for _, dto := range manifest.Rules {
		rule, err := b.rule(dto)
		if err != nil {
			return nil, err
		}
		ruleSet = append(ruleSet, rule)
	}

	return domain.NewGraph(ruleSet)
}

// index validates the form of one rule entry and records the ids it
// produces.
func (b *graphBuilder) index(i int, dto RuleDTO) error {
	switch {
	case dto.Target != "" && dto.Modify != "":
		return zerr.With(zerr.New("rule mixes creation and modification"), "index", i)

	case dto.Target != "":
		if dto.Run == "" && dto.Compile == nil {
			return zerr.With(zerr.New("creation rule has no action"), "target", dto.Target)
		}
		if dto.Run != "" && dto.Compile != nil {
			return zerr.With(zerr.New("creation rule has both run and compile"), "target", dto.Target)
		}
		b.targets[b.path(dto.Target)] = true

	case dto.Modify != "":
		if dto.Key == "" {
			return zerr.With(zerr.New("modification rule has no key"), "modify", dto.Modify)
		}
		if dto.Run == "" {
			return zerr.With(zerr.New("modification rule has no command"), "modify", dto.Modify)
		}
		node := fs.NewModifiedFile(b.path(dto.Modify), dto.Key, b.loader.store, b.loader.logger)
		b.mods[node.ID()] = node
		b.nodes[node.ID()] = node

	default:
		return zerr.With(zerr.New("rule is neither a creation nor a modification"), "index", i)
	}
	return nil
}

func (b *graphBuilder) rule(dto RuleDTO) (domain.Rule, error) {
	switch {
	case dto.Modify != "":
		return b.modifyRule(dto)
	case dto.Compile != nil:
		return b.compileRule(dto)
	default:
		return b.shellRule(dto)
	}
}

func (b *graphBuilder) shellRule(dto RuleDTO) (domain.Rule, error) {
	deps, err := b.depNodes(dto.Deps)
	if err != nil {
		return nil, err
	}
	target := b.creationTarget(b.path(dto.Target))
	return rules.NewShellRule(target, deps, dto.Run, b.loader.executor, b.loader.logger), nil
}

func (b *graphBuilder) compileRule(dto RuleDTO) (domain.Rule, error) {
	sources, err := b.depNodes(dto.Compile.Sources)
	if err != nil {
		return nil, err
	}
	extras, err := b.depNodes(dto.Deps)
	if err != nil {
		return nil, err
	}
	return rules.NewCompileRule(
		b.creationTarget(b.path(dto.Target)),
		sources,
		extras,
		dto.Compile.Flags,
		dto.Compile.Compiler,
		b.loader.executor,
		b.loader.logger,
	)
}

func (b *graphBuilder) modifyRule(dto RuleDTO) (domain.Rule, error) {
	path := b.path(dto.Modify)
	node := b.mods[domain.ModificationID(path, dto.Key)]

	deps, err := b.depNodes(dto.Deps)
	if err != nil {
		return nil, err
	}
	// The file being modified is an implicit dependency: it must exist, or
	// be produced by another rule, before the modifier touches it.
	deps = append([]domain.Node{b.nodeFor(path)}, deps...)

	return rules.NewShellFileModifyRule(
		node,
		deps,
		dto.Run,
		b.loader.executor,
		b.loader.hasher,
		b.loader.store,
		b.loader.logger,
	), nil
}

// depNodes resolves dependency references, expanding glob patterns, and
// maps each resolved path to its canonical node.
func (b *graphBuilder) depNodes(deps []string) ([]domain.Node, error) {
	if len(deps) == 0 {
		return nil, nil
	}
	resolved, err := b.loader.resolver.ResolveInputs(deps, b.root)
	if err != nil {
		return nil, err
	}
	nodes := make([]domain.Node, len(resolved))
	for i, p := range resolved {
		nodes[i] = b.nodeFor(p)
	}
	return nodes, nil
}

// creationTarget returns the dynamic node for a creation rule's target.
func (b *graphBuilder) creationTarget(id string) domain.DynamicNode {
	if n, ok := b.nodes[id].(domain.DynamicNode); ok {
		return n
	}
	n := fs.NewGeneratedFile(id, b.loader.logger)
	b.nodes[id] = n
	return n
}

// nodeFor returns the canonical node for a dependency reference: the
// known target or modification node under that id, or a static source
// file otherwise.
func (b *graphBuilder) nodeFor(id string) domain.Node {
	if n, ok := b.nodes[id]; ok {
		return n
	}
	var n domain.Node
	if b.targets[id] {
		n = fs.NewGeneratedFile(id, b.loader.logger)
	} else {
		n = fs.NewStaticFile(id)
	}
	b.nodes[id] = n
	return n
}

// path anchors a manifest-relative reference at the manifest's directory.
func (b *graphBuilder) path(p string) string {
	return filepath.Join(b.root, p)
}
