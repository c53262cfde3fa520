package fs

import (
	"path/filepath"
	"strings"

	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.InputResolver = (*Resolver)(nil)

// Resolver implements the InputResolver interface using filepath.Glob.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveInputs expands glob patterns relative to root. Literal paths pass
// through untouched so that targets which do not exist yet survive
// resolution. Manifest order is preserved and duplicates are dropped.
func (r *Resolver) ResolveInputs(inputs []string, root string) ([]string, error) {
	seen := make(map[string]bool)
	resolved := make([]string, 0, len(inputs))

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			resolved = append(resolved, path)
		}
	}

	for _, input := range inputs {
		path := filepath.Join(root, input)

		if !strings.ContainsAny(input, "*?[") {
			add(path)
			continue
		}

		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob pattern"), "pattern", path)
		}
		if len(matches) == 0 {
			return nil, zerr.With(zerr.New("pattern matched no files"), "pattern", path)
		}
		for _, match := range matches {
			add(match)
		}
	}

	return resolved, nil
}
