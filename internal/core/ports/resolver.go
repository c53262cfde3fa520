package ports

// InputResolver defines the interface for resolving dependency patterns.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type InputResolver interface {
	// ResolveInputs expands the given glob patterns relative to root into
	// a list of concrete file paths. Literal paths pass through untouched
	// whether or not they exist.
	ResolveInputs(inputs []string, root string) ([]string, error)
}
