package domain

import "context"

// Rule binds a target node to the dependencies and the action that
// produce it. The order of dependencies carries no meaning for
// correctness; it only determines display order.
type Rule interface {
	// Target returns the node the rule produces.
	Target() DynamicNode

	// DependsOn returns the nodes the target is built from.
	DependsOn() []Node

	// UpToDate reports whether the target currently needs no rebuild.
	UpToDate() (bool, error)

	// Execute runs the rule's action. Callers are expected to have brought
	// all dependencies up to date first.
	Execute(ctx context.Context) error
}

// UpToDate reports whether target is current relative to deps based on
// timestamps alone. A target without a timestamp is never up to date. A
// dependency without a timestamp counts as older than the target, so a
// non-file dependency never forces a rebuild; a dependency with a
// timestamp must be strictly older than the target.
func UpToDate(target Node, deps []Node) bool {
	tt, ok := target.Timestamp()
	if !ok {
		return false
	}
	for _, dep := range deps {
		dt, ok := dep.Timestamp()
		if ok && !dt.Before(tt) {
			return false
		}
	}
	return true
}
