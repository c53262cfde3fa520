package domain

import "time"

// Node is a single addressable artifact in the build graph. Nodes are
// identified by their ID: the graph keeps exactly one node per id, and
// later registrations of the same id are dropped in favor of the first.
type Node interface {
	// ID returns the stable identifier of the node, typically a file path.
	ID() string

	// Timestamp returns the point in time the node was last created or
	// modified. The second return value is false when the node has no
	// observable timestamp, for example a file that does not exist yet.
	Timestamp() (time.Time, bool)
}

// StaticNode is a node that exists independently of the build system.
// Static nodes are never produced or removed by a build; the graph only
// verifies their presence.
type StaticNode interface {
	Node

	// CheckExists returns nil when the node is present, or an error
	// describing why it is not.
	CheckExists() error
}

// DynamicNode is a node owned by the build system. Every dynamic node in
// a verified graph has exactly one rule producing it.
type DynamicNode interface {
	Node

	// Clean removes whatever artifact the node owns. Cleaning a node that
	// was never built is a no-op, not an error.
	Clean() error
}

// FileNode is implemented by nodes backed by a filesystem path.
type FileNode interface {
	Node

	// Path returns the filesystem path backing the node.
	Path() string
}

// ModificationNode is a dynamic node that represents an in-place
// transformation of a file that already exists. Several modifications may
// target the same file; the key tells them apart, and the node id is
// derived from both via ModificationID.
type ModificationNode interface {
	DynamicNode

	// Path returns the path of the file being modified.
	Path() string

	// Key returns the modification key.
	Key() string

	// CloneLocation returns the path of the registered pristine copy of
	// the file. The second return value is false when no clone has been
	// registered yet.
	CloneLocation() (string, bool)

	// CreateClone copies the file to a sibling location and registers it
	// as the pristine copy. A file has at most one clone, shared by all
	// modifications of that file; creating a second one is an error.
	CreateClone() error
}

// ModificationID derives the node id for a modification of the file at
// path under the given key.
func ModificationID(path, key string) string {
	return path + "_" + key
}
