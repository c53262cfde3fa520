package ports

// StateStore defines the interface for the persistent modification state
// of the working tree: which files have a pristine clone registered and
// which modifications were applied, recorded as a content hash of the
// modified file.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StateStore interface {
	// Clone returns the registered clone path for the file at path.
	// The second return value is false when no clone is registered.
	Clone(path string) (string, bool)

	// PutClone registers clonePath as the pristine copy of path.
	PutClone(path, clonePath string) error

	// DeleteClone removes the clone registration for path. Removing a
	// registration that does not exist is a no-op.
	DeleteClone(path string) error

	// BuiltHash returns the content hash recorded when the modification
	// with the given id was last applied. The second return value is
	// false when the modification was never applied.
	BuiltHash(id string) (string, bool)

	// PutBuiltHash records the content hash of the file after the
	// modification with the given id was applied.
	PutBuiltHash(id, hash string) error

	// DeleteBuiltHash removes the recorded hash for the modification with
	// the given id. Removing a record that does not exist is a no-op.
	DeleteBuiltHash(id string) error

	// Clear drops all clone registrations and recorded hashes.
	Clear() error

	// Flush writes the current state to the backing storage. Implementations
	// may persist eagerly on every mutation; Flush is the shutdown guarantee.
	Flush() error
}
