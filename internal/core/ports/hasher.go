package ports

// Hasher defines the interface for computing content hashes and
// comparing file contents.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashFile computes the content hash of the file at path.
	HashFile(path string) (string, error)

	// FilesEqual reports whether the files at a and b have identical
	// contents.
	FilesEqual(a, b string) (bool, error)
}
