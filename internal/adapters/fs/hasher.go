package fs

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes file content hashes using XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile computes the XXHash of the file's content, formatted as a
// fixed-width hex string.
func (h *Hasher) HashFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// FilesEqual reports whether the files at a and b hold identical bytes.
// Sizes are compared first so files of different lengths are never read.
func (h *Hasher) FilesEqual(a, b string) (bool, error) {
	infoA, err := os.Stat(a)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", a)
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", b)
	}
	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	fa, err := os.Open(a) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to open file"), "path", a)
	}
	defer fa.Close() //nolint:errcheck // Best effort close in defer

	fb, err := os.Open(b) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to open file"), "path", b)
	}
	defer fb.Close() //nolint:errcheck // Best effort close in defer

	bufA := make([]byte, 32*1024)
	bufB := make([]byte, 32*1024)
	for {
		nA, errA := io.ReadFull(fa, bufA)
		nB, errB := io.ReadFull(fb, bufB)
		if nA != nB || !bytes.Equal(bufA[:nA], bufB[:nB]) {
			return false, nil
		}
		if errA == io.EOF || errA == io.ErrUnexpectedEOF {
			return true, nil
		}
		if errA != nil {
			return false, zerr.With(zerr.Wrap(errA, "failed to read file"), "path", a)
		}
		if errB != nil {
			return false, zerr.With(zerr.Wrap(errB, "failed to read file"), "path", b)
		}
	}
}
