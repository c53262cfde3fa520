package fs

import (
	"io"
	"os"
	"time"

	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/zerr"
)

// cloneSuffix is appended to a file's path to form its pristine clone path.
const cloneSuffix = ".orig"

var _ domain.ModificationNode = (*ModifiedFile)(nil)

// ModifiedFile is one keyed in-place modification of a file that already
// exists. The pristine clone is shared by every modification of the same
// file, while the node id combines path and key so that several
// modifications of one file stay distinct in the graph.
type ModifiedFile struct {
	path   string
	key    string
	store  ports.StateStore
	logger ports.Logger
}

// NewModifiedFile creates a modification node for the file at path under
// the given key. Clone bookkeeping lives in the state store.
func NewModifiedFile(path, key string, store ports.StateStore, logger ports.Logger) *ModifiedFile {
	return &ModifiedFile{path: path, key: key, store: store, logger: logger}
}

// ID returns the modification id derived from path and key.
func (f *ModifiedFile) ID() string { return domain.ModificationID(f.path, f.key) }

// Path returns the path of the file being modified.
func (f *ModifiedFile) Path() string { return f.path }

// Key returns the modification key.
func (f *ModifiedFile) Key() string { return f.key }

// Timestamp returns the modification time of the registered clone, which
// marks when the file was first modified. Without a clone the modification
// has not happened and there is no timestamp.
func (f *ModifiedFile) Timestamp() (time.Time, bool) {
	clone, ok := f.store.Clone(f.path)
	if !ok {
		return time.Time{}, false
	}
	info, err := os.Stat(clone)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// CloneLocation returns the registered clone path for the underlying file.
func (f *ModifiedFile) CloneLocation() (string, bool) {
	return f.store.Clone(f.path)
}

// CreateClone copies the file to a sibling path and registers the copy as
// the pristine state. A file has at most one clone; registering a second
// one is an error.
func (f *ModifiedFile) CreateClone() error {
	if clone, ok := f.store.Clone(f.path); ok {
		return zerr.With(zerr.With(domain.ErrCloneExists, "path", f.path), "clone", clone)
	}

	clone := f.path + cloneSuffix
	if err := copyFile(f.path, clone); err != nil {
		return zerr.Wrap(err, "failed to create clone")
	}
	return f.store.PutClone(f.path, clone)
}

// Clean restores the pristine content from the clone, removes the clone and
// drops the recorded state of this modification. Without a registered clone
// the file was never modified and only the recorded state is dropped.
func (f *ModifiedFile) Clean() error {
	clone, ok := f.store.Clone(f.path)
	if !ok {
		return f.store.DeleteBuiltHash(f.ID())
	}

	f.logger.Info("restoring file: " + f.path)
	if err := os.Rename(clone, f.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to restore file from clone"), "clone", clone)
	}
	if err := f.store.DeleteClone(f.path); err != nil {
		return err
	}
	return f.store.DeleteBuiltHash(f.ID())
}

func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // Workspace files keep default permissions
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open destination file"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close() //nolint:errcheck,gosec // Best effort close on error path
		return zerr.With(zerr.Wrap(err, "failed to copy file content"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close destination file"), "path", dst)
	}
	return nil
}
