package fs

import (
	"os"
	"time"

	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	_ domain.StaticNode = (*StaticFile)(nil)
	_ domain.FileNode   = (*StaticFile)(nil)
)

// StaticFile is a source file that exists independently of any build. The
// engine never creates or removes it; graph verification only checks that
// it is present.
type StaticFile struct {
	path string
}

// NewStaticFile creates a static file node. The path doubles as the node id.
func NewStaticFile(path string) *StaticFile {
	return &StaticFile{path: path}
}

// ID returns the file path.
func (f *StaticFile) ID() string { return f.path }

// Path returns the filesystem path backing the node.
func (f *StaticFile) Path() string { return f.path }

// Timestamp returns the file's modification time. The second return value
// is false when the file does not exist.
func (f *StaticFile) Timestamp() (time.Time, bool) {
	info, err := os.Stat(f.path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// CheckExists returns an error when the file is absent.
func (f *StaticFile) CheckExists() error {
	if _, err := os.Stat(f.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", f.path)
	}
	return nil
}
