package fs

import (
	"os"
	"time"

	"go.trai.ch/remake/internal/core/domain"
	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ domain.DynamicNode = (*GeneratedFile)(nil)
	_ domain.FileNode    = (*GeneratedFile)(nil)
)

// GeneratedFile is a file produced by a rule. It is owned by the engine:
// building creates it and cleaning removes it again.
type GeneratedFile struct {
	path   string
	logger ports.Logger
}

// NewGeneratedFile creates a generated file node. The path doubles as the
// node id.
func NewGeneratedFile(path string, logger ports.Logger) *GeneratedFile {
	return &GeneratedFile{path: path, logger: logger}
}

// ID returns the file path.
func (f *GeneratedFile) ID() string { return f.path }

// Path returns the filesystem path backing the node.
func (f *GeneratedFile) Path() string { return f.path }

// Timestamp returns the file's modification time. The second return value
// is false when the file has not been built yet.
func (f *GeneratedFile) Timestamp() (time.Time, bool) {
	info, err := os.Stat(f.path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// Clean removes the file from disk. A file that was never built is a no-op.
func (f *GeneratedFile) Clean() error {
	if _, err := os.Stat(f.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to stat generated file"), "path", f.path)
	}

	f.logger.Info("removing file: " + f.path)
	if err := os.Remove(f.path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove generated file"), "path", f.path)
	}
	return nil
}
