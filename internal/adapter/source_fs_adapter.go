// Package adapter contains infrastructure adapters for the unosolo CLI.
package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "unosolo.dev/pkg/unosolo/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning library roots and reading headers. It hides direct
// `os` access so the engine logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses every file and directory below root. A root that is a
	// symlink to a directory is followed.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// Open opens a file for sequential, line by line reading.
	Open(path m.Path) (io.ReadCloser, error)

	// FileInfo returns metadata for a path so the domain can tell files from
	// directories.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Canonicalize returns the absolute, symlink-resolved, cleaned form of
	// path. It fails when the path does not exist.
	Canonicalize(path m.Path) (m.Path, error)

	// WriteFile replaces the file at path with content. Readers never observe
	// a partially written file.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the concrete, disk-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over files under root. Entries are visited in lexical order,
// which keeps catalog construction deterministic. filepath.Walk does not
// descend into a symlinked root, so the root is resolved first; paths handed
// to fn are below the resolved root.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	resolved, err := filepath.EvalSymlinks(string(root))
	if err != nil {
		return fn(string(root), nil, err)
	}

	return filepath.Walk(resolved, filepath.WalkFunc(fn))
}

// Open opens the file at path for reading.
func (a *LocalSourceFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - headers are read from user-selected library roots
	return os.Open(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Canonicalize resolves path to an absolute path with every symlink followed.
func (a *LocalSourceFSAdapter) Canonicalize(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	return m.Path(filepath.Clean(resolved)), nil
}

// WriteFile writes content to a temporary sibling of path and renames it into
// place.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(string(path))

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(string(path))+".*")
	if err != nil {
		return err
	}

	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}

	return os.Rename(tmpName, string(path))
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
