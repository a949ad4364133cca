// Package model defines the data structures shared by the amalgamation engine.
package model

import "path/filepath"

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Dir returns the directory containing the path.
func (p Path) Dir() Path {
	return Path(filepath.Dir(string(p)))
}

// LibraryRoot is a user-supplied search directory. Roots are ordered: when
// two roots provide the same relative header, the earlier root wins.
type LibraryRoot struct {
	// Path is the root as given by the user.
	Path Path
	// Canonical is the absolute, symlink-resolved form of Path.
	Canonical Path
	// Index is the position of the root in the user-supplied order.
	Index int
}
