// Package controller provides output adapters for the unosolo CLI.
package controller

import (
	"context"
	"os"

	"golang.org/x/term"
	m "unosolo.dev/pkg/unosolo/internal/model"
)

// UI defines how results reach the user. The amalgamated header is the only
// thing written to the primary output stream; notices go to the error stream.
type UI interface {
	DisplayAmalgamation(ctx context.Context, text string) error
	DisplayOutputWritten(ctx context.Context, path m.Path, size int) error
	DisplayCatalog(ctx context.Context, roots []m.LibraryRoot, entries []m.CatalogEntry) error
	DisplayGraph(ctx context.Context, graph m.IncludeGraph) error
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
