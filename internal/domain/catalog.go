package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"unosolo.dev/pkg/unosolo/internal/adapter"
	m "unosolo.dev/pkg/unosolo/internal/model"
)

// DefaultExtensions are the file suffixes treated as headers when no other
// set is configured.
var DefaultExtensions = []string{".h", ".hpp", ".inl", ".cpp"}

// Catalog maps root-relative header paths to canonical absolute paths.
// A key is registered by the first root, in user order, that provides it
// and is never overwritten afterwards. A Catalog is read-only once built.
type Catalog struct {
	roots   []m.LibraryRoot
	entries map[string]m.CatalogEntry
	order   []string
}

func newCatalog(roots []m.LibraryRoot) *Catalog {
	return &Catalog{
		roots:   roots,
		entries: make(map[string]m.CatalogEntry),
	}
}

// register adds entry unless its key is taken. It returns the entry that
// owns the key afterwards and whether entry itself was added.
func (c *Catalog) register(entry m.CatalogEntry) (m.CatalogEntry, bool) {
	if existing, ok := c.entries[entry.Key]; ok {
		return existing, false
	}

	c.entries[entry.Key] = entry
	c.order = append(c.order, entry.Key)

	return entry, true
}

// Lookup returns the canonical path registered for key.
func (c *Catalog) Lookup(key string) (m.Path, bool) {
	entry, ok := c.entries[key]
	return entry.Path, ok
}

// Entries returns every entry in registration order.
func (c *Catalog) Entries() []m.CatalogEntry {
	entries := make([]m.CatalogEntry, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, c.entries[key])
	}

	return entries
}

// Roots returns the library roots the catalog was built from, in user order.
func (c *Catalog) Roots() []m.LibraryRoot {
	return append([]m.LibraryRoot(nil), c.roots...)
}

// Len returns the number of registered headers.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Cataloger discovers the headers under a list of library roots.
type Cataloger interface {
	Build(ctx context.Context, roots []m.Path) (*Catalog, error)
}

// CatalogOptions tunes catalog construction.
type CatalogOptions struct {
	// Extensions selects header-like files by suffix. Empty means DefaultExtensions.
	Extensions []string
	// Parallel bounds how many roots are scanned at once. Values below one
	// scan sequentially.
	Parallel int
	// Listener receives registration events. Nil is allowed.
	Listener Listener
}

type cataloger struct {
	fsAdapter  adapter.SourceFSAdapter
	extensions []string
	parallel   int
	listener   Listener
}

// NewCataloger constructs a Cataloger backed by the provided filesystem adapter.
func NewCataloger(fsAdapter adapter.SourceFSAdapter, opts CatalogOptions) Cataloger {
	extensions := opts.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	parallel := opts.Parallel
	if parallel < 1 {
		parallel = 1
	}

	return &cataloger{
		fsAdapter:  fsAdapter,
		extensions: extensions,
		parallel:   parallel,
		listener:   listenerOrNop(opts.Listener),
	}
}

// Build scans every root and registers its headers. Roots may be scanned
// concurrently, but registration always happens in the order of roots, so
// the first root that provides a key owns it.
func (c *cataloger) Build(ctx context.Context, roots []m.Path) (*Catalog, error) {
	libraryRoots := make([]m.LibraryRoot, 0, len(roots))

	for i, root := range roots {
		canonical, err := c.fsAdapter.Canonicalize(root)
		if err != nil {
			slog.Error("Failed to canonicalize library root", "root", root, "error", err)
			return nil, fmt.Errorf("%w: %s: %w", ErrRootNotFound, root, err)
		}

		libraryRoots = append(libraryRoots, m.LibraryRoot{Path: root, Canonical: canonical, Index: i})
	}

	scanned := make([][]m.CatalogEntry, len(libraryRoots))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(c.parallel)

	for i, root := range libraryRoots {
		group.Go(func() error {
			entries, err := c.scanRoot(groupCtx, root)
			if err != nil {
				return err
			}

			scanned[i] = entries

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	catalog := newCatalog(libraryRoots)

	for _, entries := range scanned {
		for _, entry := range entries {
			if winner, added := catalog.register(entry); added {
				c.listener.CatalogRegistered(entry)
			} else {
				c.listener.CatalogShadowed(entry, winner)
			}
		}
	}

	slog.Debug("Built header catalog", "roots", len(libraryRoots), "headers", catalog.Len())

	return catalog, nil
}

func (c *cataloger) scanRoot(ctx context.Context, root m.LibraryRoot) ([]m.CatalogEntry, error) {
	var entries []m.CatalogEntry

	err := c.fsAdapter.Walk(root.Canonical, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			slog.Warn("Skipping unreadable path", "root", root.Path, "path", path, "error", err)
			return nil
		}

		if info.IsDir() || !c.isHeader(info.Name()) {
			return nil
		}

		rel, err := c.fsAdapter.RelPath(root.Canonical, m.Path(path))
		if err != nil {
			return fmt.Errorf("relative path of %s: %w", path, err)
		}

		canonical, err := c.fsAdapter.Canonicalize(m.Path(path))
		if err != nil {
			slog.Warn("Skipping header that cannot be canonicalized", "path", path, "error", err)
			return nil
		}

		entries = append(entries, m.CatalogEntry{
			Key:  filepath.ToSlash(string(rel)),
			Root: root.Path,
			Path: canonical,
		})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root.Path, err)
	}

	slog.Debug("Scanned library root", "root", root.Path, "headers", len(entries))

	return entries, nil
}

func (c *cataloger) isHeader(name string) bool {
	for _, ext := range c.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}

	return false
}
