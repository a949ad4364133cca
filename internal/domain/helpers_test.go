package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"unosolo.dev/pkg/unosolo/internal/adapter"
	m "unosolo.dev/pkg/unosolo/internal/model"
)

// writeTree creates files under root. Keys are slash-separated relative paths.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func canonical(t *testing.T, path string) m.Path {
	t.Helper()

	abs, err := filepath.Abs(path)
	require.NoError(t, err)

	resolved, err := filepath.EvalSymlinks(abs)
	require.NoError(t, err)

	return m.Path(resolved)
}

// newTestExpander wires the real engine over the local filesystem.
func newTestExpander(t *testing.T, roots ...string) (*Expander, *Catalog) {
	t.Helper()

	fsAdapter := adapter.NewLocalSourceFSAdapter()

	paths := make([]m.Path, 0, len(roots))
	for _, root := range roots {
		paths = append(paths, m.Path(root))
	}

	catalog, err := NewCataloger(fsAdapter, CatalogOptions{}).Build(context.Background(), paths)
	require.NoError(t, err)

	expander := NewExpander(fsAdapter, NewClassifier(), NewResolver(fsAdapter, catalog))

	return expander, catalog
}

type recordingListener struct {
	NopListener

	registered []m.CatalogEntry
	shadowed   []m.CatalogEntry
	resolved   []m.Path
	external   []string
	elided     []m.Path
	expanded   []m.Path
}

func (r *recordingListener) CatalogRegistered(entry m.CatalogEntry) {
	r.registered = append(r.registered, entry)
}

func (r *recordingListener) CatalogShadowed(entry m.CatalogEntry, _ m.CatalogEntry) {
	r.shadowed = append(r.shadowed, entry)
}

func (r *recordingListener) IncludeResolved(_ m.Path, _ m.Directive, target m.Path) {
	r.resolved = append(r.resolved, target)
}

func (r *recordingListener) IncludeExternal(_ m.Path, directive m.Directive) {
	r.external = append(r.external, directive.Target)
}

func (r *recordingListener) IncludeElided(_ m.Path, target m.Path) {
	r.elided = append(r.elided, target)
}

func (r *recordingListener) FileExpanded(file m.Path) {
	r.expanded = append(r.expanded, file)
}
