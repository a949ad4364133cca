package domain

import (
	"context"
	"fmt"
	"path"
	"path/filepath"

	"unosolo.dev/pkg/unosolo/internal/adapter"
	m "unosolo.dev/pkg/unosolo/internal/model"
)

// Resolver maps an include directive to the header it names.
type Resolver interface {
	// Resolve returns the canonical path of the directive's target. ok is
	// false, with a nil error, for bracketed includes that no library root
	// provides; such includes are external and stay in the output.
	Resolve(ctx context.Context, directive m.Directive, containing m.Path) (target m.Path, ok bool, err error)
}

type resolver struct {
	fsAdapter adapter.SourceFSAdapter
	catalog   *Catalog
}

// NewResolver builds a Resolver over catalog. It keeps no cache of its own.
func NewResolver(fsAdapter adapter.SourceFSAdapter, catalog *Catalog) Resolver {
	return &resolver{
		fsAdapter: fsAdapter,
		catalog:   catalog,
	}
}

func (r *resolver) Resolve(ctx context.Context, directive m.Directive, containing m.Path) (m.Path, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	switch directive.Kind {
	case m.IncludeQuoted:
		return r.resolveQuoted(directive, containing)
	case m.IncludeBracketed:
		target, ok := r.catalog.Lookup(path.Clean(directive.Target))
		return target, ok, nil
	default:
		return "", false, fmt.Errorf("%w: unknown kind %v", ErrMalformedDirective, directive.Kind)
	}
}

func (r *resolver) resolveQuoted(directive m.Directive, containing m.Path) (m.Path, bool, error) {
	target := filepath.FromSlash(directive.Target)

	candidate := m.Path(target)
	if !filepath.IsAbs(target) {
		candidate = r.fsAdapter.JoinPath(string(containing.Dir()), target)
	}

	canonical, err := r.fsAdapter.Canonicalize(candidate)
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %w", ErrUnresolvedQuoted, candidate, err)
	}

	info, err := r.fsAdapter.FileInfo(canonical)
	if err != nil {
		return "", false, fmt.Errorf("%w: %s: %w", ErrUnresolvedQuoted, candidate, err)
	}

	if info.IsDir() {
		return "", false, fmt.Errorf("%w: %s is a directory", ErrUnresolvedQuoted, candidate)
	}

	return canonical, true, nil
}
