package domain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"unosolo.dev/pkg/unosolo/internal/adapter"
	m "unosolo.dev/pkg/unosolo/internal/model"
)

const (
	// maxLineLength bounds a single source line.
	maxLineLength = 4 * 1024 * 1024

	pragmaOnceLine = "#pragma once"

	initialOutputSize = 24 * 1024
)

// DefaultBanner is prepended to every amalgamation.
var DefaultBanner = []string{
	"// generated with `unosolo`",
	"// single-header amalgamation, do not edit",
}

// ExpanderOption configures an Expander.
type ExpanderOption func(*Expander)

// WithListener routes engine events to l.
func WithListener(l Listener) ExpanderOption {
	return func(e *Expander) {
		e.listener = listenerOrNop(l)
	}
}

// WithBanner replaces DefaultBanner.
func WithBanner(lines ...string) ExpanderOption {
	return func(e *Expander) {
		e.banner = lines
	}
}

type indexKey struct {
	file m.Path
	line string
}

// Expander renders a header with its project includes inlined.
//
// It keeps the resolved include index across calls; the set of expanded
// headers is fresh for every Expand.
type Expander struct {
	fsAdapter  adapter.SourceFSAdapter
	classifier *Classifier
	resolver   Resolver
	listener   Listener
	banner     []string

	// index memoizes resolved directives. Unresolved bracketed includes are
	// never stored.
	index map[indexKey]m.Path
	// deps holds the Dependencies result per header.
	deps map[m.Path][]m.Path
}

// NewExpander wires an Expander.
func NewExpander(
	fsAdapter adapter.SourceFSAdapter,
	classifier *Classifier,
	resolver Resolver,
	options ...ExpanderOption,
) *Expander {
	e := &Expander{
		fsAdapter:  fsAdapter,
		classifier: classifier,
		resolver:   resolver,
		listener:   NopListener{},
		banner:     DefaultBanner,
		index:      make(map[indexKey]m.Path),
		deps:       make(map[m.Path][]m.Path),
	}

	for _, option := range options {
		option(e)
	}

	return e
}

// Amalgamate returns the banner, a single `#pragma once` and the expanded
// body of entry.
func (e *Expander) Amalgamate(ctx context.Context, entry m.Path) (string, error) {
	body, err := e.Expand(ctx, entry)
	if err != nil {
		return "", err
	}

	var out strings.Builder

	out.Grow(len(body) + 256)

	for _, line := range e.banner {
		out.WriteString(line)
		out.WriteByte('\n')
	}

	out.WriteString(pragmaOnceLine)
	out.WriteString("\n\n")
	out.WriteString(body)

	return out.String(), nil
}

type frame struct {
	path    m.Path
	reader  io.ReadCloser
	scanner *bufio.Scanner
	line    int
}

// Expand renders entry depth first. Every include that resolves to a
// project header is replaced by that header's rendered content the first
// time the header is met and dropped afterwards. Comment lines and
// `#pragma once` lines are removed; every other line is kept verbatim.
//
// The entry is marked as expanded before rendering starts, so a header that
// includes the entry back does not recurse.
func (e *Expander) Expand(ctx context.Context, entry m.Path) (string, error) {
	canonical, err := e.fsAdapter.Canonicalize(entry)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrEntryNotFound, entry, err)
	}

	visited := map[m.Path]struct{}{canonical: {}}

	var (
		out   strings.Builder
		stack []*frame
	)

	out.Grow(initialOutputSize)

	defer func() {
		for _, f := range stack {
			_ = f.reader.Close()
		}
	}()

	push := func(path m.Path) error {
		f, err := e.open(path)
		if err != nil {
			return err
		}

		stack = append(stack, f)

		return nil
	}

	if err := push(canonical); err != nil {
		return "", err
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		top := stack[len(stack)-1]

		if !top.scanner.Scan() {
			stack = stack[:len(stack)-1]
			closeErr := top.reader.Close()

			if err := top.scanner.Err(); err != nil {
				return "", fmt.Errorf("%w: %s: %w", ErrReadFile, top.path, err)
			}

			if closeErr != nil {
				return "", fmt.Errorf("%w: %s: %w", ErrReadFile, top.path, closeErr)
			}

			e.listener.FileExpanded(top.path)

			continue
		}

		top.line++
		line := top.scanner.Text()

		if e.classifier.IsComment(line) || e.classifier.IsPragmaOnce(line) {
			continue
		}

		target, ok, err := e.resolveLine(ctx, top.path, top.line, line)
		if err != nil {
			return "", err
		}

		if !ok {
			out.WriteString(line)
			out.WriteByte('\n')

			continue
		}

		if _, seen := visited[target]; seen {
			e.listener.IncludeElided(top.path, target)
			continue
		}

		visited[target] = struct{}{}

		if err := push(target); err != nil {
			return "", err
		}
	}

	return out.String(), nil
}

// Dependencies returns the project headers that file includes, in order of
// appearance, without duplicates. Commented-out includes are ignored. A
// header is read at most once; later calls, including those after Preload,
// are served from memory.
func (e *Expander) Dependencies(ctx context.Context, file m.Path) ([]m.Path, error) {
	if deps, ok := e.deps[file]; ok {
		return append([]m.Path(nil), deps...), nil
	}

	f, err := e.open(file)
	if err != nil {
		return nil, err
	}

	defer func() { _ = f.reader.Close() }()

	var (
		deps []m.Path
		seen = make(map[m.Path]struct{})
	)

	for f.scanner.Scan() {
		f.line++
		line := f.scanner.Text()

		if e.classifier.IsComment(line) {
			continue
		}

		target, ok, err := e.resolveLine(ctx, file, f.line, line)
		if err != nil {
			return nil, err
		}

		if !ok {
			continue
		}

		if _, dup := seen[target]; dup {
			continue
		}

		seen[target] = struct{}{}
		deps = append(deps, target)
	}

	if err := f.scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, file, err)
	}

	e.deps[file] = deps

	return append([]m.Path(nil), deps...), nil
}

// Preload resolves every include of every catalogued header up front, the
// way a full index pass would. Expansion and graph building afterwards only
// hit the index.
func (e *Expander) Preload(ctx context.Context, catalog *Catalog) error {
	for _, entry := range catalog.Entries() {
		if _, err := e.Dependencies(ctx, entry.Path); err != nil {
			return err
		}
	}

	slog.Debug("Preloaded include index", "headers", catalog.Len(), "directives", len(e.index))

	return nil
}

// IndexSize returns the number of memoized directive resolutions.
func (e *Expander) IndexSize() int {
	return len(e.index)
}

func (e *Expander) open(path m.Path) (*frame, error) {
	reader, err := e.fsAdapter.Open(path)
	if err != nil {
		slog.Error("Failed to open header", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	return &frame{path: path, reader: reader, scanner: scanner}, nil
}

// resolveLine reports whether line is an include of a project header and
// which one.
func (e *Expander) resolveLine(ctx context.Context, file m.Path, lineNo int, line string) (m.Path, bool, error) {
	key := indexKey{file: file, line: line}
	if target, ok := e.index[key]; ok {
		return target, true, nil
	}

	directive, isInclude, err := e.classifier.ParseInclude(line)
	if err != nil {
		return "", false, &DirectiveError{Path: file, Line: lineNo, Text: line, Err: err}
	}

	if !isInclude {
		return "", false, nil
	}

	target, ok, err := e.resolver.Resolve(ctx, directive, file)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", false, err
		}

		return "", false, &DirectiveError{Path: file, Line: lineNo, Text: line, Err: err}
	}

	if !ok {
		e.listener.IncludeExternal(file, directive)
		return "", false, nil
	}

	e.index[key] = target
	e.listener.IncludeResolved(file, directive, target)

	return target, true, nil
}
