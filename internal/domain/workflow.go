// Package domain implements the include-resolution and expansion engine.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"unosolo.dev/pkg/unosolo/internal/adapter"
	"unosolo.dev/pkg/unosolo/internal/controller"
	m "unosolo.dev/pkg/unosolo/internal/model"
)

const outputFileMode = 0o644

// AmalgamateArgs contains the arguments for producing a single header.
type AmalgamateArgs struct {
	Paths  []m.Path
	Entry  m.Path
	Output m.Path
}

// ListArgs contains the arguments for listing the header catalog.
type ListArgs struct {
	Paths []m.Path
}

// GraphArgs contains the arguments for printing the include graph.
type GraphArgs struct {
	Paths []m.Path
	Entry m.Path
	// All traces every catalogued header instead of only those reachable
	// from Entry.
	All bool
}

// Workflow defines the user-facing operations of the tool.
type Workflow interface {
	Amalgamate(ctx context.Context, args AmalgamateArgs) error
	List(ctx context.Context, args ListArgs) error
	Graph(ctx context.Context, args GraphArgs) error
}

// WorkflowOption configures a Workflow.
type WorkflowOption func(*workflow)

// WithWorkflowListener routes engine events to l.
func WithWorkflowListener(l Listener) WorkflowOption {
	return func(w *workflow) {
		w.listener = listenerOrNop(l)
	}
}

// WithWorkflowBanner replaces DefaultBanner in produced headers.
func WithWorkflowBanner(lines ...string) WorkflowOption {
	return func(w *workflow) {
		w.banner = lines
	}
}

type workflow struct {
	adapter.SourceFSAdapter
	controller.UI
	Cataloger

	classifier *Classifier
	listener   Listener
	banner     []string
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	ui controller.UI,
	cataloger Cataloger,
	options ...WorkflowOption,
) Workflow {
	w := &workflow{
		SourceFSAdapter: fsAdapter,
		UI:              ui,
		Cataloger:       cataloger,
		classifier:      NewClassifier(),
		listener:        NopListener{},
		banner:          DefaultBanner,
	}

	for _, option := range options {
		option(w)
	}

	return w
}

// Amalgamate builds the catalog, expands the entry header and hands the
// result to the UI, or to Output when set. Nothing is emitted unless the
// whole expansion succeeds.
func (w *workflow) Amalgamate(ctx context.Context, args AmalgamateArgs) error {
	expander, _, err := w.prepare(ctx, args.Paths)
	if err != nil {
		return err
	}

	text, err := expander.Amalgamate(ctx, args.Entry)
	if err != nil {
		slog.Error("Failed to expand entry", "entry", args.Entry, "error", err)
		return fmt.Errorf("expand %s: %w", args.Entry, err)
	}

	slog.Info("Amalgamated header", "entry", args.Entry, "bytes", len(text), "directives", expander.IndexSize())

	if args.Output != "" {
		if err := w.WriteFile(args.Output, []byte(text), outputFileMode); err != nil {
			return fmt.Errorf("write %s: %w", args.Output, err)
		}

		return w.DisplayOutputWritten(ctx, args.Output, len(text))
	}

	if err := w.DisplayAmalgamation(ctx, text); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// List prints the header catalog.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	catalog, err := w.Build(ctx, args.Paths)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	return w.DisplayCatalog(ctx, catalog.Roots(), catalog.Entries())
}

// Graph prints the include graph of the entry header, or of the whole
// catalog when args.All is set.
func (w *workflow) Graph(ctx context.Context, args GraphArgs) error {
	if args.Entry == "" && !args.All {
		return ErrNoGraphRoots
	}

	expander, catalog, err := w.prepare(ctx, args.Paths)
	if err != nil {
		return err
	}

	var (
		entry m.Path
		roots []m.Path
	)

	if args.Entry != "" {
		entry, err = w.Canonicalize(args.Entry)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrEntryNotFound, args.Entry, err)
		}

		roots = append(roots, entry)
	}

	if args.All {
		if err := expander.Preload(ctx, catalog); err != nil {
			return fmt.Errorf("index catalog: %w", err)
		}

		for _, e := range catalog.Entries() {
			roots = append(roots, e.Path)
		}
	}

	graph, err := BuildGraph(ctx, expander, roots...)
	if err != nil {
		return fmt.Errorf("trace includes: %w", err)
	}

	return w.DisplayGraph(ctx, graph.View(entry))
}

func (w *workflow) prepare(ctx context.Context, paths []m.Path) (*Expander, *Catalog, error) {
	catalog, err := w.Build(ctx, paths)
	if err != nil {
		slog.Error("Failed to build header catalog", "paths", paths, "error", err)
		return nil, nil, fmt.Errorf("build catalog: %w", err)
	}

	expander := NewExpander(
		w.SourceFSAdapter,
		w.classifier,
		NewResolver(w.SourceFSAdapter, catalog),
		WithListener(w.listener),
		WithBanner(w.banner...),
	)

	return expander, catalog, nil
}
