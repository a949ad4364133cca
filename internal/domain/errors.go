package domain

import (
	"errors"
	"fmt"

	m "unosolo.dev/pkg/unosolo/internal/model"
)

var (
	// ErrMalformedDirective reports an include whose target is delimited by
	// neither quotes nor angle brackets.
	ErrMalformedDirective = errors.New("malformed include directive")
	// ErrUnresolvedQuoted reports a quoted include that names no existing file.
	ErrUnresolvedQuoted = errors.New("quoted include does not exist")
	// ErrEntryNotFound reports a top-level entry file that cannot be canonicalized.
	ErrEntryNotFound = errors.New("entry file not found")
	// ErrRootNotFound reports a library root that cannot be canonicalized.
	ErrRootNotFound = errors.New("library root not found")
	// ErrReadFile reports a header that could not be opened or read.
	ErrReadFile = errors.New("cannot read file")
	// ErrNoGraphRoots reports a graph request with neither an entry nor the
	// whole catalog selected.
	ErrNoGraphRoots = errors.New("graph needs an entry file or the whole catalog")
)

// DirectiveError ties a failure to the source line that caused it.
type DirectiveError struct {
	Path m.Path
	Line int
	Text string
	Err  error
}

func (e *DirectiveError) Error() string {
	return fmt.Sprintf("%s:%d: %v: %q", e.Path, e.Line, e.Err, e.Text)
}

func (e *DirectiveError) Unwrap() error {
	return e.Err
}
