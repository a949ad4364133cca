package domain

import (
	"regexp"
	"strings"

	m "unosolo.dev/pkg/unosolo/internal/model"
)

const (
	commentPattern    = `^\s*//`
	pragmaOncePattern = `^\s*#pragma\s+once\b`

	includeToken = "#include"
)

// Classifier holds the compiled line predicates. Build it once with
// NewClassifier and share it; it has no mutable state.
type Classifier struct {
	comment    *regexp.Regexp
	pragmaOnce *regexp.Regexp
}

// NewClassifier compiles the line patterns.
func NewClassifier() *Classifier {
	return &Classifier{
		comment:    regexp.MustCompile(commentPattern),
		pragmaOnce: regexp.MustCompile(pragmaOncePattern),
	}
}

// IsComment reports whether the line is a single-line comment. Only the
// start of the trimmed line counts; a string literal elsewhere on a code
// line does not make it a comment.
func (c *Classifier) IsComment(line string) bool {
	return c.comment.MatchString(line)
}

// IsPragmaOnce reports whether the trimmed line starts with `#pragma once`.
func (c *Classifier) IsPragmaOnce(line string) bool {
	return c.pragmaOnce.MatchString(line)
}

// ParseInclude recognizes `#include "x"` and `#include <x>` lines.
//
// ok is false when the line is not an include directive at all. When the
// token is present but the target is not delimited by quotes or angle
// brackets, ErrMalformedDirective is returned.
func (c *Classifier) ParseInclude(line string) (directive m.Directive, ok bool, err error) {
	idx := strings.Index(line, includeToken)
	if idx < 0 || strings.TrimSpace(line[:idx]) != "" {
		return m.Directive{}, false, nil
	}

	rest := strings.TrimLeft(line[idx+len(includeToken):], " \t")
	if rest == "" {
		return m.Directive{}, true, ErrMalformedDirective
	}

	var (
		kind    m.IncludeKind
		closing byte
	)

	switch rest[0] {
	case '"':
		kind, closing = m.IncludeQuoted, '"'
	case '<':
		kind, closing = m.IncludeBracketed, '>'
	default:
		return m.Directive{}, true, ErrMalformedDirective
	}

	end := strings.IndexByte(rest[1:], closing)
	if end <= 0 {
		// unterminated or empty target
		return m.Directive{}, true, ErrMalformedDirective
	}

	return m.Directive{
		Line:   line,
		Kind:   kind,
		Target: rest[1 : 1+end],
	}, true, nil
}
