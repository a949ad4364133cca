package model

// IncludeKind tells how the target of an include directive is delimited.
type IncludeKind int

const (
	// IncludeQuoted is `#include "x.h"`, resolved next to the including file.
	IncludeQuoted IncludeKind = iota
	// IncludeBracketed is `#include <x.h>`, resolved through the header catalog.
	IncludeBracketed
)

func (k IncludeKind) String() string {
	switch k {
	case IncludeQuoted:
		return "quoted"
	case IncludeBracketed:
		return "bracketed"
	default:
		return "unknown"
	}
}

// Directive is a parsed include line. It lives only as long as the line it
// was parsed from.
type Directive struct {
	// Line is the raw source line, byte for byte.
	Line string
	// Kind is quoted or bracketed.
	Kind IncludeKind
	// Target is the include target without its delimiters.
	Target string
}
