// Package innerdoc extracts module-level documentation comments from source
// files and combines them into a single documentation string.
//
// Inner documentation is documentation attached to the enclosing unit itself
// (the file or module), as opposed to documentation attached to a declaration
// nested inside it. Three surface forms are recognized: `//!` line comments,
// `/*! ... */` block comments, and `#![doc = "..."]` attributes, the inner
// documentation conventions of Rust, Zig and doxygen-flavored C.
//
// Two extraction strategies are provided. LineScanner inspects raw lines for
// `//!` markers and tolerates arbitrary input. AnnotationParser scans the
// unit's documentation prelude structurally, recognizes all three forms, and
// rejects malformed input. The strategies are not equivalent on mixed or
// malformed input; callers pick one and use it consistently.
package innerdoc

import "fmt"

// Unit is one source file handed to the combiner: its raw text plus an
// opaque label (typically a path) used only in error messages.
type Unit struct {
	Label string
	Text  string
}

// Extractor produces a unit's inner documentation as a single string. An
// empty result with a nil error means the unit carries no inner
// documentation; it is never an error by itself.
type Extractor interface {
	Extract(src string) (string, error)
}

// Source obtains the text of a unit by label. Implementations return their
// failures verbatim; the combiner wraps them with the failing label.
type Source interface {
	Load(label string) (string, error)
}

// ParseError reports malformed input rejected by AnnotationParser.
type ParseError struct {
	Line int // 1-based line of the offending construct
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// ExtractError identifies the unit that aborted a combine: its text could
// not be obtained, or extraction failed.
type ExtractError struct {
	Label string
	Err   error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s: %v", e.Label, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }
