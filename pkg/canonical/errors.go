package canonical

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for parse failures. Wrap them in a ParseError so callers
// can check the condition with errors.Is while keeping dialect context.
var (
	// ErrMalformedFrontmatter indicates a frontmatter block that opened but
	// could not be parsed. Parsing fails closed; no partial package is built.
	ErrMalformedFrontmatter = errors.New("malformed frontmatter")

	// ErrMissingRequiredField indicates a field the source dialect mandates
	// was absent (for example Kiro's inclusion key).
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrUnknownFormat indicates an unrecognized dialect tag.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrUnknownSection indicates a canonical.json document carried a
	// section type outside the closed union.
	ErrUnknownSection = errors.New("unknown section type")
)

// ParseError is the typed, fatal error for a single conversion. A parser
// either returns a complete Package or a ParseError, never both.
type ParseError struct {
	// Format is the dialect whose parser failed.
	Format Format

	// Field names the offending frontmatter key or structural marker,
	// when one can be identified.
	Field string

	// Err is the underlying cause.
	Err error
}

func newParseError(format Format, field string, err error) *ParseError {
	return &ParseError{Format: format, Field: field, Err: err}
}

// NewParseError wraps err as a ParseError for the given dialect.
func NewParseError(format Format, field string, err error) *ParseError {
	return newParseError(format, field, err)
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("parsing %s: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("parsing %s: field %q: %v", e.Format, e.Field, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
