// Package frontmatter provides generic parsing and rendering of YAML and
// TOML headers on configuration documents.
//
// YAML frontmatter is delimited by lines containing only "---" at the start
// and end. The content between delimiters is unmarshaled into the type
// parameter T; the remaining content after the closing delimiter is returned
// as the body. TOML headers use "+++" delimiters.
//
// # Basic Usage
//
//	type header struct {
//		Name        string   `yaml:"name"`
//		Description string   `yaml:"description"`
//	}
//
//	h, body, err := frontmatter.Parse[header](raw)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Name: %s\nBody:\n%s", h.Name, body)
//
// [Parse] is lenient: a document without a header parses with a zero header
// and the whole input as body. Use [MustParse] for dialects where the header
// is mandatory.
//
// # Error Handling
//
// The package defines sentinel errors for common failure conditions:
//
//   - [ErrMissingFrontmatter]: input has no opening delimiter (MustParse only)
//   - [ErrUnclosedFrontmatter]: opening delimiter without a closing one
//   - [ErrInvalidYAML]: header exists but contains invalid YAML
//
// These can be checked using [errors.Is].
//
// # Rendering
//
// [Format] is the inverse of Parse: it renders a header value and body back
// into a delimited document. Both Unix (LF) and Windows (CRLF) line endings
// are handled on input; output always uses LF.
package frontmatter
