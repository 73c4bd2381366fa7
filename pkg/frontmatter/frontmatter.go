package frontmatter

import (
	"bytes"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for header extraction.
var (
	// ErrMissingFrontmatter is returned by MustParse when no header is found.
	ErrMissingFrontmatter = errors.New("missing frontmatter")

	// ErrUnclosedFrontmatter is returned when an opening delimiter has no
	// closing delimiter.
	ErrUnclosedFrontmatter = errors.New("missing closing frontmatter delimiter")

	// ErrInvalidYAML is returned when a delimited header fails to parse.
	// Parsing fails closed: no partial header is ever returned.
	ErrInvalidYAML = errors.New("invalid YAML frontmatter")
)

// HeaderKind classifies what kind of header a raw document carries.
type HeaderKind int

const (
	// HeaderNone means the document has no recognizable header.
	HeaderNone HeaderKind = iota
	// HeaderYAML means the document opens with a "---" delimited block.
	HeaderYAML
	// HeaderTOML means the document parses as whole-document TOML.
	HeaderTOML
)

// Detect reports what kind of header raw carries. TOML detection is only
// attempted for documents without a YAML delimiter, and requires at least
// one key to avoid classifying arbitrary prose as TOML.
func Detect(raw string) HeaderKind {
	if hasYAMLDelimiter(raw) {
		return HeaderYAML
	}
	var probe map[string]any
	if err := toml.Unmarshal([]byte(raw), &probe); err == nil && len(probe) > 0 {
		return HeaderTOML
	}
	return HeaderNone
}

func hasYAMLDelimiter(raw string) bool {
	return strings.HasPrefix(raw, "---\n") || strings.HasPrefix(raw, "---\r\n")
}

// Parse extracts a YAML header and body from raw, unmarshaling the header
// into matter. If no header is present the full content is returned as the
// body and matter is left untouched. Use this for dialects whose header is
// optional (Continue, Windsurf, Copilot).
func Parse[T any](raw string, matter *T) (body string, err error) {
	return parse(raw, matter, false)
}

// MustParse is like Parse but fails with ErrMissingFrontmatter when no
// header is present. Use this for dialects whose header is mandatory
// (Claude skills, Cursor rules, Kiro steering).
func MustParse[T any](raw string, matter *T) (body string, err error) {
	return parse(raw, matter, true)
}

func parse[T any](raw string, matter *T, required bool) (string, error) {
	header, body, found, err := split(raw)
	if err != nil {
		if required {
			return "", err
		}
		// An opening delimiter without a closing one is treated as body
		// for optional-header dialects.
		if errors.Is(err, ErrUnclosedFrontmatter) {
			return raw, nil
		}
		return "", err
	}
	if !found {
		if required {
			return "", ErrMissingFrontmatter
		}
		return raw, nil
	}
	if err := yaml.Unmarshal([]byte(header), matter); err != nil {
		return "", errors.Wrap(ErrInvalidYAML, err.Error())
	}
	return body, nil
}

// Extract splits raw into a loose header map and body. It is the untyped
// form used by heuristic parsers that must preserve unknown keys. A missing
// header yields a nil map and the full content as body. A malformed header
// fails closed.
func Extract(raw string) (header map[string]any, body string, err error) {
	text, body, found, err := split(raw)
	if err != nil {
		return nil, "", err
	}
	if !found {
		return nil, raw, nil
	}
	header = make(map[string]any)
	if err := yaml.Unmarshal([]byte(text), &header); err != nil {
		return nil, "", errors.Wrap(ErrInvalidYAML, err.Error())
	}
	return header, body, nil
}

// split separates the delimited header text from the body. found is false
// when raw has no opening delimiter.
func split(raw string) (header, body string, found bool, err error) {
	if !hasYAMLDelimiter(raw) {
		return "", raw, false, nil
	}

	content := []byte(raw)
	offset := 3
	if content[offset] == '\r' {
		offset++
	}
	offset++ // consume the newline

	rest := content[offset:]

	// Empty header: the closing delimiter immediately follows the opener.
	if bytes.HasPrefix(rest, []byte("---\n")) || bytes.HasPrefix(rest, []byte("---\r\n")) {
		tail := bytes.TrimPrefix(rest[3:], []byte("\r"))
		tail = bytes.TrimPrefix(tail, []byte("\n"))
		return "", string(tail), true, nil
	}

	idx := bytes.Index(rest, []byte("\n---"))
	crlf := false
	if cr := bytes.Index(rest, []byte("\r\n---")); cr != -1 && (idx == -1 || cr < idx) {
		idx = cr
		crlf = true
	}
	if idx == -1 {
		return "", "", false, ErrUnclosedFrontmatter
	}

	header = string(rest[:idx])
	tail := rest[idx:]
	if crlf {
		tail = tail[5:] // \r\n---
	} else {
		tail = tail[4:] // \n---
	}

	// Trim the line break after the closing delimiter.
	tail = bytes.TrimPrefix(tail, []byte("\r"))
	tail = bytes.TrimPrefix(tail, []byte("\n"))

	return header, string(tail), true, nil
}

// ParseTOML unmarshals a whole-document TOML header into matter. TOML-first
// dialects (Gemini commands) carry no body.
func ParseTOML[T any](raw string, matter *T) error {
	if err := toml.Unmarshal([]byte(raw), matter); err != nil {
		return errors.Wrap(err, "parsing TOML document")
	}
	return nil
}

// Format renders matter as a YAML header followed by body, in the shape
// every markdown dialect emits: "---\n<yaml>---\n\n<body>\n".
func Format(matter any, body string) (string, error) {
	var buf strings.Builder
	buf.WriteString("---\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return "", errors.Wrap(err, "encoding frontmatter")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, "encoding frontmatter")
	}

	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.String(), nil
}

// FormatTOML renders matter as a whole-document TOML header.
func FormatTOML(matter any) (string, error) {
	out, err := toml.Marshal(matter)
	if err != nil {
		return "", errors.Wrap(err, "encoding TOML document")
	}
	return string(out), nil
}
