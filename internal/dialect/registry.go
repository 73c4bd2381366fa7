package dialect

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/canonpack/canonpack/pkg/canonical"
)

// Sentinel errors for registry operations.
var (
	// ErrAlreadyRegistered is returned when a format tag is registered twice.
	ErrAlreadyRegistered = errors.New("dialect already registered")

	// ErrNotRegistered is returned when no implementation exists for a tag.
	ErrNotRegistered = errors.New("dialect not registered")
)

type entry struct {
	parser     Parser
	serializer Serializer
}

// Registry maps format tags to their parser/serializer pair.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	dialects map[canonical.Format]entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		dialects: make(map[canonical.Format]entry),
	}
}

// Register adds a parser/serializer pair. Both must report the same format
// tag, and a tag can be registered only once.
func (r *Registry) Register(p Parser, s Serializer) error {
	if p.Format() != s.Format() {
		return errors.Newf("parser format %q does not match serializer format %q", p.Format(), s.Format())
	}
	format := p.Format()
	if !format.Valid() || format == canonical.FormatCanonical {
		return errors.Newf("invalid dialect tag %q", format)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.dialects[format]; exists {
		return errors.Wrapf(ErrAlreadyRegistered, "%s", format)
	}
	r.dialects[format] = entry{parser: p, serializer: s}
	return nil
}

// Parser returns the parser for a format tag.
func (r *Registry) Parser(format canonical.Format) (Parser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.dialects[format]
	if !ok {
		return nil, errors.Wrapf(ErrNotRegistered, "%s", format)
	}
	return e.parser, nil
}

// Serializer returns the serializer for a format tag.
func (r *Registry) Serializer(format canonical.Format) (Serializer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.dialects[format]
	if !ok {
		return nil, errors.Wrapf(ErrNotRegistered, "%s", format)
	}
	return e.serializer, nil
}

// Formats returns the registered tags in canonical display order.
func (r *Registry) Formats() []canonical.Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []canonical.Format
	for _, f := range canonical.Formats() {
		if _, ok := r.dialects[f]; ok {
			out = append(out, f)
		}
	}
	return out
}
