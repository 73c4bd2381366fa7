// Package convert is the public conversion surface: parse any supported
// dialect into a canonical package, serialize a canonical package into any
// supported dialect, and wrap registry ingestion.
//
// Every conversion is pure and synchronous: strings in, records out, no
// I/O, no shared mutable state. Conversions of independent packages may
// run concurrently without coordination.
package convert

import (
	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/internal/dialect/claude"
	"github.com/canonpack/canonpack/internal/dialect/continuedev"
	"github.com/canonpack/canonpack/internal/dialect/copilot"
	"github.com/canonpack/canonpack/internal/dialect/cursor"
	"github.com/canonpack/canonpack/internal/dialect/droid"
	"github.com/canonpack/canonpack/internal/dialect/gemini"
	"github.com/canonpack/canonpack/internal/dialect/generic"
	"github.com/canonpack/canonpack/internal/dialect/kiro"
	"github.com/canonpack/canonpack/internal/dialect/opencode"
	"github.com/canonpack/canonpack/internal/dialect/ruler"
	"github.com/canonpack/canonpack/internal/dialect/windsurf"
	"github.com/canonpack/canonpack/pkg/canonical"
)

// SourceMeta is the caller-supplied metadata accompanying a raw document.
type SourceMeta = dialect.SourceMeta

// Options tunes a serialization.
type Options = dialect.Options

// Result is the outcome of one serialization.
type Result = dialect.Result

// Converter holds the dialect registry. The zero value is not usable;
// construct with New.
type Converter struct {
	registry *dialect.Registry
}

// New creates a converter with every supported dialect registered.
func New() *Converter {
	r := dialect.NewRegistry()

	// Registration of the built-in dialects cannot fail; the pairs are
	// constructed here with matching tags.
	must(r.Register(claude.Parser{}, claude.Serializer{}))
	must(r.Register(cursor.Parser{}, cursor.Serializer{}))
	must(r.Register(continuedev.Parser{}, continuedev.Serializer{}))
	must(r.Register(windsurf.Parser{}, windsurf.Serializer{}))
	must(r.Register(copilot.Parser{}, copilot.Serializer{}))
	must(r.Register(kiro.Parser{}, kiro.Serializer{}))
	must(r.Register(ruler.Parser{}, ruler.Serializer{}))
	must(r.Register(gemini.Parser{}, gemini.Serializer{}))
	must(r.Register(droid.Parser{}, droid.Serializer{}))
	must(r.Register(opencode.Parser{}, opencode.Serializer{}))
	must(r.Register(generic.Parser{}, generic.Serializer{}))

	return &Converter{registry: r}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// From parses raw dialect text into a canonical package.
func (c *Converter) From(format canonical.Format, raw string, meta SourceMeta) (*canonical.Package, error) {
	p, err := c.registry.Parser(format)
	if err != nil {
		return nil, err
	}
	return p.Parse(raw, meta)
}

// To serializes a canonical package into the target dialect.
func (c *Converter) To(pkg *canonical.Package, target canonical.Format, opts Options) (*Result, error) {
	s, err := c.registry.Serializer(target)
	if err != nil {
		return nil, err
	}
	return s.Serialize(pkg, opts)
}

// Convert parses raw text in the source dialect and serializes it into the
// target dialect in one call.
func (c *Converter) Convert(source, target canonical.Format, raw string, meta SourceMeta, opts Options) (*Result, error) {
	pkg, err := c.From(source, raw, meta)
	if err != nil {
		return nil, err
	}
	return c.To(pkg, target, opts)
}

// Roundtrip parses raw text and serializes it back into its own dialect.
// For documents with no lossy sections the second application of Roundtrip
// to its own output is byte-identical.
func (c *Converter) Roundtrip(format canonical.Format, raw string, meta SourceMeta, opts Options) (*Result, error) {
	return c.Convert(format, format, raw, meta, opts)
}

// Ingest parses raw dialect text and wraps the canonical.json artifact in a
// Result for registry storage. Parsing collects no warnings, so an
// ingested result always scores 100.
func (c *Converter) Ingest(format canonical.Format, raw string, meta SourceMeta) (*Result, error) {
	pkg, err := c.From(format, raw, meta)
	if err != nil {
		return nil, err
	}
	data, err := canonical.MarshalPackage(pkg)
	if err != nil {
		return nil, err
	}
	return &Result{
		Content:      string(data),
		Format:       canonical.FormatCanonical,
		QualityScore: 100,
	}, nil
}

// Formats returns the registered dialect tags.
func (c *Converter) Formats() []canonical.Format {
	return c.registry.Formats()
}
