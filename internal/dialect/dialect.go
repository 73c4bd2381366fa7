// Package dialect defines the contracts shared by every format parser and
// serializer, the warning accumulator, and the registry that maps format
// tags to implementations.
package dialect

import (
	"github.com/canonpack/canonpack/internal/score"
	"github.com/canonpack/canonpack/internal/validate"
	"github.com/canonpack/canonpack/pkg/canonical"
)

// SourceMeta is the caller-supplied package metadata accompanying a raw
// document into a parser. Fields present in the document itself win over
// these; ID is also the fallback for a missing name.
type SourceMeta struct {
	ID          string
	Name        string
	Version     string
	Description string
	Author      string
	Tags        []string
}

// Options tunes a serialization.
type Options struct {
	// Penalties overrides the default score deductions.
	Penalties *score.Penalties

	// Strict escalates validation warnings to errors.
	Strict bool
}

// Result is the outcome of one serialization. Output is always produced
// for a parseable package; degraded fidelity is reported through Warnings,
// ValidationErrors, LossyConversion and QualityScore, never by failing.
type Result struct {
	// Content is the serialized dialect text.
	Content string `json:"content"`

	// Format is the target dialect.
	Format canonical.Format `json:"format"`

	// Warnings lists non-fatal conversion notes.
	Warnings []string `json:"warnings,omitempty"`

	// ValidationErrors lists post-hoc schema violations in Content.
	ValidationErrors []string `json:"validationErrors,omitempty"`

	// LossyConversion is true when at least one section or field was
	// dropped with a warning.
	LossyConversion bool `json:"lossyConversion"`

	// QualityScore is the 0-100 fidelity metric.
	QualityScore int `json:"qualityScore"`
}

// Parser builds a canonical package from raw dialect text. Implementations
// are pure: no I/O, no shared state, safe for concurrent use.
type Parser interface {
	// Format returns the dialect this parser reads.
	Format() canonical.Format

	// Parse converts raw text to a canonical package or a typed
	// *canonical.ParseError. It never returns a partial package.
	Parse(raw string, meta SourceMeta) (*canonical.Package, error)
}

// Serializer projects a canonical package into dialect text. Implementations
// are pure and never mutate the package; unsupported sections are dropped
// with a warning, never an error.
type Serializer interface {
	// Format returns the dialect this serializer emits.
	Format() canonical.Format

	// Serialize renders pkg, collecting warnings and validation results.
	Serialize(pkg *canonical.Package, opts Options) (*Result, error)
}

// Penalties resolves the effective score deductions for opts.
func (o Options) PenaltySet() score.Penalties {
	if o.Penalties != nil {
		return *o.Penalties
	}
	return score.DefaultPenalties()
}

// Finish assembles a Result: it merges validator output and computes the
// lossy flag and quality score from the accumulated warnings. Under
// Options.Strict the validator's warnings count as errors.
func Finish(content string, format canonical.Format, warnings *Warnings, vr *validate.Result, opts Options) *Result {
	var validationErrors []string
	if vr != nil {
		validationErrors = vr.ErrorStrings()
		if opts.Strict {
			validationErrors = append(validationErrors, vr.WarningStrings()...)
		}
	}
	list := warnings.List()
	quality, lossy := score.Score(opts.PenaltySet(), list, validationErrors)
	return &Result{
		Content:          content,
		Format:           format,
		Warnings:         list,
		ValidationErrors: validationErrors,
		LossyConversion:  lossy,
		QualityScore:     quality,
	}
}
