// Package kiro converts between Kiro steering documents and the canonical
// package form. Kiro mandates the inclusion key; a document without it is a
// parse error, not a default — silent defaults would hide authoring
// mistakes.
package kiro

import (
	"github.com/cockroachdb/errors"

	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/internal/sections"
	"github.com/canonpack/canonpack/internal/validate"
	"github.com/canonpack/canonpack/pkg/canonical"
	"github.com/canonpack/canonpack/pkg/frontmatter"
)

type matter struct {
	Inclusion        string `yaml:"inclusion,omitempty"`
	FileMatchPattern string `yaml:"fileMatchPattern,omitempty"`
	Description      string `yaml:"description,omitempty"`
}

// DefaultInclusion is the inclusion mode emitted when a package carries no
// Kiro extension data.
const DefaultInclusion = "always"

// Parser reads Kiro steering documents.
type Parser struct{}

// Format implements dialect.Parser.
func (Parser) Format() canonical.Format {
	return canonical.FormatKiro
}

// Parse implements dialect.Parser.
func (Parser) Parse(raw string, meta dialect.SourceMeta) (*canonical.Package, error) {
	var fm matter
	body, err := frontmatter.MustParse(raw, &fm)
	if err != nil {
		if errors.Is(err, frontmatter.ErrMissingFrontmatter) {
			return nil, canonical.NewParseError(canonical.FormatKiro, "inclusion",
				canonical.ErrMissingRequiredField)
		}
		return nil, canonical.NewParseError(canonical.FormatKiro, "",
			canonical.ErrMalformedFrontmatter)
	}
	if fm.Inclusion == "" {
		return nil, canonical.NewParseError(canonical.FormatKiro, "inclusion",
			canonical.ErrMissingRequiredField)
	}

	fields := dialect.Fields{
		Description: fm.Description,
		Subtype:     canonical.SubtypeRule,
		Ext: &canonical.Extensions{Kiro: &canonical.KiroExt{
			Inclusion:        fm.Inclusion,
			FileMatchPattern: fm.FileMatchPattern,
		}},
	}

	return dialect.Assemble(canonical.FormatKiro, meta, fields, sections.ParseBody(body)), nil
}

var supported = map[canonical.SectionType]bool{
	canonical.SectionInstructions: true,
	canonical.SectionRules:        true,
	canonical.SectionExamples:     true,
	canonical.SectionContext:      true,
	canonical.SectionCustom:       true,
}

// Serializer emits Kiro steering documents.
type Serializer struct{}

// Format implements dialect.Serializer.
func (Serializer) Format() canonical.Format {
	return canonical.FormatKiro
}

// Serialize implements dialect.Serializer.
func (Serializer) Serialize(pkg *canonical.Package, opts dialect.Options) (*dialect.Result, error) {
	var w dialect.Warnings

	header := matter{
		Inclusion:   DefaultInclusion,
		Description: pkg.Description,
	}
	if ext := pkg.Ext(); ext != nil && ext.Kiro != nil {
		header.Inclusion = ext.Kiro.Inclusion
		header.FileMatchPattern = ext.Kiro.FileMatchPattern
	}

	body := dialect.RenderBody(pkg, canonical.FormatKiro, supported, nil, &w)

	content, err := frontmatter.Format(header, body)
	if err != nil {
		return nil, errors.Wrap(err, "serializing kiro document")
	}

	vr := validate.Output(canonical.FormatKiro, pkg.Subtype, content)
	return dialect.Finish(content, canonical.FormatKiro, &w, vr, opts), nil
}
