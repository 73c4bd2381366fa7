// Package gemini converts between Gemini CLI command documents and the
// canonical package form. Gemini commands are TOML-first: the whole
// document is key/value pairs with the markdown body carried in the
// prompt field, so there is no frontmatter delimiter and no separate body.
package gemini

import (
	"github.com/cockroachdb/errors"

	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/internal/sections"
	"github.com/canonpack/canonpack/internal/validate"
	"github.com/canonpack/canonpack/pkg/canonical"
	"github.com/canonpack/canonpack/pkg/frontmatter"
)

type document struct {
	Description string `toml:"description,omitempty"`
	Prompt      string `toml:"prompt,multiline,omitempty"`
	Model       string `toml:"model,omitempty"`
}

// Parser reads Gemini CLI TOML command documents.
type Parser struct{}

// Format implements dialect.Parser.
func (Parser) Format() canonical.Format {
	return canonical.FormatGemini
}

// Parse implements dialect.Parser.
func (Parser) Parse(raw string, meta dialect.SourceMeta) (*canonical.Package, error) {
	var doc document
	if err := frontmatter.ParseTOML(raw, &doc); err != nil {
		return nil, canonical.NewParseError(canonical.FormatGemini, "",
			canonical.ErrMalformedFrontmatter)
	}

	var ext *canonical.Extensions
	if doc.Model != "" {
		ext = &canonical.Extensions{Gemini: &canonical.GeminiExt{Model: doc.Model}}
	}

	fields := dialect.Fields{
		Description: doc.Description,
		Subtype:     canonical.SubtypeSlashCommand,
		Ext:         ext,
	}

	return dialect.Assemble(canonical.FormatGemini, meta, fields, sections.ParseBody(doc.Prompt)), nil
}

var supported = map[canonical.SectionType]bool{
	canonical.SectionInstructions: true,
	canonical.SectionRules:        true,
	canonical.SectionExamples:     true,
	canonical.SectionPersona:      true,
	canonical.SectionContext:      true,
	canonical.SectionCustom:       true,
}

// Serializer emits Gemini CLI TOML command documents.
type Serializer struct{}

// Format implements dialect.Serializer.
func (Serializer) Format() canonical.Format {
	return canonical.FormatGemini
}

// Serialize implements dialect.Serializer.
func (Serializer) Serialize(pkg *canonical.Package, opts dialect.Options) (*dialect.Result, error) {
	var w dialect.Warnings

	prompt := dialect.RenderBody(pkg, canonical.FormatGemini, supported, nil, &w)

	doc := document{
		Description: pkg.Description,
		Prompt:      prompt,
	}
	if ext := pkg.Ext(); ext != nil && ext.Gemini != nil {
		doc.Model = ext.Gemini.Model
	}

	content, err := frontmatter.FormatTOML(doc)
	if err != nil {
		return nil, errors.Wrap(err, "serializing gemini document")
	}

	vr := validate.Output(canonical.FormatGemini, pkg.Subtype, content)
	return dialect.Finish(content, canonical.FormatGemini, &w, vr, opts), nil
}
