// Package continuedev converts between Continue rule documents and the
// canonical package form. Continue rules are plain markdown with an
// optional name/description header; absence of a header is valid.
package continuedev

import (
	"github.com/cockroachdb/errors"

	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/internal/sections"
	"github.com/canonpack/canonpack/internal/validate"
	"github.com/canonpack/canonpack/pkg/canonical"
	"github.com/canonpack/canonpack/pkg/frontmatter"
)

type matter struct {
	Name        string   `yaml:"name,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Globs       []string `yaml:"globs,omitempty"`
}

// Parser reads Continue rule documents.
type Parser struct{}

// Format implements dialect.Parser.
func (Parser) Format() canonical.Format {
	return canonical.FormatContinue
}

// Parse implements dialect.Parser.
func (Parser) Parse(raw string, meta dialect.SourceMeta) (*canonical.Package, error) {
	var fm matter
	body, err := frontmatter.Parse(raw, &fm)
	if err != nil {
		return nil, canonical.NewParseError(canonical.FormatContinue, "",
			canonical.ErrMalformedFrontmatter)
	}

	fields := dialect.Fields{
		Name:        fm.Name,
		Description: fm.Description,
		Subtype:     canonical.SubtypeRule,
	}

	return dialect.Assemble(canonical.FormatContinue, meta, fields, sections.ParseBody(body)), nil
}

var supported = map[canonical.SectionType]bool{
	canonical.SectionInstructions: true,
	canonical.SectionRules:        true,
	canonical.SectionExamples:     true,
	canonical.SectionPersona:      true,
	canonical.SectionContext:      true,
	canonical.SectionCustom:       true,
}

// Serializer emits Continue rule documents.
type Serializer struct{}

// Format implements dialect.Serializer.
func (Serializer) Format() canonical.Format {
	return canonical.FormatContinue
}

// Serialize implements dialect.Serializer. A header is emitted only when
// the package carries a name or description; Continue does not require one.
func (Serializer) Serialize(pkg *canonical.Package, opts dialect.Options) (*dialect.Result, error) {
	var w dialect.Warnings

	body := dialect.RenderBody(pkg, canonical.FormatContinue, supported, nil, &w)

	var content string
	if pkg.Name != "" || pkg.Description != "" {
		var err error
		content, err = frontmatter.Format(matter{Name: pkg.Name, Description: pkg.Description}, body)
		if err != nil {
			return nil, errors.Wrap(err, "serializing continue document")
		}
	} else {
		content = body
	}

	vr := validate.Output(canonical.FormatContinue, pkg.Subtype, content)
	return dialect.Finish(content, canonical.FormatContinue, &w, vr, opts), nil
}
