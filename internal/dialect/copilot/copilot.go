// Package copilot converts between GitHub Copilot instruction documents and
// the canonical package form. Scoped *.instructions.md files carry an
// applyTo header; repository-wide copilot-instructions.md files carry none.
package copilot

import (
	"github.com/cockroachdb/errors"

	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/internal/sections"
	"github.com/canonpack/canonpack/internal/validate"
	"github.com/canonpack/canonpack/pkg/canonical"
	"github.com/canonpack/canonpack/pkg/frontmatter"
)

type matter struct {
	ApplyTo     string `yaml:"applyTo,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Parser reads Copilot instruction documents.
type Parser struct{}

// Format implements dialect.Parser.
func (Parser) Format() canonical.Format {
	return canonical.FormatCopilot
}

// Parse implements dialect.Parser.
func (Parser) Parse(raw string, meta dialect.SourceMeta) (*canonical.Package, error) {
	var fm matter
	body, err := frontmatter.Parse(raw, &fm)
	if err != nil {
		return nil, canonical.NewParseError(canonical.FormatCopilot, "",
			canonical.ErrMalformedFrontmatter)
	}

	var ext *canonical.Extensions
	if fm.ApplyTo != "" {
		ext = &canonical.Extensions{Copilot: &canonical.CopilotExt{ApplyTo: fm.ApplyTo}}
	}

	fields := dialect.Fields{
		Description: fm.Description,
		Subtype:     canonical.SubtypeRule,
		Ext:         ext,
	}

	return dialect.Assemble(canonical.FormatCopilot, meta, fields, sections.ParseBody(body)), nil
}

var supported = map[canonical.SectionType]bool{
	canonical.SectionInstructions: true,
	canonical.SectionRules:        true,
	canonical.SectionExamples:     true,
	canonical.SectionContext:      true,
	canonical.SectionCustom:       true,
}

// Serializer emits Copilot instruction documents.
type Serializer struct{}

// Format implements dialect.Serializer.
func (Serializer) Format() canonical.Format {
	return canonical.FormatCopilot
}

// Serialize implements dialect.Serializer.
func (Serializer) Serialize(pkg *canonical.Package, opts dialect.Options) (*dialect.Result, error) {
	var w dialect.Warnings

	body := dialect.RenderBody(pkg, canonical.FormatCopilot, supported, nil, &w)

	var content string
	if ext := pkg.Ext(); ext != nil && ext.Copilot != nil && ext.Copilot.ApplyTo != "" {
		var err error
		content, err = frontmatter.Format(matter{ApplyTo: ext.Copilot.ApplyTo, Description: pkg.Description}, body)
		if err != nil {
			return nil, errors.Wrap(err, "serializing copilot document")
		}
	} else {
		content = body
	}

	vr := validate.Output(canonical.FormatCopilot, pkg.Subtype, content)
	return dialect.Finish(content, canonical.FormatCopilot, &w, vr, opts), nil
}
