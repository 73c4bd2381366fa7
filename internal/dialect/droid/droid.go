// Package droid converts between Factory Droid markdown documents and the
// canonical package form. Droid headers carry name, description and an
// optional argument-hint for commands.
package droid

import (
	"github.com/cockroachdb/errors"

	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/internal/sections"
	"github.com/canonpack/canonpack/internal/validate"
	"github.com/canonpack/canonpack/pkg/canonical"
	"github.com/canonpack/canonpack/pkg/frontmatter"
)

type matter struct {
	Name         string `yaml:"name,omitempty"`
	Description  string `yaml:"description,omitempty"`
	ArgumentHint string `yaml:"argument-hint,omitempty"`
	Model        string `yaml:"model,omitempty"`
}

// Parser reads Factory Droid markdown documents.
type Parser struct{}

// Format implements dialect.Parser.
func (Parser) Format() canonical.Format {
	return canonical.FormatDroid
}

// Parse implements dialect.Parser.
func (Parser) Parse(raw string, meta dialect.SourceMeta) (*canonical.Package, error) {
	var fm matter
	body, err := frontmatter.Parse(raw, &fm)
	if err != nil {
		return nil, canonical.NewParseError(canonical.FormatDroid, "",
			canonical.ErrMalformedFrontmatter)
	}

	var ext *canonical.Extensions
	if fm.ArgumentHint != "" || fm.Model != "" {
		ext = &canonical.Extensions{Droid: &canonical.DroidExt{
			ArgumentHint: fm.ArgumentHint,
			Model:        fm.Model,
		}}
	}

	subtype := canonical.SubtypeRule
	if fm.ArgumentHint != "" {
		subtype = canonical.SubtypeSlashCommand
	}

	fields := dialect.Fields{
		Name:        fm.Name,
		Description: fm.Description,
		Subtype:     subtype,
		Ext:         ext,
	}

	return dialect.Assemble(canonical.FormatDroid, meta, fields, sections.ParseBody(body)), nil
}

var supported = map[canonical.SectionType]bool{
	canonical.SectionInstructions: true,
	canonical.SectionRules:        true,
	canonical.SectionExamples:     true,
	canonical.SectionPersona:      true,
	canonical.SectionContext:      true,
	canonical.SectionCustom:       true,
}

// Serializer emits Factory Droid markdown documents.
type Serializer struct{}

// Format implements dialect.Serializer.
func (Serializer) Format() canonical.Format {
	return canonical.FormatDroid
}

// Serialize implements dialect.Serializer.
func (Serializer) Serialize(pkg *canonical.Package, opts dialect.Options) (*dialect.Result, error) {
	var w dialect.Warnings

	header := matter{
		Name:        pkg.Title(),
		Description: pkg.Description,
	}
	if ext := pkg.Ext(); ext != nil && ext.Droid != nil {
		header.ArgumentHint = ext.Droid.ArgumentHint
		header.Model = ext.Droid.Model
	}

	body := dialect.RenderBody(pkg, canonical.FormatDroid, supported, nil, &w)

	content, err := frontmatter.Format(header, body)
	if err != nil {
		return nil, errors.Wrap(err, "serializing droid document")
	}

	vr := validate.Output(canonical.FormatDroid, pkg.Subtype, content)
	return dialect.Finish(content, canonical.FormatDroid, &w, vr, opts), nil
}
