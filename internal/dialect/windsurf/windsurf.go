// Package windsurf converts between Windsurf rule documents and the
// canonical package form. The optional header carries the activation
// trigger and glob patterns.
package windsurf

import (
	"github.com/cockroachdb/errors"

	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/internal/sections"
	"github.com/canonpack/canonpack/internal/validate"
	"github.com/canonpack/canonpack/pkg/canonical"
	"github.com/canonpack/canonpack/pkg/frontmatter"
)

type matter struct {
	Trigger     string   `yaml:"trigger,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Globs       []string `yaml:"globs,omitempty"`
}

// Parser reads Windsurf rule documents.
type Parser struct{}

// Format implements dialect.Parser.
func (Parser) Format() canonical.Format {
	return canonical.FormatWindsurf
}

// Parse implements dialect.Parser. The header is optional: bare
// .windsurfrules files are plain markdown.
func (Parser) Parse(raw string, meta dialect.SourceMeta) (*canonical.Package, error) {
	var fm matter
	body, err := frontmatter.Parse(raw, &fm)
	if err != nil {
		return nil, canonical.NewParseError(canonical.FormatWindsurf, "",
			canonical.ErrMalformedFrontmatter)
	}

	var ext *canonical.Extensions
	if fm.Trigger != "" || len(fm.Globs) > 0 {
		ext = &canonical.Extensions{Windsurf: &canonical.WindsurfExt{
			Trigger: fm.Trigger,
			Globs:   fm.Globs,
		}}
	}

	fields := dialect.Fields{
		Description: fm.Description,
		Subtype:     canonical.SubtypeRule,
		Ext:         ext,
	}

	return dialect.Assemble(canonical.FormatWindsurf, meta, fields, sections.ParseBody(body)), nil
}

var supported = map[canonical.SectionType]bool{
	canonical.SectionInstructions: true,
	canonical.SectionRules:        true,
	canonical.SectionExamples:     true,
	canonical.SectionContext:      true,
	canonical.SectionCustom:       true,
}

// Serializer emits Windsurf rule documents.
type Serializer struct{}

// Format implements dialect.Serializer.
func (Serializer) Format() canonical.Format {
	return canonical.FormatWindsurf
}

// Serialize implements dialect.Serializer. The header is emitted only when
// there is something Windsurf-specific to say; a bare rule stays bare.
func (Serializer) Serialize(pkg *canonical.Package, opts dialect.Options) (*dialect.Result, error) {
	var w dialect.Warnings

	header := matter{Description: pkg.Description}
	if ext := pkg.Ext(); ext != nil && ext.Windsurf != nil {
		header.Trigger = ext.Windsurf.Trigger
		header.Globs = ext.Windsurf.Globs
	}

	body := dialect.RenderBody(pkg, canonical.FormatWindsurf, supported, nil, &w)

	var content string
	if header.Trigger == "" && len(header.Globs) == 0 && header.Description == "" {
		content = body
	} else {
		var err error
		content, err = frontmatter.Format(header, body)
		if err != nil {
			return nil, errors.Wrap(err, "serializing windsurf document")
		}
	}

	vr := validate.Output(canonical.FormatWindsurf, pkg.Subtype, content)
	return dialect.Finish(content, canonical.FormatWindsurf, &w, vr, opts), nil
}
