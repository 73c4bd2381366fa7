// Package generic converts between plain markdown documents and the
// canonical package form. Generic is the lossless dialect: every section
// variant renders, and a canonical.json document is accepted directly on
// the parse side for registry ingestion.
package generic

import (
	"strings"

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
	Version     string   `yaml:"version,omitempty"`
	Author      string   `yaml:"author,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// Parser reads generic markdown documents and canonical.json.
type Parser struct{}

// Format implements dialect.Parser.
func (Parser) Format() canonical.Format {
	return canonical.FormatGeneric
}

// Parse implements dialect.Parser. A document that opens with "{" is
// treated as canonical.json and decoded directly; anything else is
// markdown with an optional generic header.
func (Parser) Parse(raw string, meta dialect.SourceMeta) (*canonical.Package, error) {
	if strings.HasPrefix(strings.TrimSpace(raw), "{") {
		pkg, err := canonical.UnmarshalPackage([]byte(raw))
		if err != nil {
			return nil, err
		}
		return pkg, nil
	}

	var fm matter
	body, err := frontmatter.Parse(raw, &fm)
	if err != nil {
		return nil, canonical.NewParseError(canonical.FormatGeneric, "",
			canonical.ErrMalformedFrontmatter)
	}

	fields := dialect.Fields{
		Name:        fm.Name,
		Description: fm.Description,
		Version:     fm.Version,
		Author:      fm.Author,
		Tags:        fm.Tags,
		Subtype:     canonical.SubtypeRule,
	}

	return dialect.Assemble(canonical.FormatGeneric, meta, fields, sections.ParseBody(body)), nil
}

// supported covers every variant: generic output drops nothing.
var supported = map[canonical.SectionType]bool{
	canonical.SectionInstructions: true,
	canonical.SectionRules:        true,
	canonical.SectionExamples:     true,
	canonical.SectionPersona:      true,
	canonical.SectionTools:        true,
	canonical.SectionContext:      true,
	canonical.SectionHook:         true,
	canonical.SectionCustom:       true,
}

// Serializer emits generic markdown documents.
type Serializer struct{}

// Format implements dialect.Serializer.
func (Serializer) Format() canonical.Format {
	return canonical.FormatGeneric
}

// Serialize implements dialect.Serializer.
func (Serializer) Serialize(pkg *canonical.Package, opts dialect.Options) (*dialect.Result, error) {
	var w dialect.Warnings

	header := matter{
		Name:        pkg.Name,
		Description: pkg.Description,
		Version:     pkg.Version,
		Author:      pkg.Author,
		Tags:        pkg.Tags,
	}

	body := dialect.RenderBody(pkg, canonical.FormatGeneric, supported, nil, &w)

	content, err := frontmatter.Format(header, body)
	if err != nil {
		return nil, errors.Wrap(err, "serializing generic document")
	}

	vr := validate.Output(canonical.FormatGeneric, pkg.Subtype, content)
	return dialect.Finish(content, canonical.FormatGeneric, &w, vr, opts), nil
}
