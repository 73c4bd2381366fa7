// Package cursor converts between Cursor .mdc rule documents and the
// canonical package form. The MDC header is restricted to description,
// globs and alwaysApply; Cursor has no other frontmatter vocabulary.
package cursor

import (
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/internal/sections"
	"github.com/canonpack/canonpack/internal/validate"
	"github.com/canonpack/canonpack/pkg/canonical"
	"github.com/canonpack/canonpack/pkg/frontmatter"
)

// GlobList accepts both a comma-delimited string and a list of strings,
// the two glob spellings found in .mdc files in the wild.
type GlobList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *GlobList) UnmarshalYAML(value *yaml.Node) error {
	var multi []string
	if err := value.Decode(&multi); err == nil {
		*g = multi
		return nil
	}

	var single string
	if err := value.Decode(&single); err == nil {
		for _, part := range strings.Split(single, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				*g = append(*g, part)
			}
		}
		return nil
	}

	return errors.Newf("globs must be a string or list of strings, got %s", value.Tag)
}

type matter struct {
	Description string   `yaml:"description,omitempty"`
	Globs       GlobList `yaml:"globs,omitempty"`
	AlwaysApply bool     `yaml:"alwaysApply,omitempty"`
}

type outMatter struct {
	Description string   `yaml:"description,omitempty"`
	Globs       []string `yaml:"globs,omitempty"`
	AlwaysApply bool     `yaml:"alwaysApply,omitempty"`
}

// Parser reads Cursor .mdc documents.
type Parser struct{}

// Format implements dialect.Parser.
func (Parser) Format() canonical.Format {
	return canonical.FormatCursor
}

// Parse implements dialect.Parser. A missing header is tolerated at parse
// time; the output validator is what enforces the description requirement.
func (Parser) Parse(raw string, meta dialect.SourceMeta) (*canonical.Package, error) {
	var fm matter
	body, err := frontmatter.Parse(raw, &fm)
	if err != nil {
		return nil, canonical.NewParseError(canonical.FormatCursor, "",
			canonical.ErrMalformedFrontmatter)
	}

	var ext *canonical.Extensions
	if len(fm.Globs) > 0 || fm.AlwaysApply {
		ext = &canonical.Extensions{Cursor: &canonical.CursorExt{
			Globs:       fm.Globs,
			AlwaysApply: fm.AlwaysApply,
		}}
	}

	fields := dialect.Fields{
		Description: fm.Description,
		Subtype:     canonical.SubtypeRule,
		Ext:         ext,
	}

	return dialect.Assemble(canonical.FormatCursor, meta, fields, sections.ParseBody(body)), nil
}

// supported lists what an .mdc body can express. Personas, hooks and tool
// allowlists have no Cursor equivalent and are dropped with a warning.
var supported = map[canonical.SectionType]bool{
	canonical.SectionInstructions: true,
	canonical.SectionRules:        true,
	canonical.SectionExamples:     true,
	canonical.SectionContext:      true,
	canonical.SectionCustom:       true,
}

// Serializer emits Cursor .mdc documents.
type Serializer struct{}

// Format implements dialect.Serializer.
func (Serializer) Format() canonical.Format {
	return canonical.FormatCursor
}

// Serialize implements dialect.Serializer.
func (Serializer) Serialize(pkg *canonical.Package, opts dialect.Options) (*dialect.Result, error) {
	var w dialect.Warnings

	header := outMatter{Description: pkg.Description}
	if header.Description == "" {
		// Cursor mandates a description; fall back to the title so the
		// output stays loadable, and let validation flag the gap.
		header.Description = pkg.Title()
	}
	if ext := pkg.Ext(); ext != nil && ext.Cursor != nil {
		header.Globs = ext.Cursor.Globs
		header.AlwaysApply = ext.Cursor.AlwaysApply
	}

	body := dialect.RenderBody(pkg, canonical.FormatCursor, supported, nil, &w)

	content, err := frontmatter.Format(header, body)
	if err != nil {
		return nil, errors.Wrap(err, "serializing cursor document")
	}

	vr := validate.Output(canonical.FormatCursor, pkg.Subtype, content)
	return dialect.Finish(content, canonical.FormatCursor, &w, vr, opts), nil
}
