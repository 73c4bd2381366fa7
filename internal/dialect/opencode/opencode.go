// Package opencode converts between OpenCode agent documents and the
// canonical package form. OpenCode headers carry an agent mode, model
// selection, sampling temperature and a per-tool enable map.
package opencode

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/internal/sections"
	"github.com/canonpack/canonpack/internal/validate"
	"github.com/canonpack/canonpack/pkg/canonical"
	"github.com/canonpack/canonpack/pkg/frontmatter"
)

type matter struct {
	Name        string          `yaml:"name,omitempty"`
	Description string          `yaml:"description,omitempty"`
	Mode        string          `yaml:"mode,omitempty"`
	Model       string          `yaml:"model,omitempty"`
	Temperature *float64        `yaml:"temperature,omitempty"`
	Tools       map[string]bool `yaml:"tools,omitempty"`
}

// Parser reads OpenCode agent documents.
type Parser struct{}

// Format implements dialect.Parser.
func (Parser) Format() canonical.Format {
	return canonical.FormatOpencode
}

// Parse implements dialect.Parser.
func (Parser) Parse(raw string, meta dialect.SourceMeta) (*canonical.Package, error) {
	var fm matter
	body, err := frontmatter.Parse(raw, &fm)
	if err != nil {
		return nil, canonical.NewParseError(canonical.FormatOpencode, "",
			canonical.ErrMalformedFrontmatter)
	}

	parsed := sections.ParseBody(body)

	if enabled := enabledTools(fm.Tools); len(enabled) > 0 {
		parsed = append(parsed, &canonical.ToolsSection{Tools: enabled})
	}

	var ext *canonical.Extensions
	if fm.Mode != "" || fm.Model != "" || fm.Temperature != nil || len(fm.Tools) > 0 {
		ext = &canonical.Extensions{Opencode: &canonical.OpencodeExt{
			Mode:        fm.Mode,
			Model:       fm.Model,
			Temperature: fm.Temperature,
			Tools:       fm.Tools,
		}}
	}

	subtype := canonical.SubtypeRule
	if fm.Mode != "" {
		subtype = canonical.SubtypeAgent
	}

	fields := dialect.Fields{
		Name:        fm.Name,
		Description: fm.Description,
		Subtype:     subtype,
		Ext:         ext,
	}

	return dialect.Assemble(canonical.FormatOpencode, meta, fields, parsed), nil
}

// enabledTools returns the names mapped to true, in sorted order for
// deterministic section content.
func enabledTools(tools map[string]bool) []string {
	if len(tools) == 0 {
		return nil
	}
	var out []string
	for name, on := range tools {
		if on {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

var supported = map[canonical.SectionType]bool{
	canonical.SectionInstructions: true,
	canonical.SectionRules:        true,
	canonical.SectionExamples:     true,
	canonical.SectionPersona:      true,
	canonical.SectionContext:      true,
	canonical.SectionHook:         true,
	canonical.SectionCustom:       true,
}

var headered = map[canonical.SectionType]bool{
	canonical.SectionTools: true,
}

// Serializer emits OpenCode agent documents.
type Serializer struct{}

// Format implements dialect.Serializer.
func (Serializer) Format() canonical.Format {
	return canonical.FormatOpencode
}

// Serialize implements dialect.Serializer.
func (Serializer) Serialize(pkg *canonical.Package, opts dialect.Options) (*dialect.Result, error) {
	var w dialect.Warnings

	header := matter{
		Name:        pkg.Name,
		Description: pkg.Description,
	}
	if ext := pkg.Ext(); ext != nil && ext.Opencode != nil {
		header.Mode = ext.Opencode.Mode
		header.Model = ext.Opencode.Model
		header.Temperature = ext.Opencode.Temperature
		header.Tools = ext.Opencode.Tools
	}
	if header.Tools == nil {
		if tools := dialect.ToolsOf(pkg); tools != nil {
			header.Tools = make(map[string]bool, len(tools))
			for _, name := range tools {
				header.Tools[name] = true
			}
		}
	}

	body := dialect.RenderBody(pkg, canonical.FormatOpencode, supported, headered, &w)

	content, err := frontmatter.Format(header, body)
	if err != nil {
		return nil, errors.Wrap(err, "serializing opencode document")
	}

	vr := validate.Output(canonical.FormatOpencode, pkg.Subtype, content)
	return dialect.Finish(content, canonical.FormatOpencode, &w, vr, opts), nil
}
