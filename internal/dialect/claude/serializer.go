package claude

import (
	"github.com/cockroachdb/errors"

	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/internal/validate"
	"github.com/canonpack/canonpack/pkg/canonical"
	"github.com/canonpack/canonpack/pkg/frontmatter"
)

// outMatter is the emitted frontmatter. Only Claude Code's own keys appear;
// registry-internal fields never leak into a dialect file. The skill-style
// metadata map is emitted as a fixed struct so key order is stable.
type outMatter struct {
	Name                   string    `yaml:"name,omitempty"`
	Description            string    `yaml:"description,omitempty"`
	License                string    `yaml:"license,omitempty"`
	Compatibility          []string  `yaml:"compatibility,omitempty"`
	Metadata               *outMeta  `yaml:"metadata,omitempty"`
	AllowedTools           string    `yaml:"allowed-tools,omitempty"`
	ArgumentHint           string    `yaml:"argument-hint,omitempty"`
	Model                  string    `yaml:"model,omitempty"`
	DisableModelInvocation bool      `yaml:"disable-model-invocation,omitempty"`
}

type outMeta struct {
	Author  string `yaml:"author,omitempty"`
	Version string `yaml:"version,omitempty"`
}

// supported lists the section variants Claude markdown can express in the
// body. Tools are expressed in the header instead.
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

// Serializer emits Claude Code markdown.
type Serializer struct{}

// Format implements dialect.Serializer.
func (Serializer) Format() canonical.Format {
	return canonical.FormatClaude
}

// Serialize implements dialect.Serializer.
func (Serializer) Serialize(pkg *canonical.Package, opts dialect.Options) (*dialect.Result, error) {
	var w dialect.Warnings

	header := outMatter{
		Name:         pkg.Name,
		Description:  pkg.Description,
		AllowedTools: ToolList(dialect.ToolsOf(pkg)).String(),
	}
	if pkg.Author != "" || pkg.Version != "" {
		header.Metadata = &outMeta{Author: pkg.Author, Version: pkg.Version}
	}
	if ext := pkg.Ext(); ext != nil && ext.Claude != nil {
		header.License = ext.Claude.License
		header.Compatibility = ext.Claude.Compatibility
		header.ArgumentHint = ext.Claude.ArgumentHint
		header.Model = ext.Claude.Model
		header.DisableModelInvocation = ext.Claude.DisableModelInvocation
	}

	body := dialect.RenderBody(pkg, canonical.FormatClaude, supported, headered, &w)

	content, err := frontmatter.Format(header, body)
	if err != nil {
		return nil, errors.Wrap(err, "serializing claude document")
	}

	vr := validate.Output(canonical.FormatClaude, pkg.Subtype, content)
	return dialect.Finish(content, canonical.FormatClaude, &w, vr, opts), nil
}
