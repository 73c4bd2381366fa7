package claude

import (
	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/internal/sections"
	"github.com/canonpack/canonpack/pkg/canonical"
	"github.com/canonpack/canonpack/pkg/frontmatter"
)

// Parser reads Claude Code markdown documents.
type Parser struct{}

// Format implements dialect.Parser.
func (Parser) Format() canonical.Format {
	return canonical.FormatClaude
}

// Parse implements dialect.Parser. The header is optional: plain rule files
// (CLAUDE.md) carry none. A malformed header fails closed.
func (Parser) Parse(raw string, meta dialect.SourceMeta) (*canonical.Package, error) {
	var fm matter
	body, err := frontmatter.Parse(raw, &fm)
	if err != nil {
		return nil, canonical.NewParseError(canonical.FormatClaude, "",
			canonical.ErrMalformedFrontmatter)
	}

	parsed := sections.ParseBody(body)

	if len(fm.AllowedTools) > 0 {
		parsed = append(parsed, &canonical.ToolsSection{Tools: fm.AllowedTools})
	}

	fields := dialect.Fields{
		Name:        fm.Name,
		Description: fm.Description,
		Version:     fm.Metadata["version"],
		Author:      fm.Metadata["author"],
		Tags:        fm.Tags,
		Subtype:     inferSubtype(fm, parsed),
		Ext:         ext(fm),
	}

	return dialect.Assemble(canonical.FormatClaude, meta, fields, parsed), nil
}

// inferSubtype classifies the document. Claude has no explicit subtype
// field; the header shape decides.
func inferSubtype(fm matter, body []canonical.Section) canonical.Subtype {
	if fm.ArgumentHint != "" || fm.DisableModelInvocation {
		return canonical.SubtypeSlashCommand
	}
	if fm.License != "" || len(fm.Compatibility) > 0 || len(fm.AllowedTools) > 0 {
		return canonical.SubtypeSkill
	}
	for _, s := range body {
		if _, ok := s.(*canonical.PersonaSection); ok {
			return canonical.SubtypeAgent
		}
	}
	return canonical.SubtypeRule
}

func ext(fm matter) *canonical.Extensions {
	if fm.ArgumentHint == "" && fm.Model == "" && !fm.DisableModelInvocation &&
		fm.License == "" && len(fm.Compatibility) == 0 {
		return nil
	}
	return &canonical.Extensions{Claude: &canonical.ClaudeExt{
		ArgumentHint:           fm.ArgumentHint,
		Model:                  fm.Model,
		DisableModelInvocation: fm.DisableModelInvocation,
		License:                fm.License,
		Compatibility:          fm.Compatibility,
	}}
}
