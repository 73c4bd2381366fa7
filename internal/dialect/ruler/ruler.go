// Package ruler converts between Ruler rule files and the canonical package
// form. Ruler files are plain markdown whose metadata travels in leading
// HTML comments:
//
//	<!-- Package: react-rules -->
//	<!-- Author: @developer -->
//	<!-- Description: React best practices -->
package ruler

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/internal/sections"
	"github.com/canonpack/canonpack/internal/validate"
	"github.com/canonpack/canonpack/pkg/canonical"
)

// commentPattern matches one metadata comment line.
var commentPattern = regexp.MustCompile(`^<!--\s*([A-Za-z]+):\s*(.*?)\s*-->\s*$`)

// Parser reads Ruler markdown documents. There is no frontmatter block and
// nothing is mandatory: empty input parses to a metadata-only package.
type Parser struct{}

// Format implements dialect.Parser.
func (Parser) Format() canonical.Format {
	return canonical.FormatRuler
}

// Parse implements dialect.Parser.
func (Parser) Parse(raw string, meta dialect.SourceMeta) (*canonical.Package, error) {
	fields := dialect.Fields{Subtype: canonical.SubtypeRule}

	var bodyLines []string
	inHeader := true
	for _, line := range strings.Split(raw, "\n") {
		if inHeader {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if m := commentPattern.FindStringSubmatch(line); m != nil {
				switch strings.ToLower(m[1]) {
				case "package":
					fields.Name = m[2]
				case "author":
					fields.Author = m[2]
				case "description":
					fields.Description = m[2]
				case "version":
					fields.Version = m[2]
				case "tags":
					fields.Tags = splitTags(m[2])
				}
				continue
			}
			inHeader = false
		}
		bodyLines = append(bodyLines, line)
	}

	body := strings.Join(bodyLines, "\n")
	return dialect.Assemble(canonical.FormatRuler, meta, fields, sections.ParseBody(body)), nil
}

func splitTags(s string) []string {
	var out []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// supported lists what a Ruler file can express. Ruler aggregates plain
// rule prose; tool allowlists and hooks have no representation.
var supported = map[canonical.SectionType]bool{
	canonical.SectionInstructions: true,
	canonical.SectionRules:        true,
	canonical.SectionExamples:     true,
	canonical.SectionPersona:      true,
	canonical.SectionContext:      true,
	canonical.SectionCustom:       true,
}

// Serializer emits Ruler markdown documents.
type Serializer struct{}

// Format implements dialect.Serializer.
func (Serializer) Format() canonical.Format {
	return canonical.FormatRuler
}

// Serialize implements dialect.Serializer.
func (Serializer) Serialize(pkg *canonical.Package, opts dialect.Options) (*dialect.Result, error) {
	var w dialect.Warnings

	if pkg.Subtype == canonical.SubtypeSlashCommand {
		w.UnsupportedSubtype(canonical.SubtypeSlashCommand, canonical.FormatRuler)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "<!-- Package: %s -->\n", pkg.Name)
	if pkg.Author != "" {
		fmt.Fprintf(&sb, "<!-- Author: %s -->\n", pkg.Author)
	}
	if pkg.Description != "" {
		fmt.Fprintf(&sb, "<!-- Description: %s -->\n", pkg.Description)
	}
	if pkg.Version != "" {
		fmt.Fprintf(&sb, "<!-- Version: %s -->\n", pkg.Version)
	}
	if len(pkg.Tags) > 0 {
		fmt.Fprintf(&sb, "<!-- Tags: %s -->\n", strings.Join(pkg.Tags, ", "))
	}

	body := dialect.RenderBody(pkg, canonical.FormatRuler, supported, nil, &w)
	if body != "" {
		sb.WriteString("\n")
		sb.WriteString(body)
	}

	content := sb.String()
	vr := validate.Output(canonical.FormatRuler, pkg.Subtype, content)
	return dialect.Finish(content, canonical.FormatRuler, &w, vr, opts), nil
}
