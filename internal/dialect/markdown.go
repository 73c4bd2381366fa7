package dialect

import (
	"github.com/canonpack/canonpack/internal/sections"
	"github.com/canonpack/canonpack/pkg/canonical"
)

// Fields is what a parser recovered from a dialect header. Zero values fall
// back to the caller-supplied SourceMeta during assembly.
type Fields struct {
	Name        string
	Description string
	Version     string
	Author      string
	Tags        []string
	Subtype     canonical.Subtype
	Ext         *canonical.Extensions
}

// Assemble builds a canonical package from parsed header fields and body
// sections. The metadata section is synthesized first in all cases, with
// the title defaulting to the resolved package name, which itself defaults
// to the caller-supplied id when the dialect has no name field.
func Assemble(format canonical.Format, meta SourceMeta, f Fields, body []canonical.Section) *canonical.Package {
	name := first(f.Name, meta.Name, meta.ID)
	description := first(f.Description, meta.Description)
	version := first(f.Version, meta.Version)
	author := first(f.Author, meta.Author)

	tags := canonical.NormalizeTags(append(append([]string{}, meta.Tags...), f.Tags...))

	ext := f.Ext
	if ext.Empty() {
		ext = nil
	}

	metaSection := &canonical.MetadataSection{
		Data: canonical.MetadataData{
			Title:       name,
			Description: description,
			Version:     version,
			Author:      author,
			Ext:         ext,
		},
	}

	return &canonical.Package{
		ID:           meta.ID,
		Name:         name,
		Version:      version,
		Description:  description,
		Author:       author,
		Tags:         tags,
		Format:       format,
		Subtype:      f.Subtype.OrDefault(),
		Content:      canonical.NewContent(append([]canonical.Section{metaSection}, body...)...),
		SourceFormat: format,
	}
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// RenderBody renders every body section the target dialect supports into
// markdown, warning about the ones it cannot express. Custom sections are
// rendered only when their editor tag matches the target or is empty.
// Sections named in headered are expressed in the dialect header by the
// caller and are skipped here without a warning.
func RenderBody(pkg *canonical.Package, target canonical.Format, supported, headered map[canonical.SectionType]bool, w *Warnings) string {
	var b sections.Builder

	for _, s := range pkg.Content.Body() {
		if headered[s.Type()] {
			continue
		}
		if custom, ok := s.(*canonical.CustomSection); ok {
			if custom.EditorType != "" && custom.EditorType != target {
				w.IgnoredCustom(custom.EditorType, target)
				continue
			}
		}
		if !supported[s.Type()] {
			w.SkippedSection(s.Type(), target)
			continue
		}
		sections.Render(&b, s)
	}

	return b.String()
}

// ToolsOf returns the first tools section's allowlist, or nil.
func ToolsOf(pkg *canonical.Package) []string {
	for _, s := range pkg.Content.Body() {
		if tools, ok := s.(*canonical.ToolsSection); ok {
			return tools.Tools
		}
	}
	return nil
}
