package canonical

import (
	"regexp"
	"strings"
)

// ContentVersion is the canonical schema version stamped into every
// document for forward-compatible evolution.
const ContentVersion = "1.0"

// Package is the unit of conversion: one authored artifact in canonical
// form, ready to be serialized into any supported dialect.
type Package struct {
	// ID is the caller-assigned package identifier.
	ID string `json:"id"`

	// Name is the package name. Parsers default it to ID when the source
	// dialect has no name field.
	Name string `json:"name"`

	// Version is a semantic version string.
	Version string `json:"version,omitempty"`

	// Description summarizes the package.
	Description string `json:"description,omitempty"`

	// Author is the author as "Name" or "Name <email>".
	Author string `json:"author,omitempty"`

	// Tags is an ordered, deduplicated tag set.
	Tags []string `json:"tags,omitempty"`

	// Format is the dialect this package is tagged as.
	Format Format `json:"format"`

	// Subtype classifies the artifact; defaults to rule.
	Subtype Subtype `json:"subtype"`

	// Content is the canonical section list.
	Content Content `json:"content"`

	// SourceFormat is the dialect the package was parsed from. It differs
	// from Format when a package has been re-tagged.
	SourceFormat Format `json:"sourceFormat,omitempty"`
}

// Content is the ordered section list with schema identification for the
// persisted canonical.json artifact.
type Content struct {
	// Format is always "canonical".
	Format string `json:"format"`

	// Version is the canonical schema version, currently "1.0".
	Version string `json:"version"`

	// Sections is the ordered section list. At most one metadata section,
	// and if present it is first.
	Sections []Section `json:"sections"`
}

// NewContent returns an empty canonical content with the schema tags set.
func NewContent(sections ...Section) Content {
	return Content{
		Format:   string(FormatCanonical),
		Version:  ContentVersion,
		Sections: sections,
	}
}

// Meta returns the leading metadata section, or nil when absent.
func (c Content) Meta() *MetadataSection {
	if len(c.Sections) == 0 {
		return nil
	}
	meta, ok := c.Sections[0].(*MetadataSection)
	if !ok {
		return nil
	}
	return meta
}

// Body returns the sections after the leading metadata section.
func (c Content) Body() []Section {
	if c.Meta() == nil {
		return c.Sections
	}
	return c.Sections[1:]
}

var authorEmailPattern = regexp.MustCompile(`^(.*?)\s*<([^>]+)>$`)

// AuthorName returns the name portion of the author field.
func (p *Package) AuthorName() string {
	if m := authorEmailPattern.FindStringSubmatch(p.Author); m != nil {
		return strings.TrimSpace(m[1])
	}
	return p.Author
}

// AuthorEmail returns the email portion of the author field, or "".
func (p *Package) AuthorEmail() string {
	if m := authorEmailPattern.FindStringSubmatch(p.Author); m != nil {
		return m[2]
	}
	return ""
}

// Title returns the display title: the metadata section's title when set,
// otherwise the package name.
func (p *Package) Title() string {
	if meta := p.Content.Meta(); meta != nil && meta.Data.Title != "" {
		return meta.Data.Title
	}
	return p.Name
}

// Ext returns the extensions bag from the metadata section, or nil.
func (p *Package) Ext() *Extensions {
	meta := p.Content.Meta()
	if meta == nil {
		return nil
	}
	return meta.Data.Ext
}

// NormalizeTags deduplicates tags preserving first-seen order.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
