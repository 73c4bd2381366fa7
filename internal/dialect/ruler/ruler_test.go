package ruler

import (
	"reflect"
	"strings"
	"testing"

	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/pkg/canonical"
)

func TestParse_MetadataComments(t *testing.T) {
	raw := `<!-- Package: react-rules -->
<!-- Author: @developer -->
<!-- Description: React best practices -->
<!-- Version: 2.1.0 -->
<!-- Tags: react, frontend -->

# React best practices

- Prefer function components.
- Never mutate props.
`

	pkg, err := Parser{}.Parse(raw, dialect.SourceMeta{ID: "react-rules"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if pkg.Name != "react-rules" {
		t.Errorf("Name = %q, want react-rules", pkg.Name)
	}
	if pkg.Author != "@developer" {
		t.Errorf("Author = %q, want @developer", pkg.Author)
	}
	if pkg.Description != "React best practices" {
		t.Errorf("Description = %q", pkg.Description)
	}
	if pkg.Version != "2.1.0" {
		t.Errorf("Version = %q, want 2.1.0", pkg.Version)
	}
	if !reflect.DeepEqual(pkg.Tags, []string{"react", "frontend"}) {
		t.Errorf("Tags = %v, want [react frontend]", pkg.Tags)
	}
	if pkg.Subtype != canonical.SubtypeRule {
		t.Errorf("Subtype = %v, want rule", pkg.Subtype)
	}
	if len(pkg.Content.Body()) == 0 {
		t.Error("body sections lost")
	}
}

func TestParse_CommentsStopAtFirstContent(t *testing.T) {
	raw := "# Heading\n\n<!-- Package: too-late -->\n"

	pkg, err := Parser{}.Parse(raw, dialect.SourceMeta{ID: "fallback"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	// A comment after the first content line is body, not metadata.
	if pkg.Name != "fallback" {
		t.Errorf("Name = %q, want the caller-supplied id", pkg.Name)
	}
}

func TestParse_Empty(t *testing.T) {
	pkg, err := Parser{}.Parse("", dialect.SourceMeta{ID: "empty"})
	if err != nil {
		t.Fatalf("Parse(\"\") error = %v", err)
	}
	if pkg.Name != "empty" {
		t.Errorf("Name = %q, want empty", pkg.Name)
	}
	if meta := pkg.Content.Meta(); meta == nil {
		t.Error("metadata section not synthesized")
	}
}

func TestSerialize(t *testing.T) {
	pkg := &canonical.Package{
		ID: "react-rules", Name: "react-rules",
		Description: "React best practices",
		Author:      "@developer",
		Version:     "2.1.0",
		Tags:        []string{"react", "frontend"},
		Format:      canonical.FormatRuler, Subtype: canonical.SubtypeRule,
		Content: canonical.NewContent(
			&canonical.MetadataSection{Data: canonical.MetadataData{Title: "react-rules"}},
			&canonical.RulesSection{Title: "Rules", Items: []canonical.Rule{{Content: "Prefer function components"}}},
		),
	}

	res, err := Serializer{}.Serialize(pkg, dialect.Options{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	for _, want := range []string{
		"<!-- Package: react-rules -->",
		"<!-- Author: @developer -->",
		"<!-- Description: React best practices -->",
		"<!-- Version: 2.1.0 -->",
		"<!-- Tags: react, frontend -->",
		"Prefer function components",
	} {
		if !strings.Contains(res.Content, want) {
			t.Errorf("output missing %q:\n%s", want, res.Content)
		}
	}
	if res.QualityScore != 100 || res.LossyConversion {
		t.Errorf("score/lossy = %d/%v, want 100/false", res.QualityScore, res.LossyConversion)
	}
}

func TestSerialize_SlashCommandSubtype(t *testing.T) {
	pkg := &canonical.Package{
		ID: "deploy", Name: "deploy",
		Format: canonical.FormatRuler, Subtype: canonical.SubtypeSlashCommand,
		Content: canonical.NewContent(
			&canonical.MetadataSection{Data: canonical.MetadataData{Title: "deploy"}},
			&canonical.InstructionsSection{Content: "Deploy the current branch."},
		),
	}

	res, err := Serializer{}.Serialize(pkg, dialect.Options{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	want := "Slash commands are not supported by Ruler"
	if len(res.Warnings) != 1 || res.Warnings[0] != want {
		t.Errorf("Warnings = %v, want [%q]", res.Warnings, want)
	}
	if !res.LossyConversion {
		t.Error("subtype mismatch should mark the conversion lossy")
	}
	if res.QualityScore != 80 {
		t.Errorf("QualityScore = %d, want 80", res.QualityScore)
	}
}

func TestRoundTrip(t *testing.T) {
	pkg := &canonical.Package{
		ID: "react-rules", Name: "react-rules",
		Description: "React best practices",
		Author:      "@developer",
		Format:      canonical.FormatRuler, Subtype: canonical.SubtypeRule,
		Content: canonical.NewContent(
			&canonical.MetadataSection{Data: canonical.MetadataData{Title: "react-rules", Description: "React best practices", Author: "@developer"}},
			&canonical.RulesSection{Title: "Rules", Items: []canonical.Rule{{Content: "Never mutate props"}}},
		),
	}

	res, err := Serializer{}.Serialize(pkg, dialect.Options{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	again, err := Parser{}.Parse(res.Content, dialect.SourceMeta{ID: "react-rules"})
	if err != nil {
		t.Fatalf("reparse error = %v", err)
	}
	if again.Name != pkg.Name || again.Author != pkg.Author || again.Description != pkg.Description {
		t.Errorf("metadata lost: got %q/%q/%q", again.Name, again.Author, again.Description)
	}
	if !reflect.DeepEqual(again.Content.Body(), pkg.Content.Body()) {
		t.Errorf("body mismatch\n got: %+v\nwant: %+v", again.Content.Body(), pkg.Content.Body())
	}
}
