package continuedev

import (
	"strings"
	"testing"

	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/pkg/canonical"
)

func TestParse(t *testing.T) {
	raw := "---\nname: python-rules\ndescription: Python conventions\n---\n\n- Use type hints.\n"

	pkg, err := Parser{}.Parse(raw, dialect.SourceMeta{ID: "python-rules"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if pkg.Name != "python-rules" || pkg.Description != "Python conventions" {
		t.Errorf("header lost: %q/%q", pkg.Name, pkg.Description)
	}
}

func TestSerialize_HeaderOnlyWhenNamed(t *testing.T) {
	pkg := &canonical.Package{
		ID: "python-rules", Name: "python-rules",
		Description: "Python conventions",
		Format:      canonical.FormatContinue, Subtype: canonical.SubtypeRule,
		Content: canonical.NewContent(
			&canonical.MetadataSection{Data: canonical.MetadataData{Title: "python-rules"}},
			&canonical.InstructionsSection{Content: "Use type hints."},
		),
	}

	res, err := Serializer{}.Serialize(pkg, dialect.Options{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !strings.HasPrefix(res.Content, "---\n") {
		t.Errorf("named package should carry a header:\n%s", res.Content)
	}
	if !strings.Contains(res.Content, "name: python-rules") {
		t.Errorf("name lost:\n%s", res.Content)
	}
}

func TestSerialize_DropsTools(t *testing.T) {
	pkg := &canonical.Package{
		ID: "x", Name: "x",
		Format: canonical.FormatContinue, Subtype: canonical.SubtypeRule,
		Content: canonical.NewContent(
			&canonical.MetadataSection{Data: canonical.MetadataData{Title: "x"}},
			&canonical.ToolsSection{Tools: []string{"Read"}},
		),
	}

	res, err := Serializer{}.Serialize(pkg, dialect.Options{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	want := "Tools section skipped (not supported by Continue)"
	if len(res.Warnings) != 1 || res.Warnings[0] != want {
		t.Errorf("Warnings = %v, want [%q]", res.Warnings, want)
	}
}
