package windsurf

import (
	"reflect"
	"strings"
	"testing"

	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/pkg/canonical"
)

func TestParse(t *testing.T) {
	raw := `---
trigger: glob
description: Frontend rules
globs:
  - "src/**/*.tsx"
---

- Use CSS modules.
`

	pkg, err := Parser{}.Parse(raw, dialect.SourceMeta{ID: "frontend"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	ext := pkg.Ext()
	if ext == nil || ext.Windsurf == nil {
		t.Fatalf("Ext = %+v, want windsurf extension", ext)
	}
	if ext.Windsurf.Trigger != "glob" || !reflect.DeepEqual(ext.Windsurf.Globs, []string{"src/**/*.tsx"}) {
		t.Errorf("Windsurf ext = %+v", ext.Windsurf)
	}
}

func TestParse_BareRules(t *testing.T) {
	pkg, err := Parser{}.Parse("- Always run the linter.\n", dialect.SourceMeta{ID: "bare"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if pkg.Ext() != nil {
		t.Errorf("Ext = %+v, want nil", pkg.Ext())
	}
}

func TestSerialize_BareStaysBare(t *testing.T) {
	pkg := &canonical.Package{
		ID: "bare", Name: "bare",
		Format: canonical.FormatWindsurf, Subtype: canonical.SubtypeRule,
		Content: canonical.NewContent(
			&canonical.MetadataSection{Data: canonical.MetadataData{Title: "bare"}},
			&canonical.InstructionsSection{Content: "Always run the linter."},
		),
	}

	res, err := Serializer{}.Serialize(pkg, dialect.Options{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if strings.HasPrefix(res.Content, "---") {
		t.Errorf("bare package gained a header:\n%s", res.Content)
	}
}

func TestSerialize_TriggerHeader(t *testing.T) {
	pkg := &canonical.Package{
		ID: "frontend", Name: "frontend",
		Description: "Frontend rules",
		Format:      canonical.FormatWindsurf, Subtype: canonical.SubtypeRule,
		Content: canonical.NewContent(
			&canonical.MetadataSection{Data: canonical.MetadataData{
				Title: "frontend",
				Ext: &canonical.Extensions{Windsurf: &canonical.WindsurfExt{
					Trigger: "model_decision",
				}},
			}},
			&canonical.InstructionsSection{Content: "Use CSS modules."},
		),
	}

	res, err := Serializer{}.Serialize(pkg, dialect.Options{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !strings.Contains(res.Content, "trigger: model_decision") {
		t.Errorf("trigger lost:\n%s", res.Content)
	}
	if !strings.Contains(res.Content, "description: Frontend rules") {
		t.Errorf("description lost:\n%s", res.Content)
	}
}
