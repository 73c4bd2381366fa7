package claude

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/canonpack/canonpack/internal/dialect"
	"github.com/canonpack/canonpack/pkg/canonical"
)

func TestToolList_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ToolList
	}{
		{name: "space delimited string", input: `"Read Grep Bash"`, want: ToolList{"Read", "Grep", "Bash"}},
		{name: "list of strings", input: "- Read\n- Grep\n", want: ToolList{"Read", "Grep"}},
		{name: "empty string", input: `""`, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ToolList
			if err := yaml.Unmarshal([]byte(tt.input), &got); err != nil {
				t.Fatalf("Unmarshal(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Unmarshal(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestToolList_String(t *testing.T) {
	if got := (ToolList{"Read", "Grep"}).String(); got != "Read Grep" {
		t.Errorf("String() = %q, want %q", got, "Read Grep")
	}
}

func TestParse_Skill(t *testing.T) {
	raw := `---
name: summarize-diff
description: Summarize git diff in bullets
license: Apache-2.0
allowed-tools: Bash Read
metadata:
  author: Ada Lovelace
  version: 1.0.0
---

# Instructions

Summarize the staged diff as a bulleted list.
`

	pkg, err := Parser{}.Parse(raw, dialect.SourceMeta{ID: "pkg-1"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if pkg.Name != "summarize-diff" {
		t.Errorf("Name = %q, want summarize-diff", pkg.Name)
	}
	if pkg.Subtype != canonical.SubtypeSkill {
		t.Errorf("Subtype = %v, want skill", pkg.Subtype)
	}
	if pkg.Description != "Summarize git diff in bullets" {
		t.Errorf("Description = %q", pkg.Description)
	}
	if pkg.Author != "Ada Lovelace" || pkg.Version != "1.0.0" {
		t.Errorf("Author/Version = %q/%q, want from metadata map", pkg.Author, pkg.Version)
	}
	if ext := pkg.Ext(); ext == nil || ext.Claude == nil || ext.Claude.License != "Apache-2.0" {
		t.Errorf("Ext = %+v, want claude license preserved", ext)
	}
	if tools := dialect.ToolsOf(pkg); !reflect.DeepEqual(tools, []string{"Bash", "Read"}) {
		t.Errorf("tools = %v, want [Bash Read]", tools)
	}
}

func TestParse_SlashCommand(t *testing.T) {
	raw := `---
description: Create a git commit
argument-hint: "[message]"
model: haiku
---

Commit the staged changes.
`

	pkg, err := Parser{}.Parse(raw, dialect.SourceMeta{ID: "commit"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if pkg.Subtype != canonical.SubtypeSlashCommand {
		t.Errorf("Subtype = %v, want slash-command", pkg.Subtype)
	}
	if ext := pkg.Ext(); ext == nil || ext.Claude == nil || ext.Claude.ArgumentHint != "[message]" || ext.Claude.Model != "haiku" {
		t.Errorf("Ext = %+v, want argument hint and model preserved", ext)
	}
	// Name falls back to the caller-supplied id.
	if pkg.Name != "commit" {
		t.Errorf("Name = %q, want commit", pkg.Name)
	}
}

func TestParse_AgentFromPersona(t *testing.T) {
	raw := `---
name: reviewer
description: Reviews pull requests
---

You are ReviewBot, a code review assistant.
`

	pkg, err := Parser{}.Parse(raw, dialect.SourceMeta{ID: "reviewer"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if pkg.Subtype != canonical.SubtypeAgent {
		t.Errorf("Subtype = %v, want agent", pkg.Subtype)
	}
}

func TestParse_PlainRuleFile(t *testing.T) {
	raw := "# Project Conventions\n\n- Use table-driven tests.\n"

	pkg, err := Parser{}.Parse(raw, dialect.SourceMeta{ID: "conventions", Name: "conventions"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if pkg.Subtype != canonical.SubtypeRule {
		t.Errorf("Subtype = %v, want rule", pkg.Subtype)
	}
	if pkg.Name != "conventions" {
		t.Errorf("Name = %q, want conventions", pkg.Name)
	}
}

func TestParse_MalformedHeader(t *testing.T) {
	raw := "---\nname: [oops\n---\nbody\n"

	_, err := Parser{}.Parse(raw, dialect.SourceMeta{ID: "x"})
	if !errors.Is(err, canonical.ErrMalformedFrontmatter) {
		t.Errorf("Parse() error = %v, want ErrMalformedFrontmatter", err)
	}
}

func TestSerialize(t *testing.T) {
	pkg := &canonical.Package{
		ID: "summarize-diff", Name: "summarize-diff",
		Description: "Summarize git diff in bullets",
		Format:      canonical.FormatClaude, Subtype: canonical.SubtypeSkill,
		Content: canonical.NewContent(
			&canonical.MetadataSection{Data: canonical.MetadataData{Title: "summarize-diff"}},
			&canonical.InstructionsSection{Title: "Instructions", Content: "Summarize the staged diff."},
			&canonical.ToolsSection{Tools: []string{"Bash", "Read"}},
		),
	}

	res, err := Serializer{}.Serialize(pkg, dialect.Options{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	for _, want := range []string{
		"name: summarize-diff",
		"description: Summarize git diff in bullets",
		"allowed-tools: Bash Read",
		"## Instructions",
	} {
		if !strings.Contains(res.Content, want) {
			t.Errorf("output missing %q:\n%s", want, res.Content)
		}
	}
	// Tools ride in the header, never in the body, and cost nothing.
	if strings.Contains(res.Content, "## Tools") {
		t.Errorf("tools rendered in body:\n%s", res.Content)
	}
	if res.LossyConversion || res.QualityScore != 100 {
		t.Errorf("lossy/score = %v/%d, want false/100", res.LossyConversion, res.QualityScore)
	}
}

func TestSerialize_IgnoresForeignCustomSection(t *testing.T) {
	pkg := &canonical.Package{
		ID: "x", Name: "x", Format: canonical.FormatClaude, Subtype: canonical.SubtypeRule,
		Content: canonical.NewContent(
			&canonical.MetadataSection{Data: canonical.MetadataData{Title: "x"}},
			&canonical.CustomSection{EditorType: canonical.FormatCursor, Title: "Cursor Notes", Content: "mdc only"},
		),
	}

	res, err := Serializer{}.Serialize(pkg, dialect.Options{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if strings.Contains(res.Content, "Cursor Notes") {
		t.Errorf("foreign custom section rendered:\n%s", res.Content)
	}
	want := "Custom section for cursor ignored by Claude Code"
	if len(res.Warnings) != 1 || res.Warnings[0] != want {
		t.Errorf("Warnings = %v, want [%q]", res.Warnings, want)
	}
	if !res.LossyConversion {
		t.Error("ignored custom section should mark the conversion lossy")
	}
}

func TestRoundTrip(t *testing.T) {
	raw := `---
name: summarize-diff
description: Summarize git diff in bullets
allowed-tools: Bash Read
---

## Instructions

Summarize the staged diff.
`

	pkg, err := Parser{}.Parse(raw, dialect.SourceMeta{ID: "summarize-diff"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	res, err := Serializer{}.Serialize(pkg, dialect.Options{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	again, err := Parser{}.Parse(res.Content, dialect.SourceMeta{ID: "summarize-diff"})
	if err != nil {
		t.Fatalf("reparse error = %v", err)
	}
	if !reflect.DeepEqual(again.Content, pkg.Content) {
		t.Errorf("round-trip content mismatch\n got: %+v\nwant: %+v", again.Content, pkg.Content)
	}
	if again.Subtype != pkg.Subtype {
		t.Errorf("round-trip subtype = %v, want %v", again.Subtype, pkg.Subtype)
	}
}
