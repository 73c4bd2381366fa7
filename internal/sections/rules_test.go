package sections

import (
	"testing"

	"github.com/canonpack/canonpack/pkg/canonical"
)

func TestParseRules(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		want        []canonical.Rule
		wantOrdered bool
	}{
		{
			name: "bullets",
			body: "- first rule\n- second rule",
			want: []canonical.Rule{
				{Content: "first rule"},
				{Content: "second rule"},
			},
		},
		{
			name: "numbered list",
			body: "1. step one\n2. step two",
			want: []canonical.Rule{
				{Content: "step one"},
				{Content: "step two"},
			},
			wantOrdered: true,
		},
		{
			name: "bold labels",
			body: "**Imports**: stdlib first\n**Naming**: no abbreviations",
			want: []canonical.Rule{
				{Content: "Imports: stdlib first"},
				{Content: "Naming: no abbreviations"},
			},
		},
		{
			name: "rationale from italic line",
			body: "- avoid global state\n  *it breaks test isolation*",
			want: []canonical.Rule{
				{Content: "avoid global state", Rationale: "it breaks test isolation"},
			},
		},
		{
			name: "rationale prefix stripped",
			body: "- one assertion per test\n  *Rationale: failures stay readable*",
			want: []canonical.Rule{
				{Content: "one assertion per test", Rationale: "failures stay readable"},
			},
		},
		{
			name: "inline example",
			body: "- wrap errors\n  Example: fmt.Errorf(\"loading: %w\", err)",
			want: []canonical.Rule{
				{Content: "wrap errors", Examples: []string{`fmt.Errorf("loading: %w", err)`}},
			},
		},
		{
			name: "indented continuation",
			body: "- a long rule\n  that continues on the next line",
			want: []canonical.Rule{
				{Content: "a long rule that continues on the next line"},
			},
		},
		{
			name: "fenced content skipped",
			body: "- real rule\n```\n- not a rule\n```\n- another rule",
			want: []canonical.Rule{
				{Content: "real rule"},
				{Content: "another rule"},
			},
		},
		{
			name: "empty body",
			body: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, ordered := ParseRules(tt.body)
			if ordered != tt.wantOrdered {
				t.Errorf("ordered = %v, want %v", ordered, tt.wantOrdered)
			}
			if len(items) != len(tt.want) {
				t.Fatalf("items = %d, want %d: %+v", len(items), len(tt.want), items)
			}
			for i := range items {
				if items[i].Content != tt.want[i].Content {
					t.Errorf("item %d content = %q, want %q", i, items[i].Content, tt.want[i].Content)
				}
				if items[i].Rationale != tt.want[i].Rationale {
					t.Errorf("item %d rationale = %q, want %q", i, items[i].Rationale, tt.want[i].Rationale)
				}
				if len(items[i].Examples) != len(tt.want[i].Examples) {
					t.Errorf("item %d examples = %v, want %v", i, items[i].Examples, tt.want[i].Examples)
				}
			}
		})
	}
}

func TestParseExamples(t *testing.T) {
	body := "### ✓ Table-driven test\n\n```go\nfor _, tt := range tests {\n}\n```\n\n### ❌ Copy-pasted cases\n\n```go\nTestA()\n```\n\n### Neutral\n\nprose only\n"

	examples := ParseExamples("Examples", body)
	if len(examples) != 3 {
		t.Fatalf("ParseExamples() = %d, want 3", len(examples))
	}

	good := examples[0]
	if good.Description != "Table-driven test" {
		t.Errorf("description = %q", good.Description)
	}
	if good.Good == nil || !*good.Good {
		t.Error("first example should be marked good")
	}
	if good.Language != "go" {
		t.Errorf("language = %q", good.Language)
	}
	if good.Code != "for _, tt := range tests {\n}" {
		t.Errorf("code = %q", good.Code)
	}

	bad := examples[1]
	if bad.Good == nil || *bad.Good {
		t.Error("second example should be marked bad")
	}

	neutral := examples[2]
	if neutral.Good != nil {
		t.Error("unmarked example should have nil verdict")
	}
	if neutral.Code != "" {
		t.Errorf("prose-only example code = %q", neutral.Code)
	}
}

func TestParseExamples_NoSubHeaders(t *testing.T) {
	body := "```python\nprint(1)\n```\n"

	examples := ParseExamples("Usage", body)
	if len(examples) != 1 {
		t.Fatalf("ParseExamples() = %d, want 1", len(examples))
	}
	if examples[0].Description != "Usage" {
		t.Errorf("description should fall back to title, got %q", examples[0].Description)
	}
	if examples[0].Language != "python" {
		t.Errorf("language = %q", examples[0].Language)
	}
}

func TestParsePersona(t *testing.T) {
	text := "You are DocBot, a technical writer. Your style: concise and direct. Your areas of expertise:\n\n- API documentation\n- tutorials\n"

	p := ParsePersona(text)
	if p.Name != "DocBot" {
		t.Errorf("name = %q", p.Name)
	}
	if p.Role != "technical writer" {
		t.Errorf("role = %q", p.Role)
	}
	if len(p.Style) != 2 || p.Style[0] != "concise" || p.Style[1] != "direct" {
		t.Errorf("style = %v", p.Style)
	}
	if len(p.Expertise) != 2 || p.Expertise[0] != "API documentation" {
		t.Errorf("expertise = %v", p.Expertise)
	}
}

func TestParsePersona_RoleOnly(t *testing.T) {
	p := ParsePersona("You are a patient tutor.")
	if p.Name != "" {
		t.Errorf("name = %q, want empty", p.Name)
	}
	if p.Role != "a patient tutor" {
		t.Errorf("role = %q", p.Role)
	}
}

func TestParsePersona_NeverFails(t *testing.T) {
	p := ParsePersona("nothing matches here")
	if p == nil {
		t.Fatal("ParsePersona() returned nil")
	}
	if p.Role != "" || p.Name != "" {
		t.Errorf("expected empty persona, got %+v", p)
	}
}
