package canonical

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func samplePackage() *Package {
	return &Package{
		ID:      "pkg-1",
		Name:    "review-rules",
		Version: "1.2.0",
		Author:  "Ada Lovelace <ada@example.com>",
		Tags:    []string{"go", "review"},
		Format:  FormatClaude,
		Subtype: SubtypeRule,
		Content: NewContent(
			&MetadataSection{Data: MetadataData{
				Title:       "Review Rules",
				Description: "House rules for code review",
				Ext:         &Extensions{Cursor: &CursorExt{Globs: []string{"**/*.go"}, AlwaysApply: true}},
			}},
			&InstructionsSection{Title: "Workflow", Content: "Review every diff before merging."},
			&RulesSection{Title: "Style", Ordered: true, Items: []Rule{
				{Content: "Prefer early returns", Rationale: "keeps nesting shallow"},
				{Content: "Wrap errors with context", Examples: []string{"errors.Wrap(err, \"open config\")"}},
			}},
			&ExamplesSection{Title: "Examples", Examples: []Example{
				{Description: "Good error wrap", Code: "return errors.Wrap(err, \"read\")", Language: "go", Good: Bool(true)},
				{Description: "Swallowed error", Code: "_ = doWork()", Language: "go", Good: Bool(false)},
			}},
			&PersonaSection{Name: "ReviewBot", Role: "a code review assistant", Style: []string{"terse"}},
			&ToolsSection{Tools: []string{"Read", "Grep"}},
			&ContextSection{Title: "Background", Content: "Monorepo, Go services."},
			&HookSection{Event: "pre-commit", Language: "bash", Code: "make lint"},
			&CustomSection{EditorType: FormatCursor, Title: "Cursor Notes", Content: "mdc only"},
		),
		SourceFormat: FormatClaude,
	}
}

func TestPackageJSONRoundTrip(t *testing.T) {
	pkg := samplePackage()

	data, err := MarshalPackage(pkg)
	if err != nil {
		t.Fatalf("MarshalPackage() error = %v", err)
	}

	got, err := UnmarshalPackage(data)
	if err != nil {
		t.Fatalf("UnmarshalPackage() error = %v", err)
	}
	if !reflect.DeepEqual(got, pkg) {
		t.Errorf("round-trip mismatch\n got: %+v\nwant: %+v", got, pkg)
	}

	// The section list carries discriminating type tags on the wire.
	for _, tag := range []string{`"type":"metadata"`, `"type":"rules"`, `"type":"hook"`, `"type":"custom"`} {
		if !strings.Contains(string(data), tag) {
			t.Errorf("canonical.json missing %s", tag)
		}
	}
}

func TestMarshalPackageIndent(t *testing.T) {
	data, err := MarshalPackageIndent(samplePackage())
	if err != nil {
		t.Fatalf("MarshalPackageIndent() error = %v", err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Error("MarshalPackageIndent() output is not indented")
	}
}

func TestUnmarshalPackage_WrongContentFormat(t *testing.T) {
	doc := `{"id":"x","name":"x","format":"claude","subtype":"rule","content":{"format":"markdown","version":"1.0","sections":[]}}`

	_, err := UnmarshalPackage([]byte(doc))
	if err == nil {
		t.Fatal("UnmarshalPackage() accepted content.format != canonical")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if parseErr.Field != "content.format" {
		t.Errorf("ParseError.Field = %q, want %q", parseErr.Field, "content.format")
	}
}

func TestUnmarshalPackage_UnknownSectionType(t *testing.T) {
	doc := `{"id":"x","name":"x","format":"claude","subtype":"rule","content":{"format":"canonical","version":"1.0","sections":[{"type":"widget","content":"?"}]}}`

	_, err := UnmarshalPackage([]byte(doc))
	if err == nil {
		t.Fatal("UnmarshalPackage() accepted an unknown section type")
	}
	if !errors.Is(err, ErrUnknownSection) {
		t.Errorf("error = %v, want ErrUnknownSection", err)
	}
}

func TestUnmarshalPackage_InvalidJSON(t *testing.T) {
	_, err := UnmarshalPackage([]byte("{not json"))
	if err == nil {
		t.Fatal("UnmarshalPackage() accepted invalid JSON")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if parseErr.Format != FormatCanonical {
		t.Errorf("ParseError.Format = %v, want %v", parseErr.Format, FormatCanonical)
	}
}

func TestExampleGoodTriState(t *testing.T) {
	// Good omitted on the wire stays nil; explicit false survives.
	data, err := MarshalPackage(&Package{
		ID: "x", Name: "x", Format: FormatGeneric, Subtype: SubtypeRule,
		Content: NewContent(&ExamplesSection{Examples: []Example{
			{Description: "neutral", Code: "x"},
			{Description: "bad", Code: "y", Good: Bool(false)},
		}}),
	})
	if err != nil {
		t.Fatalf("MarshalPackage() error = %v", err)
	}

	got, err := UnmarshalPackage(data)
	if err != nil {
		t.Fatalf("UnmarshalPackage() error = %v", err)
	}
	ex := got.Content.Sections[0].(*ExamplesSection).Examples
	if ex[0].Good != nil {
		t.Errorf("neutral example Good = %v, want nil", *ex[0].Good)
	}
	if ex[1].Good == nil || *ex[1].Good {
		t.Error("negative example did not round-trip Good=false")
	}
}
