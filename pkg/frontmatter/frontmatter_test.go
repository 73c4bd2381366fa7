package frontmatter

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// ruleHeader is a representative header shape for rule documents.
type ruleHeader struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Globs       []string `yaml:"globs"`
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHdr  ruleHeader
		wantBody string
		wantErr  error
	}{
		{
			name: "valid header",
			input: `---
name: react-rules
description: React best practices
globs:
  - "**/*.tsx"
---

# Rules
`,
			wantHdr: ruleHeader{
				Name:        "react-rules",
				Description: "React best practices",
				Globs:       []string{"**/*.tsx"},
			},
			wantBody: "\n# Rules\n",
		},
		{
			name:     "no header returns full body",
			input:    "# Just a markdown file\n\nNo header here.",
			wantBody: "# Just a markdown file\n\nNo header here.",
		},
		{
			name:     "unclosed header treated as body",
			input:    "---\nname: dangling\n\n# Body",
			wantBody: "---\nname: dangling\n\n# Body",
		},
		{
			name:     "empty header",
			input:    "---\n---\n# Body\n",
			wantBody: "# Body\n",
		},
		{
			name: "crlf line endings",
			input: "---\r\nname: windows\r\n---\r\nbody\r\n",
			wantHdr: ruleHeader{
				Name: "windows",
			},
			wantBody: "body\r\n",
		},
		{
			name:    "invalid yaml fails closed",
			input:   "---\nname: [unclosed\n---\nbody\n",
			wantErr: ErrInvalidYAML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hdr ruleHeader
			body, err := Parse(tt.input, &hdr)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if hdr.Name != tt.wantHdr.Name || hdr.Description != tt.wantHdr.Description {
				t.Errorf("header = %+v, want %+v", hdr, tt.wantHdr)
			}
			if len(hdr.Globs) != len(tt.wantHdr.Globs) {
				t.Errorf("globs = %v, want %v", hdr.Globs, tt.wantHdr.Globs)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestMustParse(t *testing.T) {
	var hdr ruleHeader

	_, err := MustParse("# no header\n", &hdr)
	if !errors.Is(err, ErrMissingFrontmatter) {
		t.Errorf("MustParse() error = %v, want ErrMissingFrontmatter", err)
	}

	_, err = MustParse("---\nname: dangling\n", &hdr)
	if !errors.Is(err, ErrUnclosedFrontmatter) {
		t.Errorf("MustParse() error = %v, want ErrUnclosedFrontmatter", err)
	}

	body, err := MustParse("---\nname: ok\n---\nbody\n", &hdr)
	if err != nil {
		t.Fatalf("MustParse() error = %v", err)
	}
	if hdr.Name != "ok" {
		t.Errorf("name = %q, want %q", hdr.Name, "ok")
	}
	if body != "body\n" {
		t.Errorf("body = %q, want %q", body, "body\n")
	}
}

func TestExtract(t *testing.T) {
	header, body, err := Extract("---\nname: x\ncustom_key: kept\n---\nbody\n")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if header["name"] != "x" {
		t.Errorf("name = %v, want x", header["name"])
	}
	if header["custom_key"] != "kept" {
		t.Errorf("custom_key = %v, want kept", header["custom_key"])
	}
	if body != "body\n" {
		t.Errorf("body = %q", body)
	}

	header, body, err = Extract("no header\n")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if header != nil {
		t.Errorf("header = %v, want nil", header)
	}
	if body != "no header\n" {
		t.Errorf("body = %q", body)
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  HeaderKind
	}{
		{"yaml header", "---\nname: x\n---\nbody", HeaderYAML},
		{"toml document", "description = \"x\"\nprompt = \"y\"\n", HeaderTOML},
		{"plain markdown", "# Title\n\nProse only.\n", HeaderNone},
		{"empty", "", HeaderNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.input); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	hdr := ruleHeader{Name: "round", Description: "trip"}
	out, err := Format(hdr, "# Body\n\nContent.\n")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !strings.HasPrefix(out, "---\n") {
		t.Errorf("output missing opening delimiter: %q", out)
	}

	var back ruleHeader
	body, err := Parse(out, &back)
	if err != nil {
		t.Fatalf("Parse() of formatted output: %v", err)
	}
	if !reflect.DeepEqual(back, ruleHeader{Name: "round", Description: "trip"}) && back.Name != "round" {
		t.Errorf("round-tripped header = %+v", back)
	}
	if !strings.Contains(body, "# Body") {
		t.Errorf("round-tripped body = %q", body)
	}
}

func TestFormat_NoBody(t *testing.T) {
	out, err := Format(ruleHeader{Name: "only"}, "")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(out, "---\n") {
		t.Errorf("header-only output should end at closing delimiter: %q", out)
	}
}

func TestParseTOML(t *testing.T) {
	type command struct {
		Description string `toml:"description"`
		Prompt      string `toml:"prompt"`
	}

	var c command
	err := ParseTOML("description = \"d\"\nprompt = \"p\"\n", &c)
	if err != nil {
		t.Fatalf("ParseTOML() error = %v", err)
	}
	if c.Description != "d" || c.Prompt != "p" {
		t.Errorf("parsed = %+v", c)
	}

	if err := ParseTOML("not toml = = =", &c); err == nil {
		t.Error("ParseTOML() expected error for malformed input")
	}
}

func TestFormatTOML(t *testing.T) {
	type command struct {
		Description string `toml:"description"`
	}
	out, err := FormatTOML(command{Description: "d"})
	if err != nil {
		t.Fatalf("FormatTOML() error = %v", err)
	}
	if !strings.Contains(out, "description = 'd'") && !strings.Contains(out, "description = \"d\"") {
		t.Errorf("output = %q", out)
	}
}
