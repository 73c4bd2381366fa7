package sections

import (
	"fmt"
	"strings"

	"github.com/canonpack/canonpack/pkg/canonical"
)

// Builder accumulates rendered markdown lines. It replaces ad-hoc string
// concatenation in section renderers with one explicit value threaded
// through the rendering calls, and keeps blank-line discipline in one
// place: exactly one blank line between paragraphs, one trailing newline.
type Builder struct {
	lines []string
}

// Push appends a single line.
func (b *Builder) Push(line string) {
	b.lines = append(b.lines, line)
}

// Blank appends a blank separator unless the output is empty or already
// ends blank.
func (b *Builder) Blank() {
	if len(b.lines) == 0 || b.lines[len(b.lines)-1] == "" {
		return
	}
	b.lines = append(b.lines, "")
}

// Para appends text as its own paragraph.
func (b *Builder) Para(text string) {
	if text == "" {
		return
	}
	b.Blank()
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		b.Push(line)
	}
}

// Heading appends a markdown heading as its own paragraph.
func (b *Builder) Heading(level int, text string) {
	b.Blank()
	b.Push(strings.Repeat("#", level) + " " + text)
}

// Fence appends a fenced code block as its own paragraph.
func (b *Builder) Fence(language, code string) {
	b.Blank()
	b.Push("```" + language)
	for _, line := range strings.Split(strings.TrimRight(code, "\n"), "\n") {
		b.Push(line)
	}
	b.Push("```")
}

// Empty reports whether nothing has been rendered.
func (b *Builder) Empty() bool {
	return len(b.lines) == 0
}

// String joins the accumulated lines with a single trailing newline.
func (b *Builder) String() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}

// Render writes one section to the builder in the canonical markdown shape
// that ParseBody parses back. Metadata sections are not rendered here; they
// belong to the dialect header.
func Render(b *Builder, s canonical.Section) {
	switch v := s.(type) {
	case *canonical.MetadataSection:
		// Header data; rendered by the dialect serializer.
	case *canonical.InstructionsSection:
		renderInstructions(b, v)
	case *canonical.RulesSection:
		renderRules(b, v)
	case *canonical.ExamplesSection:
		renderExamples(b, v)
	case *canonical.PersonaSection:
		renderPersona(b, v)
	case *canonical.ToolsSection:
		renderTools(b, v)
	case *canonical.ContextSection:
		renderTitled(b, v.Title, v.Content)
	case *canonical.HookSection:
		renderHook(b, v)
	case *canonical.CustomSection:
		renderTitled(b, v.Title, v.Content)
	}
}

func renderInstructions(b *Builder, s *canonical.InstructionsSection) {
	renderTitled(b, s.Title, s.Content)
}

func renderTitled(b *Builder, title, content string) {
	if title != "" {
		b.Heading(2, title)
	}
	b.Para(content)
}

func renderRules(b *Builder, s *canonical.RulesSection) {
	if s.Title != "" {
		b.Heading(2, s.Title)
	}
	b.Blank()
	for i, rule := range s.Items {
		if s.Ordered {
			b.Push(fmt.Sprintf("%d. %s", i+1, rule.Content))
		} else {
			b.Push("- " + rule.Content)
		}
		if rule.Rationale != "" {
			b.Push("  *" + rule.Rationale + "*")
		}
		for _, ex := range rule.Examples {
			b.Push("  Example: " + ex)
		}
	}
}

func renderExamples(b *Builder, s *canonical.ExamplesSection) {
	if s.Title != "" {
		b.Heading(2, s.Title)
	}
	for _, ex := range s.Examples {
		b.Heading(3, exampleHeader(ex))
		if ex.Code != "" {
			b.Fence(ex.Language, ex.Code)
		}
	}
}

func exampleHeader(ex canonical.Example) string {
	switch {
	case ex.Good == nil:
		return ex.Description
	case *ex.Good:
		return "✓ " + ex.Description
	default:
		return "❌ " + ex.Description
	}
}

func renderPersona(b *Builder, s *canonical.PersonaSection) {
	var line string
	switch {
	case s.Name != "" && s.Role != "":
		line = fmt.Sprintf("You are %s, %s.", s.Name, s.Role)
	case s.Role != "":
		line = fmt.Sprintf("You are %s.", s.Role)
	default:
		return
	}
	b.Para(line)

	if len(s.Style) > 0 {
		b.Para("Your style: " + strings.Join(s.Style, ", ") + ".")
	}
	if len(s.Expertise) > 0 {
		b.Para("Your areas of expertise:")
		b.Blank()
		for _, item := range s.Expertise {
			b.Push("- " + item)
		}
	}
}

func renderTools(b *Builder, s *canonical.ToolsSection) {
	b.Heading(2, "Tools")
	b.Blank()
	for _, tool := range s.Tools {
		b.Push("- " + tool)
	}
}

func renderHook(b *Builder, s *canonical.HookSection) {
	b.Heading(2, "Hook: "+s.Event)
	b.Fence(s.Language, s.Code)
}
