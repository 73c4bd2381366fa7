package sections

import (
	"strings"

	"github.com/canonpack/canonpack/pkg/canonical"
)

// Block is one titled chunk of a markdown body, delimited by level 1-2
// headings outside code fences.
type Block struct {
	// Title is the heading text without "#" markers. Empty for preamble.
	Title string

	// Level is the heading level (1 or 2), 0 for preamble.
	Level int

	// Body is the text between this heading and the next boundary.
	Body string
}

// Split segments a markdown body into blocks. Level 1 and 2 headings open a
// new block; level 3+ headings belong to the current block (they are example
// sub-headers). Headings inside fenced code blocks never open a block: an
// explicit in-fence flag is carried across the line scan.
func Split(body string) []Block {
	var blocks []Block
	var current Block
	var lines []string
	inFence := false

	flush := func() {
		current.Body = strings.TrimRight(strings.Join(lines, "\n"), "\n")
		if current.Title != "" || strings.TrimSpace(current.Body) != "" {
			blocks = append(blocks, current)
		}
		lines = nil
	}

	for _, line := range strings.Split(body, "\n") {
		if isFenceLine(line) {
			inFence = !inFence
			lines = append(lines, line)
			continue
		}
		if !inFence {
			if title, level, ok := headingBoundary(line); ok {
				flush()
				current = Block{Title: title, Level: level}
				continue
			}
		}
		lines = append(lines, line)
	}
	flush()

	return blocks
}

// headingBoundary reports whether line is a level 1-2 heading.
func headingBoundary(line string) (title string, level int, ok bool) {
	switch {
	case strings.HasPrefix(line, "## "):
		return strings.TrimSpace(line[3:]), 2, true
	case strings.HasPrefix(line, "# "):
		return strings.TrimSpace(line[2:]), 1, true
	default:
		return "", 0, false
	}
}

// ParseBody converts a markdown body into canonical sections. The preamble
// (text before the first heading) becomes a persona section when it reads
// like an identity statement, otherwise an untitled instructions section.
// Every other block is classified and handed to its sub-parser.
func ParseBody(body string) []canonical.Section {
	var out []canonical.Section

	for _, block := range Split(body) {
		if block.Title == "" {
			if IsPersonaPreamble(block.Body) {
				out = append(out, ParsePersona(block.Body))
				continue
			}
			out = append(out, &canonical.InstructionsSection{
				Content: strings.TrimSpace(block.Body),
			})
			continue
		}

		out = append(out, parseBlock(block))
	}

	return out
}

func parseBlock(block Block) canonical.Section {
	// Structural titles emitted by the renderer take precedence over the
	// heuristic classifier so canonical output round-trips.
	if event, ok := strings.CutPrefix(block.Title, "Hook: "); ok {
		code, lang := firstFence(block.Body)
		return &canonical.HookSection{Event: event, Language: lang, Code: code}
	}
	if isToolsTitle(block.Title) {
		if tools := bulletItems(block.Body); tools != nil {
			return &canonical.ToolsSection{Tools: tools}
		}
	}

	switch Classify(block.Title, block.Body) {
	case KindRules:
		items, ordered := ParseRules(block.Body)
		return &canonical.RulesSection{
			Title:   block.Title,
			Items:   items,
			Ordered: ordered,
		}
	case KindExamples:
		return &canonical.ExamplesSection{
			Title:    block.Title,
			Examples: ParseExamples(block.Title, block.Body),
		}
	case KindContext:
		return &canonical.ContextSection{
			Title:   block.Title,
			Content: strings.TrimSpace(block.Body),
		}
	default:
		return &canonical.InstructionsSection{
			Title:   block.Title,
			Content: strings.TrimSpace(block.Body),
		}
	}
}

func isToolsTitle(title string) bool {
	lower := strings.ToLower(title)
	return lower == "tools" || lower == "allowed tools"
}

// bulletItems returns the bullet contents of a body that is nothing but a
// flat bullet list, or nil.
func bulletItems(body string) []string {
	var out []string
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := bulletPattern.FindStringSubmatch(line)
		if m == nil {
			return nil
		}
		out = append(out, strings.TrimSpace(m[1]))
	}
	return out
}
