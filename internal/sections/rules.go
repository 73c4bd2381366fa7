package sections

import (
	"regexp"
	"strings"

	"github.com/canonpack/canonpack/pkg/canonical"
)

var (
	bulletPattern  = regexp.MustCompile(`^\s*[-*+]\s+(.*)$`)
	orderedPattern = regexp.MustCompile(`^\s*\d+[.)]\s+(.*)$`)

	// boldLabelLine captures "**Label**: text" rule lines.
	boldLabelLine = regexp.MustCompile(`^\*\*([^*]+)\*\*\s*:\s*(.*)$`)

	// italicLine matches "*text*" but not "**text**".
	italicLine = regexp.MustCompile(`^\*([^*].*?)\*$`)
)

// ParseRules extracts rule items from a block body. Each list item or
// bold-label line starts a new rule; indented lines continue the current
// rule's content. An italic line right after a rule is its rationale, and a
// line starting "Example:" is appended to the rule's examples. ordered
// reports whether the source list was numbered.
func ParseRules(body string) (items []canonical.Rule, ordered bool) {
	var current *canonical.Rule

	flush := func() {
		if current != nil {
			current.Content = strings.TrimSpace(current.Content)
			items = append(items, *current)
			current = nil
		}
	}

	inFence := false
	for _, line := range strings.Split(body, "\n") {
		if isFenceLine(line) {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}

		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			continue

		case orderedPattern.MatchString(line):
			flush()
			ordered = true
			current = &canonical.Rule{Content: orderedPattern.FindStringSubmatch(line)[1]}

		case bulletPattern.MatchString(line):
			flush()
			current = &canonical.Rule{Content: bulletPattern.FindStringSubmatch(line)[1]}

		case boldLabelLine.MatchString(trimmed):
			flush()
			m := boldLabelLine.FindStringSubmatch(trimmed)
			current = &canonical.Rule{Content: m[1] + ": " + m[2]}

		case current != nil && strings.HasPrefix(trimmed, "Example:"):
			example := strings.TrimSpace(strings.TrimPrefix(trimmed, "Example:"))
			current.Examples = append(current.Examples, example)

		case current != nil && italicLine.MatchString(trimmed) && current.Rationale == "":
			rationale := italicLine.FindStringSubmatch(trimmed)[1]
			rationale = strings.TrimSpace(strings.TrimPrefix(rationale, "Rationale:"))
			current.Rationale = rationale

		case current != nil && (strings.HasPrefix(line, "  ") || strings.HasPrefix(line, "\t")):
			// Indented continuation of the current rule.
			current.Content += " " + trimmed

		default:
			// Loose prose between items is ignored; it carries no rule.
		}
	}
	flush()

	return items, ordered
}
