package sections

import (
	"regexp"
	"strings"

	"github.com/canonpack/canonpack/pkg/canonical"
)

// youArePattern captures "You are <A>(, (a )?<B>)?". When both groups match,
// A is the persona name and B the role; with only A, A is the role. The
// comma/"a "-prefix precedence is deliberately kept as observed in existing
// documents rather than normalized, since authored content depends on it.
var youArePattern = regexp.MustCompile(`(?i)you are\s+([^,.\n]+)(?:,\s*(?:an?\s+)?([^.\n]+))?`)

// roleIsPattern captures "Your role is (to )?<role>".
var roleIsPattern = regexp.MustCompile(`(?i)your role is\s+(?:to\s+)?([^.\n]+)`)

// stylePattern captures a "style: ..." or "style is ..." clause.
var stylePattern = regexp.MustCompile(`(?i)style(?:\s+is)?:?\s+([^.\n]+)`)

// expertiseMarker flags the line introducing an expertise bullet run.
var expertiseMarker = regexp.MustCompile(`(?i)expertise|areas of`)

// ParsePersona extracts an agent identity from preamble text. All matching
// is best-effort: a clause that does not match simply leaves its field
// empty. It never fails.
func ParsePersona(text string) *canonical.PersonaSection {
	p := &canonical.PersonaSection{}

	if m := youArePattern.FindStringSubmatch(text); m != nil {
		first := strings.TrimSpace(m[1])
		second := strings.TrimSpace(m[2])
		if second != "" {
			p.Name = first
			p.Role = second
		} else {
			p.Role = first
		}
	} else if m := roleIsPattern.FindStringSubmatch(text); m != nil {
		p.Role = strings.TrimSpace(m[1])
	}

	if m := stylePattern.FindStringSubmatch(text); m != nil {
		p.Style = splitClause(m[1])
	}

	p.Expertise = expertiseBullets(text)

	return p
}

// splitClause splits a natural-language list on commas and "and".
func splitClause(clause string) []string {
	clause = strings.ReplaceAll(clause, " and ", ",")
	var out []string
	for _, part := range strings.Split(clause, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// expertiseBullets collects the contiguous bullet run following a line that
// mentions expertise.
func expertiseBullets(text string) []string {
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if expertiseMarker.MatchString(line) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var out []string
	for _, line := range lines[start:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(out) > 0 {
				break
			}
			continue
		}
		m := bulletPattern.FindStringSubmatch(line)
		if m == nil {
			break
		}
		out = append(out, strings.TrimSpace(m[1]))
	}
	return out
}
