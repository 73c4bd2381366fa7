package sections

import (
	"regexp"
	"strings"
)

// Kind is the classifier's verdict for one markdown block.
type Kind int

// Classification outcomes.
const (
	KindInstructions Kind = iota
	KindRules
	KindExamples
	KindContext
	KindPersona
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInstructions:
		return "instructions"
	case KindRules:
		return "rules"
	case KindExamples:
		return "examples"
	case KindContext:
		return "context"
	case KindPersona:
		return "persona"
	default:
		return "unknown"
	}
}

// ruleTitleWords are title keywords that mark a block as enumerable rules.
var ruleTitleWords = []string{
	"rule", "guideline", "principle", "command", "standard", "convention", "policy",
}

// contextTitleWords are title keywords that mark a block as background.
var contextTitleWords = []string{"context", "background", "overview"}

// boldLabelPattern matches lines of the shape "**Label**: text".
var boldLabelPattern = regexp.MustCompile(`^\*\*[^*]+\*\*\s*:`)

// listItemPattern matches bulleted and numbered list markers.
var listItemPattern = regexp.MustCompile(`^\s*(?:[-*+]\s+|\d+[.)]\s+)`)

// lookaheadLines is how far ahead of the block start the classifier scans
// for late structural markers before settling on instructions.
const lookaheadLines = 5

// Classify assigns a section kind to a titled markdown block. The checks
// run in fixed precedence order and the first match wins.
func Classify(title, body string) Kind {
	lowerTitle := strings.ToLower(title)

	// 1. Example blocks: named as such, or containing any fenced code.
	if strings.Contains(lowerTitle, "example") || strings.Contains(lowerTitle, "sample") {
		return KindExamples
	}
	if containsFence(body) {
		return KindExamples
	}

	// 2. Rule blocks: named as such, or opening with list structure.
	for _, word := range ruleTitleWords {
		if strings.Contains(lowerTitle, word) {
			return KindRules
		}
	}
	if startsWithList(body) {
		return KindRules
	}

	// 3. Context blocks by title.
	for _, word := range contextTitleWords {
		if strings.Contains(lowerTitle, word) {
			return KindContext
		}
	}

	// 4. Lookahead for late structure.
	switch lookahead(body) {
	case KindRules:
		return KindRules
	case KindExamples:
		return KindExamples
	}

	// 5. Everything else is prose guidance.
	return KindInstructions
}

// containsFence reports whether body has a fenced code block opener.
func containsFence(body string) bool {
	for _, line := range strings.Split(body, "\n") {
		if isFenceLine(line) {
			return true
		}
	}
	return false
}

// isFenceLine reports whether a line opens or closes a code fence.
func isFenceLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// startsWithList reports whether the first non-blank lines of body are list
// items or bold-label lines.
func startsWithList(body string) bool {
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		return listItemPattern.MatchString(line) || boldLabelPattern.MatchString(line)
	}
	return false
}

// lookahead scans the first few lines for a late list marker or sub-header.
// A list marker reclassifies to rules, a "###" header or fence to examples.
func lookahead(body string) Kind {
	lines := strings.Split(body, "\n")
	if len(lines) > lookaheadLines {
		lines = lines[:lookaheadLines]
	}
	for _, line := range lines {
		if listItemPattern.MatchString(line) || boldLabelPattern.MatchString(line) {
			return KindRules
		}
		if strings.HasPrefix(line, "### ") || isFenceLine(line) {
			return KindExamples
		}
	}
	return KindInstructions
}

// personaPreamblePattern matches preamble text that introduces an agent
// identity instead of plain instructions.
var personaPreamblePattern = regexp.MustCompile(`(?i)^you are `)

// IsPersonaPreamble reports whether preamble text (before the first heading)
// should be routed to persona extraction.
func IsPersonaPreamble(text string) bool {
	trimmed := strings.TrimSpace(text)
	if personaPreamblePattern.MatchString(trimmed) {
		return true
	}
	return strings.Contains(trimmed, "Your role is")
}
