package sections

import (
	"strings"

	"github.com/canonpack/canonpack/pkg/canonical"
)

// goodMarkers and badMarkers are the sub-header prefixes that set the
// tri-state good flag. No marker leaves the flag unset.
var (
	goodMarkers = []string{"✓", "✅", "Good:"}
	badMarkers  = []string{"❌", "Bad:", "Incorrect:"}
)

// ParseExamples extracts examples from a block body. The block is split on
// "### " sub-headers (outside fences); each sub-block yields one example
// whose description comes from the stripped header, with the first fenced
// code block supplying code and language. A block with no sub-headers
// yields a single example described by the section title.
func ParseExamples(title, body string) []canonical.Example {
	subs := splitSubBlocks(body)
	if len(subs) == 0 {
		return nil
	}

	var out []canonical.Example
	for _, sub := range subs {
		header := sub.header
		if header == "" && len(subs) == 1 {
			header = title
		}

		desc, good := stripMarker(header)
		if desc == "" {
			desc = "Example"
		}

		code, lang := firstFence(sub.body)

		out = append(out, canonical.Example{
			Description: desc,
			Code:        code,
			Language:    lang,
			Good:        good,
		})
	}
	return out
}

type subBlock struct {
	header string
	body   string
}

// splitSubBlocks splits on "### " headers, fence-aware. Content before the
// first sub-header forms a headerless sub-block only when it contains a
// fence (prose lead-ins are dropped).
func splitSubBlocks(body string) []subBlock {
	var subs []subBlock
	var lines []string
	header := ""
	started := false

	flush := func() {
		text := strings.TrimSpace(strings.Join(lines, "\n"))
		if started || containsFence(text) {
			subs = append(subs, subBlock{header: header, body: text})
		}
		lines = nil
	}

	inFence := false
	for _, line := range strings.Split(body, "\n") {
		if isFenceLine(line) {
			inFence = !inFence
			lines = append(lines, line)
			continue
		}
		if !inFence && strings.HasPrefix(line, "### ") {
			flush()
			header = strings.TrimSpace(line[4:])
			started = true
			continue
		}
		lines = append(lines, line)
	}
	flush()

	return subs
}

// stripMarker removes a leading good/bad marker from a sub-header and
// returns the remaining description plus the tri-state verdict.
func stripMarker(header string) (string, *bool) {
	for _, marker := range goodMarkers {
		if strings.HasPrefix(header, marker) {
			return strings.TrimSpace(strings.TrimPrefix(header, marker)), canonical.Bool(true)
		}
	}
	for _, marker := range badMarkers {
		if strings.HasPrefix(header, marker) {
			return strings.TrimSpace(strings.TrimPrefix(header, marker)), canonical.Bool(false)
		}
	}
	return strings.TrimSpace(header), nil
}

// firstFence returns the contents and info string of the first fenced code
// block in text.
func firstFence(text string) (code, language string) {
	var buf []string
	inFence := false

	for _, line := range strings.Split(text, "\n") {
		if isFenceLine(line) {
			if inFence {
				return strings.Join(buf, "\n"), language
			}
			inFence = true
			trimmed := strings.TrimLeft(line, " \t")
			language = strings.TrimSpace(strings.TrimLeft(trimmed, "`~"))
			continue
		}
		if inFence {
			buf = append(buf, line)
		}
	}

	if inFence {
		// Unterminated fence: keep what was collected.
		return strings.Join(buf, "\n"), language
	}
	return "", ""
}
