// Package sections segments a markdown body into typed canonical sections.
//
// Classification is heuristic by design: an ordered list of structural and
// lexical checks over the block title and body, first match wins. The
// precedence is fixed and each step is a pure function, so the classifier
// is testable in isolation from the dialect parsers that call it.
//
// Scanning is fence-aware throughout: a line-by-line pass tracks whether the
// cursor is inside a fenced code block, so headings that appear inside a
// fence never open a new section and never become example sub-headers.
//
// The persona extractor is best-effort natural-language matching and is
// documented as such; a failed match omits fields, it never errors.
package sections
