package validate

import (
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/canonpack/canonpack/pkg/canonical"
	"github.com/canonpack/canonpack/pkg/frontmatter"
)

const maxNameLength = 64

// namePattern is the skill/agent name shape shared by the markdown
// dialects: lowercase alphanumeric segments joined by single hyphens.
var namePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Output validates serialized dialect text against the target's structural
// rules. subtype is the package subtype the content was serialized from;
// some rules only apply to specific subtypes.
func Output(target canonical.Format, subtype canonical.Subtype, content string) *Result {
	result := &Result{}

	switch target {
	case canonical.FormatCursor:
		validateCursor(result, content)
	case canonical.FormatKiro:
		validateKiro(result, content)
	case canonical.FormatClaude:
		validateClaude(result, subtype, content)
	case canonical.FormatGemini:
		validateGemini(result, content)
	case canonical.FormatRuler:
		validateRuler(result, content)
	case canonical.FormatDroid:
		validateDroid(result, content)
	}

	return result
}

func header(content string) map[string]any {
	h, _, err := frontmatter.Extract(content)
	if err != nil {
		return nil
	}
	return h
}

func headerString(h map[string]any, key string) string {
	if h == nil {
		return ""
	}
	s, _ := h[key].(string)
	return s
}

// validateCursor enforces the MDC schema: description is required.
func validateCursor(r *Result, content string) {
	h := header(content)
	if h == nil {
		r.AddError("", "MDC frontmatter is required", nil)
		return
	}
	if headerString(h, "description") == "" {
		r.AddError("description", "description is required", nil)
	}
}

// validateKiro enforces the steering schema: inclusion is required and must
// be a known mode.
func validateKiro(r *Result, content string) {
	h := header(content)
	inclusion := headerString(h, "inclusion")
	switch inclusion {
	case "":
		r.AddError("inclusion", "inclusion is required", nil)
	case "always", "manual":
	case "fileMatch":
		if headerString(h, "fileMatchPattern") == "" {
			r.AddWarning("fileMatchPattern", "fileMatch inclusion without a pattern", nil)
		}
	default:
		r.AddError("inclusion", "inclusion must be always, fileMatch or manual", inclusion)
	}
}

// validateClaude enforces the Agent Skills name rules for skills and the
// presence of name/description in general.
func validateClaude(r *Result, subtype canonical.Subtype, content string) {
	h := header(content)
	name := headerString(h, "name")
	if name == "" {
		r.AddError("name", "name is required", nil)
		return
	}
	if subtype != canonical.SubtypeSkill {
		return
	}
	if len(name) > maxNameLength {
		r.AddError("name", "name exceeds maximum length of 64 characters", name)
	}
	if !namePattern.MatchString(name) {
		r.AddError("name", "name must be lowercase alphanumeric with single hyphens", name)
	}
	if headerString(h, "description") == "" {
		r.AddError("description", "description is required for skills", nil)
	}
}

// validateGemini checks that the output is well-formed TOML carrying a
// prompt.
func validateGemini(r *Result, content string) {
	var doc map[string]any
	if err := toml.Unmarshal([]byte(content), &doc); err != nil {
		r.AddError("", "output is not valid TOML", nil)
		return
	}
	if s, _ := doc["prompt"].(string); s == "" {
		r.AddError("prompt", "prompt is required", nil)
	}
}

var rulerPackagePattern = regexp.MustCompile(`<!--\s*Package:\s*\S`)

// validateRuler checks that the output carries a package identity comment.
func validateRuler(r *Result, content string) {
	if !rulerPackagePattern.MatchString(content) {
		r.AddError("Package", "missing <!-- Package: --> comment", nil)
	}
}

// validateDroid checks that name and description are present.
func validateDroid(r *Result, content string) {
	h := header(content)
	if headerString(h, "name") == "" {
		r.AddError("name", "name is required", nil)
	}
	if strings.TrimSpace(headerString(h, "description")) == "" {
		r.AddWarning("description", "description is recommended", nil)
	}
}
