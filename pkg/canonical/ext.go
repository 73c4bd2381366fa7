package canonical

// Extensions carries dialect-specific frontmatter fields that have no
// canonical equivalent. One variant per dialect; a serializer reads only
// the variant matching its own format, so unrelated extension data never
// leaks into another dialect's output.
type Extensions struct {
	Claude   *ClaudeExt   `json:"claude,omitempty" yaml:"claude,omitempty"`
	Cursor   *CursorExt   `json:"cursor,omitempty" yaml:"cursor,omitempty"`
	Windsurf *WindsurfExt `json:"windsurf,omitempty" yaml:"windsurf,omitempty"`
	Copilot  *CopilotExt  `json:"copilot,omitempty" yaml:"copilot,omitempty"`
	Kiro     *KiroExt     `json:"kiro,omitempty" yaml:"kiro,omitempty"`
	Gemini   *GeminiExt   `json:"gemini,omitempty" yaml:"gemini,omitempty"`
	Droid    *DroidExt    `json:"droid,omitempty" yaml:"droid,omitempty"`
	Opencode *OpencodeExt `json:"opencode,omitempty" yaml:"opencode,omitempty"`
}

// Empty reports whether no dialect variant is populated.
func (e *Extensions) Empty() bool {
	if e == nil {
		return true
	}
	return e.Claude == nil && e.Cursor == nil && e.Windsurf == nil &&
		e.Copilot == nil && e.Kiro == nil && e.Gemini == nil &&
		e.Droid == nil && e.Opencode == nil
}

// ClaudeExt preserves Claude Code specific frontmatter.
type ClaudeExt struct {
	// ArgumentHint is the hint text shown for slash-command arguments.
	ArgumentHint string `json:"argumentHint,omitempty" yaml:"argumentHint,omitempty"`

	// Model pins the model used when executing a command or agent.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// DisableModelInvocation prevents automatic invocation by the model.
	DisableModelInvocation bool `json:"disableModelInvocation,omitempty" yaml:"disableModelInvocation,omitempty"`

	// License is the SPDX license identifier from a skill header.
	License string `json:"license,omitempty" yaml:"license,omitempty"`

	// Compatibility lists compatible assistants from a skill header.
	Compatibility []string `json:"compatibility,omitempty" yaml:"compatibility,omitempty"`
}

// CursorExt preserves Cursor .mdc rule activation fields.
type CursorExt struct {
	// Globs restricts the rule to matching file paths.
	Globs []string `json:"globs,omitempty" yaml:"globs,omitempty"`

	// AlwaysApply attaches the rule to every request.
	AlwaysApply bool `json:"alwaysApply,omitempty" yaml:"alwaysApply,omitempty"`
}

// WindsurfExt preserves Windsurf rule activation fields.
type WindsurfExt struct {
	// Trigger is one of always_on, manual, model_decision, glob.
	Trigger string `json:"trigger,omitempty" yaml:"trigger,omitempty"`

	// Globs applies when Trigger is "glob".
	Globs []string `json:"globs,omitempty" yaml:"globs,omitempty"`
}

// CopilotExt preserves GitHub Copilot instruction targeting.
type CopilotExt struct {
	// ApplyTo is the path pattern from a *.instructions.md header.
	ApplyTo string `json:"applyTo,omitempty" yaml:"applyTo,omitempty"`
}

// KiroExt preserves Kiro steering fields. Inclusion is mandatory in the
// dialect itself; it is kept here so a round-trip restores it exactly.
type KiroExt struct {
	// Inclusion is one of always, fileMatch, manual.
	Inclusion string `json:"inclusion" yaml:"inclusion"`

	// FileMatchPattern applies when Inclusion is "fileMatch".
	FileMatchPattern string `json:"fileMatchPattern,omitempty" yaml:"fileMatchPattern,omitempty"`
}

// GeminiExt preserves Gemini CLI command fields beyond description/prompt.
type GeminiExt struct {
	// Model pins the model for this command.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`
}

// DroidExt preserves Factory Droid command fields.
type DroidExt struct {
	// ArgumentHint is the hint text shown for command arguments.
	ArgumentHint string `json:"argumentHint,omitempty" yaml:"argumentHint,omitempty"`

	// Model pins the model for this droid.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`
}

// OpencodeExt preserves OpenCode agent fields.
type OpencodeExt struct {
	// Mode is one of primary, subagent, all.
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty"`

	// Model pins the model for this agent.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// Temperature overrides the sampling temperature.
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`

	// Tools maps tool names to enabled/disabled.
	Tools map[string]bool `json:"tools,omitempty" yaml:"tools,omitempty"`
}
