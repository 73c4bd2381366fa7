package canonical

// Subtype classifies what kind of artifact a package is.
type Subtype string

// Package subtypes.
const (
	SubtypeRule         Subtype = "rule"
	SubtypeAgent        Subtype = "agent"
	SubtypeSkill        Subtype = "skill"
	SubtypeSlashCommand Subtype = "slash-command"
	SubtypePrompt       Subtype = "prompt"
	SubtypeWorkflow     Subtype = "workflow"
	SubtypeTool         Subtype = "tool"
	SubtypeTemplate     Subtype = "template"
	SubtypeCollection   Subtype = "collection"
	SubtypeHook         Subtype = "hook"
)

var subtypes = []Subtype{
	SubtypeRule,
	SubtypeAgent,
	SubtypeSkill,
	SubtypeSlashCommand,
	SubtypePrompt,
	SubtypeWorkflow,
	SubtypeTool,
	SubtypeTemplate,
	SubtypeCollection,
	SubtypeHook,
}

// Valid reports whether s is a known subtype.
func (s Subtype) Valid() bool {
	for _, known := range subtypes {
		if s == known {
			return true
		}
	}
	return false
}

// String returns the subtype tag.
func (s Subtype) String() string {
	return string(s)
}

// OrDefault returns s, or SubtypeRule when s is empty. Dialects that cannot
// express a subtype parse to the default.
func (s Subtype) OrDefault() Subtype {
	if s == "" {
		return SubtypeRule
	}
	return s
}
