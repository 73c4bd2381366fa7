package canonical

// SectionType tags one variant of the section union.
type SectionType string

// Section type tags as stored in canonical.json.
const (
	SectionMetadata     SectionType = "metadata"
	SectionInstructions SectionType = "instructions"
	SectionRules        SectionType = "rules"
	SectionExamples     SectionType = "examples"
	SectionPersona      SectionType = "persona"
	SectionTools        SectionType = "tools"
	SectionContext      SectionType = "context"
	SectionHook         SectionType = "hook"
	SectionCustom       SectionType = "custom"
)

// Section is one typed block of a canonical document. The union is closed:
// the unexported marker method keeps implementations inside this package so
// serializers can switch exhaustively over the concrete types.
type Section interface {
	// Type returns the variant tag.
	Type() SectionType

	section()
}

// Rule is one enumerable directive inside a rules section.
type Rule struct {
	// Content is the directive text.
	Content string `json:"content" yaml:"content"`

	// Rationale explains why the rule exists, when the source carried one.
	Rationale string `json:"rationale,omitempty" yaml:"rationale,omitempty"`

	// Examples holds inline example lines attached to this rule.
	Examples []string `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// Example is one demonstration inside an examples section.
type Example struct {
	// Description labels the example. Falls back to "Example" when the
	// source sub-header is empty after marker stripping.
	Description string `json:"description" yaml:"description"`

	// Code is the example body, usually from a fenced block.
	Code string `json:"code" yaml:"code"`

	// Language is the fence info string, if any.
	Language string `json:"language,omitempty" yaml:"language,omitempty"`

	// Good is tri-state: true for a positive example, false for a negative
	// one, nil when the source carried no marker. Never inferred.
	Good *bool `json:"good,omitempty" yaml:"good,omitempty"`
}

// MetadataData carries the canonical title/description plus per-dialect
// extension data for round-trips.
type MetadataData struct {
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string      `json:"icon,omitempty" yaml:"icon,omitempty"`
	Version     string      `json:"version,omitempty" yaml:"version,omitempty"`
	Author      string      `json:"author,omitempty" yaml:"author,omitempty"`
	Ext         *Extensions `json:"ext,omitempty" yaml:"ext,omitempty"`
}

// MetadataSection is the single leading section every parser synthesizes,
// even when the source document has no explicit metadata.
type MetadataSection struct {
	Data MetadataData `json:"data"`
}

// InstructionsSection holds free-form prose guidance.
type InstructionsSection struct {
	Title    string `json:"title,omitempty"`
	Content  string `json:"content"`
	Priority string `json:"priority,omitempty"`
}

// RulesSection holds enumerable directives.
type RulesSection struct {
	Title string `json:"title,omitempty"`
	Items []Rule `json:"items"`

	// Ordered records whether the source list was numbered.
	Ordered bool `json:"ordered,omitempty"`
}

// ExamplesSection holds good/bad demonstrations.
type ExamplesSection struct {
	Title    string    `json:"title,omitempty"`
	Examples []Example `json:"examples"`
}

// PersonaSection holds a "You are X" agent identity.
type PersonaSection struct {
	Name      string   `json:"name,omitempty"`
	Role      string   `json:"role"`
	Icon      string   `json:"icon,omitempty"`
	Style     []string `json:"style,omitempty"`
	Expertise []string `json:"expertise,omitempty"`
}

// ToolsSection holds a capability allowlist in dialect-specific tool names.
type ToolsSection struct {
	Tools []string `json:"tools"`
}

// ContextSection holds background or domain framing prose.
type ContextSection struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// HookSection holds a lifecycle script for dialects that support hooks.
type HookSection struct {
	Event    string `json:"event"`
	Language string `json:"language,omitempty"`
	Code     string `json:"code"`
}

// CustomSection is the dialect-specific escape hatch. Serializers drop it
// (with a warning) unless EditorType matches their own dialect or is empty.
type CustomSection struct {
	// EditorType names the dialect this block belongs to. Empty means
	// generic: every serializer may render it.
	EditorType Format `json:"editorType,omitempty"`
	Title      string `json:"title,omitempty"`
	Content    string `json:"content"`
}

// Type implements Section.
func (s *MetadataSection) Type() SectionType { return SectionMetadata }

// Type implements Section.
func (s *InstructionsSection) Type() SectionType { return SectionInstructions }

// Type implements Section.
func (s *RulesSection) Type() SectionType { return SectionRules }

// Type implements Section.
func (s *ExamplesSection) Type() SectionType { return SectionExamples }

// Type implements Section.
func (s *PersonaSection) Type() SectionType { return SectionPersona }

// Type implements Section.
func (s *ToolsSection) Type() SectionType { return SectionTools }

// Type implements Section.
func (s *ContextSection) Type() SectionType { return SectionContext }

// Type implements Section.
func (s *HookSection) Type() SectionType { return SectionHook }

// Type implements Section.
func (s *CustomSection) Type() SectionType { return SectionCustom }

func (s *MetadataSection) section()     {}
func (s *InstructionsSection) section() {}
func (s *RulesSection) section()        {}
func (s *ExamplesSection) section()     {}
func (s *PersonaSection) section()      {}
func (s *ToolsSection) section()        {}
func (s *ContextSection) section()      {}
func (s *HookSection) section()         {}
func (s *CustomSection) section()       {}

// Bool returns a pointer to b, for populating Example.Good.
func Bool(b bool) *bool {
	return &b
}
