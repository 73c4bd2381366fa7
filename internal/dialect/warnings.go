package dialect

import (
	"fmt"
	"strings"

	"github.com/canonpack/canonpack/pkg/canonical"
)

// Warnings accumulates non-fatal conversion notes during a serialization.
// The zero value is ready to use.
type Warnings struct {
	list []string
}

// Add appends a preformatted warning.
func (w *Warnings) Add(format string, args ...any) {
	w.list = append(w.list, fmt.Sprintf(format, args...))
}

// SkippedSection records that a section variant was dropped because the
// target dialect cannot express it. The phrasing is fixed: the scorer keys
// off "skipped"/"not support".
func (w *Warnings) SkippedSection(t canonical.SectionType, target canonical.Format) {
	w.Add("%s section skipped (not supported by %s)", sectionLabel(t), target.DisplayName())
}

// IgnoredCustom records that a custom section belonging to another editor
// was dropped.
func (w *Warnings) IgnoredCustom(editor canonical.Format, target canonical.Format) {
	w.Add("Custom section for %s ignored by %s", editor, target.DisplayName())
}

// UnsupportedSubtype records that the package's whole subtype cannot be
// expressed by the target. The phrasing carries the subtype-incompatibility
// penalty: "<Subtypes> are not supported by <Dialect>".
func (w *Warnings) UnsupportedSubtype(s canonical.Subtype, target canonical.Format) {
	w.Add("%s are not supported by %s", subtypePlural(s), target.DisplayName())
}

// DroppedField records a dialect-only field the target cannot carry.
func (w *Warnings) DroppedField(field string, target canonical.Format) {
	w.Add("Field %q ignored by %s", field, target.DisplayName())
}

// List returns the accumulated warnings, nil when there are none.
func (w *Warnings) List() []string {
	return w.list
}

// Empty reports whether no warnings were collected.
func (w *Warnings) Empty() bool {
	return len(w.list) == 0
}

func sectionLabel(t canonical.SectionType) string {
	s := string(t)
	if s == "" {
		return "Unknown"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func subtypePlural(s canonical.Subtype) string {
	switch s {
	case canonical.SubtypeSlashCommand:
		return "Slash commands"
	case canonical.SubtypeRule:
		return "Rules"
	case canonical.SubtypeAgent:
		return "Agents"
	case canonical.SubtypeSkill:
		return "Skills"
	case canonical.SubtypePrompt:
		return "Prompts"
	case canonical.SubtypeWorkflow:
		return "Workflows"
	case canonical.SubtypeTool:
		return "Tools"
	case canonical.SubtypeTemplate:
		return "Templates"
	case canonical.SubtypeCollection:
		return "Collections"
	case canonical.SubtypeHook:
		return "Hooks"
	default:
		return string(s) + "s"
	}
}
