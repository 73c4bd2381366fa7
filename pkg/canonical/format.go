package canonical

// Format identifies a supported dialect.
type Format string

// Supported dialects.
const (
	FormatClaude    Format = "claude"
	FormatCursor    Format = "cursor"
	FormatContinue  Format = "continue"
	FormatWindsurf  Format = "windsurf"
	FormatCopilot   Format = "copilot"
	FormatKiro      Format = "kiro"
	FormatRuler     Format = "ruler"
	FormatGemini    Format = "gemini"
	FormatDroid     Format = "droid"
	FormatOpencode  Format = "opencode"
	FormatGeneric   Format = "generic"
	FormatCanonical Format = "canonical"
)

// formats lists all dialects in display order.
var formats = []Format{
	FormatClaude,
	FormatCursor,
	FormatContinue,
	FormatWindsurf,
	FormatCopilot,
	FormatKiro,
	FormatRuler,
	FormatGemini,
	FormatDroid,
	FormatOpencode,
	FormatGeneric,
}

// Formats returns all supported dialect tags in a stable order.
// The canonical pseudo-format is not included; it is a storage tag,
// not a conversion target.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// Valid reports whether f is a known dialect tag or the canonical tag.
func (f Format) Valid() bool {
	if f == FormatCanonical {
		return true
	}
	for _, known := range formats {
		if f == known {
			return true
		}
	}
	return false
}

// String returns the dialect tag.
func (f Format) String() string {
	return string(f)
}

// DisplayName returns the human-readable name of the dialect.
func (f Format) DisplayName() string {
	switch f {
	case FormatClaude:
		return "Claude Code"
	case FormatCursor:
		return "Cursor"
	case FormatContinue:
		return "Continue"
	case FormatWindsurf:
		return "Windsurf"
	case FormatCopilot:
		return "GitHub Copilot"
	case FormatKiro:
		return "Kiro"
	case FormatRuler:
		return "Ruler"
	case FormatGemini:
		return "Gemini CLI"
	case FormatDroid:
		return "Factory Droid"
	case FormatOpencode:
		return "OpenCode"
	case FormatGeneric:
		return "Generic Markdown"
	case FormatCanonical:
		return "Canonical JSON"
	default:
		return string(f)
	}
}

// ParseFormat converts a string tag to a Format.
// Returns ErrUnknownFormat for tags that are not supported.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !f.Valid() {
		return "", newParseError(FormatCanonical, "format", ErrUnknownFormat)
	}
	return f, nil
}
