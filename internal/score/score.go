// Package score computes the 0-100 conversion quality metric from the
// warnings and validation errors a serialization collected.
package score

import "strings"

// Penalties holds the per-condition score deductions. The defaults mirror
// observed registry behavior; they are configuration, not invariants, and
// callers may override them.
type Penalties struct {
	// LossyWarning is deducted once per lossy-class warning.
	LossyWarning int

	// SubtypeMismatch is deducted when a whole subtype cannot be expressed
	// by the target dialect (for example slash-commands on Ruler).
	SubtypeMismatch int

	// ValidationError is deducted per post-hoc validation error.
	ValidationError int
}

// DefaultPenalties returns the standard deductions: 10 per lossy warning,
// 20 per subtype incompatibility, 5 per validation error.
func DefaultPenalties() Penalties {
	return Penalties{
		LossyWarning:    10,
		SubtypeMismatch: 20,
		ValidationError: 5,
	}
}

// lossyMarkers are the warning substrings that mark a conversion lossy.
var lossyMarkers = []string{"not support", "skipped", "ignored"}

// subtypeMarker distinguishes whole-subtype incompatibility warnings from
// ordinary lossy warnings. Serializers phrase them "<Subtype>s are not
// supported by <Dialect>".
const subtypeMarker = "are not supported by"

// Lossy reports whether a single warning marks the conversion lossy.
func Lossy(warning string) bool {
	lower := strings.ToLower(warning)
	for _, marker := range lossyMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Score computes the quality score and lossy flag for a conversion.
// The score starts at 100 and each penalty condition deducts its fixed
// amount, floored at 0. Adding warnings can never raise the score.
func Score(p Penalties, warnings, validationErrors []string) (quality int, lossy bool) {
	quality = 100

	for _, w := range warnings {
		if !Lossy(w) {
			continue
		}
		lossy = true
		if strings.Contains(strings.ToLower(w), subtypeMarker) {
			quality -= p.SubtypeMismatch
		} else {
			quality -= p.LossyWarning
		}
	}

	quality -= p.ValidationError * len(validationErrors)

	if quality < 0 {
		quality = 0
	}
	return quality, lossy
}
