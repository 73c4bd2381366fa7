// Package validate checks serialized dialect output against per-dialect
// structural rules. Validation is post-hoc and advisory: errors lower the
// quality score but never block returning output.
package validate

import (
	"fmt"
	"strings"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityError indicates a schema rule the target dialect mandates.
	SeverityError Severity = iota
	// SeverityWarning indicates a recommended but non-blocking issue.
	SeverityWarning
	// SeverityInfo indicates an informational note.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Issue represents a single validation problem.
type Issue struct {
	// Severity indicates the impact of the issue.
	Severity Severity
	// Field identifies the offending field or marker (optional).
	Field string
	// Message is a human-readable description of the problem.
	Message string
	// Value is the actual value that failed validation (optional).
	Value any
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Field != "" {
		sb.WriteString("field \"")
		sb.WriteString(i.Field)
		sb.WriteString("\": ")
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		fmt.Fprintf(&sb, " (got %v)", i.Value)
	}
	return sb.String()
}

// Result aggregates validation issues.
type Result struct {
	Issues []Issue
}

// AddError adds an error issue to the result.
func (r *Result) AddError(field, message string, value any) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityError,
		Field:    field,
		Message:  message,
		Value:    value,
	})
}

// AddWarning adds a warning issue to the result.
func (r *Result) AddWarning(field, message string, value any) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityWarning,
		Field:    field,
		Message:  message,
		Value:    value,
	})
}

// HasErrors returns true if any issue has SeverityError.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ErrorStrings returns the error-severity issues as strings, for embedding
// in a conversion result.
func (r *Result) ErrorStrings() []string {
	if r == nil {
		return nil
	}
	var out []string
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			out = append(out, i.Error())
		}
	}
	return out
}

// WarningStrings returns the warning-severity issues as strings.
func (r *Result) WarningStrings() []string {
	if r == nil {
		return nil
	}
	var out []string
	for _, i := range r.Issues {
		if i.Severity == SeverityWarning {
			out = append(out, i.Error())
		}
	}
	return out
}
