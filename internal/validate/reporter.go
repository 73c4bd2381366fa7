package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

func (r *Reporter) reportJSON(result *Result) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	type wireIssue struct {
		Severity string `json:"severity"`
		Field    string `json:"field,omitempty"`
		Message  string `json:"message"`
		Value    any    `json:"value,omitempty"`
	}
	wire := make([]wireIssue, 0, len(result.Issues))
	for _, i := range result.Issues {
		wire = append(wire, wireIssue{
			Severity: i.Severity.String(),
			Field:    i.Field,
			Message:  i.Message,
			Value:    i.Value,
		})
	}
	return errors.Wrap(encoder.Encode(wire), "encoding JSON report")
}

func (r *Reporter) reportText(result *Result) error {
	errs := filter(result, SeverityError)
	warns := filter(result, SeverityWarning)

	if len(errs) == 0 && len(warns) == 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ Validation passed"))
		return nil
	}

	summary := []string{}
	if len(errs) > 0 {
		summary = append(summary, color.RedString("%d error(s)", len(errs)))
	}
	if len(warns) > 0 {
		summary = append(summary, color.YellowString("%d warning(s)", len(warns)))
	}
	fmt.Fprintf(r.out, "Validation failed: %s\n\n", strings.Join(summary, ", "))

	if len(errs) > 0 {
		fmt.Fprintln(r.out, "Errors:")
		for _, i := range errs {
			r.printIssue(i, color.FgRed)
		}
		fmt.Fprintln(r.out)
	}
	if len(warns) > 0 {
		fmt.Fprintln(r.out, "Warnings:")
		for _, i := range warns {
			r.printIssue(i, color.FgYellow)
		}
		fmt.Fprintln(r.out)
	}

	return nil
}

func filter(result *Result, severity Severity) []Issue {
	var out []Issue
	for _, i := range result.Issues {
		if i.Severity == severity {
			out = append(out, i)
		}
	}
	return out
}

func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	printer := color.New(c).SprintFunc()

	var sb strings.Builder
	sb.WriteString("  • ")

	if i.Field != "" {
		sb.WriteString(printer(i.Field))
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)

	if i.Value != nil {
		valStr := fmt.Sprintf("%v", i.Value)
		if len(valStr) > 50 {
			valStr = valStr[:47] + "..."
		}
		sb.WriteString(color.New(color.FgHiBlack).Sprintf(" [%s]", valStr))
	}

	fmt.Fprintln(r.out, sb.String())
}
