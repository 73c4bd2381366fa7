package commands

import (
	"github.com/spf13/cobra"

	cperrors "github.com/canonpack/canonpack/internal/errors"
	"github.com/canonpack/canonpack/internal/validate"
	"github.com/canonpack/canonpack/pkg/canonical"
)

var (
	validateTarget  string
	validateSubtype string
	validateJSON    bool
)

func init() {
	validateCmd.Flags().StringVarP(&validateTarget, "target", "t", "", "format to validate against (required)")
	validateCmd.Flags().StringVar(&validateSubtype, "subtype", "", "document subtype (rule, agent, skill, slash-command, ...)")
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "report issues as JSON")
	_ = validateCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a document against a format's schema rules",
	Long: `Validate that a document satisfies the schema rules of a format:
required header fields, field value constraints, and format-specific
conventions such as Kiro's inclusion modes or Claude's skill naming.

Reads the file argument, or stdin when the argument is omitted or "-".
Exits non-zero when validation errors are found; warnings alone do not
fail the command.`,
	Example: `  # Validate a Kiro steering document
  canonpack validate -t kiro steering.md

  # Validate a Claude skill with machine-readable output
  canonpack validate -t claude --subtype skill --json SKILL.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(c *cobra.Command, args []string) error {
	target, err := parseFormatFlag(validateTarget, "")
	if err != nil {
		return err
	}

	subtype := canonical.Subtype(validateSubtype).OrDefault()

	input := ""
	if len(args) == 1 {
		input = args[0]
	}
	raw, err := readInput(input, c.InOrStdin())
	if err != nil {
		return err
	}

	result := validate.Output(target, subtype, raw)

	format := validate.FormatText
	if validateJSON {
		format = validate.FormatJSON
	}
	reporter := validate.NewReporter(c.OutOrStdout(), format)
	if err := reporter.Report(result); err != nil {
		return err
	}

	if result.HasErrors() {
		return cperrors.NewExitError(cperrors.ErrValidationFailed, cperrors.ExitUser)
	}
	return nil
}
