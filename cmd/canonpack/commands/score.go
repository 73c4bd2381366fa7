package commands

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cperrors "github.com/canonpack/canonpack/internal/errors"
	"github.com/canonpack/canonpack/pkg/convert"
)

var (
	scoreFrom string
	scoreTo   string
	scoreJSON bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreFrom, "from", "f", "", "source format (required)")
	scoreCmd.Flags().StringVarP(&scoreTo, "to", "t", "", "target format (default: from config)")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "emit the report as JSON")
	_ = scoreCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(scoreCmd)
}

var scoreCmd = &cobra.Command{
	Use:   "score [file]",
	Short: "Preview conversion fidelity without writing output",
	Long: `Run a conversion and report only its fidelity: the 0-100 quality
score, whether the conversion is lossy, and every warning and
validation error that the full conversion would produce. The converted
content itself is discarded.`,
	Example: `  # How well does this Claude skill translate to Windsurf?
  canonpack score -f claude -t windsurf SKILL.md

  # Machine-readable fidelity report
  canonpack score -f cursor -t kiro --json rules.mdc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScore,
}

// scoreReport is the JSON shape of a fidelity report.
type scoreReport struct {
	QualityScore     int      `json:"qualityScore"`
	LossyConversion  bool     `json:"lossyConversion"`
	Warnings         []string `json:"warnings,omitempty"`
	ValidationErrors []string `json:"validationErrors,omitempty"`
}

func runScore(c *cobra.Command, args []string) error {
	source, err := parseFormatFlag(scoreFrom, "")
	if err != nil {
		return err
	}
	var defaultTarget string
	if cfg != nil {
		defaultTarget = cfg.DefaultTarget
	}
	target, err := parseFormatFlag(scoreTo, defaultTarget)
	if err != nil {
		return err
	}

	input := ""
	if len(args) == 1 {
		input = args[0]
	}
	raw, err := readInput(input, c.InOrStdin())
	if err != nil {
		return err
	}

	conv := convert.New()
	meta := buildMeta("", "", "", "", "", nil, input)
	result, err := conv.Convert(source, target, raw, meta, buildOptions(false))
	if err != nil {
		return cperrors.NewUserError(err, "Check the source format and document header")
	}

	if scoreJSON {
		data, err := json.MarshalIndent(scoreReport{
			QualityScore:     result.QualityScore,
			LossyConversion:  result.LossyConversion,
			Warnings:         result.Warnings,
			ValidationErrors: result.ValidationErrors,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(c.OutOrStdout(), string(data))
		return nil
	}

	out := c.OutOrStdout()
	scoreStr := fmt.Sprintf("%d/100", result.QualityScore)
	switch {
	case result.QualityScore == 100:
		scoreStr = color.GreenString(scoreStr)
	case result.QualityScore >= 70:
		scoreStr = color.YellowString(scoreStr)
	default:
		scoreStr = color.RedString(scoreStr)
	}
	fmt.Fprintf(out, "%s -> %s: %s", source.DisplayName(), target.DisplayName(), scoreStr)
	if result.LossyConversion {
		fmt.Fprint(out, " (lossy)")
	}
	fmt.Fprintln(out)

	for _, w := range result.Warnings {
		fmt.Fprintf(out, "  %s %s\n", color.YellowString("!"), w)
	}
	for _, e := range result.ValidationErrors {
		fmt.Fprintf(out, "  %s %s\n", color.RedString("✗"), e)
	}
	return nil
}
