package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	cperrors "github.com/canonpack/canonpack/internal/errors"
	"github.com/canonpack/canonpack/pkg/convert"
)

var formatsPick bool

func init() {
	formatsCmd.Flags().BoolVar(&formatsPick, "pick", false, "pick a format interactively")
	rootCmd.AddCommand(formatsCmd)
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported formats",
	Long: `List every format canonpack can convert between, with the tag to
pass to --from/--to and the editor it belongs to.

With --pick, select a format interactively with a fuzzy finder; the
selected tag is printed to stdout for use in scripts.`,
	Example: `  # List formats
  canonpack formats

  # Pick one interactively
  canonpack convert -f cursor -t "$(canonpack formats --pick)" rules.mdc`,
	Args: cobra.NoArgs,
	RunE: runFormats,
}

func runFormats(c *cobra.Command, _ []string) error {
	formats := convert.New().Formats()

	if formatsPick {
		idx, err := fuzzyfinder.Find(
			formats,
			func(i int) string {
				return fmt.Sprintf("%s (%s)", formats[i], formats[i].DisplayName())
			},
		)
		if err != nil {
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return cperrors.NewExitError(errors.New("aborted"), cperrors.ExitUser)
			}
			return err
		}
		fmt.Fprintln(c.OutOrStdout(), formats[idx])
		return nil
	}

	bold := color.New(color.Bold)
	_, _ = bold.Fprintf(c.OutOrStdout(), "%-12s %s\n", "TAG", "FORMAT")
	for _, f := range formats {
		fmt.Fprintf(c.OutOrStdout(), "%-12s %s\n", f, f.DisplayName())
	}
	return nil
}
