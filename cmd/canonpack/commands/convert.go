package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	cperrors "github.com/canonpack/canonpack/internal/errors"
	"github.com/canonpack/canonpack/internal/logging"
	"github.com/canonpack/canonpack/pkg/canonical"
	"github.com/canonpack/canonpack/pkg/convert"
	"github.com/canonpack/canonpack/pkg/fileutil"
)

var (
	convertFrom        string
	convertTo          string
	convertOut         string
	convertJSON        bool
	convertStrict      bool
	convertJobs        int
	convertID          string
	convertName        string
	convertVersion     string
	convertDescription string
	convertAuthor      string
	convertTags        []string
)

func init() {
	convertCmd.Flags().StringVarP(&convertFrom, "from", "f", "", "source format (required)")
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "target format (default: from config)")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output file, or directory in batch mode")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "emit the full conversion result as JSON")
	convertCmd.Flags().BoolVar(&convertStrict, "strict", false, "treat degraded conversions as failures")
	convertCmd.Flags().IntVarP(&convertJobs, "jobs", "j", runtime.NumCPU(), "parallel conversions in batch mode")
	convertCmd.Flags().StringVar(&convertID, "id", "", "package id (default: random UUID)")
	convertCmd.Flags().StringVar(&convertName, "name", "", "package name (default: input file name)")
	convertCmd.Flags().StringVar(&convertVersion, "pkg-version", "", "package version")
	convertCmd.Flags().StringVar(&convertDescription, "description", "", "package description")
	convertCmd.Flags().StringVar(&convertAuthor, "author", "", `package author ("Name <email>")`)
	convertCmd.Flags().StringSliceVar(&convertTags, "tags", nil, "package tags")
	_ = convertCmd.MarkFlagRequired("from")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a document from one format to another",
	Long: `Convert a configuration document from one editor format to another.

The input is a file, a directory (batch mode), or stdin when the file
argument is omitted or "-". In batch mode --out names a directory and
every supported document found in the input directory is converted
concurrently.

Conversion never fails on unsupported content: sections a target format
cannot express are dropped with a warning, and the result carries a
0-100 quality score. Use --json to inspect warnings and score, or
--strict to turn degraded conversions into failures.`,
	Example: `  # Cursor rule to Claude Code, result on stdout
  canonpack convert -f cursor -t claude rules.mdc

  # Full result with warnings and score
  canonpack convert -f claude -t windsurf --json SKILL.md

  # Batch-convert a directory
  canonpack convert -f claude -t opencode -o out/ ./skills`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func runConvert(c *cobra.Command, args []string) error {
	source, err := parseFormatFlag(convertFrom, "")
	if err != nil {
		return err
	}
	var defaultTarget string
	if cfg != nil {
		defaultTarget = cfg.DefaultTarget
	}
	target, err := parseFormatFlag(convertTo, defaultTarget)
	if err != nil {
		return err
	}

	input := ""
	if len(args) == 1 {
		input = args[0]
	}

	if input != "" && input != "-" {
		info, err := os.Stat(input)
		if err != nil {
			return cperrors.NewUserError(errors.Wrapf(err, "reading %s", input),
				"Check that the input path exists")
		}
		if info.IsDir() {
			return runConvertBatch(c, source, target, input)
		}
	}

	raw, err := readInput(input, c.InOrStdin())
	if err != nil {
		return err
	}

	conv := convert.New()
	meta := buildMeta(convertID, convertName, convertVersion, convertDescription, convertAuthor, convertTags, input)
	result, err := conv.Convert(source, target, raw, meta, buildOptions(convertStrict))
	if err != nil {
		return cperrors.NewUserError(err, "Check the source format and document header")
	}

	logger := logging.FromContext(c.Context())
	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	logger.Debug("converted",
		"from", source, "to", target,
		"score", result.QualityScore, "lossy", result.LossyConversion)

	if convertStrict || (cfg != nil && cfg.Strict) {
		if len(result.ValidationErrors) > 0 || result.LossyConversion {
			return cperrors.NewUserError(
				errors.Newf("conversion to %s lost fidelity (score %d)", target, result.QualityScore),
				"Re-run without --strict to accept the degraded output")
		}
	}

	return writeResult(c, result)
}

// writeResult emits a conversion result to --out or stdout.
func writeResult(c *cobra.Command, result *convert.Result) error {
	var out string
	if convertJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		out = string(data) + "\n"
	} else {
		out = result.Content
	}

	if convertOut == "" {
		fmt.Fprint(c.OutOrStdout(), out)
		return nil
	}
	if err := fileutil.AtomicWriteFile(convertOut, []byte(out), 0644); err != nil {
		return cperrors.NewSystemError(errors.Wrapf(err, "writing %s", convertOut), "")
	}
	return nil
}

// batchExts are the input extensions picked up in batch mode.
var batchExts = map[string]bool{
	".md":   true,
	".mdc":  true,
	".toml": true,
}

// runConvertBatch converts every supported document under dir with a
// bounded worker pool. Individual failures are logged and counted but do
// not stop the batch.
func runConvertBatch(c *cobra.Command, source, target canonical.Format, dir string) error {
	if convertOut == "" {
		return cperrors.NewUserError(errors.New("batch mode requires --out"),
			"Pass -o <dir> to name the output directory")
	}
	if err := os.MkdirAll(convertOut, 0755); err != nil {
		return cperrors.NewSystemError(errors.Wrapf(err, "creating %s", convertOut), "")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return cperrors.NewUserError(errors.Wrapf(err, "reading %s", dir), "")
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !batchExts[filepath.Ext(e.Name())] {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		return cperrors.NewUserError(errors.Newf("no convertible documents in %s", dir), "")
	}

	jobs := convertJobs
	if jobs < 1 {
		jobs = 1
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	logger := logging.FromContext(c.Context())
	conv := convert.New()
	opts := buildOptions(convertStrict)

	type outcome struct {
		file  string
		score int
		err   error
	}

	work := make(chan string)
	results := make(chan outcome)

	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range work {
				raw, err := fileutil.ReadFileWithLimit(filepath.Join(dir, name))
				if err != nil {
					results <- outcome{file: name, err: err}
					continue
				}
				meta := buildMeta("", "", convertVersion, "", convertAuthor, convertTags, name)
				result, err := conv.Convert(source, target, string(raw), meta, opts)
				if err != nil {
					results <- outcome{file: name, err: err}
					continue
				}
				outName := strings.TrimSuffix(name, filepath.Ext(name)) + outputExt(target)
				err = fileutil.AtomicWriteFile(filepath.Join(convertOut, outName), []byte(result.Content), 0644)
				results <- outcome{file: name, score: result.QualityScore, err: err}
			}
		}()
	}

	go func() {
		for _, f := range files {
			work <- f
		}
		close(work)
		wg.Wait()
		close(results)
	}()

	var failed int
	for r := range results {
		if r.err != nil {
			failed++
			logger.Error("conversion failed", "file", r.file, "error", r.err)
			continue
		}
		logger.Info("converted", "file", r.file, "score", r.score)
	}

	fmt.Fprintf(c.OutOrStdout(), "Converted %d of %d documents to %s\n",
		len(files)-failed, len(files), convertOut)

	if failed > 0 {
		return cperrors.NewUserError(errors.Newf("%d of %d conversions failed", failed, len(files)), "")
	}
	return nil
}
