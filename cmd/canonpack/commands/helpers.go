package commands

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	cperrors "github.com/canonpack/canonpack/internal/errors"
	"github.com/canonpack/canonpack/internal/score"
	"github.com/canonpack/canonpack/pkg/canonical"
	"github.com/canonpack/canonpack/pkg/convert"
	"github.com/canonpack/canonpack/pkg/fileutil"
)

// readInput reads the document to convert. An empty path or "-" reads
// from stdin.
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", cperrors.NewSystemError(errors.Wrap(err, "reading stdin"), "")
		}
		return string(data), nil
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return "", cperrors.NewUserError(errors.Wrapf(err, "reading %s", path),
			"Check that the input file exists and is readable")
	}
	return string(data), nil
}

// parseFormatFlag resolves a --from/--to flag value, falling back to the
// configured default target when the flag is empty and fallback is set.
func parseFormatFlag(value, fallback string) (canonical.Format, error) {
	if value == "" {
		value = fallback
	}
	f, err := canonical.ParseFormat(value)
	if err != nil {
		return "", cperrors.NewUserError(err,
			"Run 'canonpack formats' to see supported formats")
	}
	return f, nil
}

// buildMeta assembles the caller-supplied metadata for a parse.
// A missing id is defaulted to a fresh UUID; a missing name falls back
// to the input file's base name.
func buildMeta(id, name, version, description, author string, tags []string, inputPath string) convert.SourceMeta {
	if id == "" {
		id = uuid.NewString()
	}
	if name == "" && inputPath != "" && inputPath != "-" {
		base := filepath.Base(inputPath)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return convert.SourceMeta{
		ID:          id,
		Name:        name,
		Version:     version,
		Description: description,
		Author:      author,
		Tags:        tags,
	}
}

// buildOptions assembles serialization options from flags and config.
func buildOptions(strict bool) convert.Options {
	opts := convert.Options{Strict: strict}
	if cfg != nil {
		if !strict {
			opts.Strict = cfg.Strict
		}
		p := cfg.Penalties.Score()
		if p != (score.Penalties{}) && p != score.DefaultPenalties() {
			opts.Penalties = &p
		}
	}
	return opts
}

// outputExt returns the conventional file extension for a target format.
func outputExt(target canonical.Format) string {
	switch target {
	case canonical.FormatCursor:
		return ".mdc"
	case canonical.FormatGemini:
		return ".toml"
	case canonical.FormatCanonical:
		return ".json"
	default:
		return ".md"
	}
}
