// Package commands implements the CLI commands for canonpack.
package commands

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/canonpack/canonpack/cmd"
	"github.com/canonpack/canonpack/internal/config"
	"github.com/canonpack/canonpack/internal/errors"
	"github.com/canonpack/canonpack/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// cfg is the loaded configuration, populated by initConfig.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: $XDG_CONFIG_HOME/canonpack/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("canonpack version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configFile)
	if configLoadErr == nil {
		if errs := config.Validate(cfg); len(errs) > 0 {
			configLoadErr = stderrors.Join(errs...)
		}
	}
}

var rootCmd = &cobra.Command{
	Use:   "canonpack",
	Short: "Convert AI assistant configuration documents between formats",
	Long: `canonpack converts AI assistant configuration documents (rules,
agents, skills, slash commands, prompts) between editor formats such as
Claude Code, Cursor, Continue, Windsurf, GitHub Copilot, Kiro, Ruler,
Gemini CLI, Factory Droid and OpenCode.

Documents pass through a canonical intermediate representation, so any
source format can reach any target format. Fidelity loss is reported
per conversion as warnings and a 0-100 quality score, never as a hard
failure.`,
	Example: `  # Convert a Cursor rule to Claude Code format
  canonpack convert -f cursor -t claude rules.mdc

  # Validate a document against its format's schema
  canonpack validate -t kiro steering.md

  # Preview conversion fidelity without writing output
  canonpack score -f claude -t windsurf SKILL.md

  # List supported formats
  canonpack formats`,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		if err := setupLogging(c); err != nil {
			return err
		}
		if c.Name() == "help" || c.Name() == "version" {
			return nil
		}
		if configLoadErr != nil {
			return errors.NewConfigError(configLoadErr)
		}
		return nil
	},
	Run: func(c *cobra.Command, args []string) {
		_ = c.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(c *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(stderrors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv("CANONPACK_DEBUG"); ok && (val == "1" || val == "true") {
				v = 2
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(c.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(c.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewSystemError(err, "Check that the log file path is writable")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// Execute runs the root command and returns the process exit code.
// ExitError codes and suggestions are honored; any other error exits
// with ExitUser.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return errors.ExitSuccess
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if stderrors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
	}

	return errors.Code(err)
}
