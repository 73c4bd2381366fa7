package commands

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	cperrors "github.com/canonpack/canonpack/internal/errors"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show canonpack configuration",
	Long: `Show the effective canonpack configuration, merged from the config
file, environment variables and defaults.

Without a subcommand, lists all configuration values as YAML.`,
	Example: `  # List all configuration
  canonpack config

  # Get a specific value
  canonpack config get default_target`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Supports dot notation for nested keys, e.g. penalties.lossy_warning.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

func runConfigList(c *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(viper.AllSettings())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	fmt.Fprint(c.OutOrStdout(), string(data))
	return nil
}

func runConfigGet(c *cobra.Command, args []string) error {
	key := strings.ToLower(args[0])
	if !viper.IsSet(key) {
		return cperrors.NewUserError(errors.Newf("unknown config key: %s", key),
			"Run 'canonpack config' to list available keys")
	}
	fmt.Fprintln(c.OutOrStdout(), viper.Get(key))
	return nil
}
