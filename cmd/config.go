package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zorak1103/utf8shim/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the effective configuration",
	Long: `Display the effective configuration that utf8shim uses at runtime.

This shows the merged configuration from:
  1. Default values
  2. Configuration file (utf8shim.yaml, or the file named by UTF8SHIM_CONFIG)
  3. Environment variables (highest priority)`,
	Example: `  # Show current configuration
  utf8shim config

  # Show with a custom config file
  UTF8SHIM_CONFIG=/etc/utf8shim/utf8shim.yaml utf8shim config`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c := GetConfig()
		if c == nil {
			return fmt.Errorf("configuration not loaded")
		}
		out := cmd.OutOrStdout()

		_, _ = fmt.Fprintln(out, "=== utf8shim Effective Configuration ===")
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintf(out, "Config file:   %s\n", configSource(c))
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, "Console:")
		_, _ = fmt.Fprintf(out, "   Mode:       %s\n", c.Console.Mode)
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, "Log:")
		_, _ = fmt.Fprintf(out, "   Level:      %s\n", c.Log.Level)
		_, _ = fmt.Fprintf(out, "   Format:     %s\n", c.Log.Format)
		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(configCmd)
}

// configSource describes where the configuration came from.
func configSource(c *config.Config) string {
	if c.ConfigFilePath != "" {
		return c.ConfigFilePath
	}
	return "none (defaults and environment)"
}
