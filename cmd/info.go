package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zorak1103/utf8shim/internal/bridge"
	"github.com/zorak1103/utf8shim/internal/console"
	"github.com/zorak1103/utf8shim/internal/version"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show how the console was bound",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		bound := streamsFrom(cmd.Context())
		if bound == nil {
			return fmt.Errorf("console not bound")
		}
		out := cmd.OutOrStdout()

		_, _ = fmt.Fprintf(out, "Version:   %s\n", version.GetFullVersion())
		_, _ = fmt.Fprintf(out, "Platform:  %s\n", version.Platform())
		_, _ = fmt.Fprintf(out, "Mode:      %s\n", bound.Mode)
		_, _ = fmt.Fprintf(out, "Native:    %s\n", bound.Bridge.Name())
		_, _ = fmt.Fprintf(out, "Default:   %s\n", bridge.Native().Name())
		_, _ = fmt.Fprintf(out, "Terminal:  stdin=%t stdout=%t stderr=%t\n",
			console.IsTerminal(os.Stdin), console.IsTerminal(os.Stdout), console.IsTerminal(os.Stderr))
		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(infoCmd)
}
