package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat",
	Short: "Copy standard input to standard output",
	Long: `Copy standard input to standard output through the bound streams.

On a wide console, text typed at the prompt is converted to UTF-8 on the way in
and back to the console's representation on the way out.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := io.Copy(cmd.OutOrStdout(), cmd.InOrStdin()); err != nil {
			return fmt.Errorf("copying standard input: %w", err)
		}
		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(catCmd)
}
