package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var failCmd = &cobra.Command{
	Use:    "fail <message>",
	Short:  "Exit with a failure carrying the given message",
	Hidden: true,
	Args:   cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return errors.New(strings.Join(args, " "))
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(failCmd)
}
