package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zorak1103/utf8shim/internal/console"
)

var argsHex bool

var argsCmd = &cobra.Command{
	Use:   "args [arguments...]",
	Short: "Print each argument on its own line",
	Long: `Print every argument after the command on its own line, prefixed with its index.

Use it to check that quoting and non-ASCII characters survive the trip from the
shell to the program. Put "--" before arguments that start with a dash.`,
	Example: `  utf8shim args "hello world" café
  utf8shim args --hex -- -n ünïcode`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for i, a := range args {
			var err error
			if argsHex {
				_, err = fmt.Fprintf(out, "%d\t%s\t% x", i, a, []byte(a))
			} else {
				_, err = fmt.Fprintf(out, "%d\t%s", i, a)
			}
			if err != nil {
				return err
			}
			if err := console.Newline(out); err != nil {
				return err
			}
		}
		return nil
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.AddCommand(argsCmd)

	argsCmd.Flags().BoolVar(&argsHex, "hex", false, "also print the UTF-8 bytes of each argument")
}
