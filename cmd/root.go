// Package cmd implements the CLI commands.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zorak1103/utf8shim/internal/config"
	"github.com/zorak1103/utf8shim/internal/console"
	"github.com/zorak1103/utf8shim/internal/entry"
	"github.com/zorak1103/utf8shim/internal/logging"
	"github.com/zorak1103/utf8shim/internal/version"
)

var (
	verbose bool
	cfg     *config.Config
)

type streamsKey struct{}

// withStreams returns a copy of ctx carrying the bound streams.
func withStreams(ctx context.Context, s *console.Streams) context.Context {
	return context.WithValue(ctx, streamsKey{}, s)
}

// streamsFrom returns the bound streams stored in ctx, or nil.
func streamsFrom(ctx context.Context) *console.Streams {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(streamsKey{}).(*console.Streams)
	return s
}

var rootCmd = &cobra.Command{
	Use:   "utf8shim",
	Short: "UTF-8 console shim",
	Long: `utf8shim runs every command with UTF-8 arguments and UTF-8 standard streams,
whatever encoding the host console uses natively.

It features:
  - Argument vector re-read from the OS command line and converted to UTF-8
  - Standard input, output, error and log streams transcoded at the console
  - Pass-through binding on hosts whose console already speaks UTF-8
  - Configuration via utf8shim.yaml and UTF8SHIM_* environment variables`,
	Version:       version.GetFullVersion(),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if !verbose {
			return
		}
		if lvl, ok := logging.LevelFromContext(cmd.Context()); ok {
			lvl.SetLevel(zapcore.DebugLevel)
		}
		logging.FromContext(cmd.Context()).Debug("verbose output enabled", zap.String("command", cmd.Name()))
	},
}

// nolint:gochecknoinits // Standard Cobra pattern for command registration
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output on the log stream")
}

// NewApp returns the command tree as application logic for entry.Run,
// using c as the effective configuration.
func NewApp(c *config.Config) entry.App {
	return func(ctx context.Context, args []string, streams *console.Streams) (int, error) {
		cfg = c
		return Execute(ctx, args, streams)
	}
}

// Execute runs the command tree on the bound streams. args is the full
// argument vector including the program name.
func Execute(ctx context.Context, args []string, streams *console.Streams) (int, error) {
	rootCmd.SetIn(streams.In)
	rootCmd.SetOut(streams.Out)
	rootCmd.SetErr(streams.Err)

	// A nil slice would make cobra fall back to os.Args.
	rest := []string{}
	if len(args) > 1 {
		rest = args[1:]
	}
	rootCmd.SetArgs(rest)

	// cobra only hands the root's context to a subcommand whose own context
	// is nil, so contexts left over from an earlier run are replaced here.
	ctx = withStreams(ctx, streams)
	setContext(ctx, rootCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return entry.ExitFailure, err
	}
	return entry.ExitSuccess, nil
}

// Setup returns the entry hook that attaches a logger writing to the bound
// log stream, configured from c.
func Setup(c *config.Config) entry.Setup {
	return func(ctx context.Context, streams *console.Streams) (context.Context, error) {
		l, lvl, err := logging.New(c.Log.Level, c.Log.Format, streams.Log)
		if err != nil {
			return nil, err
		}
		return logging.WithLogger(ctx, l, lvl), nil
	}
}

func setContext(ctx context.Context, c *cobra.Command) {
	c.SetContext(ctx)
	for _, sub := range c.Commands() {
		setContext(ctx, sub)
	}
}

// GetConfig returns the loaded configuration or nil if not loaded.
func GetConfig() *config.Config {
	return cfg
}
