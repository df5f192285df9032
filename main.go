// Package main is the entry point for the utf8shim application.
package main

import (
	"fmt"
	"os"

	"github.com/zorak1103/utf8shim/cmd"
	"github.com/zorak1103/utf8shim/internal/config"
	"github.com/zorak1103/utf8shim/internal/entry"
)

// exitConfigError is returned when configuration cannot be loaded. No
// stream is bound at that point, so the message goes to the raw stderr.
const exitConfigError = 2

func main() {
	cfg, err := config.Load(os.Getenv(config.EnvPrefix + "_CONFIG"))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "utf8shim: %v\n", err)
		os.Exit(exitConfigError)
	}

	// Exit code semantics: 0 = success, 1 = command failure or panic, 2 = config error
	entry.Main(cfg.ConsoleMode(), cmd.NewApp(cfg), entry.WithSetup(cmd.Setup(cfg)))
}
