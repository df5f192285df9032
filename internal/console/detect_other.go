//go:build !windows

package console

import (
	"fmt"
	"os"
	"runtime"

	apperrors "github.com/zorak1103/utf8shim/internal/errors"
)

// Detect returns the strategy for mode on this platform. Consoles here are
// UTF-8 already, so auto and utf8 both bind pass-through streams and wide
// is unsupported.
func Detect(mode Mode) (Console, error) {
	switch mode {
	case ModeAuto, ModeUTF8:
		return NewUTF8Console(os.Stdin, os.Stdout, os.Stderr), nil
	default:
		return nil, &apperrors.ConsoleError{
			Operation: "detect",
			Err:       fmt.Errorf("%w: %s on %s", ErrUnsupported, mode, runtime.GOOS),
		}
	}
}
