package console

import (
	"github.com/mattn/go-isatty"
)

type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether v is an OS handle attached to an interactive
// console. Cygwin and MSYS pseudo terminals count: they are pipes that
// carry UTF-8, so callers wanting a native console check IsNativeConsole.
func IsTerminal(v any) bool {
	f, ok := v.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsNativeConsole reports whether v is a handle owned by the host's own
// console, which is where the wide representation applies.
func IsNativeConsole(v any) bool {
	f, ok := v.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
