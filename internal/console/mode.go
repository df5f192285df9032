package console

import (
	"fmt"
	"strings"
)

// Mode is the stream discipline a console strategy binds.
type Mode int

const (
	// ModeAuto picks the platform's native discipline.
	ModeAuto Mode = iota
	// ModeUTF8 passes UTF-8 bytes straight through to the OS handles.
	ModeUTF8
	// ModeWide transcodes every stream to and from the native wide representation.
	ModeWide
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeUTF8:
		return "utf8"
	case ModeWide:
		return "wide"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses the configuration spelling of a mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "utf8", "utf-8":
		return ModeUTF8, nil
	case "wide":
		return ModeWide, nil
	default:
		return ModeAuto, fmt.Errorf("unknown console mode %q (want auto, utf8 or wide)", s)
	}
}
