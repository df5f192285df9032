//go:build windows

package bridge

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	apperrors "github.com/zorak1103/utf8shim/internal/errors"
)

const (
	cpUTF8            = 65001
	mbErrInvalidChars = 0x00000008
	wcErrInvalidChars = 0x00000080
)

var (
	modkernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procWideCharToMultiByte = modkernel32.NewProc("WideCharToMultiByte")
	procMultiByteToWideChar = modkernel32.NewProc("MultiByteToWideChar")
)

// Win32 converts with the kernel32 code page functions. Invalid input is
// rejected by the OS (WC_ERR_INVALID_CHARS / MB_ERR_INVALID_CHARS) rather
// than replaced.
type Win32 struct{}

// Name implements Bridge.
func (Win32) Name() string { return "utf-16le" }

// ToUTF8 implements Bridge.
func (Win32) ToUTF8(native []byte) ([]byte, error) {
	units, err := BytesToUnits(native)
	if err != nil {
		return nil, err
	}
	return Narrow(units)
}

// ToNative implements Bridge.
func (Win32) ToNative(text []byte) ([]byte, error) {
	units, err := Widen(text)
	if err != nil {
		return nil, err
	}
	return UnitsToBytes(units), nil
}

// Narrow converts UTF-16 code units to UTF-8 with WideCharToMultiByte.
func Narrow(units []uint16) ([]byte, error) {
	if len(units) == 0 {
		return []byte{}, nil
	}
	required, err := wideCharToMultiByte(units, nil)
	if err != nil {
		return nil, err
	}
	out := make([]byte, required)
	written, err := wideCharToMultiByte(units, out)
	if err != nil {
		return nil, err
	}
	mustMatch(DirectionToUTF8, required, written)
	return out, nil
}

// Widen converts UTF-8 text to UTF-16 code units with MultiByteToWideChar.
func Widen(text []byte) ([]uint16, error) {
	if len(text) == 0 {
		return []uint16{}, nil
	}
	required, err := multiByteToWideChar(text, nil)
	if err != nil {
		return nil, err
	}
	out := make([]uint16, required)
	written, err := multiByteToWideChar(text, out)
	if err != nil {
		return nil, err
	}
	mustMatch(DirectionToNative, 2*required, 2*written)
	return out, nil
}

func wideCharToMultiByte(units []uint16, out []byte) (int, error) {
	var dst *byte
	if len(out) > 0 {
		dst = &out[0]
	}
	r, _, e := procWideCharToMultiByte.Call(
		cpUTF8, wcErrInvalidChars,
		uintptr(unsafe.Pointer(&units[0])), uintptr(len(units)),
		uintptr(unsafe.Pointer(dst)), uintptr(len(out)),
		0, 0)
	if r == 0 {
		return 0, win32Error(DirectionToUTF8, "WideCharToMultiByte", e)
	}
	return int(r), nil
}

func multiByteToWideChar(text []byte, out []uint16) (int, error) {
	var dst *uint16
	if len(out) > 0 {
		dst = &out[0]
	}
	r, _, e := procMultiByteToWideChar.Call(
		cpUTF8, mbErrInvalidChars,
		uintptr(unsafe.Pointer(&text[0])), uintptr(len(text)),
		uintptr(unsafe.Pointer(dst)), uintptr(len(out)))
	if r == 0 {
		return 0, win32Error(DirectionToNative, "MultiByteToWideChar", e)
	}
	return int(r), nil
}

func win32Error(direction, op string, e error) error {
	if errors.Is(e, windows.ERROR_NO_UNICODE_TRANSLATION) {
		e = fmt.Errorf("%s: %w: %w", op, ErrMalformed, e)
	} else {
		e = fmt.Errorf("%s: %w", op, e)
	}
	return &apperrors.ConversionError{Direction: direction, Offset: -1, Err: e}
}
