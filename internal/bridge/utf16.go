package bridge

import (
	"encoding/binary"
	"errors"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	apperrors "github.com/zorak1103/utf8shim/internal/errors"
)

// UTF16 is the portable wide bridge. Native text is UTF-16LE without a
// byte order mark; a leading U+FEFF is treated as an ordinary character.
type UTF16 struct{}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Name implements Bridge.
func (UTF16) Name() string { return "utf-16le" }

// ToUTF8 implements Bridge.
func (UTF16) ToUTF8(native []byte) ([]byte, error) {
	if len(native) == 0 {
		return []byte{}, nil
	}
	required, err := UTF8Len(native)
	if err != nil {
		return nil, err
	}
	out := make([]byte, required)
	written, err := convert(utf16le.NewDecoder(), DirectionToUTF8, out, native)
	if err != nil {
		return nil, err
	}
	mustMatch(DirectionToUTF8, required, written)
	return out, nil
}

// ToNative implements Bridge.
func (UTF16) ToNative(text []byte) ([]byte, error) {
	if len(text) == 0 {
		return []byte{}, nil
	}
	required, err := UTF16Len(text)
	if err != nil {
		return nil, err
	}
	out := make([]byte, required)
	written, err := convert(utf16le.NewEncoder(), DirectionToNative, out, text)
	if err != nil {
		return nil, err
	}
	mustMatch(DirectionToNative, required, written)
	return out, nil
}

// convert runs t once over the whole of src into the pre-sized dst.
// A short destination means the size query under-counted; that is
// reported as an inconsistency, not as an input error.
func convert(t transform.Transformer, direction string, dst, src []byte) (int, error) {
	written, _, err := t.Transform(dst, src, true)
	switch {
	case errors.Is(err, transform.ErrShortDst):
		panic(&InconsistencyError{Direction: direction, Required: len(dst), Written: written})
	case err != nil:
		return 0, &apperrors.ConversionError{Direction: direction, Offset: -1, Err: err}
	}
	return written, nil
}

// UTF8Len returns the number of UTF-8 bytes needed to hold the UTF-16LE text
// native. Odd lengths and unpaired surrogates are rejected.
func UTF8Len(native []byte) (int, error) {
	if len(native)%2 != 0 {
		return 0, malformed(DirectionToUTF8, len(native)-1)
	}
	n := 0
	for i := 0; i < len(native); i += 2 {
		r := rune(binary.LittleEndian.Uint16(native[i:]))
		if !utf16.IsSurrogate(r) {
			n += utf8.RuneLen(r)
			continue
		}
		if r >= 0xdc00 || i+4 > len(native) {
			return 0, malformed(DirectionToUTF8, i)
		}
		lo := rune(binary.LittleEndian.Uint16(native[i+2:]))
		if lo < 0xdc00 || lo > 0xdfff {
			return 0, malformed(DirectionToUTF8, i)
		}
		n += utf8.UTFMax
		i += 2
	}
	return n, nil
}

// UTF16Len returns the number of UTF-16LE bytes needed to hold the UTF-8
// text. Invalid UTF-8, including encoded surrogates, is rejected.
func UTF16Len(text []byte) (int, error) {
	n := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRune(text[i:])
		if r == utf8.RuneError && size <= 1 {
			return 0, malformed(DirectionToNative, i)
		}
		n += 2 * utf16.RuneLen(r)
		i += size
	}
	return n, nil
}

func malformed(direction string, offset int) error {
	return &apperrors.ConversionError{Direction: direction, Offset: offset, Err: ErrMalformed}
}

// UnitsToBytes lays out UTF-16 code units as UTF-16LE bytes.
func UnitsToBytes(units []uint16) []byte {
	out := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(out[2*i:], u)
	}
	return out
}

// BytesToUnits reads UTF-16LE bytes back into code units.
func BytesToUnits(native []byte) ([]uint16, error) {
	if len(native)%2 != 0 {
		return nil, malformed(DirectionToUTF8, len(native)-1)
	}
	units := make([]uint16, len(native)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(native[2*i:])
	}
	return units, nil
}
