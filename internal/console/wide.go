package console

import (
	"encoding/binary"
	"io"
	"unicode/utf8"

	"github.com/zorak1103/utf8shim/internal/bridge"
	apperrors "github.com/zorak1103/utf8shim/internal/errors"
)

const readChunk = 4096

// WideWriter transcodes UTF-8 written by the application into native text
// before handing it to the underlying sink. A UTF-8 sequence split across
// two Write calls is held back until it is complete; nothing else is
// buffered.
type WideWriter struct {
	b       bridge.Bridge
	w       io.Writer
	pending []byte
}

// NewWideWriter wraps sink, which receives native text.
func NewWideWriter(b bridge.Bridge, sink io.Writer) *WideWriter {
	return &WideWriter{b: b, w: sink}
}

// Write implements io.Writer. The returned count refers to p, not to the
// native bytes written to the sink.
func (w *WideWriter) Write(p []byte) (int, error) {
	buf := p
	if len(w.pending) > 0 {
		buf = append(w.pending[:len(w.pending):len(w.pending)], p...)
	}
	cut := completeUTF8(buf)

	native, err := w.b.ToNative(buf[:cut])
	if err != nil {
		w.pending = w.pending[:0]
		return 0, err
	}
	if len(native) > 0 {
		if _, err := w.w.Write(native); err != nil {
			return 0, err
		}
	}
	w.pending = append(w.pending[:0], buf[cut:]...)
	return len(p), nil
}

// Flush reports an error if an incomplete sequence is still held back.
func (w *WideWriter) Flush() error {
	if len(w.pending) == 0 {
		return nil
	}
	n := len(w.pending)
	w.pending = w.pending[:0]
	return &apperrors.ConversionError{Direction: bridge.DirectionToNative, Offset: n, Err: io.ErrUnexpectedEOF}
}

// completeUTF8 returns the length of the longest prefix of p that does not
// end in the middle of a UTF-8 sequence.
func completeUTF8(p []byte) int {
	for i := len(p) - 1; i >= 0 && i >= len(p)-utf8.UTFMax; i-- {
		if utf8.RuneStart(p[i]) {
			if utf8.FullRune(p[i:]) {
				return len(p)
			}
			return i
		}
	}
	return len(p)
}

// WideReader transcodes native UTF-16LE text read from the underlying source
// into UTF-8. An odd trailing byte or a high surrogate at the end of a read
// is carried into the next one.
type WideReader struct {
	b   bridge.Bridge
	r   io.Reader
	buf []byte
	raw []byte
	out []byte
	err error
}

// NewWideReader wraps source, which yields native text.
func NewWideReader(b bridge.Bridge, source io.Reader) *WideReader {
	return &WideReader{b: b, r: source, buf: make([]byte, readChunk)}
}

// Read implements io.Reader.
func (r *WideReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(r.out) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		n, err := r.r.Read(r.buf)
		r.raw = append(r.raw, r.buf[:n]...)
		if err != nil {
			r.err = err
		}

		cut := len(r.raw)
		if r.err == nil {
			cut = completeUTF16(r.raw)
		}
		converted, cerr := r.b.ToUTF8(r.raw[:cut])
		if cerr != nil {
			r.raw = nil
			r.err = cerr
			return 0, cerr
		}
		r.out = append(r.out[:0], converted...)
		r.raw = append(r.raw[:0], r.raw[cut:]...)
	}
	n := copy(p, r.out)
	r.out = r.out[n:]
	return n, nil
}

// completeUTF16 returns the length of the longest prefix of p made of whole
// code units that does not end with a high surrogate.
func completeUTF16(p []byte) int {
	cut := len(p) &^ 1
	if cut >= 2 {
		u := binary.LittleEndian.Uint16(p[cut-2:])
		if u >= 0xd800 && u < 0xdc00 {
			cut -= 2
		}
	}
	return cut
}
