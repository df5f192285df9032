package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zorak1103/utf8shim/internal/bridge"
	apperrors "github.com/zorak1103/utf8shim/internal/errors"
)

// fakeCommandLine stands in for the OS tokenizer: it hands back arguments
// already split and encoded as the OS would.
type fakeCommandLine struct {
	args  [][]byte
	err   error
	calls int
}

func (f *fakeCommandLine) Split() ([][]byte, error) {
	f.calls++
	return f.args, f.err
}

func nativeArgs(args ...string) [][]byte {
	out := make([][]byte, len(args))
	for i, a := range args {
		out[i] = utf16le(a)
	}
	return out
}

func TestUTF8Console_ArgumentsAreIdentity(t *testing.T) {
	t.Parallel()

	c := NewUTF8Console(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	raw := []string{"prog", "hello world", "café"}

	args, err := c.Arguments(raw)
	require.NoError(t, err)
	assert.Same(t, &raw[0], &args[0], "arguments must share the raw backing array")
	assert.Len(t, args, 3)
}

func TestUTF8Console_ArgumentsAllocationFree(t *testing.T) {
	c := NewUTF8Console(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	raw := []string{"prog", "café"}

	allocs := testing.AllocsPerRun(100, func() {
		_, _ = c.Arguments(raw)
	})
	assert.Zero(t, allocs)
}

func TestUTF8Console_BindPassesHandlesThrough(t *testing.T) {
	t.Parallel()

	in := strings.NewReader("input")
	out, errw := &bytes.Buffer{}, &bytes.Buffer{}

	s, err := NewUTF8Console(in, out, errw).Bind()
	require.NoError(t, err)
	assert.Same(t, in, s.In)
	assert.Same(t, out, s.Out)
	assert.Same(t, errw, s.Err)
	assert.Same(t, errw, s.Log)
	assert.Equal(t, ModeUTF8, s.Mode)
	assert.Equal(t, "utf-8", s.Bridge.Name())
	assert.NoError(t, s.Flush())
}

func TestWideConsole_ArgumentFidelity(t *testing.T) {
	t.Parallel()

	cmdline := &fakeCommandLine{args: nativeArgs("prog", "hello world", "café")}
	c := NewWideConsole(bridge.UTF16{}, Handle{}, Handle{}, Handle{}, cmdline)

	// The raw values are deliberately mangled; the OS command line wins.
	args, err := c.Arguments([]string{"prog", "hello", "world", "caf?"})
	require.NoError(t, err)

	want := []string{"prog", "hello world", "café"}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Errorf("Arguments() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []byte{'c', 'a', 'f', 0xc3, 0xa9}, []byte(args[2]))
}

func TestWideConsole_ArgumentConversionFailure(t *testing.T) {
	t.Parallel()

	bad := bridge.UnitsToBytes([]uint16{'x', 0xdc00})
	cmdline := &fakeCommandLine{args: [][]byte{utf16le("prog"), bad}}
	c := NewWideConsole(bridge.UTF16{}, Handle{}, Handle{}, Handle{}, cmdline)

	args, err := c.Arguments(nil)
	assert.Nil(t, args)

	var argErr *apperrors.ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, 1, argErr.Index)
	assert.ErrorIs(t, err, bridge.ErrMalformed)
}

func TestWideConsole_SplitFailure(t *testing.T) {
	t.Parallel()

	splitErr := errors.New("tokenizer unavailable")
	c := NewWideConsole(bridge.UTF16{}, Handle{}, Handle{}, Handle{}, &fakeCommandLine{err: splitErr})

	_, err := c.Arguments(nil)
	assert.ErrorIs(t, err, splitErr)

	_, err = NewWideConsole(bridge.UTF16{}, Handle{}, Handle{}, Handle{}, nil).Arguments(nil)
	var argErr *apperrors.ArgumentError
	assert.True(t, errors.As(err, &argErr))
}

func TestWideConsole_BindNativeHandles(t *testing.T) {
	t.Parallel()

	stdin := bytes.NewReader(utf16le("héllo"))
	var stdout, stderr bytes.Buffer
	c := NewWideConsole(bridge.UTF16{},
		Handle{Reader: stdin, Native: true},
		Handle{Writer: &stdout, Native: true},
		Handle{Writer: &stderr, Native: true},
		nil)

	s, err := c.Bind()
	require.NoError(t, err)
	assert.Equal(t, ModeWide, s.Mode)

	buf := make([]byte, 64)
	n, err := s.In.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "héllo", string(buf[:n]))

	_, err = s.Out.Write([]byte("café"))
	require.NoError(t, err)
	require.NoError(t, Newline(s.Out))
	assert.Equal(t, utf16le("café\n"), stdout.Bytes())

	_, err = s.Err.Write([]byte("bad input"))
	require.NoError(t, err)
	_, err = s.Log.Write([]byte("!"))
	require.NoError(t, err)
	assert.Equal(t, utf16le("bad input!"), stderr.Bytes())
}

func TestWideConsole_BindRedirectedHandles(t *testing.T) {
	t.Parallel()

	stdin := strings.NewReader("piped")
	var stdout, stderr bytes.Buffer
	c := NewWideConsole(bridge.UTF16{},
		Handle{Reader: stdin},
		Handle{Writer: &stdout},
		Handle{Writer: &stderr, Native: true},
		nil)

	s, err := c.Bind()
	require.NoError(t, err)
	assert.Same(t, stdin, s.In)
	assert.Same(t, &stdout, s.Out)
	assert.IsType(t, &WideWriter{}, s.Err)
}

func TestWideConsole_BindMissingHandle(t *testing.T) {
	t.Parallel()

	_, err := NewWideConsole(bridge.UTF16{}, Handle{}, Handle{}, Handle{}, nil).Bind()
	var consoleErr *apperrors.ConsoleError
	assert.True(t, errors.As(err, &consoleErr))
}

func TestStreams_FlushJoinsPendingErrors(t *testing.T) {
	t.Parallel()

	var sink bytes.Buffer
	out := NewWideWriter(bridge.UTF16{}, &sink)
	_, err := out.Write([]byte{0xc3})
	require.NoError(t, err)

	s := &Streams{Out: out, Err: &sink, Log: &sink}
	assert.Error(t, s.Flush())
	assert.NoError(t, s.Flush())
}
