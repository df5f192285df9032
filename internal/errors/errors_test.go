package apperrors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errBase = errors.New("base")

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "configuration with key",
			err:  &ConfigurationError{ConfigPath: "utf8shim.yaml", Key: "console.mode", Err: errBase},
			want: "configuration error in utf8shim.yaml (key: console.mode): base",
		},
		{
			name: "configuration without key",
			err:  &ConfigurationError{ConfigPath: "utf8shim.yaml", Err: errBase},
			want: "configuration error in utf8shim.yaml: base",
		},
		{
			name: "conversion with offset",
			err:  &ConversionError{Direction: "to-native", Offset: 3, Err: errBase},
			want: "to-native conversion failed at offset 3: base",
		},
		{
			name: "conversion without offset",
			err:  &ConversionError{Direction: "to-utf8", Offset: -1, Err: errBase},
			want: "to-utf8 conversion failed: base",
		},
		{
			name: "console with stream",
			err:  &ConsoleError{Stream: "stdout", Operation: "GetConsoleMode", Err: errBase},
			want: "console GetConsoleMode failed (stream: stdout): base",
		},
		{
			name: "console without stream",
			err:  &ConsoleError{Operation: "bind", Err: errBase},
			want: "console bind failed: base",
		},
		{
			name: "argument with index",
			err:  &ArgumentError{Op: "convert", Index: 2, Err: errBase},
			want: "argument acquisition convert failed (argument 2): base",
		},
		{
			name: "argument without index",
			err:  &ArgumentError{Op: "CommandLineToArgvW", Index: -1, Err: errBase},
			want: "argument acquisition CommandLineToArgvW failed: base",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, errBase)
		})
	}
}

func TestErrorsAs(t *testing.T) {
	t.Parallel()

	var wrapped error = &ArgumentError{Op: "convert", Index: 0, Err: &ConversionError{Direction: "to-utf8", Offset: 1, Err: io.ErrUnexpectedEOF}}

	var convErr *ConversionError
	assert.True(t, errors.As(wrapped, &convErr))
	assert.Equal(t, 1, convErr.Offset)
	assert.ErrorIs(t, wrapped, io.ErrUnexpectedEOF)
}
