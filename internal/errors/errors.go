// Package apperrors provides domain-specific error types for utf8shim.
// These error types include contextual information to aid debugging and error reporting.
package apperrors

import "fmt"

// ConfigurationError represents configuration-related errors.
// It includes the configuration file path and specific key that caused the error.
type ConfigurationError struct {
	ConfigPath string // Path to the configuration file
	Key        string // Configuration key that caused the error
	Err        error  // Underlying error
}

// Error implements the error interface for ConfigurationError.
func (e *ConfigurationError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("configuration error in %s (key: %s): %v", e.ConfigPath, e.Key, e.Err)
	}
	return fmt.Sprintf("configuration error in %s: %v", e.ConfigPath, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ConversionError represents a failed transcoding between UTF-8 and the
// native text representation. Offset is the index of the first unit (byte
// for UTF-8, byte of the UTF-16LE stream for wide text) that could not be
// converted, or -1 when the converter did not report one.
type ConversionError struct {
	Direction string // "to-utf8" or "to-native"
	Offset    int
	Err       error
}

// Error implements the error interface for ConversionError.
func (e *ConversionError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s conversion failed at offset %d: %v", e.Direction, e.Offset, e.Err)
	}
	return fmt.Sprintf("%s conversion failed: %v", e.Direction, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// ConsoleError represents a failure switching or querying a standard stream.
type ConsoleError struct {
	Stream    string // stdin, stdout, stderr or stdlog
	Operation string // Operation that failed (e.g., "GetConsoleMode")
	Err       error
}

// Error implements the error interface for ConsoleError.
func (e *ConsoleError) Error() string {
	if e.Stream != "" {
		return fmt.Sprintf("console %s failed (stream: %s): %v", e.Operation, e.Stream, e.Err)
	}
	return fmt.Sprintf("console %s failed: %v", e.Operation, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *ConsoleError) Unwrap() error {
	return e.Err
}

// ArgumentError represents a failure acquiring the process argument vector.
type ArgumentError struct {
	Op    string // Operation that failed (e.g., "CommandLineToArgvW")
	Index int    // Argument index, -1 when the whole command line is concerned
	Err   error
}

// Error implements the error interface for ArgumentError.
func (e *ArgumentError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("argument acquisition %s failed (argument %d): %v", e.Op, e.Index, e.Err)
	}
	return fmt.Sprintf("argument acquisition %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error wrapping chains.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}
