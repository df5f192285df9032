//go:build windows

package bridge

// Native returns the bridge for this platform's console text.
func Native() Bridge { return Win32{} }

// Wide returns the bridge used for wide console streams.
func Wide() Bridge { return Win32{} }
