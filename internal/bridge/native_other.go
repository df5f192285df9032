//go:build !windows

package bridge

// Native returns the bridge for this platform's console text, which is
// already UTF-8.
func Native() Bridge { return Identity{} }

// Wide returns the bridge used when a wide console is requested explicitly.
func Wide() Bridge { return UTF16{} }
