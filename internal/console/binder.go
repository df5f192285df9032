package console

import (
	"fmt"
	"sync"
)

// State is a Binder's position in the process lifecycle.
type State int

const (
	Uninitialized State = iota
	ConsoleBound
	ArgumentsReady
	Terminating
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case ConsoleBound:
		return "console-bound"
	case ArgumentsReady:
		return "arguments-ready"
	case Terminating:
		return "terminating"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Binder runs a Console strategy once per process. Each step happens at
// most once; repeating a step returns the first result and never moves the
// lifecycle backwards.
type Binder struct {
	console Console

	mu    sync.Mutex
	state State

	bindOnce sync.Once
	streams  *Streams
	bindErr  error

	argsOnce sync.Once
	args     []string
	argsErr  error
}

// NewBinder returns a Binder for c.
func NewBinder(c Console) *Binder {
	return &Binder{console: c}
}

// Console returns the strategy being bound.
func (b *Binder) Console() Console { return b.console }

// State returns the current lifecycle state.
func (b *Binder) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Binder) advance(to State) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if to > b.state {
		b.state = to
	}
}

// Configure binds the standard streams. Only the first call reaches the
// strategy.
func (b *Binder) Configure() (*Streams, error) {
	b.bindOnce.Do(func() {
		b.streams, b.bindErr = b.console.Bind()
		if b.bindErr == nil {
			b.advance(ConsoleBound)
		}
	})
	return b.streams, b.bindErr
}

// Arguments returns the UTF-8 argument vector, configuring the console
// first if that has not happened yet. Only the first call reaches the
// strategy.
func (b *Binder) Arguments(raw []string) ([]string, error) {
	if _, err := b.Configure(); err != nil {
		return nil, err
	}
	b.argsOnce.Do(func() {
		b.args, b.argsErr = b.console.Arguments(raw)
		if b.argsErr == nil {
			b.advance(ArgumentsReady)
		}
	})
	return b.args, b.argsErr
}

// Terminate marks the process as shutting down and flushes bound streams.
func (b *Binder) Terminate() error {
	b.advance(Terminating)
	if b.streams == nil {
		return nil
	}
	return b.streams.Flush()
}
