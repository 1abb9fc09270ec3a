// Package entity holds the viewer's application state.
package entity

import "sync"

// AppMessage is a message handled by the application update loop.
type AppMessage int

const (
	// MessageQuit asks the application to shut down. Sent on window close.
	MessageQuit AppMessage = iota
)

func (m AppMessage) String() string {
	switch m {
	case MessageQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// AppState is the application-level lifecycle state.
type AppState int

const (
	// AppStateRunning is entered when the window is shown.
	AppStateRunning AppState = iota
	// AppStateShuttingDown is terminal.
	AppStateShuttingDown
)

func (s AppState) String() string {
	switch s {
	case AppStateRunning:
		return "running"
	case AppStateShuttingDown:
		return "shutting_down"
	default:
		return "unknown"
	}
}

// Lifecycle is the Running -> ShuttingDown state machine.
// onQuit runs exactly once, on the first Quit received while Running.
type Lifecycle struct {
	mu     sync.Mutex
	state  AppState
	onQuit func()
}

// NewLifecycle creates a lifecycle in the Running state.
func NewLifecycle(onQuit func()) *Lifecycle {
	return &Lifecycle{
		state:  AppStateRunning,
		onQuit: onQuit,
	}
}

// State returns the current state.
func (l *Lifecycle) State() AppState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Dispatch handles msg and reports whether it caused a transition.
// Messages received after shutdown started are dropped.
func (l *Lifecycle) Dispatch(msg AppMessage) bool {
	l.mu.Lock()
	if l.state == AppStateShuttingDown {
		l.mu.Unlock()
		return false
	}

	switch msg {
	case MessageQuit:
		l.state = AppStateShuttingDown
		onQuit := l.onQuit
		l.mu.Unlock()

		if onQuit != nil {
			onQuit()
		}
		return true
	default:
		l.mu.Unlock()
		return false
	}
}
