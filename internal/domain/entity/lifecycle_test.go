package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLifecycle_StartsRunning(t *testing.T) {
	lc := NewLifecycle(nil)
	assert.Equal(t, AppStateRunning, lc.State())
}

func TestLifecycle_QuitTransitionsOnce(t *testing.T) {
	calls := 0
	lc := NewLifecycle(func() { calls++ })

	assert.True(t, lc.Dispatch(MessageQuit))
	assert.Equal(t, AppStateShuttingDown, lc.State())
	assert.Equal(t, 1, calls)

	// ShuttingDown is terminal: later Quit messages are dropped.
	assert.False(t, lc.Dispatch(MessageQuit))
	assert.False(t, lc.Dispatch(MessageQuit))
	assert.Equal(t, AppStateShuttingDown, lc.State())
	assert.Equal(t, 1, calls)
}

func TestLifecycle_UnknownMessageIgnored(t *testing.T) {
	calls := 0
	lc := NewLifecycle(func() { calls++ })

	assert.False(t, lc.Dispatch(AppMessage(42)))
	assert.Equal(t, AppStateRunning, lc.State())
	assert.Zero(t, calls)
}

func TestLifecycle_NilQuitCallback(t *testing.T) {
	lc := NewLifecycle(nil)
	assert.True(t, lc.Dispatch(MessageQuit))
	assert.Equal(t, AppStateShuttingDown, lc.State())
}

func TestLifecycle_QuitCallbackMayReenter(t *testing.T) {
	var lc *Lifecycle
	reentered := true
	lc = NewLifecycle(func() {
		// GTK can deliver another close while quitting.
		reentered = lc.Dispatch(MessageQuit)
	})

	assert.True(t, lc.Dispatch(MessageQuit))
	assert.False(t, reentered)
}

func TestAppMessageAndStateStrings(t *testing.T) {
	assert.Equal(t, "quit", MessageQuit.String())
	assert.Equal(t, "unknown", AppMessage(7).String())
	assert.Equal(t, "running", AppStateRunning.String())
	assert.Equal(t, "shutting_down", AppStateShuttingDown.String())
	assert.Equal(t, "unknown", AppState(9).String())
}
