package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inputd/joyd.go/pkg/joystick"
)

func TestStateCacheReportsChanges(t *testing.T) {
	var c stateCache
	axes := []float32{0, 0}
	buttons := []joystick.ButtonState{joystick.Released, joystick.Released}

	// First sighting after connect always publishes.
	require.True(t, c.update(0, axes, buttons))
	require.False(t, c.update(0, axes, buttons))

	axes[1] = 0.5
	require.True(t, c.update(0, axes, buttons))
	require.False(t, c.update(0, axes, buttons))

	buttons[0] = joystick.Pressed
	require.True(t, c.update(0, axes, buttons))
	require.False(t, c.update(0, axes, buttons))

	// Slots are tracked independently.
	require.True(t, c.update(1, axes, buttons))
	require.False(t, c.update(0, axes, buttons))

	// A cleared slot republishes on reconnect even when the state
	// happens to match the last published one.
	c.clear(0)
	require.True(t, c.update(0, axes, buttons))
}
