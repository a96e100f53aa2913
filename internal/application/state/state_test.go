package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StateMenu, "Menu"},
		{StateInstructions, "Instructions"},
		{StateCredits, "Credits"},
		{StatePlaying, "Playing"},
		{StateScreamer, "Screamer"},
		{StateVictory, "Victory"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestGameStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, GameState(0), StateMenu)
	assert.Equal(t, GameState(1), StateInstructions)
	assert.Equal(t, GameState(2), StateCredits)
	assert.Equal(t, GameState(3), StatePlaying)
	assert.Equal(t, GameState(4), StateScreamer)
	assert.Equal(t, GameState(5), StateVictory)
}

func TestGameState_InSession(t *testing.T) {
	assert.True(t, StatePlaying.InSession())
	assert.True(t, StateScreamer.InSession())
	assert.False(t, StateMenu.InSession())
	assert.False(t, StateVictory.InSession())
	assert.False(t, StateCredits.InSession())
}
