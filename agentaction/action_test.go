package agentaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToStr(t *testing.T) {
	assert.Equal(t, "UP", UP.ToStr())
	assert.Equal(t, "DOWN", DOWN.ToStr())
	assert.Equal(t, "LEFT", LEFT.ToStr())
	assert.Equal(t, "RIGHT", RIGHT.ToStr())
	assert.Equal(t, "CLEAN", CLEAN.ToStr())
	assert.Equal(t, "UNKNOWN", Action(42).ToStr())
}

func TestMoves(t *testing.T) {
	assert.Len(t, Moves, 4)
	for _, action := range Moves {
		assert.True(t, action.IsMove())
	}
	assert.False(t, CLEAN.IsMove())
	assert.False(t, UNKNOWN.IsMove())
}
