package agentstate

import (
	"github.com/Div9851/vacuum-sim/agentaction"
	"github.com/Div9851/vacuum-sim/mapdata"
)

// State is a read-only snapshot of the agent for drivers and renderers.
type State struct {
	Pos        mapdata.Pos
	Moves      int
	LastAction agentaction.Action
}

// NextPos applies a move to curPos on an h x w grid. A move that would leave
// the grid, or an action that is not a move, keeps curPos.
func NextPos(curPos mapdata.Pos, action agentaction.Action, h, w int) mapdata.Pos {
	nr, nc := curPos.R, curPos.C
	switch action {
	case agentaction.UP:
		nr--
	case agentaction.DOWN:
		nr++
	case agentaction.LEFT:
		nc--
	case agentaction.RIGHT:
		nc++
	}
	if !mapdata.InBounds(mapdata.Pos{R: nr, C: nc}, h, w) {
		return curPos
	}
	return mapdata.Pos{R: nr, C: nc}
}
