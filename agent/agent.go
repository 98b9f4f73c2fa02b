// Package agent implements the vacuum agent: a memoryless reflex agent that
// cleans its cell when dirty and otherwise wanders in a random direction.
package agent

import (
	"errors"
	"fmt"

	"github.com/Div9851/vacuum-sim/agentaction"
	"github.com/Div9851/vacuum-sim/agentstate"
	"github.com/Div9851/vacuum-sim/environment"
	"github.com/Div9851/vacuum-sim/mapdata"
	"github.com/Div9851/vacuum-sim/rng"
)

var ErrOutOfBounds = errors.New("position out of bounds")

type Agent struct {
	env        *environment.Environment
	pos        mapdata.Pos
	moves      int
	lastAction agentaction.Action
	randGen    rng.Rand
}

// New places an agent at a uniformly random cell of env.
func New(env *environment.Environment, randGen rng.Rand) *Agent {
	h, w := env.Size()
	pos := mapdata.Pos{R: randGen.Intn(h), C: randGen.Intn(w)}
	return &Agent{env: env, pos: pos, lastAction: agentaction.UNKNOWN, randGen: randGen}
}

// NewAt places an agent at pos.
func NewAt(env *environment.Environment, pos mapdata.Pos, randGen rng.Rand) (*Agent, error) {
	if !env.InBounds(pos) {
		h, w := env.Size()
		return nil, fmt.Errorf("%w: %v on %dx%d grid", ErrOutOfBounds, pos, h, w)
	}
	return &Agent{env: env, pos: pos, lastAction: agentaction.UNKNOWN, randGen: randGen}, nil
}

// Step perceives the current cell and acts on it: a dirty cell is cleaned, a
// clean one makes the agent try a random move. Moves blocked by the grid
// edge leave the agent in place. Every call counts as one move.
func (agent *Agent) Step() agentaction.Action {
	var action agentaction.Action
	if agent.env.At(agent.pos) == mapdata.DIRTY {
		agent.env.MarkClean(agent.pos)
		action = agentaction.CLEAN
	} else {
		action = agentaction.Moves[agent.randGen.Intn(len(agentaction.Moves))]
		h, w := agent.env.Size()
		agent.pos = agentstate.NextPos(agent.pos, action, h, w)
	}
	agent.moves++
	agent.lastAction = action
	return action
}

func (agent *Agent) Pos() mapdata.Pos {
	return agent.pos
}

func (agent *Agent) Moves() int {
	return agent.moves
}

func (agent *Agent) State() agentstate.State {
	return agentstate.State{Pos: agent.pos, Moves: agent.moves, LastAction: agent.lastAction}
}
