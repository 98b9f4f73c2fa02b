package agentaction

type Action int

const (
	UP Action = iota
	DOWN
	LEFT
	RIGHT
	CLEAN
	UNKNOWN
)

// Moves are the directions the agent picks from when its cell is clean.
var Moves = Actions{UP, DOWN, LEFT, RIGHT}

func (action Action) ToStr() string {
	switch action {
	case UP:
		return "UP"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	case RIGHT:
		return "RIGHT"
	case CLEAN:
		return "CLEAN"
	}
	return "UNKNOWN"
}

func (action Action) IsMove() bool {
	return action == UP || action == DOWN || action == LEFT || action == RIGHT
}

type Actions []Action
