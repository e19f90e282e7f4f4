package game

// EventKind classifies what happened during a match step.
type EventKind int

const (
	EventPaddleHit EventKind = iota + 1
	EventWallBounce
	EventPointScored
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventPaddleHit:
		return "paddleHit"
	case EventWallBounce:
		return "wallBounce"
	case EventPointScored:
		return "pointScored"
	case EventGameOver:
		return "gameOver"
	}
	return "unknown"
}

// Event is one outcome of Match.Step. Wall is set for bounces and points,
// Player for paddle hits, points (the scorer) and game over (the winner).
type Event struct {
	Kind   EventKind `json:"kind"`
	Frame  uint64    `json:"frame"`
	Wall   WallID    `json:"wall,omitempty"`
	Player PlayerID  `json:"player,omitempty"`
	Score  int       `json:"score,omitempty"`
}
