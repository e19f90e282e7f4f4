// File: game/messages.go
package game

// --- Commands accepted by MatchActor ---

// StepCommand advances the match by Elapsed milliseconds outside the ticker.
type StepCommand struct {
	Elapsed float64
}

// MovePaddleCommand shifts a paddle vertically by Dy pixels.
type MovePaddleCommand struct {
	Player PlayerID
	Dy     float64
}

// SnapshotRequest is answered with a MatchSnapshot when sent through Engine.Ask.
type SnapshotRequest struct{}

// --- Notifications sent to the listener ---

// MatchEvent forwards point and game-over events.
type MatchEvent struct {
	MatchID string
	Event   Event
}

// MatchOver is sent once when the match reaches its winning score.
type MatchOver struct {
	Snapshot MatchSnapshot
}

// matchTick is the ticker's message to its own actor.
type matchTick struct{}
