package game

// WallID names one side of the court. The zero value is not a valid wall.
type WallID int

const (
	WallTop WallID = iota + 1
	WallBottom
	WallLeft
	WallRight
)

// WallIDs lists every wall in the order a match tests them.
var WallIDs = [4]WallID{WallTop, WallBottom, WallLeft, WallRight}

var wallNames = map[WallID]string{
	WallTop:    "Top",
	WallBottom: "Bottom",
	WallLeft:   "Left",
	WallRight:  "Right",
}

func (w WallID) String() string {
	if name, ok := wallNames[w]; ok {
		return name
	}
	return "Unknown"
}

// Valid reports whether w is one of the four walls.
func (w WallID) Valid() bool {
	_, ok := wallNames[w]
	return ok
}

// ParseWallID maps the text tags "Top", "Bottom", "Left" and "Right" to a WallID.
func ParseWallID(s string) (WallID, bool) {
	for id, name := range wallNames {
		if name == s {
			return id, true
		}
	}
	return 0, false
}

// PlayerID names one of the two paddles. The zero value is not a valid player.
type PlayerID int

const (
	Player1 PlayerID = iota + 1 // left side
	Player2                     // right side
)

// PlayerIDs lists both players in order.
var PlayerIDs = [2]PlayerID{Player1, Player2}

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return "Unknown"
}

func (p PlayerID) Valid() bool {
	return p == Player1 || p == Player2
}

// Opponent returns the other player. It returns 0 for an invalid id.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return 0
}

// ParsePlayerID maps "Player 1" and "Player 2" to a PlayerID.
func ParsePlayerID(s string) (PlayerID, bool) {
	switch s {
	case "Player 1":
		return Player1, true
	case "Player 2":
		return Player2, true
	}
	return 0, false
}

// ScoringPlayer returns who earns the point when the ball crosses wall. Only
// the Left and Right walls score.
func ScoringPlayer(wall WallID) (PlayerID, bool) {
	switch wall {
	case WallLeft:
		return Player2, true
	case WallRight:
		return Player1, true
	}
	return 0, false
}
