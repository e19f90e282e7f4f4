package game

// ScoreKeeper is notified once per point a player earns.
type ScoreKeeper interface {
	Inc()
	Value() int
}

// Score counts the points of one player. It only ever grows.
type Score struct {
	player PlayerID
	value  int
}

func NewScore(player PlayerID) *Score {
	return &Score{player: player}
}

func (s *Score) Inc()             { s.value++ }
func (s *Score) Value() int       { return s.value }
func (s *Score) Player() PlayerID { return s.player }

// Scoreboard holds one ScoreKeeper per player.
type Scoreboard struct {
	keepers [2]ScoreKeeper
}

// NewScoreboard uses the given keepers, creating a Score for any nil one.
func NewScoreboard(p1, p2 ScoreKeeper) *Scoreboard {
	if p1 == nil {
		p1 = NewScore(Player1)
	}
	if p2 == nil {
		p2 = NewScore(Player2)
	}
	return &Scoreboard{keepers: [2]ScoreKeeper{p1, p2}}
}

// Award gives player one point and returns the new total. Unknown players
// are ignored and get 0.
func (sb *Scoreboard) Award(player PlayerID) int {
	keeper := sb.Keeper(player)
	if keeper == nil {
		return 0
	}
	keeper.Inc()
	return keeper.Value()
}

func (sb *Scoreboard) Keeper(player PlayerID) ScoreKeeper {
	if !player.Valid() {
		return nil
	}
	return sb.keepers[player-1]
}

func (sb *Scoreboard) Value(player PlayerID) int {
	if keeper := sb.Keeper(player); keeper != nil {
		return keeper.Value()
	}
	return 0
}

// Values returns both totals indexed by player order.
func (sb *Scoreboard) Values() [2]int {
	return [2]int{sb.keepers[0].Value(), sb.keepers[1].Value()}
}
