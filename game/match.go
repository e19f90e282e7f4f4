// File: game/match.go
package game

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/lguibr/pongcore/utils"
)

// Match is the per-frame mediator around a Ball: it advances it, tests it
// against every wall and paddle, triggers the reactions and credits points.
// It is not safe for concurrent use; MatchActor owns one exclusively.
type Match struct {
	ID           uuid.UUID
	court        Court
	ball         *Ball
	walls        [4]Wall
	paddles      [2]*Paddle
	scores       *Scoreboard
	tracker      *CollisionTracker
	winningScore int
	frame        uint64
	finished     bool
	winner       PlayerID
	log          *slog.Logger
}

type matchOptions struct {
	logger       *slog.Logger
	rng          *rand.Rand
	keepers      [2]ScoreKeeper
	winningScore *int
}

// MatchOption customises NewMatch.
type MatchOption func(*matchOptions)

func WithLogger(logger *slog.Logger) MatchOption {
	return func(o *matchOptions) { o.logger = logger }
}

// WithServeRand randomises the ball's initial directions with rng.
func WithServeRand(rng *rand.Rand) MatchOption {
	return func(o *matchOptions) { o.rng = rng }
}

// WithScoreKeepers replaces the built-in Score counters.
func WithScoreKeepers(p1, p2 ScoreKeeper) MatchOption {
	return func(o *matchOptions) { o.keepers = [2]ScoreKeeper{p1, p2} }
}

// WithWinningScore overrides cfg.WinningScore. 0 disables the win condition.
func WithWinningScore(n int) MatchOption {
	return func(o *matchOptions) { o.winningScore = &n }
}

// NewMatch builds a court, ball, walls, paddles and scoreboard from cfg.
func NewMatch(cfg utils.Config, opts ...MatchOption) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := matchOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.rng == nil && cfg.RandomServe {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		o.rng = rand.New(rand.NewSource(seed))
	}
	winningScore := cfg.WinningScore
	if o.winningScore != nil {
		winningScore = *o.winningScore
	}
	if winningScore < 0 {
		return nil, fmt.Errorf("%w: winning score %d", utils.ErrInvalidConfig, winningScore)
	}

	court := CourtFromConfig(cfg)
	if err := court.Validate(); err != nil {
		return nil, err
	}

	id := uuid.New()
	logger := o.logger.With("match", id.String())

	ballOpts := []BallOption{WithBallLogger(logger)}
	if o.rng != nil {
		ballOpts = append(ballOpts, WithDirection(o.rng.Intn(2)*2-1, o.rng.Intn(2)*2-1))
	}

	cx, cy := court.Center()
	ball, err := NewBall(cx, cy, cfg.BallWidth, cfg.BallHeight, cfg.BallSpeed, court, ballOpts...)
	if err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}

	return &Match{
		ID:    id,
		court: court,
		ball:  ball,
		walls: court.Walls(),
		paddles: [2]*Paddle{
			court.NewPaddle(Player1, cfg.PaddleInset, cfg.PaddleWidth, cfg.PaddleHeight),
			court.NewPaddle(Player2, cfg.PaddleInset, cfg.PaddleWidth, cfg.PaddleHeight),
		},
		scores:       NewScoreboard(o.keepers[0], o.keepers[1]),
		tracker:      NewCollisionTracker(),
		winningScore: winningScore,
		log:          logger,
	}, nil
}

// Step runs one frame: advance the ball by elapsed milliseconds, then test
// and react to paddles and walls. A point ends the frame right after the
// ball is served again. Step on a finished match does nothing.
func (m *Match) Step(elapsed float64) []Event {
	if m.finished {
		return nil
	}
	m.frame++
	m.ball.Update(elapsed)

	var events []Event

	for _, paddle := range m.paddles {
		key := PaddleContact(paddle.ID)
		if !m.ball.CheckPaddleCollision(paddle) {
			m.tracker.End(key)
			continue
		}
		if !m.tracker.Begin(key) {
			continue
		}
		m.ball.OnPaddleCollision(paddle.ID)
		events = append(events, Event{Kind: EventPaddleHit, Frame: m.frame, Player: paddle.ID})
		m.log.Debug("paddle hit", "player", paddle.ID, "speed", m.ball.Speed())
	}

	for _, wall := range m.walls {
		key := WallContact(wall.ID)
		if !m.ball.CheckWallCollision(wall) {
			m.tracker.End(key)
			continue
		}
		if !m.tracker.Begin(key) {
			continue
		}

		m.ball.OnWallCollision(wall.ID)

		scorer, isPoint := ScoringPlayer(wall.ID)
		if !isPoint {
			events = append(events, Event{Kind: EventWallBounce, Frame: m.frame, Wall: wall.ID})
			continue
		}

		total := m.scores.Award(scorer)
		m.tracker.Clear()
		events = append(events, Event{Kind: EventPointScored, Frame: m.frame, Wall: wall.ID, Player: scorer, Score: total})
		m.log.Info("point scored", "wall", wall.ID, "scorer", scorer, "score", total)

		if m.winningScore > 0 && total >= m.winningScore {
			m.finished = true
			m.winner = scorer
			events = append(events, Event{Kind: EventGameOver, Frame: m.frame, Player: scorer, Score: total})
			m.log.Info("game over", "winner", scorer, "scores", m.scores.Values())
		}
		break
	}

	return events
}

// MovePaddle shifts a paddle vertically, clamped to the court.
func (m *Match) MovePaddle(player PlayerID, dy float64) {
	if paddle := m.Paddle(player); paddle != nil {
		paddle.MoveBy(dy)
	}
}

func (m *Match) Paddle(player PlayerID) *Paddle {
	if !player.Valid() {
		return nil
	}
	return m.paddles[player-1]
}

func (m *Match) Ball() *Ball              { return m.ball }
func (m *Match) Court() Court             { return m.court }
func (m *Match) Walls() [4]Wall           { return m.walls }
func (m *Match) Scores() *Scoreboard      { return m.scores }
func (m *Match) Frame() uint64            { return m.frame }
func (m *Match) Finished() bool           { return m.finished }
func (m *Match) Winner() (PlayerID, bool) { return m.winner, m.finished }

// BallState is a value copy of the ball for diagnostics.
type BallState struct {
	Cx         float64 `json:"cx"`
	Cy         float64 `json:"cy"`
	Speed      float64 `json:"speed"`
	DirectionX int     `json:"directionX"`
	DirectionY int     `json:"directionY"`
}

// MatchSnapshot is a value copy of a match, safe to hand to other goroutines.
type MatchSnapshot struct {
	ID       string    `json:"id"`
	Frame    uint64    `json:"frame"`
	Ball     BallState `json:"ball"`
	Paddles  [2]Paddle `json:"paddles"`
	Scores   [2]int    `json:"scores"`
	Finished bool      `json:"finished"`
	Winner   PlayerID  `json:"winner,omitempty"`
}

func (m *Match) Snapshot() MatchSnapshot {
	dx, dy := m.ball.Direction()
	return MatchSnapshot{
		ID:    m.ID.String(),
		Frame: m.frame,
		Ball: BallState{
			Cx:         m.ball.Cx(),
			Cy:         m.ball.Cy(),
			Speed:      m.ball.Speed(),
			DirectionX: dx,
			DirectionY: dy,
		},
		Paddles:  [2]Paddle{*m.paddles[0], *m.paddles[1]},
		Scores:   m.scores.Values(),
		Finished: m.finished,
		Winner:   m.winner,
	}
}
