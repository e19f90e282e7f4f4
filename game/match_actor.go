// File: game/match_actor.go
package game

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lguibr/pongcore/bollywood"
)

// MatchActorConfig configures a MatchActor. A zero Period disables the
// ticker, leaving StepCommand as the only way to advance the match.
type MatchActorConfig struct {
	Period   time.Duration
	Listener *bollywood.PID
	Logger   *slog.Logger
}

// MatchActor owns a Match and is the only goroutine that touches it.
type MatchActor struct {
	match    *Match
	cfg      MatchActorConfig
	log      *slog.Logger
	ticker   *time.Ticker
	stopCh   chan struct{}
	lastTick time.Time
}

// NewMatchActorProducer creates a Producer for a MatchActor around match.
func NewMatchActorProducer(match *Match, cfg MatchActorConfig) bollywood.Producer {
	return func() bollywood.Actor {
		logger := cfg.Logger
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		return &MatchActor{
			match:  match,
			cfg:    cfg,
			log:    logger.With("actor", "match", "match", match.ID.String()),
			stopCh: make(chan struct{}),
		}
	}
}

func (a *MatchActor) Receive(ctx bollywood.Context) {
	switch msg := ctx.Message().(type) {
	case bollywood.Started:
		a.log.Info("MatchActor started", "pid", ctx.Self().String(), "period", a.cfg.Period)
		if a.cfg.Period > 0 {
			a.ticker = time.NewTicker(a.cfg.Period)
			a.lastTick = time.Now()
			go a.runTicker(ctx.Engine(), ctx.Self())
		}

	case matchTick:
		now := time.Now()
		elapsed := float64(now.Sub(a.lastTick)) / float64(time.Millisecond)
		a.lastTick = now
		a.step(ctx, elapsed)

	case StepCommand:
		a.step(ctx, msg.Elapsed)

	case MovePaddleCommand:
		a.match.MovePaddle(msg.Player, msg.Dy)

	case SnapshotRequest:
		ctx.Reply(a.match.Snapshot())

	case bollywood.Stopping:
		a.log.Info("MatchActor stopping", "frame", a.match.Frame())
		a.stopTicker()

	case bollywood.Stopped:
		a.log.Debug("MatchActor stopped")

	default:
		a.log.Warn("MatchActor received unknown message", "type", fmt.Sprintf("%T", msg))
	}
}

func (a *MatchActor) step(ctx bollywood.Context, elapsed float64) {
	if a.match.Finished() {
		return
	}

	for _, event := range a.match.Step(elapsed) {
		switch event.Kind {
		case EventPointScored, EventGameOver:
			a.notify(ctx, MatchEvent{MatchID: a.match.ID.String(), Event: event})
		}
	}

	if a.match.Finished() {
		a.stopTicker()
		a.notify(ctx, MatchOver{Snapshot: a.match.Snapshot()})
	}
}

func (a *MatchActor) notify(ctx bollywood.Context, message interface{}) {
	if a.cfg.Listener == nil {
		return
	}
	ctx.Engine().Send(a.cfg.Listener, message, ctx.Self())
}

func (a *MatchActor) stopTicker() {
	if a.ticker != nil {
		a.ticker.Stop()
	}
	select {
	case <-a.stopCh:
	default:
		close(a.stopCh)
	}
}

// runTicker sends a matchTick to the actor's own mailbox every period.
func (a *MatchActor) runTicker(engine *bollywood.Engine, self *bollywood.PID) {
	for {
		select {
		case <-a.stopCh:
			return
		case <-a.ticker.C:
			select {
			case <-a.stopCh:
				return
			default:
				engine.Send(self, matchTick{}, nil)
			}
		}
	}
}
