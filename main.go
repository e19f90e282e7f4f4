package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/pongcore/bollywood"
	"github.com/lguibr/pongcore/game"
	"github.com/lguibr/pongcore/utils"
)

// listener forwards match notifications from the actor system to main.
type listener struct {
	out chan<- interface{}
}

func (l *listener) Receive(ctx bollywood.Context) {
	switch msg := ctx.Message().(type) {
	case game.MatchEvent, game.MatchOver:
		select {
		case l.out <- msg:
		default:
		}
	}
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	envFile := flag.String("env", ".env", "dotenv file with PONG_* overrides")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath, *envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}

	match, err := game.NewMatch(cfg, game.WithLogger(logger))
	if err != nil {
		logger.Error("failed to create match", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.MaxDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.MaxDuration)
		defer cancel()
	}

	engine := bollywood.NewEngine(logger)
	notifications := make(chan interface{}, 64)
	listenerPID := engine.Spawn(bollywood.NewProps(func() bollywood.Actor {
		return &listener{out: notifications}
	}))
	matchPID := engine.Spawn(bollywood.NewProps(game.NewMatchActorProducer(match, game.MatchActorConfig{
		Period:   cfg.TickPeriod,
		Listener: listenerPID,
		Logger:   logger,
	})))

	logger.Info("match started", "match", match.ID.String(), "period", cfg.TickPeriod, "winningScore", cfg.WinningScore)

run:
	for {
		select {
		case <-ctx.Done():
			logger.Info("stopping match", "reason", ctx.Err())
			break run

		case msg := <-notifications:
			switch msg := msg.(type) {
			case game.MatchEvent:
				logger.Info("match event",
					"kind", msg.Event.Kind.String(),
					"frame", msg.Event.Frame,
					"player", msg.Event.Player.String(),
					"score", msg.Event.Score,
				)
			case game.MatchOver:
				logger.Info("match over", "winner", msg.Snapshot.Winner.String(), "scores", msg.Snapshot.Scores)
				break run
			}
		}
	}

	if reply, err := engine.Ask(matchPID, game.SnapshotRequest{}, time.Second); err == nil {
		if snapshot, ok := reply.(game.MatchSnapshot); ok {
			logger.Info("final score",
				"player1", snapshot.Scores[0],
				"player2", snapshot.Scores[1],
				"frames", snapshot.Frame,
			)
		}
	} else {
		logger.Warn("final snapshot unavailable", "error", err)
	}

	engine.Shutdown(2 * time.Second)
}
