package bollywood

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrTimeout is returned by Ask when no reply arrives in time.
	ErrTimeout = errors.New("bollywood: ask timed out")
	// ErrActorNotFound is returned when the target PID is not registered.
	ErrActorNotFound = errors.New("bollywood: actor not found")
	// ErrEngineStopping is returned once Shutdown has begun.
	ErrEngineStopping = errors.New("bollywood: engine is stopping")
)

// Engine manages the lifecycle and message dispatching for actors.
type Engine struct {
	pidCounter uint64
	actors     map[string]*process
	mu         sync.RWMutex
	stopping   atomic.Bool
	log        *slog.Logger
}

// NewEngine creates a new actor engine. A nil logger falls back to slog.Default().
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		actors: make(map[string]*process),
		log:    logger.With("component", "bollywood"),
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn starts a new actor and returns its PID, or nil if the engine is stopping.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		e.log.Warn("engine is stopping, cannot spawn new actors")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()

	proc.deliver(&messageEnvelope{Message: Started{}})

	return pid
}

// Send delivers a message to the actor identified by pid. Messages to unknown
// actors are dropped.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if pid == nil {
		return
	}
	if e.stopping.Load() && !isSystemMessage(message) {
		return
	}

	proc, ok := e.lookup(pid)
	if !ok {
		e.log.Debug("actor not found, dropping message", "pid", pid.ID, "type", fmt.Sprintf("%T", message))
		return
	}
	proc.deliver(&messageEnvelope{Sender: sender, Message: message})
}

// Ask sends a message and waits for the actor to answer it with Context.Reply.
func (e *Engine) Ask(pid *PID, message interface{}, timeout time.Duration) (interface{}, error) {
	if pid == nil {
		return nil, ErrActorNotFound
	}
	if e.stopping.Load() {
		return nil, ErrEngineStopping
	}

	proc, ok := e.lookup(pid)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrActorNotFound, pid.ID)
	}

	replyCh := make(chan interface{}, 1)
	if !proc.deliver(&messageEnvelope{Message: message, replyCh: replyCh}) {
		return nil, fmt.Errorf("ask %s: mailbox unavailable", pid.ID)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case reply := <-replyCh:
		return reply, nil
	case <-timer.C:
		return nil, ErrTimeout
	}
}

// Stop asks an actor to shut down. The actor receives Stopping, then Stopped.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	proc, ok := e.lookup(pid)
	if !ok {
		return
	}
	proc.deliver(&messageEnvelope{Message: Stopping{}})
	proc.signalStop()
}

// Running reports whether pid is still registered.
func (e *Engine) Running(pid *PID) bool {
	if pid == nil {
		return false
	}
	_, ok := e.lookup(pid)
	return ok
}

func (e *Engine) lookup(pid *PID) (*process, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	proc, ok := e.actors[pid.ID]
	return proc, ok
}

func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops all actors and waits up to timeout for them to exit.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		e.log.Info("engine already shutting down")
		return
	}

	e.mu.RLock()
	pids := make([]*PID, 0, len(e.actors))
	for _, proc := range e.actors {
		pids = append(pids, proc.pid)
	}
	e.mu.RUnlock()

	e.log.Info("engine shutdown initiated", "actors", len(pids))
	for _, pid := range pids {
		e.Stop(pid)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		e.mu.RLock()
		remaining := len(e.actors)
		e.mu.RUnlock()
		if remaining == 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	e.mu.Lock()
	if remaining := len(e.actors); remaining > 0 {
		e.log.Warn("engine shutdown timeout", "remaining", remaining)
		e.actors = make(map[string]*process)
	}
	e.mu.Unlock()

	e.log.Info("engine shutdown complete")
}
