package bollywood

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ping struct{ N int }

type recordingActor struct {
	mu       sync.Mutex
	received []interface{}
	stopped  chan struct{}
}

func newRecordingActor() *recordingActor {
	return &recordingActor{stopped: make(chan struct{})}
}

func (a *recordingActor) Receive(ctx Context) {
	a.mu.Lock()
	a.received = append(a.received, ctx.Message())
	a.mu.Unlock()

	switch msg := ctx.Message().(type) {
	case ping:
		ctx.Reply(ping{N: msg.N + 1})
	case Stopped:
		close(a.stopped)
	case string:
		if msg == "boom" {
			panic("boom")
		}
	}
}

func (a *recordingActor) messages() []interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	msgs := make([]interface{}, len(a.received))
	copy(msgs, a.received)
	return msgs
}

func quietEngine() *Engine {
	return NewEngine(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestEngine_SpawnDeliversStartedFirst(t *testing.T) {
	engine := quietEngine()
	defer engine.Shutdown(time.Second)

	actor := newRecordingActor()
	pid := engine.Spawn(NewProps(func() Actor { return actor }))
	require.NotNil(t, pid)

	engine.Send(pid, "hello", nil)

	assert.Eventually(t, func() bool { return len(actor.messages()) >= 2 }, time.Second, 5*time.Millisecond)
	msgs := actor.messages()
	assert.Equal(t, Started{}, msgs[0])
	assert.Equal(t, "hello", msgs[1])
}

func TestEngine_Ask(t *testing.T) {
	engine := quietEngine()
	defer engine.Shutdown(time.Second)

	pid := engine.Spawn(NewProps(func() Actor { return newRecordingActor() }))

	reply, err := engine.Ask(pid, ping{N: 41}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, ping{N: 42}, reply)
}

func TestEngine_AskTimesOutWithoutReply(t *testing.T) {
	engine := quietEngine()
	defer engine.Shutdown(time.Second)

	pid := engine.Spawn(NewProps(func() Actor { return newRecordingActor() }))

	_, err := engine.Ask(pid, "no reply", 20*time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestEngine_AskUnknownActor(t *testing.T) {
	engine := quietEngine()
	defer engine.Shutdown(time.Second)

	_, err := engine.Ask(&PID{ID: "actor-404"}, ping{}, 10*time.Millisecond)
	assert.ErrorIs(t, err, ErrActorNotFound)
}

func TestEngine_StopDeliversStoppingAndStopped(t *testing.T) {
	engine := quietEngine()
	defer engine.Shutdown(time.Second)

	actor := newRecordingActor()
	pid := engine.Spawn(NewProps(func() Actor { return actor }))
	engine.Send(pid, "work", nil)
	engine.Stop(pid)

	select {
	case <-actor.stopped:
	case <-time.After(time.Second):
		t.Fatal("actor did not stop")
	}

	msgs := actor.messages()
	assert.Contains(t, msgs, Stopping{})
	assert.Equal(t, Stopped{}, msgs[len(msgs)-1])
	assert.Eventually(t, func() bool { return !engine.Running(pid) }, time.Second, 5*time.Millisecond)
}

func TestEngine_ReceivePanicIsRecovered(t *testing.T) {
	engine := quietEngine()
	defer engine.Shutdown(time.Second)

	pid := engine.Spawn(NewProps(func() Actor { return newRecordingActor() }))
	engine.Send(pid, "boom", nil)

	reply, err := engine.Ask(pid, ping{N: 1}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, ping{N: 2}, reply)
}

func TestEngine_ShutdownStopsEverything(t *testing.T) {
	engine := quietEngine()

	actors := []*recordingActor{newRecordingActor(), newRecordingActor(), newRecordingActor()}
	for _, a := range actors {
		a := a
		engine.Spawn(NewProps(func() Actor { return a }))
	}

	engine.Shutdown(time.Second)

	for i, a := range actors {
		select {
		case <-a.stopped:
		default:
			t.Errorf("actor %d was not stopped by Shutdown", i)
		}
	}
	assert.Nil(t, engine.Spawn(NewProps(func() Actor { return newRecordingActor() })))
}

func TestNewProps_NilProducerPanics(t *testing.T) {
	assert.Panics(t, func() { NewProps(nil) })
}
