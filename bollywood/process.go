package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor: its mailbox and run loop.
type process struct {
	engine   *Engine
	pid      *PID
	props    *Props
	actor    Actor
	mailbox  chan *messageEnvelope
	stopCh   chan struct{}
	stopOnce sync.Once
	stopped  atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, props.mailboxSize),
		stopCh:  make(chan struct{}),
	}
}

// deliver enqueues an envelope without blocking. It reports false when the
// message was dropped.
func (p *process) deliver(envelope *messageEnvelope) bool {
	if p.stopped.Load() && !isSystemMessage(envelope.Message) {
		return false
	}
	select {
	case p.mailbox <- envelope:
		return true
	default:
		p.engine.log.Warn("mailbox full, dropping message", "pid", p.pid.ID, "type", fmt.Sprintf("%T", envelope.Message))
		return false
	}
}

func (p *process) signalStop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

func (p *process) run() {
	defer func() {
		p.stopped.Store(true)
		if p.actor != nil {
			p.invokeReceive(&messageEnvelope{Message: Stopped{}})
		}
		p.engine.remove(p.pid)
	}()

	defer func() {
		if r := recover(); r != nil {
			p.engine.log.Error("actor panicked", "pid", p.pid.ID, "panic", r, "stack", string(debug.Stack()))
			p.stopped.Store(true)
			p.signalStop()
		}
	}()

	p.actor = p.props.produce()
	if p.actor == nil {
		panic(fmt.Sprintf("actor %s producer returned nil actor", p.pid.ID))
	}

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) {
				p.invokeReceive(&messageEnvelope{Message: Stopping{}})
			}
			return

		case envelope := <-p.mailbox:
			switch envelope.Message.(type) {
			case Stopping:
				if p.stopped.CompareAndSwap(false, true) {
					p.invokeReceive(envelope)
				}
				p.signalStop()
			case Stopped:
				// delivered by the deferred cleanup only
			default:
				if p.stopped.Load() {
					continue
				}
				p.invokeReceive(envelope)
			}
		}
	}
}

// invokeReceive calls the actor's Receive, recovering from panics inside it.
func (p *process) invokeReceive(envelope *messageEnvelope) {
	ctx := &context{
		engine:  p.engine,
		self:    p.pid,
		sender:  envelope.Sender,
		message: envelope.Message,
		replyCh: envelope.replyCh,
	}

	defer func() {
		if r := recover(); r != nil {
			p.engine.log.Error("actor panicked during Receive",
				"pid", p.pid.ID,
				"type", fmt.Sprintf("%T", envelope.Message),
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()
	p.actor.Receive(ctx)
}
