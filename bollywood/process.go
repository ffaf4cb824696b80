// File: bollywood/process.go
package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the goroutine and mailbox behind a PID.
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
	size := props.mailboxSize
	if size <= 0 {
		size = defaultMailboxSize
	}
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, size),
		stopCh:  make(chan struct{}),
	}
}

// sendMessage never blocks. It reports false when the message was dropped.
func (p *process) sendMessage(message interface{}, sender *PID) bool {
	if p.stopped.Load() {
		return false
	}
	select {
	case p.mailbox <- &messageEnvelope{Sender: sender, Message: message}:
		return true
	default:
		fmt.Printf("Actor %s mailbox full, dropping %T\n", p.pid.ID, message)
		return false
	}
}

func (p *process) requestStop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
}

func (p *process) run() {
	defer p.engine.remove(p.pid)
	defer func() {
		p.stopped.Store(true)
		p.requestStop()
		if p.actor != nil {
			p.invokeReceive(Stopping{}, nil)
			p.invokeReceive(Stopped{}, nil)
		}
	}()

	if !p.produce() {
		return
	}
	if !p.invokeReceive(Started{}, nil) {
		return
	}

	for {
		select {
		case <-p.stopCh:
			return
		case envelope := <-p.mailbox:
			if _, ok := envelope.Message.(Stopping); ok {
				return
			}
			if !p.invokeReceive(envelope.Message, envelope.Sender) {
				return
			}
		}
	}
}

func (p *process) produce() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Actor %s producer panicked: %v\n", p.pid.ID, r)
			p.actor = nil
			ok = false
		}
	}()
	p.actor = p.props.Produce()
	if p.actor == nil {
		fmt.Printf("Actor %s producer returned nil actor\n", p.pid.ID)
		return false
	}
	return true
}

// invokeReceive reports false when the actor panicked. A panicking actor is stopped.
func (p *process) invokeReceive(msg interface{}, sender *PID) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Actor %s panicked during Receive(%T): %v\nStack trace:\n%s\n", p.pid.ID, msg, r, string(debug.Stack()))
			ok = false
		}
	}()
	p.actor.Receive(&context{
		engine:  p.engine,
		self:    p.pid,
		sender:  sender,
		message: msg,
	})
	return true
}
