// File: bollywood/engine.go
package bollywood

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Engine spawns actors and routes messages between them.
type Engine struct {
	pidCounter uint64
	actors     map[string]*process
	mu         sync.RWMutex
	stopping   atomic.Bool
}

func NewEngine() *Engine {
	return &Engine{
		actors: make(map[string]*process),
	}
}

func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.pidCounter, 1)
	return &PID{ID: fmt.Sprintf("actor-%d", id)}
}

// Spawn starts a new actor and returns its PID, or nil once the engine is shutting
// down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		fmt.Println("Engine is stopping, cannot spawn new actors")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()
	return pid
}

// Send queues a message for the actor. sender may be nil. Messages to unknown or
// stopped actors are dropped.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if pid == nil || e.stopping.Load() {
		return
	}

	proc, ok := e.lookup(pid)
	if !ok {
		fmt.Printf("Actor %s not found, dropping %T\n", pid.ID, message)
		return
	}
	proc.sendMessage(message, sender)
}

// Stop asks the actor to finish its queued messages and shut down.
func (e *Engine) Stop(pid *PID) {
	if pid == nil {
		return
	}
	proc, ok := e.lookup(pid)
	if !ok {
		return
	}
	if !proc.sendMessage(Stopping{}, nil) {
		proc.requestStop()
	}
}

// IsAlive reports whether the actor is still registered with the engine.
func (e *Engine) IsAlive(pid *PID) bool {
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

// Shutdown stops every actor and waits up to timeout for them to exit.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		fmt.Println("Engine already shutting down")
		return
	}

	e.mu.RLock()
	procs := make([]*process, 0, len(e.actors))
	for _, proc := range e.actors {
		procs = append(procs, proc)
	}
	e.mu.RUnlock()

	fmt.Printf("Engine shutdown: stopping %d actors...\n", len(procs))
	for _, proc := range procs {
		proc.requestStop()
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		e.mu.RLock()
		remaining := len(e.actors)
		e.mu.RUnlock()
		if remaining == 0 {
			fmt.Println("Engine shutdown complete.")
			return
		}
		time.Sleep(10 * time.Millisecond)
	}

	e.mu.Lock()
	fmt.Printf("Engine shutdown timeout: %d actors did not stop gracefully.\n", len(e.actors))
	e.actors = make(map[string]*process)
	e.mu.Unlock()
}
