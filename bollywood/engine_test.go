// File: bollywood/engine_test.go
package bollywood

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorderActor stores every message it receives.
type recorderActor struct {
	mu       sync.Mutex
	received []interface{}
	senders  []*PID
	panicOn  interface{}
}

func (a *recorderActor) Receive(ctx Context) {
	a.mu.Lock()
	a.received = append(a.received, ctx.Message())
	a.senders = append(a.senders, ctx.Sender())
	a.mu.Unlock()

	if a.panicOn != nil && ctx.Message() == a.panicOn {
		panic("boom")
	}
}

func (a *recorderActor) messages() []interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]interface{}(nil), a.received...)
}

func waitForRemoval(t *testing.T, engine *Engine, pid *PID) {
	t.Helper()
	assert.Eventually(t, func() bool { return !engine.IsAlive(pid) }, time.Second, 5*time.Millisecond)
}

func TestEngine_DeliversInOrder(t *testing.T) {
	engine := NewEngine()
	actor := &recorderActor{}
	pid := engine.Spawn(NewProps(func() Actor { return actor }))
	require.NotNil(t, pid)

	sender := &PID{ID: "outside"}
	for i := 0; i < 5; i++ {
		engine.Send(pid, i, sender)
	}

	assert.Eventually(t, func() bool { return len(actor.messages()) == 6 }, time.Second, 5*time.Millisecond)
	received := actor.messages()
	assert.Equal(t, Started{}, received[0])
	assert.Equal(t, []interface{}{0, 1, 2, 3, 4}, received[1:])

	actor.mu.Lock()
	assert.Nil(t, actor.senders[0])
	assert.Equal(t, sender, actor.senders[1])
	actor.mu.Unlock()
}

func TestEngine_StopDrainsQueueThenStops(t *testing.T) {
	engine := NewEngine()
	actor := &recorderActor{}
	pid := engine.Spawn(NewProps(func() Actor { return actor }))

	engine.Send(pid, "last", nil)
	engine.Stop(pid)
	waitForRemoval(t, engine, pid)

	received := actor.messages()
	require.Len(t, received, 4)
	assert.Equal(t, []interface{}{Started{}, "last", Stopping{}, Stopped{}}, received)

	engine.Send(pid, "dropped", nil)
	assert.Len(t, actor.messages(), 4)
}

func TestEngine_PanicStopsActor(t *testing.T) {
	engine := NewEngine()
	actor := &recorderActor{panicOn: "explode"}
	pid := engine.Spawn(NewProps(func() Actor { return actor }))

	engine.Send(pid, "explode", nil)
	waitForRemoval(t, engine, pid)

	received := actor.messages()
	assert.Equal(t, Stopped{}, received[len(received)-1])
}

func TestEngine_NilProducerResult(t *testing.T) {
	engine := NewEngine()
	pid := engine.Spawn(NewProps(func() Actor { return nil }))
	waitForRemoval(t, engine, pid)
}

func TestEngine_Shutdown(t *testing.T) {
	engine := NewEngine()
	actors := make([]*recorderActor, 3)
	pids := make([]*PID, 3)
	for i := range actors {
		actor := &recorderActor{}
		actors[i] = actor
		pids[i] = engine.Spawn(NewProps(func() Actor { return actor }))
	}

	engine.Shutdown(time.Second)

	for i, pid := range pids {
		assert.False(t, engine.IsAlive(pid))
		received := actors[i].messages()
		require.NotEmpty(t, received)
		assert.Equal(t, Stopped{}, received[len(received)-1])
	}
	assert.Nil(t, engine.Spawn(NewProps(func() Actor { return &recorderActor{} })), "no spawning after shutdown")
}

func TestProps(t *testing.T) {
	assert.Panics(t, func() { NewProps(nil) })
	props := NewProps(func() Actor { return &recorderActor{} }).WithMailboxSize(4)
	assert.Equal(t, 4, props.mailboxSize)
	assert.Equal(t, 4, props.WithMailboxSize(0).mailboxSize)
}

func TestPID_String(t *testing.T) {
	assert.Equal(t, "actor-7", (&PID{ID: "actor-7"}).String())
	var pid *PID
	assert.Equal(t, "<nil>", pid.String())
}
