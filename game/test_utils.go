// File: game/test_utils.go
package game

import (
	"sync"
	"testing"
	"time"

	"github.com/lguibr/flipper/bollywood"
)

// MockActor records every message it receives.
type MockActor struct {
	mu       sync.Mutex
	Received []interface{}
}

func (a *MockActor) Receive(ctx bollywood.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Received = append(a.Received, ctx.Message())
}

func (a *MockActor) GetReceived() []interface{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	msgs := make([]interface{}, len(a.Received))
	copy(msgs, a.Received)
	return msgs
}

// waitForMessage polls the mock until match accepts a message or the timeout passes.
func waitForMessage(t *testing.T, mock *MockActor, timeout time.Duration, match func(msg interface{}) bool) (interface{}, bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		for _, msg := range mock.GetReceived() {
			if match(msg) {
				return msg, true
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	return nil, false
}

// fakeRecorder captures recorded game results.
type fakeRecorder struct {
	mu      sync.Mutex
	results [][Players]int
	err     error
}

func (r *fakeRecorder) Record(scores [Players]int, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, scores)
	return r.err
}

func (r *fakeRecorder) fail(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

func (r *fakeRecorder) Results() [][Players]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][Players]int(nil), r.results...)
}
