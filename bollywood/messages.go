// File: bollywood/messages.go
package bollywood

// Started is the first message every actor receives.
type Started struct{}

// Stopping asks an actor to release its resources. Messages queued before it are
// still processed; nothing after it is.
type Stopping struct{}

// Stopped is the last message an actor receives.
type Stopped struct{}

type messageEnvelope struct {
	Sender  *PID
	Message interface{}
}
