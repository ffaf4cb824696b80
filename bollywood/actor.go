// File: bollywood/actor.go
package bollywood

// Actor handles the messages delivered to its mailbox, one at a time.
type Actor interface {
	Receive(ctx Context)
}

// Producer builds a fresh actor instance when it is spawned.
type Producer func() Actor

// Props describes how to create an actor.
type Props struct {
	producer    Producer
	mailboxSize int
}

func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{producer: producer, mailboxSize: defaultMailboxSize}
}

// WithMailboxSize overrides the buffered mailbox capacity.
func (p *Props) WithMailboxSize(size int) *Props {
	if size > 0 {
		p.mailboxSize = size
	}
	return p
}

func (p *Props) Produce() Actor {
	return p.producer()
}
