// File: game/events.go
package game

import (
	"encoding/json"
	"errors"
)

// ErrUnknownInput is returned when a client command cannot be mapped to an input.
var ErrUnknownInput = errors.New("unknown input")

// Listener receives the simulation's notifications. Calls happen synchronously
// inside Step or an input method, on the goroutine that owns the simulation.
type Listener interface {
	ScoreChanged(player, points, total int)
	LifeLost(player, remaining int)
	GameOver(scores [Players]int)
	BumperHit(id int)
	FlipperBounce(side Side)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) ScoreChanged(player, points, total int) {}
func (NopListener) LifeLost(player, remaining int)         {}
func (NopListener) GameOver(scores [Players]int)           {}
func (NopListener) BumperHit(id int)                       {}
func (NopListener) FlipperBounce(side Side)                {}

type EventKind string

const (
	EventScoreChanged  EventKind = "scoreChanged"
	EventLifeLost      EventKind = "lifeLost"
	EventGameOver      EventKind = "gameOver"
	EventBumperHit     EventKind = "bumperHit"
	EventFlipperBounce EventKind = "flipperBounce"
)

// Event is the serializable form of a Listener call. Only the fields of its Kind
// are written on the wire.
type Event struct {
	Kind      EventKind    `json:"kind"`
	Player    int          `json:"player,omitempty"`
	Points    int          `json:"points,omitempty"`
	Total     int          `json:"total,omitempty"`
	Remaining int          `json:"remaining,omitempty"`
	Scores    [Players]int `json:"scores"`
	BumperID  int          `json:"bumperId,omitempty"`
	Side      string       `json:"side,omitempty"`
}

type eventWire struct {
	Kind      EventKind     `json:"kind"`
	Player    int           `json:"player,omitempty"`
	Points    int           `json:"points,omitempty"`
	Total     int           `json:"total,omitempty"`
	Remaining *int          `json:"remaining,omitempty"`
	Scores    *[Players]int `json:"scores,omitempty"`
	BumperID  *int          `json:"bumperId,omitempty"`
	Side      string        `json:"side,omitempty"`
}

func (e Event) MarshalJSON() ([]byte, error) {
	wire := eventWire{Kind: e.Kind}
	switch e.Kind {
	case EventScoreChanged:
		wire.Player, wire.Points, wire.Total = e.Player, e.Points, e.Total
	case EventLifeLost:
		wire.Player, wire.Remaining = e.Player, &e.Remaining
	case EventGameOver:
		wire.Scores = &e.Scores
	case EventBumperHit:
		wire.BumperID = &e.BumperID
	case EventFlipperBounce:
		wire.Side = e.Side
	}
	return json.Marshal(wire)
}

// EventCollector is a Listener that records events in order. Drain empties it.
type EventCollector struct {
	events []Event
}

func (c *EventCollector) ScoreChanged(player, points, total int) {
	c.events = append(c.events, Event{Kind: EventScoreChanged, Player: player, Points: points, Total: total})
}

func (c *EventCollector) LifeLost(player, remaining int) {
	c.events = append(c.events, Event{Kind: EventLifeLost, Player: player, Remaining: remaining})
}

func (c *EventCollector) GameOver(scores [Players]int) {
	c.events = append(c.events, Event{Kind: EventGameOver, Scores: scores})
}

func (c *EventCollector) BumperHit(id int) {
	c.events = append(c.events, Event{Kind: EventBumperHit, BumperID: id})
}

func (c *EventCollector) FlipperBounce(side Side) {
	c.events = append(c.events, Event{Kind: EventFlipperBounce, Side: side.String()})
}

func (c *EventCollector) Drain() []Event {
	events := c.events
	c.events = nil
	return events
}

// Listeners fans every event out to each listener in order.
type Listeners []Listener

func (l Listeners) ScoreChanged(player, points, total int) {
	for _, listener := range l {
		listener.ScoreChanged(player, points, total)
	}
}

func (l Listeners) LifeLost(player, remaining int) {
	for _, listener := range l {
		listener.LifeLost(player, remaining)
	}
}

func (l Listeners) GameOver(scores [Players]int) {
	for _, listener := range l {
		listener.GameOver(scores)
	}
}

func (l Listeners) BumperHit(id int) {
	for _, listener := range l {
		listener.BumperHit(id)
	}
}

func (l Listeners) FlipperBounce(side Side) {
	for _, listener := range l {
		listener.FlipperBounce(side)
	}
}
