// File: game/session_actor.go
package game

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/lguibr/flipper/bollywood"
	"github.com/lguibr/flipper/utils"
)

// ScoreRecorder persists final scores when a game ends.
type ScoreRecorder interface {
	Record(scores [Players]int, at time.Time) error
}

// SessionOptions configures a SessionActor.
type SessionOptions struct {
	Config      utils.Config
	Clock       utils.Clock
	Seed        int64
	Broadcaster *bollywood.PID
	Cache       *StateCache
	Recorder    ScoreRecorder
	// ManualTicks disables the internal ticker; *Tick must then be sent by the caller.
	ManualTicks bool
}

// SessionActor owns one hot-seat table. Every mutation of the simulation happens
// inside Receive, so ticks and player inputs are applied in mailbox order.
type SessionActor struct {
	opts         SessionOptions
	engine       *bollywood.Engine
	clock        utils.Clock
	sim          *Simulation
	events       *EventCollector
	selfPID      *bollywood.PID
	ticker       *time.Ticker
	stopTickerCh chan struct{}
	lastTick     time.Time
}

// NewSessionActorProducer creates a producer for the SessionActor.
func NewSessionActorProducer(engine *bollywood.Engine, opts SessionOptions) bollywood.Producer {
	return func() bollywood.Actor {
		clock := opts.Clock
		if clock == nil {
			clock = utils.SystemClock()
		}
		events := &EventCollector{}
		return &SessionActor{
			opts:         opts,
			engine:       engine,
			clock:        clock,
			events:       events,
			sim:          NewSimulation(opts.Config, clock, utils.NewRandom(opts.Seed), events),
			stopTickerCh: make(chan struct{}),
		}
	}
}

func (a *SessionActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in SessionActor %s Receive: %v\nStack trace:\n%s\n", a.selfPID, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch m := ctx.Message().(type) {
	case bollywood.Started:
		fmt.Printf("SessionActor %s: Started, new game.\n", a.selfPID)
		a.sim.Restart()
		a.lastTick = a.clock.Now()
		a.publish()
		if !a.opts.ManualTicks {
			a.ticker = time.NewTicker(a.opts.Config.GameTickPeriod)
			go a.runTickerLoop(a.ticker, a.selfPID)
		}

	case *Tick:
		now := a.clock.Now()
		dt := now.Sub(a.lastTick)
		a.lastTick = now
		if a.sim.Step(dt) {
			a.publish()
		}

	case FlipperInput:
		a.sim.SetFlipperActive(m.Side, m.Active)
		a.publish()

	case ChargeStart:
		a.sim.StartCharge()
		a.publish()

	case ChargeRelease:
		if power, ok := a.sim.ReleaseCharge(); ok {
			fmt.Printf("SessionActor %s: Ball launched with power %.2f.\n", a.selfPID, power)
		}
		a.publish()

	case LaunchRequest:
		if power := a.sim.RequestLaunch(m.Duration); power > 0 {
			fmt.Printf("SessionActor %s: Ball launched with power %.2f.\n", a.selfPID, power)
		}
		a.publish()

	case RestartCommand:
		fmt.Printf("SessionActor %s: Restarting game.\n", a.selfPID)
		a.sim.Restart()
		a.publish()

	case TogglePauseCommand:
		paused := a.sim.TogglePause()
		fmt.Printf("SessionActor %s: Paused=%t.\n", a.selfPID, paused)
		a.publish()

	case internalMutateTestMsg:
		if m.Mutate != nil {
			m.Mutate(a.sim)
		}
		a.publish()

	case bollywood.Stopping:
		fmt.Printf("SessionActor %s: Stopping.\n", a.selfPID)
		a.stopTicker()

	case bollywood.Stopped:

	default:
		fmt.Printf("SessionActor %s: Received unknown message type: %T\n", a.selfPID, m)
	}
}

// runTickerLoop sends Tick messages to the actor's own mailbox until stopped.
func (a *SessionActor) runTickerLoop(ticker *time.Ticker, self *bollywood.PID) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in SessionActor %s Ticker Loop: %v\nStack trace:\n%s\n", self, r, string(debug.Stack()))
		}
	}()

	tick := &Tick{}
	for {
		select {
		case <-a.stopTickerCh:
			return
		case <-ticker.C:
			a.engine.Send(self, tick, nil)
		}
	}
}

func (a *SessionActor) stopTicker() {
	if a.ticker != nil {
		a.ticker.Stop()
	}
	select {
	case <-a.stopTickerCh:
	default:
		close(a.stopTickerCh)
	}
}

// publish forwards pending events, records finished games and refreshes the
// snapshot seen by clients.
func (a *SessionActor) publish() {
	events := a.events.Drain()
	if len(events) > 0 && a.opts.Broadcaster != nil {
		a.engine.Send(a.opts.Broadcaster, BroadcastEventsCommand{Events: events}, a.selfPID)
	}
	for _, event := range events {
		if event.Kind == EventGameOver {
			a.handleGameOver(event.Scores)
		}
	}

	snap := a.sim.Snapshot()
	if a.opts.Cache != nil {
		a.opts.Cache.Store(snap)
	}
	if a.opts.Broadcaster != nil {
		a.engine.Send(a.opts.Broadcaster, BroadcastStateCommand{State: snap}, a.selfPID)
	}
}

func (a *SessionActor) handleGameOver(scores [Players]int) {
	winner := a.sim.State.Winner()
	fmt.Printf("SessionActor %s: Game over. Scores %v, winner %d.\n", a.selfPID, scores, winner)

	if a.opts.Recorder != nil {
		if err := a.opts.Recorder.Record(scores, a.clock.Now()); err != nil {
			fmt.Printf("ERROR: SessionActor %s: Failed to record high scores: %v\n", a.selfPID, err)
		}
	}
	if a.opts.Broadcaster != nil {
		a.engine.Send(a.opts.Broadcaster, GameOverMessage{
			MessageType: "gameOver",
			Scores:      scores,
			Winner:      winner,
		}, a.selfPID)
	}
}
