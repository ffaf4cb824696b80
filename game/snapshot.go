// File: game/snapshot.go
package game

import (
	"encoding/json"
	"fmt"
)

// Snapshot is a deep copy of the table for renderers and clients.
type Snapshot struct {
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	Ball       Ball      `json:"ball"`
	Flippers   []Flipper `json:"flippers"`
	Bumpers    []Bumper  `json:"bumpers"`
	State      GameState `json:"state"`
	PowerRatio float64   `json:"powerRatio"`
	Winner     int       `json:"winner"`
	Tick       uint64    `json:"tick"`
}

func (s *Simulation) Snapshot() Snapshot {
	ball := *s.Ball
	ball.Trail = append([]Point(nil), s.Ball.Trail...)

	flippers := make([]Flipper, 0, len(s.Flippers))
	for _, flipper := range s.Flippers {
		flippers = append(flippers, *flipper)
	}
	bumpers := make([]Bumper, 0, len(s.Bumpers))
	for _, bumper := range s.Bumpers {
		bumpers = append(bumpers, *bumper)
	}

	return Snapshot{
		Width:      s.cfg.Width,
		Height:     s.cfg.Height,
		Ball:       ball,
		Flippers:   flippers,
		Bumpers:    bumpers,
		State:      *s.State,
		PowerRatio: s.PowerRatio(),
		Winner:     s.State.Winner(),
		Tick:       s.tick,
	}
}

// ToJson marshals the snapshot, falling back to an empty object.
func (snap Snapshot) ToJson() []byte {
	data, err := json.Marshal(snap)
	if err != nil {
		fmt.Println("Error Marshaling the game snapshot:", err)
		return []byte("{}")
	}
	return data
}
