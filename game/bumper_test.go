// File: game/bumper_test.go
package game

import (
	"testing"
	"time"

	"github.com/lguibr/flipper/utils"
)

func TestNewBumpers_DefaultLayout(t *testing.T) {
	bumpers := NewBumpers(utils.DefaultConfig())
	if len(bumpers) != 5 {
		t.Fatalf("expected 5 bumpers, got %d", len(bumpers))
	}
	for index, bumper := range bumpers {
		if bumper.ID != index {
			t.Errorf("bumper %d has ID %d", index, bumper.ID)
		}
		if bumper.X != DefaultBumperPositions[index][0] || bumper.Y != DefaultBumperPositions[index][1] {
			t.Errorf("bumper %d at (%v, %v), want %v", index, bumper.X, bumper.Y, DefaultBumperPositions[index])
		}
		if bumper.Radius != 30 || bumper.BaseRadius != 30 {
			t.Errorf("bumper %d radius %v/%v, want 30", index, bumper.Radius, bumper.BaseRadius)
		}
	}
}

func TestBumper_PulseWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bumper := NewBumper(utils.DefaultConfig(), 0, 100, 100)

	bumper.Hit(start)
	if bumper.Radius != 36 || !bumper.IsPulsing() {
		t.Fatalf("after hit radius = %v pulsing = %t, want 36 true", bumper.Radius, bumper.IsPulsing())
	}

	testCases := []struct {
		elapsed time.Duration
		radius  float64
		pulsing bool
	}{
		{100 * time.Millisecond, 36, true},
		{200 * time.Millisecond, 36, true},
		{201 * time.Millisecond, 30, false},
		{500 * time.Millisecond, 30, false},
	}
	for _, tc := range testCases {
		bumper.Update(start.Add(tc.elapsed))
		if bumper.Radius != tc.radius || bumper.IsPulsing() != tc.pulsing {
			t.Errorf("at %v: radius = %v pulsing = %t, want %v %t", tc.elapsed, bumper.Radius, bumper.IsPulsing(), tc.radius, tc.pulsing)
		}
	}
}

func TestBumper_RepeatedHitExtendsWindow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bumper := NewBumper(utils.DefaultConfig(), 0, 100, 100)

	bumper.Hit(start)
	bumper.Hit(start.Add(150 * time.Millisecond))
	bumper.Update(start.Add(300 * time.Millisecond))
	if bumper.Radius != 36 {
		t.Errorf("second hit should restart the window, radius = %v", bumper.Radius)
	}
	if bumper.Radius < bumper.BaseRadius {
		t.Errorf("radius %v below base %v", bumper.Radius, bumper.BaseRadius)
	}
}

func TestBumper_UpdateWithoutHitIsNoop(t *testing.T) {
	bumper := NewBumper(utils.DefaultConfig(), 0, 100, 100)
	bumper.Update(time.Now())
	if bumper.Radius != bumper.BaseRadius || bumper.IsPulsing() {
		t.Errorf("idle bumper changed: radius %v pulsing %t", bumper.Radius, bumper.IsPulsing())
	}
}
