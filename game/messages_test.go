// File: game/messages_test.go
package game

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lguibr/flipper/utils"
)

func TestParseInput(t *testing.T) {
	testCases := []struct {
		payload  string
		expected interface{}
	}{
		{`{"type":"flipper","side":"left","active":true}`, FlipperInput{Side: Left, Active: true}},
		{`{"type":"flipper","side":"ArrowRight"}`, FlipperInput{Side: Right, Active: false}},
		{`{"type":"charge"}`, ChargeStart{}},
		{`{"type":"release"}`, ChargeRelease{}},
		{`{"type":"launch","durationMs":450}`, LaunchRequest{Duration: 450 * time.Millisecond}},
		{`{"type":"restart"}`, RestartCommand{}},
		{`{"type":"pause"}`, TogglePauseCommand{}},
	}
	for _, tc := range testCases {
		msg, err := ParseInput([]byte(tc.payload))
		require.NoError(t, err, tc.payload)
		assert.Equal(t, tc.expected, msg, tc.payload)
	}
}

func TestParseInput_Errors(t *testing.T) {
	_, err := ParseInput([]byte(`{"type":"tilt"}`))
	assert.True(t, errors.Is(err, ErrUnknownInput))

	_, err = ParseInput([]byte(`{"type":"flipper","side":"up"}`))
	assert.True(t, errors.Is(err, ErrUnknownInput))

	_, err = ParseInput([]byte(`not json`))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnknownInput))
}

func TestStateCache(t *testing.T) {
	cache := NewStateCache()
	assert.JSONEq(t, `{}`, string(cache.Load()))

	sim := NewSimulation(utils.DefaultConfig(), utils.NewManualClock(testStart), utils.NewRandom(1), nil)
	cache.Store(sim.Snapshot())
	assert.Contains(t, string(cache.Load()), `"flippers"`)

	var empty StateCache
	assert.JSONEq(t, `{}`, string(empty.Load()))
}

func TestEvent_MarshalJSONWritesOnlyItsKind(t *testing.T) {
	testCases := []struct {
		event    Event
		expected string
	}{
		{Event{Kind: EventScoreChanged, Player: 2, Points: 100, Total: 300}, `{"kind":"scoreChanged","player":2,"points":100,"total":300}`},
		{Event{Kind: EventLifeLost, Player: 1, Remaining: 0}, `{"kind":"lifeLost","player":1,"remaining":0}`},
		{Event{Kind: EventGameOver, Scores: [Players]int{0, 0}}, `{"kind":"gameOver","scores":[0,0]}`},
		{Event{Kind: EventBumperHit, BumperID: 0}, `{"kind":"bumperHit","bumperId":0}`},
		{Event{Kind: EventFlipperBounce, Side: "left"}, `{"kind":"flipperBounce","side":"left"}`},
	}

	for _, tc := range testCases {
		t.Run(string(tc.event.Kind), func(t *testing.T) {
			data, err := json.Marshal(tc.event)
			require.NoError(t, err)
			assert.JSONEq(t, tc.expected, string(data))

			var decoded Event
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tc.event, decoded)
		})
	}
}
