// File: utils/config.go
package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// ReferenceFrame is the frame duration the per-tick physics constants were tuned for.
const ReferenceFrame = time.Second / 60

// Config holds all configurable game parameters.
type Config struct {
	// Timing
	GameTickPeriod time.Duration `json:"gameTickPeriod" yaml:"gameTickPeriod"` // Time between simulation steps on the server
	TimeScaled     bool          `json:"timeScaled" yaml:"timeScaled"`         // Scale gravity/friction/displacement by dt instead of per-frame increments

	// Playfield
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`

	// Ball Physics & Properties
	Gravity          float64 `json:"gravity" yaml:"gravity"`                   // Added to vy every frame
	Friction         float64 `json:"friction" yaml:"friction"`                 // Multiplies vx every frame
	VerticalDrag     float64 `json:"verticalDrag" yaml:"verticalDrag"`         // Multiplies vy every frame
	BallRadius       float64 `json:"ballRadius" yaml:"ballRadius"`             // Constant for the whole game
	TrailLength      int     `json:"trailLength" yaml:"trailLength"`           // Positions kept for the motion streak
	LostMargin       float64 `json:"lostMargin" yaml:"lostMargin"`             // Ball is lost below Height+LostMargin
	WallDamping      float64 `json:"wallDamping" yaml:"wallDamping"`           // Velocity kept after a side/top wall bounce
	DividerDamping   float64 `json:"dividerDamping" yaml:"dividerDamping"`     // Velocity kept after a divider bounce
	DividerHalfWidth float64 `json:"dividerHalfWidth" yaml:"dividerHalfWidth"` // Divider spans Width/2 ± this
	DividerDepth     float64 `json:"dividerDepth" yaml:"dividerDepth"`         // Divider top sits at Height-DividerDepth
	LaunchX          float64 `json:"launchX" yaml:"launchX"`                   // Launch tray position
	LaunchY          float64 `json:"launchY" yaml:"launchY"`

	// Flippers
	FlipperLength             float64 `json:"flipperLength" yaml:"flipperLength"`
	FlipperWidth              float64 `json:"flipperWidth" yaml:"flipperWidth"`
	FlipperResponse           float64 `json:"flipperResponse" yaml:"flipperResponse"`                     // Fraction of the remaining angle covered each frame
	FlipperBaseForce          float64 `json:"flipperBaseForce" yaml:"flipperBaseForce"`                   // Bounce speed of a resting flipper
	FlipperSpeedForce         float64 `json:"flipperSpeedForce" yaml:"flipperSpeedForce"`                 // Bounce speed added per radian/frame of flipper speed
	FlipperScoreCooldownTicks int     `json:"flipperScoreCooldownTicks" yaml:"flipperScoreCooldownTicks"` // 0 scores every frame of contact

	// Bumpers
	BumperRadius      float64       `json:"bumperRadius" yaml:"bumperRadius"`
	BumperPulseScale  float64       `json:"bumperPulseScale" yaml:"bumperPulseScale"`
	BumperPulseWindow time.Duration `json:"bumperPulseWindow" yaml:"bumperPulseWindow"`
	BumperKick        float64       `json:"bumperKick" yaml:"bumperKick"` // Speed given to the ball on contact

	// Launch
	MinLaunchPower float64 `json:"minLaunchPower" yaml:"minLaunchPower"`
	MaxLaunchPower float64 `json:"maxLaunchPower" yaml:"maxLaunchPower"`
	ChargeRate     float64 `json:"chargeRate" yaml:"chargeRate"` // Power gained per millisecond of charge

	// Score & Player
	BumperPoints  int `json:"bumperPoints" yaml:"bumperPoints"`
	FlipperPoints int `json:"flipperPoints" yaml:"flipperPoints"`
	InitialLives  int `json:"initialLives" yaml:"initialLives"`

	// High scores
	HighScoreLimit int `json:"highScoreLimit" yaml:"highScoreLimit"`
}

// DefaultConfig returns a Config struct with default values.
func DefaultConfig() Config {
	width := 600.0
	height := 800.0

	return Config{
		// Timing
		GameTickPeriod: 16 * time.Millisecond,
		TimeScaled:     false,

		// Playfield
		Width:  width,
		Height: height,

		// Ball Physics & Properties
		Gravity:          0.3,
		Friction:         0.99,
		VerticalDrag:     0.999,
		BallRadius:       8,
		TrailLength:      10,
		LostMargin:       50,
		WallDamping:      0.8,
		DividerDamping:   0.6,
		DividerHalfWidth: 20,
		DividerDepth:     40,
		LaunchX:          width - 50,
		LaunchY:          height - 100,

		// Flippers
		FlipperLength:             80,
		FlipperWidth:              8,
		FlipperResponse:           0.3,
		FlipperBaseForce:          8,
		FlipperSpeedForce:         25,
		FlipperScoreCooldownTicks: 0,

		// Bumpers
		BumperRadius:      30,
		BumperPulseScale:  1.2,
		BumperPulseWindow: 200 * time.Millisecond,
		BumperKick:        8,

		// Launch
		MinLaunchPower: 0.3,
		MaxLaunchPower: 1.5,
		ChargeRate:     0.002,

		// Score & Player
		BumperPoints:  100,
		FlipperPoints: 10,
		InitialLives:  3,

		HighScoreLimit: 10,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys missing from the file keep
// their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case c.BallRadius <= 0:
		return fmt.Errorf("%w: ballRadius must be positive", ErrInvalidConfig)
	case c.TrailLength < 0:
		return fmt.Errorf("%w: trailLength cannot be negative", ErrInvalidConfig)
	case c.FlipperResponse <= 0 || c.FlipperResponse > 1:
		return fmt.Errorf("%w: flipperResponse must be in (0,1], got %v", ErrInvalidConfig, c.FlipperResponse)
	case c.BumperRadius <= 0 || c.BumperPulseScale < 1:
		return fmt.Errorf("%w: bumper radius must be positive and pulse scale >= 1", ErrInvalidConfig)
	case c.MinLaunchPower <= 0 || c.MinLaunchPower > c.MaxLaunchPower:
		return fmt.Errorf("%w: launch power range [%v,%v]", ErrInvalidConfig, c.MinLaunchPower, c.MaxLaunchPower)
	case c.ChargeRate < 0:
		return fmt.Errorf("%w: chargeRate cannot be negative", ErrInvalidConfig)
	case c.InitialLives <= 0:
		return fmt.Errorf("%w: initialLives must be positive", ErrInvalidConfig)
	case c.GameTickPeriod <= 0:
		return fmt.Errorf("%w: gameTickPeriod must be positive", ErrInvalidConfig)
	case c.FlipperScoreCooldownTicks < 0:
		return fmt.Errorf("%w: flipperScoreCooldownTicks cannot be negative", ErrInvalidConfig)
	}
	return nil
}
