// config.go - Simulation parameters and their validation
package game

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/drpaneas/brkout/geom"
)

var (
	ErrInvalidConfig = errors.New("invalid game config")
	ErrNoLevels      = errors.New("level source has no levels")
	ErrLevelRange    = errors.New("level out of range")
)

func errLevelRange(id, n int) error {
	return fmt.Errorf("level %d of %d: %w", id, n, ErrLevelRange)
}

// Config holds the simulation parameters.
type Config struct {
	Width, Height  float32
	PlayerSize     mgl32.Vec2
	PlayerVelocity float32
	BallRadius     float32
	BallVelocity   mgl32.Vec2
	Lives          int
	TrackLives     bool // lose lives and drop to the menu at zero
	PowerUps       bool // breakable bricks may drop power-ups
	StartLevel     int
	Seed           int64
}

func DefaultConfig() Config {
	return Config{
		Width:          DefaultWidth,
		Height:         DefaultHeight,
		PlayerSize:     DefaultPlayerSize,
		PlayerVelocity: DefaultPlayerVelocity,
		BallRadius:     DefaultBallRadius,
		BallVelocity:   DefaultBallVelocity,
		Lives:          DefaultLives,
		PowerUps:       true,
	}
}

// Validate rejects geometry the simulation cannot work with.
func (c Config) Validate() error {
	if _, err := geom.NewCircle(mgl32.Vec2{}, c.BallRadius, c.BallVelocity); err != nil {
		return fmt.Errorf("ball: %w: %w", ErrInvalidConfig, err)
	}
	switch {
	case !(c.Width > 0) || !(c.Height > 0):
		return fmt.Errorf("field %gx%g: %w", c.Width, c.Height, ErrInvalidConfig)
	case !(c.PlayerSize.X() > 0) || !(c.PlayerSize.Y() > 0):
		return fmt.Errorf("player size %v: %w", c.PlayerSize, ErrInvalidConfig)
	case c.PlayerSize.X() > c.Width:
		return fmt.Errorf("player wider than field: %w", ErrInvalidConfig)
	case c.PlayerVelocity < 0:
		return fmt.Errorf("player velocity %g: %w", c.PlayerVelocity, ErrInvalidConfig)
	case c.BallRadius*2 > c.Width:
		return fmt.Errorf("ball wider than field: %w", ErrInvalidConfig)
	case c.BallVelocity.Len() == 0:
		return fmt.Errorf("ball velocity is zero: %w", ErrInvalidConfig)
	case c.Lives < 1:
		return fmt.Errorf("lives %d: %w", c.Lives, ErrInvalidConfig)
	case c.StartLevel < 0:
		return fmt.Errorf("start level %d: %w", c.StartLevel, ErrInvalidConfig)
	}
	return nil
}
