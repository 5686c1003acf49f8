// Package config loads the brkout settings file.
//
// The file is TOML. Every key is optional; missing keys keep their default
// value and a missing file means all defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/drpaneas/brkout/game"
)

var (
	ErrUnknownKey = errors.New("unknown config key")
	ErrInvalid    = errors.New("invalid config")
)

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

type Game struct {
	Lives      int   `toml:"lives"`
	TrackLives bool  `toml:"track_lives"`
	StartLevel int   `toml:"start_level"`
	Seed       int64 `toml:"seed"`
	PowerUps   bool  `toml:"powerups"`
}

type Player struct {
	Width    float32 `toml:"width"`
	Height   float32 `toml:"height"`
	Velocity float32 `toml:"velocity"`
}

type Ball struct {
	Radius    float32 `toml:"radius"`
	VelocityX float32 `toml:"velocity_x"`
	VelocityY float32 `toml:"velocity_y"`
}

// Frame controls the game loop timing.
type Frame struct {
	TargetFPS int     `toml:"target_fps"` // 0 runs unlimited
	MaxDelta  float32 `toml:"max_delta"`  // seconds, 0 disables the clamp
}

type Log struct {
	Dev bool `toml:"dev"`
}

// Config is the whole settings file.
type Config struct {
	LevelsDir string `toml:"levels_dir"` // empty uses the built-in levels

	Window Window `toml:"window"`
	Game   Game   `toml:"game"`
	Player Player `toml:"player"`
	Ball   Ball   `toml:"ball"`
	Frame  Frame  `toml:"frame"`
	Log    Log    `toml:"log"`
}

func Default() Config {
	g := game.DefaultConfig()
	return Config{
		Window: Window{
			Width:  int(g.Width),
			Height: int(g.Height),
			Title:  "Breakout",
			VSync:  true,
		},
		Game: Game{
			Lives:    g.Lives,
			PowerUps: g.PowerUps,
			Seed:     1,
		},
		Player: Player{
			Width:    g.PlayerSize.X(),
			Height:   g.PlayerSize.Y(),
			Velocity: g.PlayerVelocity,
		},
		Ball: Ball{
			Radius:    g.BallRadius,
			VelocityX: g.BallVelocity.X(),
			VelocityY: g.BallVelocity.Y(),
		},
		Frame: Frame{
			TargetFPS: 60,
			MaxDelta:  0.05,
		},
	}
}

// Path returns the default location of the settings file.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "brkout.toml"
	}
	return filepath.Join(dir, "brkout", "config.toml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return c, fmt.Errorf("%s: %s: %w", path, strings.Join(keys, ", "), ErrUnknownKey)
	}
	return c, c.Validate()
}

// Save writes c to path, creating parent directories.
func Save(path string, c Config) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return toml.NewEncoder(f).Encode(c)
}

// Validate checks the driver settings and the game parameters.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalid)
	case c.Frame.TargetFPS < 0:
		return fmt.Errorf("target_fps %d: %w", c.Frame.TargetFPS, ErrInvalid)
	case c.Frame.MaxDelta < 0:
		return fmt.Errorf("max_delta %g: %w", c.Frame.MaxDelta, ErrInvalid)
	}
	if err := c.Simulation().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Simulation returns the game parameters.
func (c Config) Simulation() game.Config {
	return game.Config{
		Width:          float32(c.Window.Width),
		Height:         float32(c.Window.Height),
		PlayerSize:     mgl32.Vec2{c.Player.Width, c.Player.Height},
		PlayerVelocity: c.Player.Velocity,
		BallRadius:     c.Ball.Radius,
		BallVelocity:   mgl32.Vec2{c.Ball.VelocityX, c.Ball.VelocityY},
		Lives:          c.Game.Lives,
		TrackLives:     c.Game.TrackLives,
		PowerUps:       c.Game.PowerUps,
		StartLevel:     c.Game.StartLevel,
		Seed:           c.Game.Seed,
	}
}
