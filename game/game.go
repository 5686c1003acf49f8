// Package game is the Breakout simulation: a paddle, a ball, a grid of
// bricks and the power-ups they drop, advanced once per frame by a
// variable time step.
//
// The driver owns a *Game and, every frame, feeds it an Input snapshot
// (ProcessInput), advances it (Update) and lets it issue draw requests
// (Render). Sound, screen effects and particles are reported to the
// collaborators passed as options.
package game

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/drpaneas/brkout/effects"
	"github.com/drpaneas/brkout/geom"
	"github.com/drpaneas/brkout/render"
)

const particlePool = 500

// Game holds all state of a running session.
type Game struct {
	State  State
	Level  int
	Lives  int
	Levels []Level
	Paddle Paddle
	Ball   Ball

	PowerUps []PowerUp

	cfg       Config
	source    LevelSource
	pristine  []Level
	latch     keyLatch
	log       *zap.Logger
	audio     Audio
	effects   PostEffects
	particles ParticleEmitter
	rng       *rand.Rand
}

// New validates cfg, loads every level from source and returns a game
// waiting in the menu.
func New(cfg Config, source LevelSource, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if source == nil || source.Levels() == 0 {
		return nil, ErrNoLevels
	}
	if cfg.StartLevel >= source.Levels() {
		return nil, errLevelRange(cfg.StartLevel, source.Levels())
	}

	g := &Game{
		State:  StateMenu,
		Level:  cfg.StartLevel,
		Lives:  cfg.Lives,
		cfg:    cfg,
		source: source,
		log:    zap.NewNop(),
		audio:  silence{},
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.effects == nil {
		g.effects = effects.NewPostFX()
	}
	if g.particles == nil {
		g.particles = effects.NewParticles(particlePool, g.rng)
	}

	for id := 0; id < source.Levels(); id++ {
		bricks, err := source.Load(id, cfg.Width, cfg.Height/2)
		if err == nil {
			err = checkBricks(bricks)
		}
		if err != nil {
			return nil, fmt.Errorf("loading level %d: %w", id, err)
		}
		g.Levels = append(g.Levels, Level{Bricks: bricks})
	}
	g.pristine = make([]Level, len(g.Levels))
	for i := range g.Levels {
		g.pristine[i] = g.Levels[i].clone()
	}

	g.ResetPlayer()
	g.log.Info("Game initialized",
		zap.Int("levels", len(g.Levels)),
		zap.Float32("width", cfg.Width),
		zap.Float32("height", cfg.Height))
	return g, nil
}

// Config returns the parameters the game was created with.
func (g *Game) Config() Config { return g.cfg }

// Effects returns the screen effect state for the renderer.
func (g *Game) Effects() PostEffects { return g.effects }

// CurrentLevel returns the level in play.
func (g *Game) CurrentLevel() *Level { return &g.Levels[g.Level] }

func (g *Game) setState(s State) {
	if g.State == s {
		return
	}
	g.log.Info("State change", zap.Stringer("from", g.State), zap.Stringer("to", s), zap.Int("level", g.Level))
	g.State = s
}

// ProcessInput applies the input snapshot for this frame.
func (g *Game) ProcessInput(dt float32, in Input) {
	g.latch.refresh(in)

	switch g.State {
	case StateMenu:
		if g.latch.fire(in, KeyConfirm) {
			g.setState(StateActive)
			return
		}
		n := len(g.Levels)
		if g.latch.fire(in, KeyLevelUp) {
			g.Level = (g.Level + 1) % n
			g.log.Debug("Level selected", zap.Int("level", g.Level))
		}
		if g.latch.fire(in, KeyLevelDown) {
			g.Level = (g.Level - 1 + n) % n
			g.log.Debug("Level selected", zap.Int("level", g.Level))
		}

	case StateWin:
		if g.latch.fire(in, KeyConfirm) {
			g.effects.SetChaos(false)
			g.setState(StateMenu)
		}

	case StateActive:
		var dx float32
		step := g.cfg.PlayerVelocity * dt
		if in.Held(KeyLeft) {
			dx -= step
		}
		if in.Held(KeyRight) {
			dx += step
		}
		g.movePaddle(dx)
		if in.Held(KeyLaunch) {
			g.Ball.Stuck = false
		}
	}
}

// movePaddle shifts the paddle inside the field, carrying a stuck ball.
func (g *Game) movePaddle(dx float32) {
	old := g.Paddle.Position.X()
	x := mgl32.Clamp(old+dx, 0, max(g.cfg.Width-g.Paddle.Size.X(), 0))
	g.Paddle.Position[0] = x
	if g.Ball.Stuck {
		g.Ball.Position[0] += x - old
	}
}

// Update advances the simulation by dt seconds.
func (g *Game) Update(dt float32) {
	g.Ball.Move(dt, g.cfg.Width)
	g.DoCollisions()

	g.particles.Update(dt, g.Ball.Position, g.Ball.Velocity, trailParticles,
		mgl32.Vec2{g.Ball.Radius / 2, g.Ball.Radius / 2})
	g.UpdatePowerUps(dt)
	g.effects.Update(dt)

	if g.Ball.Position.Y() >= g.cfg.Height {
		g.ballLost()
	}

	if g.State == StateActive && g.CurrentLevel().IsCompleted() {
		g.ResetLevel()
		g.ResetPlayer()
		g.effects.SetChaos(true)
		g.setState(StateWin)
	}
}

// checkBricks rejects bricks a misbehaving level source built with
// negative or NaN sizes.
func checkBricks(bricks []Brick) error {
	for i := range bricks {
		if _, err := geom.NewBox(bricks[i].Position, bricks[i].Size); err != nil {
			return fmt.Errorf("brick %d: %w", i, err)
		}
	}
	return nil
}

func (g *Game) ballLost() {
	if !g.cfg.TrackLives {
		g.ResetLevel()
		g.ResetPlayer()
		return
	}
	g.Lives--
	g.log.Info("Ball lost", zap.Int("lives", g.Lives))
	if g.Lives <= 0 {
		g.ResetLevel()
		g.setState(StateMenu)
	}
	g.ResetPlayer()
}

// Tick is one full frame: input, then simulation.
func (g *Game) Tick(dt float32, in Input) {
	g.ProcessInput(dt, in)
	g.Update(dt)
}

// Restart abandons the current round and returns to the menu with a fresh
// level and player.
func (g *Game) Restart() {
	g.ResetLevel()
	g.ResetPlayer()
	g.setState(StateMenu)
}

// ResetLevel reloads the bricks of the current level and restores the
// lives counter.
func (g *Game) ResetLevel() {
	bricks, err := g.source.Load(g.Level, g.cfg.Width, g.cfg.Height/2)
	if err == nil {
		err = checkBricks(bricks)
	}
	if err != nil {
		g.log.Warn("Reloading level failed, using initial layout", zap.Int("level", g.Level), zap.Error(err))
		g.Levels[g.Level] = g.pristine[g.Level].clone()
	} else {
		g.Levels[g.Level] = Level{Bricks: bricks}
	}
	g.Lives = g.cfg.Lives
	g.log.Debug("Level reset", zap.Int("level", g.Level))
}

// ResetPlayer puts the paddle back at the bottom center, sticks a fresh
// ball on top of it and cancels active power-up effects.
func (g *Game) ResetPlayer() {
	size := g.cfg.PlayerSize
	pos := mgl32.Vec2{g.cfg.Width/2 - size.X()/2, g.cfg.Height - size.Y()}
	g.Paddle = Paddle{Object{
		Position: pos,
		Size:     size,
		Color:    white,
		Texture:  render.TexPaddle,
	}}

	r := g.cfg.BallRadius
	ballPos := pos.Add(mgl32.Vec2{size.X()/2 - r, -r * 2})
	if g.Ball.Radius == 0 {
		g.Ball = NewBall(ballPos, r, g.cfg.BallVelocity)
	} else {
		g.Ball.Reset(ballPos, g.cfg.BallVelocity)
	}

	g.PowerUps = g.PowerUps[:0]
	g.effects.SetChaos(false)
	g.effects.SetConfuse(false)
}
