// adapters.go - Collaborators the game notifies but does not own
package game

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/drpaneas/brkout/render"
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundBleep Sound = iota // breakable brick
	SoundSolid              // solid brick
	SoundPowerUp
	SoundPaddle
	NumSounds
)

func (s Sound) String() string {
	switch s {
	case SoundBleep:
		return "bleep"
	case SoundSolid:
		return "solid"
	case SoundPowerUp:
		return "powerup"
	case SoundPaddle:
		return "paddle"
	}
	return "unknown"
}

// Audio plays sound effects. Unknown sounds are ignored.
type Audio interface {
	Play(s Sound)
}

// PostEffects receives screen effect requests and keeps their state for the
// renderer.
type PostEffects interface {
	Shake(d float32)
	Update(dt float32)
	SetConfuse(on bool)
	Confused() bool
	SetChaos(on bool)
	Chaotic() bool
}

// ParticleEmitter trails particles behind a moving object.
type ParticleEmitter interface {
	Update(dt float32, pos, vel mgl32.Vec2, n int, offset mgl32.Vec2)
	Draw(r render.Renderer)
}

type silence struct{}

func (silence) Play(Sound) {}

// Option configures a Game.
type Option func(*Game)

func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

func WithAudio(a Audio) Option {
	return func(g *Game) {
		if a != nil {
			g.audio = a
		}
	}
}

func WithEffects(fx PostEffects) Option {
	return func(g *Game) {
		if fx != nil {
			g.effects = fx
		}
	}
}

func WithParticles(p ParticleEmitter) Option {
	return func(g *Game) {
		if p != nil {
			g.particles = p
		}
	}
}

// WithRand replaces the random source used for power-up drops.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}
