package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drpaneas/brkout/effects"
)

var testBrickSize = mgl32.Vec2{100, 20}

// freeBall places an unstuck ball with its center at c.
func freeBall(g *Game, c, v mgl32.Vec2) {
	r := g.Ball.Radius
	g.Ball.Stuck = false
	g.Ball.Position = c.Sub(mgl32.Vec2{r, r})
	g.Ball.Velocity = v
}

func TestPaddleBounceDeadCenter(t *testing.T) {
	g, audio := newTestGame(t, DefaultConfig())
	freeBall(g, mgl32.Vec2{400, 572.5}, mgl32.Vec2{100, 350})

	g.DoCollisions()

	assert.Equal(t, float32(0), g.Ball.Velocity.X())
	assert.Less(t, g.Ball.Velocity.Y(), float32(0))
	assert.Equal(t, []Sound{SoundPaddle}, audio.played)
}

func TestPaddleBouncePreservesSpeed(t *testing.T) {
	for _, x := range []float32{352, 380, 420, 449, 460} {
		g, _ := newTestGame(t, DefaultConfig())
		v := mgl32.Vec2{-120, 340}
		freeBall(g, mgl32.Vec2{x, 575}, v)

		g.DoCollisions()

		assert.InDelta(t, v.Len(), g.Ball.Velocity.Len(), 1e-3, "x=%v", x)
		assert.Less(t, g.Ball.Velocity.Y(), float32(0), "x=%v", x)
		if x > 400 {
			assert.Greater(t, g.Ball.Velocity.X(), float32(0), "right half deflects right")
		} else {
			assert.Less(t, g.Ball.Velocity.X(), float32(0), "left half deflects left")
		}
	}
}

func TestPaddleBounceUpwardBall(t *testing.T) {
	g, _ := newTestGame(t, DefaultConfig())
	freeBall(g, mgl32.Vec2{400, 575}, mgl32.Vec2{0, -350})

	g.DoCollisions()

	assert.InDelta(t, 0, g.Ball.Velocity.X(), 1e-4)
	assert.InDelta(t, -350, g.Ball.Velocity.Y(), 1e-3)
}

func TestPaddleStickyBall(t *testing.T) {
	g, _ := newTestGame(t, DefaultConfig())
	freeBall(g, mgl32.Vec2{400, 575}, mgl32.Vec2{0, 350})
	g.Ball.Sticky = true

	g.DoCollisions()
	assert.True(t, g.Ball.Stuck)

	// A stuck ball never bounces off the paddle.
	v := g.Ball.Velocity
	g.DoCollisions()
	assert.Equal(t, v, g.Ball.Velocity)
}

func TestBrickHitFromBelow(t *testing.T) {
	brick := NewBrick(mgl32.Vec2{300, 100}, testBrickSize, white, false)
	cfg := DefaultConfig()
	cfg.PowerUps = false
	g, audio := newTestGame(t, cfg, []Brick{brick})
	freeBall(g, mgl32.Vec2{350, 128}, mgl32.Vec2{0, -350})

	g.DoCollisions()

	assert.True(t, g.CurrentLevel().Bricks[0].Destroyed)
	assert.Equal(t, mgl32.Vec2{0, 350}, g.Ball.Velocity)
	assert.InDelta(t, 120, g.Ball.Position.Y(), 1e-4, "pushed out below the brick")
	assert.Equal(t, []Sound{SoundBleep}, audio.played)
	assert.Empty(t, g.PowerUps)
}

func TestBrickHitFromLeft(t *testing.T) {
	brick := NewBrick(mgl32.Vec2{300, 100}, testBrickSize, white, true)
	fx := effects.NewPostFX()
	audio := &recordAudio{}
	g, err := New(DefaultConfig(), StaticLevels([]Brick{brick}), WithAudio(audio), WithEffects(fx))
	require.NoError(t, err)
	freeBall(g, mgl32.Vec2{292, 110}, mgl32.Vec2{200, 0})

	g.DoCollisions()

	assert.False(t, g.CurrentLevel().Bricks[0].Destroyed, "solid bricks survive")
	assert.True(t, fx.Shaking())
	assert.Equal(t, mgl32.Vec2{-200, 0}, g.Ball.Velocity)
	assert.InDelta(t, 275, g.Ball.Position.X(), 1e-4)
	assert.Equal(t, []Sound{SoundSolid}, audio.played)
}

func TestDestroyedBrickIgnored(t *testing.T) {
	brick := NewBrick(mgl32.Vec2{300, 100}, testBrickSize, white, false)
	brick.Destroyed = true
	g, audio := newTestGame(t, DefaultConfig(), []Brick{brick})
	freeBall(g, mgl32.Vec2{350, 110}, mgl32.Vec2{30, -350})

	g.DoCollisions()
	g.DoCollisions()

	assert.Equal(t, mgl32.Vec2{30, -350}, g.Ball.Velocity)
	assert.Empty(t, audio.played)
}

func TestPassThrough(t *testing.T) {
	bricks := []Brick{
		NewBrick(mgl32.Vec2{300, 100}, testBrickSize, white, false),
		NewBrick(mgl32.Vec2{300, 300}, testBrickSize, white, true),
	}
	g, _ := newTestGame(t, DefaultConfig(), bricks)
	g.Ball.PassThrough = true

	freeBall(g, mgl32.Vec2{350, 128}, mgl32.Vec2{0, -350})
	g.DoCollisions()
	assert.True(t, g.CurrentLevel().Bricks[0].Destroyed)
	assert.Equal(t, mgl32.Vec2{0, -350}, g.Ball.Velocity, "no bounce off breakable bricks")

	freeBall(g, mgl32.Vec2{350, 328}, mgl32.Vec2{0, -350})
	g.DoCollisions()
	assert.Equal(t, mgl32.Vec2{0, 350}, g.Ball.Velocity, "solid bricks still bounce")
}
