// collisions.go - Ball against bricks and paddle, paddle against power-ups
package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/drpaneas/brkout/geom"
)

// DoCollisions resolves every contact of this frame.
func (g *Game) DoCollisions() {
	g.collideBricks()
	g.collidePowerUps()
	g.collidePaddle()
}

func (g *Game) collideBricks() {
	level := g.CurrentLevel()
	for i := range level.Bricks {
		brick := &level.Bricks[i]
		if brick.Destroyed {
			continue
		}
		c := geom.CircleBox(g.Ball.Circle(), brick.Box())
		if !c.Collided {
			continue
		}

		if !brick.Solid {
			brick.Destroyed = true
			if g.cfg.PowerUps {
				g.SpawnPowerUps(brick)
			}
			g.audio.Play(SoundBleep)
		} else {
			g.effects.Shake(ShakeDuration)
			g.audio.Play(SoundSolid)
		}

		if g.Ball.PassThrough && !brick.Solid {
			continue
		}
		g.resolve(c)
	}
}

// resolve bounces the ball off the face it hit and pushes it back out of
// the brick.
func (g *Game) resolve(c geom.Collision) {
	b := &g.Ball
	if c.Dir.Horizontal() {
		b.Velocity[0] = -b.Velocity[0]
		penetration := b.Radius - mgl32.Abs(c.Penetration.X())
		if c.Dir == geom.Left {
			b.Position[0] += penetration
		} else {
			b.Position[0] -= penetration
		}
		return
	}
	b.Velocity[1] = -b.Velocity[1]
	penetration := b.Radius - mgl32.Abs(c.Penetration.Y())
	if c.Dir == geom.Up {
		b.Position[1] -= penetration
	} else {
		b.Position[1] += penetration
	}
}

func (g *Game) collidePowerUps() {
	paddle := g.Paddle.Box()
	for i := range g.PowerUps {
		p := &g.PowerUps[i]
		if p.Destroyed {
			continue
		}
		if p.Position.Y() >= g.cfg.Height {
			p.Destroyed = true
		}
		if geom.Overlaps(paddle, p.Box()) {
			g.ActivatePowerUp(p)
			p.Destroyed = true
			p.Activated = true
			g.audio.Play(SoundPowerUp)
		}
	}
}

// collidePaddle deflects the ball by where it hit the paddle. The speed is
// kept and the ball always leaves upwards.
func (g *Game) collidePaddle() {
	if g.Ball.Stuck {
		return
	}
	c := geom.CircleBox(g.Ball.Circle(), g.Paddle.Box())
	if !c.Collided {
		return
	}

	centerBoard := g.Paddle.Position.X() + g.Paddle.Size.X()/2
	distance := g.Ball.Center().X() - centerBoard
	percentage := distance / (g.Paddle.Size.X() / 2)

	oldVelocity := g.Ball.Velocity
	speed := oldVelocity.Len()
	v := mgl32.Vec2{g.cfg.BallVelocity.X() * percentage * BounceStrength, oldVelocity.Y()}
	if v.Len() == 0 {
		v = mgl32.Vec2{0, -speed}
	} else {
		v = v.Normalize().Mul(speed)
	}
	v[1] = -mgl32.Abs(v[1])
	g.Ball.Velocity = v

	g.Ball.Stuck = g.Ball.Sticky
	g.audio.Play(SoundPaddle)
}
