// ball.go - Ball integration and wall bounces
package game

import "github.com/go-gl/mathgl/mgl32"

// Integrate advances the ball by velocity*dt without any wall handling.
func (b *Ball) Integrate(dt float32) {
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
}

// Move integrates a free ball and bounces it off the left, right and top
// edges of a field of the given width. The bottom edge is left open.
func (b *Ball) Move(dt, width float32) mgl32.Vec2 {
	if b.Stuck {
		return b.Position
	}
	b.Integrate(dt)

	if b.Position.X() <= 0 {
		b.Velocity[0] = -b.Velocity[0]
		b.Position[0] = 0
	} else if b.Position.X()+b.Size.X() >= width {
		b.Velocity[0] = -b.Velocity[0]
		b.Position[0] = width - b.Size.X()
	}
	if b.Position.Y() <= 0 {
		b.Velocity[1] = -b.Velocity[1]
		b.Position[1] = 0
	}
	return b.Position
}

// Reset puts the ball back on the paddle with a fresh launch velocity and
// clears power-up effects carried by the ball.
func (b *Ball) Reset(pos, velocity mgl32.Vec2) {
	b.Position = pos
	b.Velocity = velocity
	b.Stuck = true
	b.Sticky = false
	b.PassThrough = false
	b.Color = white
}
