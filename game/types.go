// types.go - Game entity types
package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/drpaneas/brkout/geom"
	"github.com/drpaneas/brkout/render"
)

// Object is anything drawn as a sprite: bricks, the paddle, the ball and
// falling power-ups.
type Object struct {
	Position mgl32.Vec2
	Size     mgl32.Vec2
	Velocity mgl32.Vec2
	Color    mgl32.Vec3
	Rotation float32
	Texture  render.Texture
}

// Box returns the object's bounds.
func (o *Object) Box() geom.Box {
	return geom.Box{Position: o.Position, Size: o.Size}
}

// Draw issues one sprite for the object.
func (o *Object) Draw(r render.Renderer) {
	r.DrawSprite(o.Texture, o.Position, o.Size, o.Rotation, render.RGB(o.Color))
}

// Brick is a level tile. Solid bricks are never destroyed.
type Brick struct {
	Object
	Solid     bool
	Destroyed bool
}

// NewBrick returns a brick textured for its kind.
func NewBrick(pos, size mgl32.Vec2, color mgl32.Vec3, solid bool) Brick {
	tex := render.TexBlock
	if solid {
		tex = render.TexBlockSolid
	}
	return Brick{
		Object: Object{Position: pos, Size: size, Color: color, Texture: tex},
		Solid:  solid,
	}
}

// Paddle is the player's bat.
type Paddle struct {
	Object
}

// Ball bounces around the field. While Stuck it rides on the paddle.
type Ball struct {
	Object
	Radius      float32
	Stuck       bool
	Sticky      bool
	PassThrough bool
}

// NewBall returns a stuck ball. Its sprite is the bounding square of the
// circle.
func NewBall(pos mgl32.Vec2, radius float32, velocity mgl32.Vec2) Ball {
	return Ball{
		Object: Object{
			Position: pos,
			Size:     mgl32.Vec2{radius * 2, radius * 2},
			Velocity: velocity,
			Color:    white,
			Texture:  render.TexFace,
		},
		Radius: radius,
		Stuck:  true,
	}
}

// Circle returns the ball as a collision circle.
func (b *Ball) Circle() geom.Circle {
	return geom.Circle{Position: b.Position, Radius: b.Radius, Velocity: b.Velocity}
}

// Center returns the center of the ball.
func (b *Ball) Center() mgl32.Vec2 {
	return b.Circle().Center()
}
