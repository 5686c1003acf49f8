// Package geom implements the collision tests used by the game: box
// against box, and circle against box with a compass direction for the
// side that was hit.
package geom

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrNegativeSize      = errors.New("geom: negative size")
	ErrNonPositiveRadius = errors.New("geom: radius must be positive")
)

// Box is an axis-aligned rectangle. Position is the top-left corner.
type Box struct {
	Position mgl32.Vec2
	Size     mgl32.Vec2
}

// NewBox returns a Box, rejecting negative or NaN extents.
func NewBox(pos, size mgl32.Vec2) (Box, error) {
	if !(size.X() >= 0) || !(size.Y() >= 0) {
		return Box{}, fmt.Errorf("box %v: %w", size, ErrNegativeSize)
	}
	return Box{Position: pos, Size: size}, nil
}

// Center returns the middle of the box.
func (b Box) Center() mgl32.Vec2 {
	return b.Position.Add(b.HalfExtents())
}

func (b Box) HalfExtents() mgl32.Vec2 {
	return b.Size.Mul(0.5)
}

// Circle is a moving ball. Position is the top-left corner of its
// bounding square, so the center sits at Position + Radius on both axes.
type Circle struct {
	Position mgl32.Vec2
	Radius   float32
	Velocity mgl32.Vec2
}

// NewCircle returns a Circle, rejecting a zero or negative radius.
func NewCircle(pos mgl32.Vec2, radius float32, velocity mgl32.Vec2) (Circle, error) {
	if !(radius > 0) {
		return Circle{}, fmt.Errorf("circle radius %g: %w", radius, ErrNonPositiveRadius)
	}
	return Circle{Position: pos, Radius: radius, Velocity: velocity}, nil
}

func (c Circle) Center() mgl32.Vec2 {
	return c.Position.Add(mgl32.Vec2{c.Radius, c.Radius})
}
