// collision.go - AABB and circle collision tests
package geom

import "github.com/go-gl/mathgl/mgl32"

// Direction is the compass side a collision vector points to.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// Horizontal reports whether the direction lies on the x axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

var compass = [...]mgl32.Vec2{
	Up:    {0, 1},
	Right: {1, 0},
	Down:  {0, -1},
	Left:  {-1, 0},
}

// Collision is the result of a circle/box test. Penetration is the vector
// from the circle center to the closest point of the box.
type Collision struct {
	Collided    bool
	Dir         Direction
	Penetration mgl32.Vec2
}

// Overlaps reports whether two boxes touch or intersect. Shared edges count.
func Overlaps(a, b Box) bool {
	collisionX := a.Position.X()+a.Size.X() >= b.Position.X() &&
		b.Position.X()+b.Size.X() >= a.Position.X()
	collisionY := a.Position.Y()+a.Size.Y() >= b.Position.Y() &&
		b.Position.Y()+b.Size.Y() >= a.Position.Y()
	return collisionX && collisionY
}

// CircleBox tests a circle against a box. A circle exactly touching the box
// does not collide, which is the state collision resolution leaves it in.
func CircleBox(c Circle, b Box) Collision {
	center := c.Center()
	half := b.HalfExtents()
	boxCenter := b.Position.Add(half)

	difference := center.Sub(boxCenter)
	clamped := mgl32.Vec2{
		mgl32.Clamp(difference.X(), -half.X(), half.X()),
		mgl32.Clamp(difference.Y(), -half.Y(), half.Y()),
	}
	closest := boxCenter.Add(clamped)
	delta := closest.Sub(center)

	if delta.Len() < c.Radius {
		return Collision{Collided: true, Dir: VectorDirection(delta), Penetration: delta}
	}
	return Collision{Dir: Up}
}

// VectorDirection returns the compass direction closest to v. Exact ties go
// to the earlier of Up, Right, Down, Left. The zero vector, produced when
// the circle center is inside the box, maps to Up.
func VectorDirection(v mgl32.Vec2) Direction {
	if v.Len() == 0 {
		return Up
	}
	n := v.Normalize()
	best := Up
	max := n.Dot(compass[Up])
	for d := Right; d <= Left; d++ {
		if dot := n.Dot(compass[d]); dot > max {
			max = dot
			best = d
		}
	}
	return best
}
