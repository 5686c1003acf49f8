package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(x, y, w, h float32) Box {
	return Box{Position: mgl32.Vec2{x, y}, Size: mgl32.Vec2{w, h}}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	data := []struct {
		a, b    Box
		overlap bool
	}{
		{box(0, 0, 10, 10), box(5, 5, 10, 10), true},
		{box(0, 0, 10, 10), box(10, 0, 10, 10), true},
		{box(0, 0, 10, 10), box(10.5, 0, 10, 10), false},
		{box(0, 0, 10, 10), box(0, 20, 10, 10), false},
		{box(0, 0, 100, 100), box(40, 40, 2, 2), true},
		{box(0, 0, 0, 0), box(0, 0, 0, 0), true},
		{box(-5, -5, 4, 4), box(0, 0, 4, 4), false},
	}
	for _, d := range data {
		assert.Equal(t, d.overlap, Overlaps(d.a, d.b), "Overlaps(%v, %v)", d.a, d.b)
		assert.Equal(t, Overlaps(d.a, d.b), Overlaps(d.b, d.a), "asymmetric for %v, %v", d.a, d.b)
	}
}

func TestCircleBoxBoundary(t *testing.T) {
	b := box(0, 0, 10, 10)

	// Center at (15, 5): exactly one radius from the right edge.
	touching := Circle{Position: mgl32.Vec2{10, 0}, Radius: 5}
	assert.False(t, CircleBox(touching, b).Collided, "tangent circle must not collide")

	inside := Circle{Position: mgl32.Vec2{9.9, 0}, Radius: 5}
	c := CircleBox(inside, b)
	assert.True(t, c.Collided)
	assert.Equal(t, Left, c.Dir)
	assert.InDelta(t, -4.9, c.Penetration.X(), 1e-4)
	assert.InDelta(t, 0, c.Penetration.Y(), 1e-6)

	// Corner: center at (13, 14) is exactly 5 away from the corner (10, 10).
	corner := Circle{Position: mgl32.Vec2{8, 9}, Radius: 5}
	assert.False(t, CircleBox(corner, b).Collided)
	corner.Position = mgl32.Vec2{7.9, 8.9}
	assert.True(t, CircleBox(corner, b).Collided)
}

func TestCircleBoxNoCollisionResult(t *testing.T) {
	c := CircleBox(Circle{Position: mgl32.Vec2{100, 100}, Radius: 1}, box(0, 0, 1, 1))
	assert.Equal(t, Collision{Dir: Up}, c)
}

func TestCircleBoxSides(t *testing.T) {
	b := box(100, 100, 50, 20)
	data := []struct {
		name   string
		center mgl32.Vec2
		dir    Direction
	}{
		// closest point is below the center on screen: delta points to +y
		{"from above", mgl32.Vec2{125, 95}, Up},
		{"from below", mgl32.Vec2{125, 125}, Down},
		{"from the left", mgl32.Vec2{95, 110}, Right},
		{"from the right", mgl32.Vec2{155, 110}, Left},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			c := Circle{Position: d.center.Sub(mgl32.Vec2{10, 10}), Radius: 10}
			res := CircleBox(c, b)
			require.True(t, res.Collided)
			assert.Equal(t, d.dir, res.Dir)
		})
	}
}

func TestVectorDirection(t *testing.T) {
	data := []struct {
		v   mgl32.Vec2
		dir Direction
	}{
		{mgl32.Vec2{0, -1}, Down},
		{mgl32.Vec2{1, 0}, Right},
		{mgl32.Vec2{-1, 0}, Left},
		{mgl32.Vec2{0, 1}, Up},
		{mgl32.Vec2{0, 7}, Up},
		{mgl32.Vec2{3, -0.5}, Right},
		{mgl32.Vec2{1, 1}, Up},
		{mgl32.Vec2{1, -1}, Right},
		{mgl32.Vec2{-1, -1}, Down},
		{mgl32.Vec2{0, 0}, Up},
	}
	for _, d := range data {
		assert.Equal(t, d.dir, VectorDirection(d.v), "VectorDirection(%v)", d.v)
	}
}

func TestConstructorsRejectBadGeometry(t *testing.T) {
	_, err := NewBox(mgl32.Vec2{}, mgl32.Vec2{-1, 2})
	assert.ErrorIs(t, err, ErrNegativeSize)

	b, err := NewBox(mgl32.Vec2{1, 2}, mgl32.Vec2{4, 6})
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec2{3, 5}, b.Center())

	_, err = NewCircle(mgl32.Vec2{}, 0, mgl32.Vec2{})
	assert.ErrorIs(t, err, ErrNonPositiveRadius)
	_, err = NewCircle(mgl32.Vec2{}, -2, mgl32.Vec2{})
	assert.ErrorIs(t, err, ErrNonPositiveRadius)

	c, err := NewCircle(mgl32.Vec2{10, 20}, 2.5, mgl32.Vec2{1, 1})
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec2{12.5, 22.5}, c.Center())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "unknown", Direction(9).String())
	assert.True(t, Right.Horizontal())
	assert.False(t, Down.Horizontal())
}
