// level.go - Brick layouts and where they come from
package game

import "github.com/go-gl/mathgl/mgl32"

// LevelSource produces the brick layout of a level, laid out to fit the
// given area. Levels are numbered from 0.
type LevelSource interface {
	Levels() int
	Load(id int, width, height float32) ([]Brick, error)
}

// Level is the brick layout currently in play.
type Level struct {
	Bricks []Brick
}

// IsCompleted reports whether every breakable brick is gone. A level without
// breakable bricks is complete from the start.
func (l *Level) IsCompleted() bool {
	for i := range l.Bricks {
		if !l.Bricks[i].Solid && !l.Bricks[i].Destroyed {
			return false
		}
	}
	return true
}

// Remaining returns the number of breakable bricks still standing.
func (l *Level) Remaining() int {
	n := 0
	for i := range l.Bricks {
		if !l.Bricks[i].Solid && !l.Bricks[i].Destroyed {
			n++
		}
	}
	return n
}

func (l *Level) clone() Level {
	return Level{Bricks: append([]Brick(nil), l.Bricks...)}
}

// staticLevels is a LevelSource over fixed layouts given in field
// coordinates. Load ignores the requested area.
type staticLevels [][]Brick

func (s staticLevels) Levels() int { return len(s) }

func (s staticLevels) Load(id int, _, _ float32) ([]Brick, error) {
	if id < 0 || id >= len(s) {
		return nil, errLevelRange(id, len(s))
	}
	return append([]Brick(nil), s[id]...), nil
}

// StaticLevels returns a LevelSource serving the given layouts as-is.
func StaticLevels(levels ...[]Brick) LevelSource {
	return staticLevels(levels)
}

// Row is a helper for building simple layouts: n equal bricks side by side
// starting at pos.
func Row(pos, size mgl32.Vec2, n int, solid bool) []Brick {
	bricks := make([]Brick, 0, n)
	for i := 0; i < n; i++ {
		p := pos.Add(mgl32.Vec2{float32(i) * size.X(), 0})
		bricks = append(bricks, NewBrick(p, size, white, solid))
	}
	return bricks
}
