// Package level reads brick layouts from text files.
//
// A level file holds one row of tiles per line, tiles separated by spaces.
// 0 is an empty cell, 1 a solid brick and 2 to 5 colored breakable bricks.
// Any other positive code is a white breakable brick. Blank lines are
// skipped.
package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/drpaneas/brkout/game"
)

var (
	ErrEmpty     = errors.New("level has no tiles")
	ErrRaggedRow = errors.New("row length differs from the first row")
	ErrBadTile   = errors.New("invalid tile")
)

// Tile codes
const (
	Empty = 0
	Solid = 1
)

var palette = map[int]mgl32.Vec3{
	Solid: {0.8, 0.8, 0.7},
	2:     {0.2, 0.6, 1.0},
	3:     {0.0, 0.7, 0.0},
	4:     {0.8, 0.8, 0.4},
	5:     {1.0, 0.5, 0.0},
}

var white = mgl32.Vec3{1, 1, 1}

// Tiles is a rectangular grid of tile codes, row by row from the top.
type Tiles [][]int

func (t Tiles) Rows() int { return len(t) }

func (t Tiles) Cols() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Parse reads a level file.
func Parse(r io.Reader) (Tiles, error) {
	var tiles Tiles
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			code, err := strconv.Atoi(f)
			if err != nil || code < 0 {
				return nil, fmt.Errorf("line %d: %q: %w", line, f, ErrBadTile)
			}
			row[i] = code
		}
		if len(tiles) > 0 && len(row) != len(tiles[0]) {
			return nil, fmt.Errorf("line %d: %d tiles, want %d: %w", line, len(row), len(tiles[0]), ErrRaggedRow)
		}
		tiles = append(tiles, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, ErrEmpty
	}
	return tiles, nil
}

// Build lays the tiles out over a width x height area anchored at the
// origin. Every cell gets the same size.
func Build(t Tiles, width, height float32) []game.Brick {
	if t.Rows() == 0 || t.Cols() == 0 {
		return nil
	}
	unit := mgl32.Vec2{width / float32(t.Cols()), height / float32(t.Rows())}

	var bricks []game.Brick
	for y, row := range t {
		for x, code := range row {
			if code == Empty {
				continue
			}
			pos := mgl32.Vec2{unit.X() * float32(x), unit.Y() * float32(y)}
			color, ok := palette[code]
			if !ok {
				color = white
			}
			bricks = append(bricks, game.NewBrick(pos, unit, color, code == Solid))
		}
	}
	return bricks
}
