// source.go - Level sources for the game
package level

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/drpaneas/brkout/game"
)

//go:embed levels/*.lvl
var embedded embed.FS

// DefaultLevels names the embedded levels in play order.
var DefaultLevels = []string{"one", "two", "three", "four"}

// Source serves named .lvl files from a file system. Files are read on
// every Load so edits show up on the next level reset.
type Source struct {
	fsys  fs.FS
	names []string
	log   *zap.Logger
}

// Embedded returns the levels built into the binary.
func Embedded() *Source {
	sub, err := fs.Sub(embedded, "levels")
	if err != nil {
		panic(err)
	}
	return &Source{fsys: sub, names: DefaultLevels, log: zap.NewNop()}
}

// Dir returns a source reading <name>.lvl files from dir. Without names
// every .lvl file in dir is used, in lexical order.
func Dir(dir string, names ...string) (*Source, error) {
	fsys := os.DirFS(dir)
	if len(names) == 0 {
		matches, err := fs.Glob(fsys, "*.lvl")
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			names = append(names, strings.TrimSuffix(m, ".lvl"))
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, game.ErrNoLevels)
	}
	return &Source{fsys: fsys, names: names, log: zap.NewNop()}, nil
}

// WithLogger returns s logging to l.
func (s *Source) WithLogger(l *zap.Logger) *Source {
	if l != nil {
		s.log = l
	}
	return s
}

func (s *Source) Levels() int { return len(s.names) }

// Name returns the file name of level id without its extension.
func (s *Source) Name(id int) string {
	if id < 0 || id >= len(s.names) {
		return ""
	}
	return s.names[id]
}

// Tiles parses level id.
func (s *Source) Tiles(id int) (Tiles, error) {
	if id < 0 || id >= len(s.names) {
		return nil, fmt.Errorf("level %d of %d: %w", id, len(s.names), game.ErrLevelRange)
	}
	name := s.names[id] + ".lvl"
	f, err := s.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}

// Load implements game.LevelSource.
func (s *Source) Load(id int, width, height float32) ([]game.Brick, error) {
	t, err := s.Tiles(id)
	if err != nil {
		return nil, err
	}
	bricks := Build(t, width, height)
	s.log.Debug("Level loaded",
		zap.String("name", s.names[id]),
		zap.Int("rows", t.Rows()),
		zap.Int("cols", t.Cols()),
		zap.Int("bricks", len(bricks)))
	return bricks, nil
}
