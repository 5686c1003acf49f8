// window.go - GLFW window, keyboard and the main loop
package main

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/drpaneas/brkout/config"
	"github.com/drpaneas/brkout/effects"
	"github.com/drpaneas/brkout/frame"
	"github.com/drpaneas/brkout/game"
	"github.com/drpaneas/brkout/render"
)

// Physical keys for each game key. W and S pick the level in the menu.
var keyMap = [game.KeyCount][]glfw.Key{
	game.KeyConfirm:   {glfw.KeyEnter, glfw.KeyKPEnter},
	game.KeyLeft:      {glfw.KeyA, glfw.KeyLeft},
	game.KeyRight:     {glfw.KeyD, glfw.KeyRight},
	game.KeyLaunch:    {glfw.KeySpace},
	game.KeyLevelUp:   {glfw.KeyW, glfw.KeyUp},
	game.KeyLevelDown: {glfw.KeyS, glfw.KeyDown},
}

func readInput(win *glfw.Window) game.Input {
	var in game.Input
	for k, keys := range keyMap {
		for _, key := range keys {
			if win.GetKey(key) == glfw.Press {
				in.Set(game.Key(k), true)
			}
		}
	}
	return in
}

// titleText shows the game's text lines in the window title.
type titleText struct {
	win   *glfw.Window
	base  string
	lines []string
	shown string
}

func (t *titleText) RenderText(text string, _, _, _ float32, _ mgl32.Vec3) {
	t.lines = append(t.lines, text)
}

func (t *titleText) flush() {
	title := strings.Join(append([]string{t.base}, t.lines...), " | ")
	t.lines = t.lines[:0]
	if title != t.shown {
		t.win.SetTitle(title)
		t.shown = title
	}
}

var _ render.TextRenderer = (*titleText)(nil)

func play(cfg config.Config, src game.LevelSource, log *zap.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	win, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl: %w", err)
	}
	log.Info("OpenGL initialized", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	fx := effects.NewPostFX()
	g, err := game.New(cfg.Simulation(), src,
		game.WithLogger(log.Named("game")),
		game.WithAudio(newLogAudio(log.Named("audio"))),
		game.WithEffects(fx))
	if err != nil {
		return err
	}

	fbw, fbh := win.GetFramebufferSize()
	r := newGLRenderer(float32(cfg.Window.Width), float32(cfg.Window.Height), fbw, fbh, fx)
	text := &titleText{win: win, base: cfg.Window.Title}
	timer := frame.NewTimer(cfg.Frame.TargetFPS, cfg.Frame.MaxDelta, frame.WithLogger(log.Named("frame")))

	for !win.ShouldClose() {
		dt := timer.BeginFrame()
		glfw.PollEvents()
		if win.GetKey(glfw.KeyEscape) == glfw.Press {
			win.SetShouldClose(true)
		}
		if win.GetKey(glfw.KeyBackspace) == glfw.Press && g.State == game.StateActive {
			g.Restart()
		}

		g.Tick(dt, readInput(win))

		r.begin(dt)
		g.Render(r, text)
		text.flush()
		win.SwapBuffers()
		timer.EndFrame()
	}
	log.Info("Window closed", zap.Stringer("state", g.State), zap.Int("level", g.Level))
	return nil
}
