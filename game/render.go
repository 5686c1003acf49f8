// render.go - Draw requests for the current frame
package game

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/drpaneas/brkout/render"
)

var (
	textWhite  = mgl32.Vec3{1, 1, 1}
	textGreen  = mgl32.Vec3{0, 1, 0}
	textYellow = mgl32.Vec3{1, 1, 0}
)

// Render issues draw requests for the whole scene. It only reads state.
// text may be nil when no text output is available.
func (g *Game) Render(r render.Renderer, text render.TextRenderer) {
	w, h := g.cfg.Width, g.cfg.Height

	r.DrawSprite(render.TexBackground, mgl32.Vec2{}, mgl32.Vec2{w, h}, 0, render.RGB(white))

	level := g.CurrentLevel()
	for i := range level.Bricks {
		if !level.Bricks[i].Destroyed {
			level.Bricks[i].Draw(r)
		}
	}
	g.Paddle.Draw(r)
	for i := range g.PowerUps {
		if !g.PowerUps[i].Destroyed {
			g.PowerUps[i].Draw(r)
		}
	}
	g.particles.Draw(r)
	g.Ball.Draw(r)

	if text == nil {
		return
	}
	if g.cfg.TrackLives {
		text.RenderText("Lives:"+strconv.Itoa(g.Lives), 5, 5, 1, textWhite)
	}
	switch g.State {
	case StateMenu:
		text.RenderText("Press ENTER to start", 250, h/2, 1, textWhite)
		text.RenderText("Press W or S to select level", 245, h/2+20, 0.75, textWhite)
	case StateWin:
		text.RenderText("You WON!!!", 320, h/2-20, 1, textGreen)
		text.RenderText("Press ENTER to retry or ESC to quit", 130, h/2, 1, textYellow)
	case StateActive:
	}
}
