// glrender.go - Sprites as flat legacy OpenGL quads
package main

import (
	"math"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/drpaneas/brkout/effects"
	"github.com/drpaneas/brkout/render"
)

const (
	shakeStrength = 4 // pixels
	ballSegments  = 24
)

// No images are decoded; each texture handle gets a flat shade instead.
var textureShade = [render.NumTextures]float32{
	render.TexNone:               1,
	render.TexBackground:         0.12,
	render.TexFace:               1,
	render.TexBlock:              0.9,
	render.TexBlockSolid:         0.7,
	render.TexPaddle:             1,
	render.TexParticle:           1,
	render.TexPowerUpSpeed:       1,
	render.TexPowerUpSticky:      1,
	render.TexPowerUpIncrease:    1,
	render.TexPowerUpConfuse:     1,
	render.TexPowerUpChaos:       1,
	render.TexPowerUpPassThrough: 1,
}

type glRenderer struct {
	width, height float32
	fbw, fbh      int32
	fx            *effects.PostFX
	time          float32
}

func newGLRenderer(width, height float32, fbw, fbh int, fx *effects.PostFX) *glRenderer {
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	return &glRenderer{width: width, height: height, fbw: int32(fbw), fbh: int32(fbh), fx: fx}
}

// begin clears the frame and sets up the projection, including the shake
// and confuse transforms.
func (r *glRenderer) begin(dt float32) {
	r.time += dt
	gl.Viewport(0, 0, r.fbw, r.fbh)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.MatrixMode(gl.PROJECTION)
	gl.LoadIdentity()
	gl.Ortho(0, float64(r.width), float64(r.height), 0, -1, 1)
	if r.fx.Confused() {
		gl.Translatef(r.width, r.height, 0)
		gl.Scalef(-1, -1, 1)
	}
	if r.fx.Shaking() {
		t := float64(r.time)
		gl.Translatef(float32(math.Cos(t*10))*shakeStrength, float32(math.Cos(t*15))*shakeStrength, 0)
	}
	gl.MatrixMode(gl.MODELVIEW)
}

// filter applies the color side of the confuse and chaos effects.
func (r *glRenderer) filter(c mgl32.Vec4) mgl32.Vec4 {
	if r.fx.Confused() {
		c = mgl32.Vec4{1 - c.X(), 1 - c.Y(), 1 - c.Z(), c.W()}
	}
	if r.fx.Chaotic() {
		t := float64(r.time)
		c[0] *= 0.5 + 0.5*float32(math.Sin(t*3))
		c[1] *= 0.5 + 0.5*float32(math.Sin(t*3+2))
		c[2] *= 0.5 + 0.5*float32(math.Sin(t*3+4))
	}
	return c
}

func (r *glRenderer) DrawSprite(tex render.Texture, pos, size mgl32.Vec2, rotate float32, color mgl32.Vec4) {
	if tex >= 0 && tex < render.NumTextures {
		color = mgl32.Vec4{color.X() * textureShade[tex], color.Y() * textureShade[tex], color.Z() * textureShade[tex], color.W()}
	}
	color = r.filter(color)

	if tex == render.TexParticle {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.LoadIdentity()
	gl.Translatef(pos.X(), pos.Y(), 0)
	gl.Translatef(size.X()/2, size.Y()/2, 0)
	gl.Rotatef(rotate, 0, 0, 1)
	gl.Translatef(-size.X()/2, -size.Y()/2, 0)
	gl.Color4f(color.X(), color.Y(), color.Z(), color.W())

	if tex == render.TexFace {
		drawDisc(size)
		return
	}
	gl.Begin(gl.QUADS)
	gl.Vertex2f(0, 0)
	gl.Vertex2f(size.X(), 0)
	gl.Vertex2f(size.X(), size.Y())
	gl.Vertex2f(0, size.Y())
	gl.End()
}

// drawDisc fills the ellipse inscribed in a size box.
func drawDisc(size mgl32.Vec2) {
	rx, ry := size.X()/2, size.Y()/2
	gl.Begin(gl.TRIANGLE_FAN)
	gl.Vertex2f(rx, ry)
	for i := 0; i <= ballSegments; i++ {
		a := float64(i) / ballSegments * 2 * math.Pi
		gl.Vertex2f(rx+rx*float32(math.Cos(a)), ry+ry*float32(math.Sin(a)))
	}
	gl.End()
}

var _ render.Renderer = (*glRenderer)(nil)
