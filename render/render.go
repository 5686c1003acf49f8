// Package render holds the contracts between the game and whatever draws it.
// The game never touches graphics state; it issues sprite and text requests
// against these interfaces once per frame.
package render

import "github.com/go-gl/mathgl/mgl32"

// Texture is an opaque sprite handle. Renderers map handles to their own
// resources and treat unknown handles as untextured quads.
type Texture int

const (
	TexNone Texture = iota
	TexBackground
	TexFace
	TexBlock
	TexBlockSolid
	TexPaddle
	TexParticle
	TexPowerUpSpeed
	TexPowerUpSticky
	TexPowerUpIncrease
	TexPowerUpConfuse
	TexPowerUpChaos
	TexPowerUpPassThrough
	NumTextures
)

var textureNames = [NumTextures]string{
	TexNone:               "none",
	TexBackground:         "background",
	TexFace:               "face",
	TexBlock:              "block",
	TexBlockSolid:         "block_solid",
	TexPaddle:             "paddle",
	TexParticle:           "particle",
	TexPowerUpSpeed:       "powerup_speed",
	TexPowerUpSticky:      "powerup_sticky",
	TexPowerUpIncrease:    "powerup_increase",
	TexPowerUpConfuse:     "powerup_confuse",
	TexPowerUpChaos:       "powerup_chaos",
	TexPowerUpPassThrough: "powerup_passthrough",
}

func (t Texture) String() string {
	if t < 0 || t >= NumTextures {
		return "unknown"
	}
	return textureNames[t]
}

// Renderer draws a textured, tinted quad. Position is the top-left corner,
// rotate is in degrees around the quad center.
type Renderer interface {
	DrawSprite(tex Texture, pos, size mgl32.Vec2, rotate float32, color mgl32.Vec4)
}

// TextRenderer draws a line of text with its top-left corner at (x, y).
type TextRenderer interface {
	RenderText(text string, x, y, scale float32, color mgl32.Vec3)
}

// RGB lifts a color to an opaque RGBA value.
func RGB(c mgl32.Vec3) mgl32.Vec4 {
	return c.Vec4(1)
}

// Sprite is one recorded DrawSprite call.
type Sprite struct {
	Texture  Texture
	Position mgl32.Vec2
	Size     mgl32.Vec2
	Rotate   float32
	Color    mgl32.Vec4
}

// Text is one recorded RenderText call.
type Text struct {
	Text  string
	X, Y  float32
	Scale float32
	Color mgl32.Vec3
}

// Recorder keeps every request it receives. It backs the headless driver
// and tests.
type Recorder struct {
	Sprites []Sprite
	Texts   []Text
}

func (r *Recorder) DrawSprite(tex Texture, pos, size mgl32.Vec2, rotate float32, color mgl32.Vec4) {
	r.Sprites = append(r.Sprites, Sprite{tex, pos, size, rotate, color})
}

func (r *Recorder) RenderText(text string, x, y, scale float32, color mgl32.Vec3) {
	r.Texts = append(r.Texts, Text{text, x, y, scale, color})
}

// Reset drops recorded requests and keeps the backing storage.
func (r *Recorder) Reset() {
	r.Sprites = r.Sprites[:0]
	r.Texts = r.Texts[:0]
}

// Count returns how many sprites were drawn with tex.
func (r *Recorder) Count(tex Texture) int {
	n := 0
	for _, s := range r.Sprites {
		if s.Texture == tex {
			n++
		}
	}
	return n
}
