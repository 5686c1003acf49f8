package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	r.DrawSprite(TexBlock, mgl32.Vec2{1, 2}, mgl32.Vec2{3, 4}, 0, RGB(mgl32.Vec3{1, 0, 0}))
	r.DrawSprite(TexBlock, mgl32.Vec2{}, mgl32.Vec2{}, 0, mgl32.Vec4{})
	r.DrawSprite(TexPaddle, mgl32.Vec2{}, mgl32.Vec2{}, 0, mgl32.Vec4{})
	r.RenderText("hi", 5, 6, 1, mgl32.Vec3{1, 1, 1})

	assert.Equal(t, 2, r.Count(TexBlock))
	assert.Equal(t, 1, r.Count(TexPaddle))
	assert.Equal(t, 0, r.Count(TexFace))
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, r.Sprites[0].Color)
	assert.Equal(t, "hi", r.Texts[0].Text)

	r.Reset()
	assert.Empty(t, r.Sprites)
	assert.Empty(t, r.Texts)
}

func TestTextureString(t *testing.T) {
	assert.Equal(t, "block_solid", TexBlockSolid.String())
	assert.Equal(t, "powerup_passthrough", TexPowerUpPassThrough.String())
	assert.Equal(t, "unknown", Texture(-1).String())
	assert.Equal(t, "unknown", NumTextures.String())
}
