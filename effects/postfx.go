// Package effects simulates the visual side effects the game asks for:
// screen shake, the confuse and chaos post-processing toggles, and the
// particle trail behind the ball. Renderers read the state kept here.
package effects

// PostFX holds the post-processing toggles.
type PostFX struct {
	shakeTime float32
	shaking   bool
	confuse   bool
	chaos     bool
}

func NewPostFX() *PostFX {
	return &PostFX{}
}

// Shake starts a screen shake lasting at least d seconds. A longer shake
// already running is not shortened.
func (p *PostFX) Shake(d float32) {
	if d <= 0 {
		return
	}
	if d > p.shakeTime {
		p.shakeTime = d
	}
	p.shaking = true
}

// Update counts the shake down.
func (p *PostFX) Update(dt float32) {
	if p.shakeTime > 0 {
		p.shakeTime -= dt
		if p.shakeTime <= 0 {
			p.shakeTime = 0
			p.shaking = false
		}
	}
}

func (p *PostFX) Shaking() bool { return p.shaking }

func (p *PostFX) SetConfuse(on bool) { p.confuse = on }
func (p *PostFX) Confused() bool     { return p.confuse }

func (p *PostFX) SetChaos(on bool) { p.chaos = on }
func (p *PostFX) Chaotic() bool    { return p.chaos }
