// particles.go - Particle pool trailing a moving object
package effects

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/drpaneas/brkout/render"
)

const (
	ParticleSize     = 10
	particleFadeRate = 2.5
	particleDrag     = 0.1
)

// Particle is one pooled particle. It is alive while Life > 0.
type Particle struct {
	Position mgl32.Vec2
	Velocity mgl32.Vec2
	Color    mgl32.Vec4
	Life     float32
}

// Particles is a fixed-size pool. New particles reuse dead slots; when none
// is free the first slot is overwritten.
type Particles struct {
	pool     []Particle
	lastUsed int
	rng      *rand.Rand
}

// NewParticles returns a pool of amount particles. A nil rng gets a
// fixed-seed source.
func NewParticles(amount int, rng *rand.Rand) *Particles {
	if amount < 1 {
		amount = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Particles{pool: make([]Particle, amount), rng: rng}
}

// Update spawns n particles at pos+offset, ages every particle by dt and
// moves the live ones against vel.
func (p *Particles) Update(dt float32, pos, vel mgl32.Vec2, n int, offset mgl32.Vec2) {
	for i := 0; i < n; i++ {
		p.respawn(&p.pool[p.firstUnused()], pos, vel, offset)
	}
	for i := range p.pool {
		pt := &p.pool[i]
		pt.Life -= dt
		if pt.Life > 0 {
			pt.Position = pt.Position.Sub(pt.Velocity.Mul(dt))
			pt.Color[3] -= dt * particleFadeRate
		}
	}
}

func (p *Particles) firstUnused() int {
	for i := p.lastUsed; i < len(p.pool); i++ {
		if p.pool[i].Life <= 0 {
			p.lastUsed = i
			return i
		}
	}
	for i := 0; i < p.lastUsed; i++ {
		if p.pool[i].Life <= 0 {
			p.lastUsed = i
			return i
		}
	}
	p.lastUsed = 0
	return 0
}

func (p *Particles) respawn(pt *Particle, pos, vel, offset mgl32.Vec2) {
	jitter := float32(p.rng.Intn(100)-50) / 10
	shade := 0.5 + float32(p.rng.Intn(100))/100
	pt.Position = pos.Add(mgl32.Vec2{jitter, jitter}).Add(offset)
	pt.Color = mgl32.Vec4{shade, shade, shade, 1}
	pt.Life = 1
	pt.Velocity = vel.Mul(particleDrag)
}

// Alive returns the number of live particles.
func (p *Particles) Alive() int {
	n := 0
	for i := range p.pool {
		if p.pool[i].Life > 0 {
			n++
		}
	}
	return n
}

// Draw emits one sprite per live particle.
func (p *Particles) Draw(r render.Renderer) {
	size := mgl32.Vec2{ParticleSize, ParticleSize}
	for i := range p.pool {
		pt := &p.pool[i]
		if pt.Life > 0 {
			r.DrawSprite(render.TexParticle, pt.Position, size, 0, pt.Color)
		}
	}
}
