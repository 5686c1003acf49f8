// powerup.go - Power-up drops, activation and expiry
package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/drpaneas/brkout/render"
)

// PowerUpKind is the effect a power-up grants when caught.
type PowerUpKind int

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpSticky
	PowerUpPassThrough
	PowerUpPadSizeIncrease
	PowerUpConfuse
	PowerUpChaos
	numPowerUpKinds
)

type powerUpInfo struct {
	name     string
	color    mgl32.Vec3
	duration float32
	chance   int
	texture  render.Texture
}

var powerUpTable = [numPowerUpKinds]powerUpInfo{
	PowerUpSpeed:           {"speed", mgl32.Vec3{0.5, 0.5, 1}, 0, positiveSpawnRate, render.TexPowerUpSpeed},
	PowerUpSticky:          {"sticky", mgl32.Vec3{1, 0.5, 1}, 20, positiveSpawnRate, render.TexPowerUpSticky},
	PowerUpPassThrough:     {"pass-through", mgl32.Vec3{0.5, 1, 0.5}, 10, positiveSpawnRate, render.TexPowerUpPassThrough},
	PowerUpPadSizeIncrease: {"pad-size-increase", mgl32.Vec3{1, 0.6, 0.4}, 0, positiveSpawnRate, render.TexPowerUpIncrease},
	PowerUpConfuse:         {"confuse", mgl32.Vec3{1, 0.3, 0.3}, 15, negativeSpawnRate, render.TexPowerUpConfuse},
	PowerUpChaos:           {"chaos", mgl32.Vec3{0.9, 0.25, 0.25}, 15, negativeSpawnRate, render.TexPowerUpChaos},
}

func (k PowerUpKind) String() string {
	if k < 0 || k >= numPowerUpKinds {
		return "unknown"
	}
	return powerUpTable[k].name
}

// PowerUp falls from a destroyed brick until the paddle catches it or it
// leaves the field. A caught power-up stays Activated for Duration seconds.
type PowerUp struct {
	Object
	Kind      PowerUpKind
	Duration  float32
	Activated bool
	Destroyed bool
}

// NewPowerUp returns a falling power-up of the given kind at pos.
func NewPowerUp(kind PowerUpKind, pos mgl32.Vec2) PowerUp {
	info := powerUpTable[kind]
	return PowerUp{
		Object: Object{
			Position: pos,
			Size:     PowerUpSize,
			Velocity: PowerUpVelocity,
			Color:    info.color,
			Texture:  info.texture,
		},
		Kind:     kind,
		Duration: info.duration,
	}
}

func (g *Game) shouldSpawn(chance int) bool {
	return g.rng.Intn(chance) == 0
}

// SpawnPowerUps rolls a drop for every kind at the brick's position.
func (g *Game) SpawnPowerUps(b *Brick) {
	for k := PowerUpKind(0); k < numPowerUpKinds; k++ {
		if g.shouldSpawn(powerUpTable[k].chance) {
			g.PowerUps = append(g.PowerUps, NewPowerUp(k, b.Position))
			g.log.Debug("Power-up dropped", zap.Stringer("kind", k))
		}
	}
}

// ActivatePowerUp applies the effect of p.
func (g *Game) ActivatePowerUp(p *PowerUp) {
	switch p.Kind {
	case PowerUpSpeed:
		g.Ball.Velocity = g.Ball.Velocity.Mul(SpeedMultiplier)
	case PowerUpSticky:
		g.Ball.Sticky = true
		g.Paddle.Color = stickyTint
	case PowerUpPassThrough:
		g.Ball.PassThrough = true
		g.Ball.Color = passThrough
	case PowerUpPadSizeIncrease:
		g.Paddle.Size[0] = min(g.Paddle.Size[0]+PadSizeIncrease, g.cfg.Width)
		g.movePaddle(0)
	case PowerUpConfuse:
		if !g.effects.Chaotic() {
			g.effects.SetConfuse(true)
		}
	case PowerUpChaos:
		if !g.effects.Confused() {
			g.effects.SetChaos(true)
		}
	}
	g.log.Debug("Power-up activated", zap.Stringer("kind", p.Kind))
}

// deactivate undoes the effect of an expired power-up of kind k.
func (g *Game) deactivate(k PowerUpKind) {
	switch k {
	case PowerUpSticky:
		g.Ball.Sticky = false
		g.Paddle.Color = white
	case PowerUpPassThrough:
		g.Ball.PassThrough = false
		g.Ball.Color = white
	case PowerUpConfuse:
		g.effects.SetConfuse(false)
	case PowerUpChaos:
		g.effects.SetChaos(false)
	case PowerUpSpeed, PowerUpPadSizeIncrease:
		// permanent until the player is reset
	}
}

func (g *Game) isOtherPowerUpActive(k PowerUpKind) bool {
	for i := range g.PowerUps {
		if g.PowerUps[i].Activated && g.PowerUps[i].Kind == k {
			return true
		}
	}
	return false
}

// UpdatePowerUps moves falling power-ups, expires activated ones and drops
// the ones that are both destroyed and no longer active.
func (g *Game) UpdatePowerUps(dt float32) {
	for i := range g.PowerUps {
		p := &g.PowerUps[i]
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		if !p.Activated {
			continue
		}
		p.Duration -= dt
		if p.Duration <= 0 {
			p.Activated = false
			if !g.isOtherPowerUpActive(p.Kind) {
				g.deactivate(p.Kind)
				g.log.Debug("Power-up expired", zap.Stringer("kind", p.Kind))
			}
		}
	}

	kept := g.PowerUps[:0]
	for _, p := range g.PowerUps {
		if !(p.Destroyed && !p.Activated) {
			kept = append(kept, p)
		}
	}
	g.PowerUps = kept
}

// ActivePowerUps returns the kinds currently in effect.
func (g *Game) ActivePowerUps() []PowerUpKind {
	var kinds []PowerUpKind
	for i := range g.PowerUps {
		if g.PowerUps[i].Activated {
			kinds = append(kinds, g.PowerUps[i].Kind)
		}
	}
	return kinds
}
