// constants.go - Tuning values shared by the simulation
package game

import "github.com/go-gl/mathgl/mgl32"

// Defaults used by DefaultConfig.
var (
	DefaultPlayerSize   = mgl32.Vec2{100, 20}
	DefaultBallVelocity = mgl32.Vec2{100, -350}
)

const (
	DefaultWidth          = 800
	DefaultHeight         = 600
	DefaultPlayerVelocity = 500
	DefaultBallRadius     = 12.5
	DefaultLives          = 3
)

// Collision response
const (
	ShakeDuration  = 0.05 // seconds of screen shake on a solid brick
	BounceStrength = 2.0  // paddle deflection multiplier
)

// Power-ups
const (
	PadSizeIncrease   = 50
	SpeedMultiplier   = 1.2
	positiveSpawnRate = 75 // 1 in 75 per kind
	negativeSpawnRate = 15 // confuse and chaos drop more often
)

var (
	PowerUpSize     = mgl32.Vec2{60, 20}
	PowerUpVelocity = mgl32.Vec2{0, 150}
)

// Trail particles spawned per frame
const trailParticles = 2

var (
	white       = mgl32.Vec3{1, 1, 1}
	stickyTint  = mgl32.Vec3{1, 0.5, 1}
	passThrough = mgl32.Vec3{1, 0.5, 0.5}
)
