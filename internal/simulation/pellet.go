package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"skeet-sim/internal/common"

	"github.com/google/uuid"
)

// Pellet and gun tuning.
const (
	PelletRadius   = 2.0
	PelletLifetime = 40 // frames
	MuzzleSpeed    = 10.0
	GunCooldown    = 15 // frames between shots
)

// AimNoise perturbs the aim angle (radians) of a shot.
type AimNoise func(angle float64) float64

// Pellet is a shot fired from the gun. It flies straight and expires after PelletLifetime frames.
type Pellet struct {
	id       string
	position common.Position
	velocity common.Velocity
	life     int
}

// NewPellet creates a pellet at pos moving with vel.
func NewPellet(pos common.Position, vel common.Velocity) *Pellet {
	return &Pellet{
		id:       fmt.Sprintf("pellet-%s", uuid.NewString()[:8]),
		position: pos,
		velocity: vel,
		life:     PelletLifetime,
	}
}

// GetID returns the unique identifier of the pellet.
func (p *Pellet) GetID() string {
	return p.id
}

// GetPosition returns the current position of the pellet.
func (p *Pellet) GetPosition() common.Position {
	return p.position
}

// GetVelocity returns the pellet's velocity.
func (p *Pellet) GetVelocity() common.Velocity {
	return p.velocity
}

// GetRadius returns PelletRadius.
func (p *Pellet) GetRadius() float64 {
	return PelletRadius
}

// Advance moves the pellet and burns one frame of its lifetime.
func (p *Pellet) Advance() {
	p.position.Add(p.velocity)
	p.life--
}

// Expired reports whether the pellet has used up its lifetime.
func (p *Pellet) Expired() bool {
	return p.life <= 0
}

// IsOutOfBounds reports whether the pellet has left the screen.
func (p *Pellet) IsOutOfBounds(b Bounds) bool {
	return b.outside(p.position, PelletRadius)
}

// Hits reports whether the pellet touches a live target.
func (p *Pellet) Hits(t *Target) bool {
	return !t.IsDead() && overlaps(p, t)
}

// String representation for logging
func (p *Pellet) String() string {
	return fmt.Sprintf("Pellet[%s] Pos: %s Life: %d", p.id, p.position, p.life)
}

// Gun fires pellets from a fixed muzzle position.
type Gun struct {
	muzzle   common.Position
	noise    AimNoise
	cooldown int
}

// NewGun creates a gun at muzzle. A nil noise means perfect aim.
func NewGun(muzzle common.Position, noise AimNoise) *Gun {
	if noise == nil {
		noise = NoAimNoise
	}
	return &Gun{muzzle: muzzle, noise: noise}
}

// Muzzle returns where pellets leave the gun.
func (g *Gun) Muzzle() common.Position {
	return g.muzzle
}

// Ready reports whether the gun can fire this frame.
func (g *Gun) Ready() bool {
	return g.cooldown == 0
}

// Tick counts down the cooldown by one frame.
func (g *Gun) Tick() {
	if g.cooldown > 0 {
		g.cooldown--
	}
}

// Fire shoots a pellet at angle. Returns nil while the gun is cooling down.
func (g *Gun) Fire(angle float64) *Pellet {
	if !g.Ready() {
		return nil
	}
	g.cooldown = GunCooldown
	return NewPellet(g.muzzle, common.VelocityFromPolar(MuzzleSpeed, g.noise(angle)))
}

// FireAt shoots a pellet towards aim.
func (g *Gun) FireAt(aim common.Position) *Pellet {
	return g.Fire(math.Atan2(aim.Y-g.muzzle.Y, aim.X-g.muzzle.X))
}

// --- Aim noise ---

// NoAimNoise leaves the angle untouched.
func NoAimNoise(angle float64) float64 {
	return angle
}

// GaussianAimNoise adds normally distributed error with the given standard deviation.
func GaussianAimNoise(rng *rand.Rand, stdDev float64) AimNoise {
	if stdDev < 0 {
		stdDev = 0
	}
	return func(angle float64) float64 {
		return angle + rng.NormFloat64()*stdDev
	}
}

// UniformAimNoise adds error uniformly distributed within [-maxDelta, +maxDelta].
func UniformAimNoise(rng *rand.Rand, maxDelta float64) AimNoise {
	if maxDelta < 0 {
		maxDelta = 0
	}
	return func(angle float64) float64 {
		return angle + (rng.Float64()*2-1)*maxDelta
	}
}
