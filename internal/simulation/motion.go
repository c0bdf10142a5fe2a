package simulation

import (
	"math"
	"math/rand"
)

// Motion tuning, all per frame.
const (
	DriftDecel = 0.995 // standard targets lose 0.5% speed each frame
	Gravity    = 0.07  // downward acceleration of sinkers
	FloatDecel = 0.998 // floaters slow down, but less than standard targets
	Buoyancy   = 0.01  // upward push on floaters

	ChaosChance  = 1.0 / 15    // probability of a heading change in a frame
	ChaosMaxTurn = math.Pi / 4 // largest heading change, either way
)

// Mover applies one frame of motion to a target.
type Mover interface {
	Advance(t *Target)
}

// DriftMover flies in a straight line and gradually slows down.
type DriftMover struct {
	// Decel multiplies the velocity every frame. Zero means DriftDecel.
	Decel float64
}

// Advance moves the target, then applies drag.
func (d DriftMover) Advance(t *Target) {
	decel := d.Decel
	if decel == 0 {
		decel = DriftDecel
	}
	t.position.Add(t.velocity)
	t.velocity.Scale(decel)
}

// FallMover honors gravity. There is no terminal velocity.
type FallMover struct{}

// Advance moves the target, then accelerates it downward.
func (FallMover) Advance(t *Target) {
	t.position.Add(t.velocity)
	t.velocity.Y += Gravity
}

// FloatMover rises and slows until it settles at Buoyancy/(1-FloatDecel) upward.
type FloatMover struct{}

// Advance moves the target, then applies drag and buoyancy.
func (FloatMover) Advance(t *Target) {
	t.position.Add(t.velocity)
	t.velocity.Scale(FloatDecel)
	t.velocity.Y -= Buoyancy
}

// ChaosMover keeps its speed but now and then turns by up to ChaosMaxTurn.
type ChaosMover struct {
	rng *rand.Rand
}

// NewChaosMover creates a chaos mover drawing from rng.
func NewChaosMover(rng *rand.Rand) *ChaosMover {
	return &ChaosMover{rng: rng}
}

// Advance moves the target and sometimes turns it.
func (c *ChaosMover) Advance(t *Target) {
	t.position.Add(t.velocity)
	if c.rng.Float64() < ChaosChance {
		t.velocity.Rotate((c.rng.Float64()*2 - 1) * ChaosMaxTurn)
	}
}

// MoverFor maps a kind to its motion rule. rng is only used by Chaos.
// Unknown kinds fly like Drift, as everywhere else in the package.
func MoverFor(kind BehaviorKind, rng *rand.Rand) Mover {
	switch kind.normalize() {
	case Fall:
		return FallMover{}
	case Float:
		return FloatMover{}
	case Chaos:
		return NewChaosMover(rng)
	default:
		return DriftMover{}
	}
}
