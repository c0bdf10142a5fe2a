package simulation

import (
	"fmt"
	"skeet-sim/internal/common"

	"github.com/google/uuid"
)

// Target is something that flies across the screen to be shot.
type Target struct {
	id        string
	kind      BehaviorKind
	position  common.Position
	velocity  common.Velocity
	radius    float64
	points    int
	dead      bool
	penalized bool
	age       int // frames advanced so far

	mover  Mover
	drawer Drawer
}

// NewTarget creates a live target bound to mover. radius is fixed for the lifetime of the target;
// a non-positive radius is replaced by the kind's default.
func NewTarget(kind BehaviorKind, mover Mover, pos common.Position, vel common.Velocity, radius float64, points int) *Target {
	if !(radius > 0) {
		radius = ProfileFor(kind).Radius
	}
	return &Target{
		id:       fmt.Sprintf("target-%s", uuid.NewString()[:8]),
		kind:     kind,
		position: pos,
		velocity: vel,
		radius:   radius,
		points:   points,
		mover:    mover,
	}
}

// GetID returns the unique identifier of the target.
func (t *Target) GetID() string {
	return t.id
}

// Kind returns the behavior kind the target was created with.
func (t *Target) Kind() BehaviorKind {
	return t.kind
}

// GetPosition returns the current position of the target.
func (t *Target) GetPosition() common.Position {
	return t.position
}

// SetPosition places the target. Used when spawning.
func (t *Target) SetPosition(pos common.Position) {
	t.position = pos
}

// GetVelocity returns the current velocity of the target.
func (t *Target) GetVelocity() common.Velocity {
	return t.velocity
}

// SetVelocity sets the launch velocity. Used when spawning.
func (t *Target) SetVelocity(vel common.Velocity) {
	t.velocity = vel
}

// GetRadius returns the size of the target, used as the bounds margin and for hits.
func (t *Target) GetRadius() float64 {
	return t.radius
}

// GetPoints returns what the target is worth; negative once penalized.
func (t *Target) GetPoints() int {
	return t.points
}

// Age returns how many frames the target has been advanced.
func (t *Target) Age() int {
	return t.age
}

// Advance moves the target by one frame according to its motion rule.
func (t *Target) Advance() {
	t.mover.Advance(t)
	t.age++
}

// Kill marks the target as hit. A dead target never comes back.
func (t *Target) Kill() {
	t.dead = true
}

// IsDead reports whether the target has been killed.
func (t *Target) IsDead() bool {
	return t.dead
}

// IsOutOfBounds reports whether the target has completely left the screen.
// The radius is the margin, so a target touching the edge is still in.
func (t *Target) IsOutOfBounds(b Bounds) bool {
	return b.outside(t.position, t.radius)
}

// SubtractPoints turns the point value into a penalty. Only the first call has an
// effect; it reports whether the penalty was applied.
func (t *Target) SubtractPoints() bool {
	if t.penalized {
		return false
	}
	t.penalized = true
	t.points = -t.points
	return true
}

// SetDrawer binds the rendering hook.
func (t *Target) SetDrawer(d Drawer) {
	t.drawer = d
}

// Draw hands the target to its drawer, if any.
func (t *Target) Draw() {
	if t.drawer != nil {
		t.drawer.DrawTarget(t)
	}
}

// String representation for logging
func (t *Target) String() string {
	return fmt.Sprintf("Target[%s %s] Pos: %s Vel: %s Points: %d", t.id, t.kind, t.position, t.velocity, t.points)
}
