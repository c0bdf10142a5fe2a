package simulation

import (
	"math/rand"
	"skeet-sim/internal/common"
)

// Option overrides a default of Factory.Create.
type Option func(*blueprint)

type blueprint struct {
	Profile
	position common.Position
	heading  float64
	drawer   Drawer
}

// WithRadius overrides the default radius. Non-positive values are ignored.
func WithRadius(r float64) Option {
	return func(s *blueprint) {
		if r > 0 {
			s.Radius = r
		}
	}
}

// WithSpeed overrides the default launch speed.
func WithSpeed(speed float64) Option {
	return func(s *blueprint) { s.Speed = speed }
}

// WithPoints overrides the default point value.
func WithPoints(points int) Option {
	return func(s *blueprint) { s.Points = points }
}

// WithPosition sets the starting position. Defaults to the origin.
func WithPosition(pos common.Position) Option {
	return func(s *blueprint) { s.position = pos }
}

// WithHeading sets the launch direction in radians. Defaults to 0, flying right.
func WithHeading(heading float64) Option {
	return func(s *blueprint) { s.heading = heading }
}

// WithDrawer binds a rendering hook.
func WithDrawer(d Drawer) Option {
	return func(s *blueprint) { s.drawer = d }
}

// Factory builds fully configured targets.
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a factory. The same seed yields the same chaos sequences.
func NewFactory(seed int64) *Factory {
	return &Factory{rng: rand.New(rand.NewSource(seed))}
}

// Create builds a target of the given kind with the kind's defaults unless overridden.
// Unknown kinds are built as Drift.
func (f *Factory) Create(kind BehaviorKind, opts ...Option) *Target {
	kind = kind.normalize()
	s := blueprint{Profile: ProfileFor(kind)}
	for _, opt := range opts {
		opt(&s)
	}

	// Every target owns its random source so no two targets share mutable state.
	mover := MoverFor(kind, rand.New(rand.NewSource(f.rng.Int63())))
	t := NewTarget(kind, mover, s.position, common.VelocityFromPolar(s.Speed, s.heading), s.Radius, s.Points)
	t.SetDrawer(s.drawer)
	return t
}
