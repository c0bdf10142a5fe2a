package simulation

import (
	"math/rand"
	"skeet-sim/internal/common"
)

// launch describes where on the left edge a kind enters and how steeply it climbs.
// Bands are fractions of the screen height; lift is a fraction of the speed, negative is up.
type launch struct {
	bandLow, bandHigh float64
	liftLow, liftHigh float64
}

var launches = [...]launch{
	Drift: {bandLow: 0.25, bandHigh: 0.75, liftLow: -0.2, liftHigh: 0.2},
	Fall:  {bandLow: 0.10, bandHigh: 0.60, liftLow: -1.0 / 3, liftHigh: 0},
	Float: {bandLow: 0.50, bandHigh: 0.90, liftLow: 0, liftHigh: 1.0 / 3},
	Chaos: {bandLow: 0.10, bandHigh: 0.90, liftLow: -0.5, liftHigh: 0.5},
}

// Spawner launches targets from the left edge of the screen.
type Spawner struct {
	factory *Factory
	bounds  Bounds
	rng     *rand.Rand
	opts    []Option
}

// NewSpawner creates a spawner. opts are applied to every target it creates.
func NewSpawner(factory *Factory, bounds Bounds, seed int64, opts ...Option) *Spawner {
	return &Spawner{
		factory: factory,
		bounds:  bounds,
		rng:     rand.New(rand.NewSource(seed)),
		opts:    opts,
	}
}

// RandomKind picks one of the kinds uniformly.
func (s *Spawner) RandomKind() BehaviorKind {
	kinds := Kinds()
	return kinds[s.rng.Intn(len(kinds))]
}

// Spawn creates a target of kind at x=0, flying right. Unknown kinds spawn as Drift.
func (s *Spawner) Spawn(kind BehaviorKind) *Target {
	t := s.factory.Create(kind, s.opts...)
	l := launches[t.Kind()]
	speed := t.GetVelocity().Speed()

	y := s.between(l.bandLow, l.bandHigh) * s.bounds.Height
	t.SetPosition(common.NewPosition(0, y))
	t.SetVelocity(common.NewVelocity(
		speed+s.between(-0.5, 0.5),
		speed*s.between(l.liftLow, l.liftHigh),
	))
	return t
}

func (s *Spawner) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
