package simulation

import (
	"skeet-sim/internal/prediction"
)

// Autopilot aims the gun by fitting each target's recent flight and leading the shot.
type Autopilot struct {
	// Horizon is how many frames ahead an intercept is searched for.
	Horizon int
	// MinSamples is how much history a target needs before it is considered.
	MinSamples int
}

// NewAutopilot creates an autopilot with defaults that suit MuzzleSpeed and PelletLifetime.
func NewAutopilot() *Autopilot {
	return &Autopilot{Horizon: PelletLifetime, MinSamples: 4}
}

// Aim fires at the target that can be intercepted soonest. It returns the pellet, or nil if
// the gun is not ready or no target can be reached.
func (a *Autopilot) Aim(s *Simulation) *Pellet {
	if s.gun == nil || !s.gun.Ready() {
		return nil
	}

	var (
		best   *Target
		bestK  int
		bestAt = s.gun.Muzzle()
	)
	for _, t := range s.targets {
		if t.IsDead() {
			continue
		}
		h := s.History(t.GetID())
		if len(h) < a.MinSamples {
			continue
		}
		tr, err := prediction.Fit(h)
		if err != nil {
			s.logger.Debug("trajectory fit failed", "id", t.GetID(), "err", err)
			continue
		}
		at, k, ok := prediction.Intercept(tr, h[len(h)-1].T, s.gun.Muzzle(), MuzzleSpeed, a.Horizon)
		if !ok || at.X < 0 || at.X > s.bounds.Width || at.Y < 0 || at.Y > s.bounds.Height {
			continue
		}
		if best == nil || k < bestK {
			best, bestK, bestAt = t, k, at
		}
	}
	if best == nil {
		return nil
	}

	s.logger.Debug("autopilot aiming", "id", best.GetID(), "at", bestAt, "frames", bestK)
	return s.FireAt(bestAt)
}
