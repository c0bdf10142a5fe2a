package simulation

import (
	"log/slog"
	"math"
	"skeet-sim/internal/common"
	"skeet-sim/internal/prediction"

	"gonum.org/v1/gonum/stat"
)

// HistoryLength is how many recent positions are kept per target.
const HistoryLength = 12

// FrameReport lists the targets removed during one Step.
type FrameReport struct {
	Frame   int
	Killed  []*Target // shot down, points awarded
	Escaped []*Target // left the screen alive, penalty applied
}

// Stats summarizes a session.
type Stats struct {
	Frames     int
	Score      int
	Hits       int
	Escapes    int
	ShotsFired int
	MeanAge    float64 // mean frames a removed target stayed on screen
	StdDevAge  float64
}

// Simulation owns the screen bounds and every live object, and drives them once per frame.
type Simulation struct {
	bounds  Bounds
	factory *Factory
	spawner *Spawner
	gun     *Gun
	pilot   *Autopilot
	logger  *slog.Logger

	targets []*Target
	pellets []*Pellet
	history map[string][]prediction.Sample

	frame         int
	score         int
	hits          int
	escapes       int
	shots         int
	removedAges   []float64
	spawnInterval int
}

// NewSimulation creates a simulation on a screen of the given bounds.
// The bounds are fixed for the lifetime of the simulation. A nil logger uses slog.Default().
func NewSimulation(bounds Bounds, factory *Factory, spawner *Spawner, gun *Gun, logger *slog.Logger) *Simulation {
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulation{
		bounds:  bounds,
		factory: factory,
		spawner: spawner,
		gun:     gun,
		logger:  logger,
		history: make(map[string][]prediction.Sample),
	}
}

// SetAutopilot lets a aim and fire the gun at the start of every frame. nil turns it off.
func (s *Simulation) SetAutopilot(a *Autopilot) {
	s.pilot = a
}

// SetSpawnInterval makes Step launch a random target every n frames. Zero disables spawning.
func (s *Simulation) SetSpawnInterval(n int) {
	s.spawnInterval = n
}

// Bounds returns the screen bounds fixed at construction.
func (s *Simulation) Bounds() Bounds {
	return s.bounds
}

// Factory returns the factory targets are built with.
func (s *Simulation) Factory() *Factory {
	return s.factory
}

// Gun returns the gun, or nil if the simulation has none.
func (s *Simulation) Gun() *Gun {
	return s.gun
}

// Frame returns how many frames have been stepped.
func (s *Simulation) Frame() int {
	return s.frame
}

// Score returns the running score.
func (s *Simulation) Score() int {
	return s.score
}

// Targets returns the live targets.
func (s *Simulation) Targets() []*Target {
	out := make([]*Target, len(s.targets))
	copy(out, s.targets)
	return out
}

// Pellets returns the pellets in flight.
func (s *Simulation) Pellets() []*Pellet {
	out := make([]*Pellet, len(s.pellets))
	copy(out, s.pellets)
	return out
}

// History returns the recent positions of a target, oldest first.
func (s *Simulation) History(targetID string) []prediction.Sample {
	return s.history[targetID]
}

// Add puts a target into play.
func (s *Simulation) Add(t *Target) {
	s.targets = append(s.targets, t)
	s.record(t)
	s.logger.Debug("target added", "id", t.GetID(), "kind", t.Kind(), "pos", t.GetPosition())
}

// SpawnRandom launches a target of a random kind from the left edge.
func (s *Simulation) SpawnRandom() *Target {
	if s.spawner == nil {
		return nil
	}
	t := s.spawner.Spawn(s.spawner.RandomKind())
	s.Add(t)
	return t
}

// Fire shoots at angle. It returns nil if there is no gun or it is cooling down.
func (s *Simulation) Fire(angle float64) *Pellet {
	if s.gun == nil {
		return nil
	}
	return s.addPellet(s.gun.Fire(angle))
}

// FireAt shoots towards aim.
func (s *Simulation) FireAt(aim common.Position) *Pellet {
	if s.gun == nil {
		return nil
	}
	return s.addPellet(s.gun.FireAt(aim))
}

func (s *Simulation) addPellet(p *Pellet) *Pellet {
	if p == nil {
		return nil
	}
	s.pellets = append(s.pellets, p)
	s.shots++
	s.logger.Debug("pellet fired", "id", p.GetID(), "vel", p.GetVelocity())
	return p
}

// Step advances every object by one frame, resolves hits and removes
// dead and escaped targets.
func (s *Simulation) Step() FrameReport {
	s.frame++
	report := FrameReport{Frame: s.frame}

	if s.gun != nil {
		s.gun.Tick()
	}
	if s.pilot != nil {
		s.pilot.Aim(s)
	}

	for _, t := range s.targets {
		t.Advance()
		s.record(t)
	}

	pellets := s.pellets[:0]
	for _, p := range s.pellets {
		p.Advance()
		hit := false
		for _, t := range s.targets {
			if p.Hits(t) {
				t.Kill()
				hit = true
				break
			}
		}
		if hit || p.Expired() || p.IsOutOfBounds(s.bounds) {
			continue
		}
		pellets = append(pellets, p)
	}
	s.pellets = pellets

	live := s.targets[:0]
	for _, t := range s.targets {
		switch {
		case t.IsDead():
			s.score += t.GetPoints()
			s.hits++
			report.Killed = append(report.Killed, t)
			s.logger.Debug("target killed", "id", t.GetID(), "kind", t.Kind(), "points", t.GetPoints(), "score", s.score)
		case t.IsOutOfBounds(s.bounds):
			t.SubtractPoints()
			s.score += t.GetPoints()
			s.escapes++
			report.Escaped = append(report.Escaped, t)
			s.logger.Debug("target escaped", "id", t.GetID(), "kind", t.Kind(), "points", t.GetPoints(), "score", s.score)
		default:
			live = append(live, t)
			continue
		}
		s.removedAges = append(s.removedAges, float64(t.Age()))
		delete(s.history, t.GetID())
	}
	clear(s.targets[len(live):])
	s.targets = live

	// New targets first move on the next frame.
	if s.spawnInterval > 0 && s.frame%s.spawnInterval == 0 {
		s.SpawnRandom()
	}

	return report
}

// Draw invokes the draw hook of every live target once.
func (s *Simulation) Draw() {
	for _, t := range s.targets {
		t.Draw()
	}
}

// Run executes the given number of frames and returns the session stats.
func (s *Simulation) Run(frames int) Stats {
	s.logger.Info("starting simulation", "bounds", s.bounds, "frames", frames)
	for i := 0; i < frames; i++ {
		s.Step()
	}
	st := s.Stats()
	s.logger.Info("simulation finished",
		"frames", st.Frames, "score", st.Score, "hits", st.Hits, "escapes", st.Escapes,
		"shots", st.ShotsFired, "meanAge", st.MeanAge)
	return st
}

// Stats summarizes the session so far.
func (s *Simulation) Stats() Stats {
	st := Stats{
		Frames:     s.frame,
		Score:      s.score,
		Hits:       s.hits,
		Escapes:    s.escapes,
		ShotsFired: s.shots,
	}
	switch len(s.removedAges) {
	case 0:
	case 1:
		st.MeanAge = s.removedAges[0]
	default:
		st.MeanAge, st.StdDevAge = stat.MeanStdDev(s.removedAges, nil)
	}
	if math.IsNaN(st.StdDevAge) {
		st.StdDevAge = 0
	}
	return st
}

func (s *Simulation) record(t *Target) {
	h := append(s.history[t.GetID()], prediction.Sample{T: float64(s.frame), Position: t.GetPosition()})
	if len(h) > HistoryLength {
		h = h[len(h)-HistoryLength:]
	}
	s.history[t.GetID()] = h
}
