package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"skeet-sim/internal/common"
	"testing"
)

const eps = 1e-9

func newTestTarget(kind BehaviorKind, mover Mover, vel common.Velocity) *Target {
	return NewTarget(kind, mover, common.NewPosition(400, 300), vel, 25, 10)
}

func TestDriftMover(t *testing.T) {
	tgt := newTestTarget(Drift, DriftMover{Decel: 0.98}, common.NewVelocity(5, 0))

	tgt.Advance()

	pos, vel := tgt.GetPosition(), tgt.GetVelocity()
	if math.Abs(pos.X-405) > eps || math.Abs(pos.Y-300) > eps {
		t.Errorf("Position = %s, want (405, 300)", pos)
	}
	if math.Abs(vel.X-4.9) > eps || math.Abs(vel.Y) > eps {
		t.Errorf("Velocity = %s, want <4.9, 0>", vel)
	}
}

func TestDriftMover_DefaultDecel(t *testing.T) {
	tgt := newTestTarget(Drift, DriftMover{}, common.NewVelocity(5, 0))

	tgt.Advance()

	if vx := tgt.GetVelocity().X; math.Abs(vx-5*DriftDecel) > eps {
		t.Errorf("Velocity.X = %v, want %v", vx, 5*DriftDecel)
	}
	if DriftDecel >= FloatDecel {
		t.Errorf("DriftDecel = %v, want it below FloatDecel %v", DriftDecel, FloatDecel)
	}
}

func TestMovers_PositionMovesByStartVelocity(t *testing.T) {
	movers := map[string]Mover{
		"drift": DriftMover{},
		"fall":  FallMover{},
		"float": FloatMover{},
		"chaos": NewChaosMover(rand.New(rand.NewSource(7))),
	}

	for name, m := range movers {
		t.Run(name, func(t *testing.T) {
			tgt := newTestTarget(Drift, m, common.NewVelocity(3, -2))
			for i := 0; i < 50; i++ {
				before, v := tgt.GetPosition(), tgt.GetVelocity()
				tgt.Advance()
				after := tgt.GetPosition()
				if math.Abs(after.X-(before.X+v.X)) > eps || math.Abs(after.Y-(before.Y+v.Y)) > eps {
					t.Fatalf("frame %d: moved %s -> %s with velocity %s", i, before, after, v)
				}
			}
		})
	}
}

func TestFallMover_VerticalSpeedKeepsGrowing(t *testing.T) {
	tgt := newTestTarget(Fall, FallMover{}, common.NewVelocity(4, -3))

	prev := tgt.GetVelocity().Y
	for i := 0; i < 500; i++ {
		tgt.Advance()
		vy := tgt.GetVelocity().Y
		if vy <= prev {
			t.Fatalf("frame %d: vertical speed %v did not grow from %v", i, vy, prev)
		}
		if math.Abs(vy-prev-Gravity) > eps {
			t.Fatalf("frame %d: vertical speed grew by %v, want %v", i, vy-prev, Gravity)
		}
		prev = vy
	}
	if vx := tgt.GetVelocity().X; vx != 4 {
		t.Errorf("horizontal speed = %v, want 4 (unchanged)", vx)
	}
}

func TestFloatMover_SettlesAtTerminalRise(t *testing.T) {
	terminal := -Buoyancy / (1 - FloatDecel)

	for _, startY := range []float64{0, 3} {
		tgt := newTestTarget(Float, FloatMover{}, common.NewVelocity(5, startY))
		prev := tgt.GetVelocity().Y
		for i := 0; i < 8000; i++ {
			tgt.Advance()
			vy := tgt.GetVelocity().Y
			if vy < terminal-eps {
				t.Fatalf("start %v, frame %d: vertical speed %v overshot %v", startY, i, vy, terminal)
			}
			if vy > prev+eps {
				t.Fatalf("start %v, frame %d: vertical speed %v rose from %v", startY, i, vy, prev)
			}
			prev = vy
		}

		vel := tgt.GetVelocity()
		if math.Abs(vel.Y-terminal) > 1e-3 || math.Abs(vel.X) > 1e-3 {
			t.Errorf("start %v: Velocity = %s, want <0, %v>", startY, vel, terminal)
		}
	}
}

func TestChaosMover_KeepsSpeedAndBoundsTurns(t *testing.T) {
	tgt := newTestTarget(Chaos, NewChaosMover(rand.New(rand.NewSource(42))), common.NewVelocity(4.5, 0))

	turns := 0
	for i := 0; i < 1000; i++ {
		before := tgt.GetVelocity()
		tgt.Advance()
		after := tgt.GetVelocity()

		if math.Abs(after.Speed()-4.5) > 1e-6 {
			t.Fatalf("frame %d: speed = %v, want 4.5", i, after.Speed())
		}
		turn := math.Remainder(after.Heading()-before.Heading(), 2*math.Pi)
		if math.Abs(turn) > ChaosMaxTurn+eps {
			t.Fatalf("frame %d: turned %v, limit %v", i, turn, ChaosMaxTurn)
		}
		if turn != 0 {
			turns++
		}
	}
	if turns == 0 {
		t.Error("chaos target never changed heading in 1000 frames")
	}
}

func TestChaosMover_SameSeedSameFlight(t *testing.T) {
	fly := func() []float64 {
		tgt := newTestTarget(Chaos, NewChaosMover(rand.New(rand.NewSource(99))), common.NewVelocity(0, 4.5))
		headings := make([]float64, 200)
		for i := range headings {
			tgt.Advance()
			headings[i] = tgt.GetVelocity().Heading()
		}
		return headings
	}

	a, b := fly(), fly()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("frame %d: heading %v != %v", i, a[i], b[i])
		}
	}
}

func TestMoverFor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		kind BehaviorKind
		want string
	}{
		{Drift, "simulation.DriftMover"},
		{Fall, "simulation.FallMover"},
		{Float, "simulation.FloatMover"},
		{Chaos, "*simulation.ChaosMover"},
		{BehaviorKind(4), "simulation.DriftMover"},
		{BehaviorKind(-1), "simulation.DriftMover"},
	}
	for _, tt := range tests {
		got := MoverFor(tt.kind, rng)
		if name := fmt.Sprintf("%T", got); name != tt.want {
			t.Errorf("MoverFor(%s) = %s, want %s", tt.kind, name, tt.want)
		}
	}
}
