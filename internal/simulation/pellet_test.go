package simulation

import (
	"math"
	"math/rand"
	"skeet-sim/internal/common"
	"testing"
)

func TestGun_Cooldown(t *testing.T) {
	g := NewGun(common.NewPosition(800, 600), nil)

	if p := g.Fire(0); p == nil {
		t.Fatal("first shot should fire")
	}
	if p := g.Fire(0); p != nil {
		t.Fatal("gun should be cooling down")
	}
	for i := 0; i < GunCooldown; i++ {
		g.Tick()
	}
	if !g.Ready() {
		t.Fatalf("gun should be ready after %d ticks", GunCooldown)
	}
}

func TestGun_FireAt(t *testing.T) {
	g := NewGun(common.NewPosition(100, 100), nil)
	p := g.FireAt(common.NewPosition(100, 0))

	v := p.GetVelocity()
	if math.Abs(v.X) > eps || math.Abs(v.Y+MuzzleSpeed) > eps {
		t.Errorf("Velocity = %s, want <0, %v>", v, -MuzzleSpeed)
	}
}

func TestAimNoise(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	uniform := UniformAimNoise(rng, 0.1)
	for i := 0; i < 100; i++ {
		if d := uniform(1.0) - 1.0; math.Abs(d) > 0.1 {
			t.Fatalf("uniform noise %v exceeds 0.1", d)
		}
	}

	if got := GaussianAimNoise(rng, -1)(0.5); got != 0.5 {
		t.Errorf("negative stddev should clamp to no noise, got %v", got)
	}
	if got := NoAimNoise(0.3); got != 0.3 {
		t.Errorf("NoAimNoise(0.3) = %v", got)
	}
}

func TestPellet_Expires(t *testing.T) {
	p := NewPellet(common.NewPosition(0, 0), common.NewVelocity(1, 0))
	for i := 0; i < PelletLifetime-1; i++ {
		p.Advance()
	}
	if p.Expired() {
		t.Fatal("pellet expired early")
	}
	p.Advance()
	if !p.Expired() {
		t.Error("pellet should expire after its lifetime")
	}
}

func TestPellet_Hits(t *testing.T) {
	tgt := NewTarget(Drift, DriftMover{}, common.NewPosition(50, 50), common.Velocity{}, 25, 10)

	near := NewPellet(common.NewPosition(50, 76), common.Velocity{})
	far := NewPellet(common.NewPosition(50, 78), common.Velocity{})

	if !near.Hits(tgt) {
		t.Error("pellet 26 away should hit a radius 25 target")
	}
	if far.Hits(tgt) {
		t.Error("pellet 28 away should miss")
	}

	tgt.Kill()
	if near.Hits(tgt) {
		t.Error("dead targets cannot be hit")
	}
}
