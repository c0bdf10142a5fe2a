package common

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestPosition_Add(t *testing.T) {
	p := NewPosition(400, 300)
	p.Add(NewVelocity(5, -2))

	if p.X != 405 || p.Y != 298 {
		t.Errorf("Position = %s, want (405, 298)", p)
	}
}

func TestVelocity_Scale(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		wantX  float64
		wantY  float64
	}{
		{"decelerate", 0.98, 4.9, -1.96},
		{"reverse", -1, -5, 2},
		{"stop", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewVelocity(5, -2)
			v.Scale(tt.factor)
			if math.Abs(v.X-tt.wantX) > eps || math.Abs(v.Y-tt.wantY) > eps {
				t.Errorf("Velocity = %s, want <%v, %v>", v, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestVelocity_RotateKeepsSpeed(t *testing.T) {
	v := NewVelocity(3, 4)
	v.Rotate(math.Pi / 2)

	if math.Abs(v.Speed()-5) > eps {
		t.Errorf("Speed() = %v, want 5", v.Speed())
	}
	if math.Abs(v.X+4) > eps || math.Abs(v.Y-3) > eps {
		t.Errorf("Velocity = %s, want <-4, 3>", v)
	}
}

func TestVelocityFromPolar(t *testing.T) {
	v := VelocityFromPolar(2, math.Pi)
	if math.Abs(v.X+2) > eps || math.Abs(v.Y) > eps {
		t.Errorf("Velocity = %s, want <-2, 0>", v)
	}
	if math.Abs(math.Abs(v.Heading())-math.Pi) > eps {
		t.Errorf("Heading() = %v, want ±π", v.Heading())
	}
}

func TestPosition_Distance(t *testing.T) {
	a := NewPosition(0, 0)
	b := NewPosition(3, 4)
	if d := a.Distance(b); math.Abs(d-5) > eps {
		t.Errorf("Distance() = %v, want 5", d)
	}
}
