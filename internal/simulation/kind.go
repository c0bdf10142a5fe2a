package simulation

import (
	"fmt"
	"strings"
)

// BehaviorKind selects the motion rule a target flies with.
type BehaviorKind int

const (
	Drift BehaviorKind = iota // straight line, slowing down
	Fall                      // pulled down by gravity
	Float                     // rises like a balloon and slows
	Chaos                     // randomly changes heading
)

// Gameplay names of the kinds.
const (
	Standard = Drift
	Sinker   = Fall
	Floater  = Float
	Crazy    = Chaos
)

// Profile holds the construction defaults of a kind.
type Profile struct {
	Kind   BehaviorKind
	Radius float64
	Speed  float64
	Points int
}

var profiles = [...]Profile{
	Drift: {Kind: Drift, Radius: 25.0, Speed: 5.0, Points: 10},
	Fall:  {Kind: Fall, Radius: 30.0, Speed: 4.5, Points: 20},
	Float: {Kind: Float, Radius: 30.0, Speed: 5.0, Points: 15},
	Chaos: {Kind: Chaos, Radius: 30.0, Speed: 4.5, Points: 30},
}

// ProfileFor returns the default radius, speed and points of a kind.
// Unknown kinds get the Drift profile.
func ProfileFor(kind BehaviorKind) Profile {
	return profiles[kind.normalize()]
}

// Valid reports whether k is one of the four kinds.
func (k BehaviorKind) Valid() bool {
	return k >= Drift && k <= Chaos
}

// normalize maps unknown kinds to Drift.
func (k BehaviorKind) normalize() BehaviorKind {
	if !k.Valid() {
		return Drift
	}
	return k
}

// Kinds lists every behavior kind.
func Kinds() []BehaviorKind {
	return []BehaviorKind{Drift, Fall, Float, Chaos}
}

// String returns the gameplay name of the kind.
func (k BehaviorKind) String() string {
	switch k {
	case Drift:
		return "standard"
	case Fall:
		return "sinker"
	case Float:
		return "floater"
	case Chaos:
		return "crazy"
	}
	return fmt.Sprintf("BehaviorKind(%d)", int(k))
}

// ParseKind accepts either the motion name (drift, fall, float, chaos)
// or the gameplay name (standard, sinker, floater, crazy).
func ParseKind(s string) (BehaviorKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "drift", "standard":
		return Drift, nil
	case "fall", "sinker":
		return Fall, nil
	case "float", "floater":
		return Float, nil
	case "chaos", "crazy":
		return Chaos, nil
	}
	return 0, fmt.Errorf("unknown behavior kind %q", s)
}
