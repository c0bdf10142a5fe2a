package common

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Position represents a point on the 2D screen.
type Position r2.Vec

// Velocity represents a per-frame displacement.
type Velocity r2.Vec

// NewPosition creates a position at (x, y).
func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

// NewVelocity creates a velocity of (x, y) per frame.
func NewVelocity(x, y float64) Velocity {
	return Velocity{X: x, Y: y}
}

// VelocityFromPolar creates a velocity with the given speed and heading (radians, 0 = rightwards).
func VelocityFromPolar(speed, heading float64) Velocity {
	return Velocity{X: speed * math.Cos(heading), Y: speed * math.Sin(heading)}
}

// Add moves the position by one step of v.
func (p *Position) Add(v Velocity) {
	*p = Position(r2.Add(r2.Vec(*p), r2.Vec(v)))
}

// Distance calculates the Euclidean distance between two positions.
func (p Position) Distance(other Position) float64 {
	return r2.Norm(r2.Sub(r2.Vec(p), r2.Vec(other)))
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

// Scale multiplies both components by factor.
// A negative factor reverses direction, a factor in [0,1) slows down.
func (v *Velocity) Scale(factor float64) {
	*v = Velocity(r2.Scale(factor, r2.Vec(*v)))
}

// Rotate turns the velocity by alpha radians, keeping its magnitude.
func (v *Velocity) Rotate(alpha float64) {
	*v = Velocity(r2.Rotate(r2.Vec(*v), alpha, r2.Vec{}))
}

// Speed returns the magnitude of the velocity.
func (v Velocity) Speed() float64 {
	return r2.Norm(r2.Vec(v))
}

// Heading returns the direction of travel in radians.
func (v Velocity) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// String returns a string representation of the velocity.
func (v Velocity) String() string {
	return fmt.Sprintf("<%.3f, %.3f>", v.X, v.Y)
}
