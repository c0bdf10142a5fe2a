package simulation

import "skeet-sim/internal/common"

// Object is anything that moves across the screen once per frame.
type Object interface {
	// GetID returns the unique identifier of the object.
	GetID() string
	// GetPosition returns the current position of the object.
	GetPosition() common.Position
	// GetRadius returns the size of the object used for collisions and bounds.
	GetRadius() float64
	// Advance moves the object by one frame.
	Advance()
	// IsOutOfBounds reports whether the object has completely left the screen.
	IsOutOfBounds(b Bounds) bool
}

var (
	_ Object = (*Target)(nil)
	_ Object = (*Pellet)(nil)
)

// Bounds is the size of the playable screen. The origin is the top-left corner.
type Bounds struct {
	Width  float64
	Height float64
}

// NewBounds creates screen bounds of the given size.
func NewBounds(width, height float64) Bounds {
	return Bounds{Width: width, Height: height}
}

// outside reports whether a circle at p with radius r has fully left b.
func (b Bounds) outside(p common.Position, r float64) bool {
	return p.X < -r || p.X >= b.Width+r ||
		p.Y < -r || p.Y >= b.Height+r
}

// overlaps reports whether two objects touch.
func overlaps(a, b Object) bool {
	return a.GetPosition().Distance(b.GetPosition()) < a.GetRadius()+b.GetRadius()
}
