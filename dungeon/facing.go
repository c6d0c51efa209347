package dungeon

import "math"

// Facing is a compass direction, clockwise from North.
type Facing int

const (
	North Facing = iota
	East
	South
	West
)

var facingNames = [...]string{"north", "east", "south", "west"}

func (f Facing) String() string { return facingNames[f] }

func ParseFacing(s string) (Facing, bool) {
	for i, name := range facingNames {
		if name == s {
			return Facing(i), true
		}
	}
	return North, false
}

// Delta returns the grid step for one cell forward. Y grows southward.
func (f Facing) Delta() (dx, dy int) {
	switch f {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

// Turn rotates by quarter turns; positive is clockwise.
func (f Facing) Turn(quarters int) Facing {
	return Facing(((int(f)+quarters)%4 + 4) % 4)
}

// Angle returns the heading in radians, clockwise from North.
func (f Facing) Angle() float64 {
	return float64(f) * math.Pi / 2
}
