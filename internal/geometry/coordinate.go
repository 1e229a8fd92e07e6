package geometry

import "math"

// Epsilon used to decide whether two world-space positions are the same point.
const PositionEpsilon = 1e-10

// Contains a world-space (earth-centered, earth-fixed) point or vector,
// X,Y,Z coords expressed in meters
type Coordinate struct {
	X float64
	Y float64
	Z float64
}

func NewCoordinate(x, y, z float64) *Coordinate {
	return &Coordinate{X: x, Y: y, Z: z}
}

func (c Coordinate) Add(other Coordinate) Coordinate {
	return Coordinate{X: c.X + other.X, Y: c.Y + other.Y, Z: c.Z + other.Z}
}

func (c Coordinate) Sub(other Coordinate) Coordinate {
	return Coordinate{X: c.X - other.X, Y: c.Y - other.Y, Z: c.Z - other.Z}
}

func (c Coordinate) MultiplyByScalar(s float64) Coordinate {
	return Coordinate{X: c.X * s, Y: c.Y * s, Z: c.Z * s}
}

func (c Coordinate) Dot(other Coordinate) float64 {
	return c.X*other.X + c.Y*other.Y + c.Z*other.Z
}

func (c Coordinate) Norm() float64 {
	return math.Sqrt(c.X*c.X + c.Y*c.Y + c.Z*c.Z)
}

// Normalize returns the unit vector with the same direction as c.
// The zero vector normalizes to itself.
func (c Coordinate) Normalize() Coordinate {
	n := c.Norm()
	if n == 0 {
		return Coordinate{}
	}
	return Coordinate{X: c.X / n, Y: c.Y / n, Z: c.Z / n}
}

func (c Coordinate) IsZero() bool {
	return c.X == 0 && c.Y == 0 && c.Z == 0
}

// EqualsEpsilon reports whether every component of c is within epsilon of other.
func (c Coordinate) EqualsEpsilon(other Coordinate, epsilon float64) bool {
	return math.Abs(c.X-other.X) <= epsilon &&
		math.Abs(c.Y-other.Y) <= epsilon &&
		math.Abs(c.Z-other.Z) <= epsilon
}
