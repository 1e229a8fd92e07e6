package geometry

import "math"

// Contains a geodetic point relative to a reference ellipsoid.
// Lat and Lon are in degrees, Height in meters above the ellipsoid.
type Geodetic struct {
	Lat    float64
	Lon    float64
	Height float64
}

func NewGeodetic(lat, lon, height float64) *Geodetic {
	return &Geodetic{Lat: lat, Lon: lon, Height: height}
}

// EqualsSurfaceEpsilon reports whether g and other describe the same
// latitude/longitude within epsilon degrees, ignoring height.
func (g Geodetic) EqualsSurfaceEpsilon(other Geodetic, epsilon float64) bool {
	return math.Abs(g.Lat-other.Lat) <= epsilon &&
		math.Abs(g.Lon-other.Lon) <= epsilon
}
