package ellipsoid

import (
	"math"

	"github.com/lc1292131741/cesium/internal/geometry"
)

const degToRad = math.Pi / 180.0
const radToDeg = 180.0 / math.Pi

// Ellipsoid describes a biaxial reference ellipsoid with semi-major axis A and
// semi-minor axis B, both in meters.
type Ellipsoid struct {
	A float64
	B float64
}

// WGS84 is the reference ellipsoid used by the scene unless stated otherwise.
var WGS84 = Ellipsoid{A: 6378137.0, B: 6356752.3142451793}

// firstEccentricitySquared returns e^2 = (a^2 - b^2) / a^2
func (e Ellipsoid) firstEccentricitySquared() float64 {
	return (e.A*e.A - e.B*e.B) / (e.A * e.A)
}

// secondEccentricitySquared returns e'^2 = (a^2 - b^2) / b^2
func (e Ellipsoid) secondEccentricitySquared() float64 {
	return (e.A*e.A - e.B*e.B) / (e.B * e.B)
}

// GeodeticToCartesian converts a lat/lon/height triple into an
// earth-centered earth-fixed coordinate.
func (e Ellipsoid) GeodeticToCartesian(g geometry.Geodetic) geometry.Coordinate {
	lat := g.Lat * degToRad
	lon := g.Lon * degToRad

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	e2 := e.firstEccentricitySquared()

	// prime vertical radius of curvature
	n := e.A / math.Sqrt(1.0-e2*sinLat*sinLat)

	return geometry.Coordinate{
		X: (n + g.Height) * cosLat * math.Cos(lon),
		Y: (n + g.Height) * cosLat * math.Sin(lon),
		Z: (n*(1.0-e2) + g.Height) * sinLat,
	}
}

// CartesianToGeodetic converts an earth-centered earth-fixed coordinate to a
// lat/lon/height triple using Bowring's single-pass approximation, which is
// accurate to well below a millimeter for points near the ellipsoid surface.
func (e Ellipsoid) CartesianToGeodetic(c geometry.Coordinate) geometry.Geodetic {
	e2 := e.firstEccentricitySquared()
	ep2 := e.secondEccentricitySquared()

	lon := math.Atan2(c.Y, c.X)
	p := math.Sqrt(c.X*c.X + c.Y*c.Y)

	if p == 0 {
		// on the rotation axis
		lat := math.Pi / 2
		if c.Z < 0 {
			lat = -lat
		}
		return geometry.Geodetic{
			Lat:    lat * radToDeg,
			Lon:    0,
			Height: math.Abs(c.Z) - e.B,
		}
	}

	theta := math.Atan2(c.Z*e.A, p*e.B)
	sinTheta := math.Sin(theta)
	cosTheta := math.Cos(theta)

	lat := math.Atan2(
		c.Z+ep2*e.B*sinTheta*sinTheta*sinTheta,
		p-e2*e.A*cosTheta*cosTheta*cosTheta,
	)

	sinLat := math.Sin(lat)
	n := e.A / math.Sqrt(1.0-e2*sinLat*sinLat)
	height := p/math.Cos(lat) - n

	return geometry.Geodetic{
		Lat:    lat * radToDeg,
		Lon:    lon * radToDeg,
		Height: height,
	}
}

// GeodeticSurfaceNormal computes the outward unit normal of the ellipsoid
// surface below the given world-space point.
func (e Ellipsoid) GeodeticSurfaceNormal(c geometry.Coordinate) geometry.Coordinate {
	oneOverA2 := 1.0 / (e.A * e.A)
	oneOverB2 := 1.0 / (e.B * e.B)
	n := geometry.Coordinate{
		X: c.X * oneOverA2,
		Y: c.Y * oneOverA2,
		Z: c.Z * oneOverB2,
	}
	return n.Normalize()
}
