package ellipsoid

import (
	"math"
	"testing"

	"github.com/lc1292131741/cesium/internal/geometry"
)

func TestGeodeticToCartesianKnownPoints(t *testing.T) {
	cases := []struct {
		name     string
		geodetic geometry.Geodetic
		expected geometry.Coordinate
	}{
		{"equator prime meridian", geometry.Geodetic{Lat: 0, Lon: 0}, geometry.Coordinate{X: WGS84.A}},
		{"equator 90E", geometry.Geodetic{Lat: 0, Lon: 90}, geometry.Coordinate{Y: WGS84.A}},
		{"north pole", geometry.Geodetic{Lat: 90, Lon: 0}, geometry.Coordinate{Z: WGS84.B}},
		{"south pole", geometry.Geodetic{Lat: -90, Lon: 0}, geometry.Coordinate{Z: -WGS84.B}},
	}

	for _, tc := range cases {
		got := WGS84.GeodeticToCartesian(tc.geodetic)
		if !got.EqualsEpsilon(tc.expected, 1e-6) {
			t.Fatalf("%s: expected %+v, got %+v", tc.name, tc.expected, got)
		}
	}
}

func TestCartesianGeodeticRoundTrip(t *testing.T) {
	cases := []geometry.Geodetic{
		{Lat: 0, Lon: 0, Height: 0},
		{Lat: 46.2, Lon: 11.1, Height: 1520},
		{Lat: -33.9, Lon: 151.2, Height: 80},
		{Lat: 78.2, Lon: 15.6, Height: -40},
		{Lat: -89.5, Lon: -179.5, Height: 2800},
	}

	for _, g := range cases {
		c := WGS84.GeodeticToCartesian(g)
		back := WGS84.CartesianToGeodetic(c)
		if math.Abs(back.Lat-g.Lat) > 1e-7 || math.Abs(back.Lon-g.Lon) > 1e-7 {
			t.Fatalf("round trip moved %+v to %+v", g, back)
		}
		if math.Abs(back.Height-g.Height) > 1e-2 {
			t.Fatalf("round trip height %f became %f", g.Height, back.Height)
		}
	}
}

func TestCartesianToGeodeticOnRotationAxis(t *testing.T) {
	g := WGS84.CartesianToGeodetic(geometry.Coordinate{Z: WGS84.B + 100})
	if math.Abs(g.Lat-90) > 1e-9 {
		t.Fatalf("expected the north pole, got lat %f", g.Lat)
	}
	if math.Abs(g.Height-100) > 1e-6 {
		t.Fatalf("expected height 100, got %f", g.Height)
	}
}

func TestGeodeticSurfaceNormal(t *testing.T) {
	cases := []struct {
		name     string
		point    geometry.Coordinate
		expected geometry.Coordinate
	}{
		{"equator prime meridian", geometry.Coordinate{X: WGS84.A}, geometry.Coordinate{X: 1}},
		{"equator 90E", geometry.Coordinate{Y: WGS84.A}, geometry.Coordinate{Y: 1}},
		{"north pole", geometry.Coordinate{Z: WGS84.B}, geometry.Coordinate{Z: 1}},
	}

	for _, tc := range cases {
		got := WGS84.GeodeticSurfaceNormal(tc.point)
		if !got.EqualsEpsilon(tc.expected, 1e-9) {
			t.Fatalf("%s: expected %+v, got %+v", tc.name, tc.expected, got)
		}
	}
}

func TestGeodeticSurfaceNormalIsUnit(t *testing.T) {
	points := []geometry.Geodetic{
		{Lat: 12, Lon: 34}, {Lat: -45, Lon: 170}, {Lat: 67, Lon: -120},
	}
	for _, g := range points {
		n := WGS84.GeodeticSurfaceNormal(WGS84.GeodeticToCartesian(g))
		if math.Abs(n.Norm()-1) > 1e-12 {
			t.Fatalf("normal at %+v has length %f", g, n.Norm())
		}
	}
}
