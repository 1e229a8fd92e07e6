package geoid_elevation_corrector

import (
	"github.com/westphae/geomag/pkg/egm96"

	"github.com/lc1292131741/cesium/internal/converters"
)

// Converts elevations given relative to the EGM96 geoid (mean sea level) into
// elevations relative to the WGS84 ellipsoid by adding the local geoid
// undulation.
type GeoidElevationCorrector struct{}

func NewGeoidElevationCorrector() converters.ElevationCorrector {
	return &GeoidElevationCorrector{}
}

func (c *GeoidElevationCorrector) CorrectElevation(lon, lat, z float64) float64 {
	// A probe at ellipsoidal height 0 has MSL height -N, where N is the
	// undulation at this lat/lon.
	probe := egm96.NewLocationGeodetic(lat, lon, 0)
	msl, err := probe.HeightAboveMSL()
	if err != nil {
		// outside the EGM96 grid, leave the elevation uncorrected
		return z
	}
	return z - msl
}
