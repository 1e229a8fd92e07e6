package converters

import (
	"github.com/lc1292131741/cesium/internal/geometry"
)

type CoordinateConverter interface {
	ConvertCoordinateSrid(sourceSrid int, targetSrid int, coord geometry.Coordinate) (geometry.Coordinate, error)
	ConvertToWGS84Geodetic(coord geometry.Coordinate, sourceSrid int) (geometry.Geodetic, error)
	Cleanup()
}
