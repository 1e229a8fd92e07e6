package proj4_coordinate_converter

import (
	"fmt"
	"math"

	proj "github.com/xeonx/proj4"

	"github.com/lc1292131741/cesium/internal/converters"
	"github.com/lc1292131741/cesium/internal/geometry"
)

const wgs84GeodeticSrid = 4326

// proj4 definitions for the reference systems the converter knows about.
// Additional systems can be registered with RegisterSrid before first use.
var epsgDefinitions = map[int]string{
	4326:  "+proj=longlat +datum=WGS84 +no_defs",
	4978:  "+proj=geocent +datum=WGS84 +units=m +no_defs",
	3395:  "+proj=merc +lon_0=0 +k=1 +x_0=0 +y_0=0 +datum=WGS84 +units=m +no_defs",
	3857:  "+proj=merc +a=6378137 +b=6378137 +lat_ts=0 +lon_0=0 +x_0=0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +wktext +no_defs",
	32632: "+proj=utm +zone=32 +datum=WGS84 +units=m +no_defs",
	32633: "+proj=utm +zone=33 +datum=WGS84 +units=m +no_defs",
}

// RegisterSrid adds or replaces the proj4 definition for the given EPSG code.
func RegisterSrid(srid int, definition string) {
	epsgDefinitions[srid] = definition
}

type proj4CoordinateConverter struct {
	projections map[int]*proj.Proj
}

func NewProj4CoordinateConverter() converters.CoordinateConverter {
	return &proj4CoordinateConverter{
		projections: make(map[int]*proj.Proj),
	}
}

// Converts the given coordinate from the given source Srid to the given target srid
func (cc *proj4CoordinateConverter) ConvertCoordinateSrid(sourceSrid int, targetSrid int, coord geometry.Coordinate) (geometry.Coordinate, error) {
	if sourceSrid == targetSrid {
		return coord, nil
	}

	src, err := cc.initProjection(sourceSrid)
	if err != nil {
		return coord, err
	}
	dst, err := cc.initProjection(targetSrid)
	if err != nil {
		return coord, err
	}

	return executeConversion(coord, src, dst)
}

func (cc *proj4CoordinateConverter) ConvertToWGS84Geodetic(coord geometry.Coordinate, sourceSrid int) (geometry.Geodetic, error) {
	converted, err := cc.ConvertCoordinateSrid(sourceSrid, wgs84GeodeticSrid, coord)
	if err != nil {
		return geometry.Geodetic{}, err
	}
	return geometry.Geodetic{Lat: converted.Y, Lon: converted.X, Height: converted.Z}, nil
}

// Releases all initialized projection objects
func (cc *proj4CoordinateConverter) Cleanup() {
	for _, projection := range cc.projections {
		projection.Close()
	}
	cc.projections = make(map[int]*proj.Proj)
}

func (cc *proj4CoordinateConverter) initProjection(srid int) (*proj.Proj, error) {
	if projection, ok := cc.projections[srid]; ok {
		return projection, nil
	}

	definition, ok := epsgDefinitions[srid]
	if !ok {
		return nil, fmt.Errorf("unknown EPSG srid %d, no proj4 definition registered", srid)
	}

	projection, err := proj.InitPlus(definition)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize projection for EPSG srid %d: %w", srid, err)
	}

	cc.projections[srid] = projection
	return projection, nil
}

func executeConversion(coord geometry.Coordinate, src *proj.Proj, dst *proj.Proj) (geometry.Coordinate, error) {
	x, y, z := coordinateArraysForConversion(coord, src)

	if err := proj.TransformRaw(src, dst, x, y, z); err != nil {
		return coord, err
	}

	converted := geometry.Coordinate{X: x[0], Y: y[0], Z: z[0]}
	if dst.IsLatLong() {
		// proj4 angular units are radians
		converted.X *= 180.0 / math.Pi
		converted.Y *= 180.0 / math.Pi
	}
	return converted, nil
}

func coordinateArraysForConversion(coord geometry.Coordinate, src *proj.Proj) ([]float64, []float64, []float64) {
	x, y := coord.X, coord.Y
	if src.IsLatLong() {
		x *= math.Pi / 180.0
		y *= math.Pi / 180.0
	}
	return []float64{x}, []float64{y}, []float64{coord.Z}
}
