package terrain

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/glog"

	"github.com/lc1292131741/cesium/internal/converters"
	"github.com/lc1292131741/cesium/tools"
)

// LoadHeightmapLevel reads a heightmap grid from a CSV file.
//
// The first line holds the bounds: minX,minY,maxX,maxY (lat/lon order for
// EPSG 4326). Every following line is one grid row of comma-separated heights,
// row 0 at the minimum latitude. Bounds in a non-4326 srid are converted to
// WGS84 through the given converter.
func LoadHeightmapLevel(filePath string, srid int, converter converters.CoordinateConverter) (*HeightmapLevel, error) {
	file := tools.OpenFileOrFail(filePath)
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return nil, fmt.Errorf("heightmap file %s is empty", filePath)
	}

	bounds, err := parseFloats(scanner.Text())
	if err != nil || len(bounds) != 4 {
		return nil, fmt.Errorf("heightmap file %s: bad bounds line", filePath)
	}

	var heights []float64
	rows, cols := 0, 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		row, err := parseFloats(line)
		if err != nil {
			return nil, fmt.Errorf("heightmap file %s row %d: %w", filePath, rows, err)
		}
		if cols == 0 {
			cols = len(row)
		} else if len(row) != cols {
			return nil, fmt.Errorf("heightmap file %s row %d: expected %d columns, got %d", filePath, rows, cols, len(row))
		}
		heights = append(heights, row...)
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	glog.Infof("loaded heightmap %s: %dx%d samples, srid %d", filePath, rows, cols, srid)

	if srid != 4326 {
		return NewHeightmapLevelFromSrid(bounds[0], bounds[1], bounds[2], bounds[3], srid, rows, cols, heights, converter)
	}
	return NewHeightmapLevel(bounds[0], bounds[1], bounds[2], bounds[3], rows, cols, heights)
}

func parseFloats(line string) ([]float64, error) {
	fields := strings.Split(line, ",")
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
