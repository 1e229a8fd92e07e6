package terrain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lc1292131741/cesium/internal/converters"
	"github.com/lc1292131741/cesium/internal/geometry"
)

// Number of decimal digits kept when turning a lat/lon pair into a pending
// sample key. Keeps float formatting jitter from splitting identical
// coordinates across map entries.
const sampleKeyPrecision = 9

// HeightmapLevel is one resolution level of a regular lat/lon height grid.
// Heights are stored row-major, row 0 at minLat, and are meters above the
// reference ellipsoid.
type HeightmapLevel struct {
	minLat, minLon float64
	maxLat, maxLon float64
	rows, cols     int
	heights        []float64
}

func NewHeightmapLevel(minLat, minLon, maxLat, maxLon float64, rows, cols int, heights []float64) (*HeightmapLevel, error) {
	if rows < 2 || cols < 2 {
		return nil, errors.New("heightmap level needs at least a 2x2 grid")
	}
	if len(heights) != rows*cols {
		return nil, fmt.Errorf("heightmap level expects %d samples, got %d", rows*cols, len(heights))
	}
	if minLat >= maxLat || minLon >= maxLon {
		return nil, errors.New("heightmap level bounds are empty or inverted")
	}
	return &HeightmapLevel{
		minLat: minLat, minLon: minLon,
		maxLat: maxLat, maxLon: maxLon,
		rows: rows, cols: cols,
		heights: heights,
	}, nil
}

// NewHeightmapLevelFromSrid builds a level whose corner coordinates are given
// in an arbitrary EPSG reference system, converting the bounds to WGS84.
func NewHeightmapLevelFromSrid(minX, minY, maxX, maxY float64, srid int, rows, cols int, heights []float64, converter converters.CoordinateConverter) (*HeightmapLevel, error) {
	min, err := converter.ConvertToWGS84Geodetic(geometry.Coordinate{X: minX, Y: minY}, srid)
	if err != nil {
		return nil, err
	}
	max, err := converter.ConvertToWGS84Geodetic(geometry.Coordinate{X: maxX, Y: maxY}, srid)
	if err != nil {
		return nil, err
	}
	return NewHeightmapLevel(min.Lat, min.Lon, max.Lat, max.Lon, rows, cols, heights)
}

// Sample bilinearly interpolates the height at lat/lon. Returns false when
// the coordinate falls outside the level's coverage.
func (l *HeightmapLevel) Sample(lat, lon float64) (float64, bool) {
	if lat < l.minLat || lat > l.maxLat || lon < l.minLon || lon > l.maxLon {
		return 0, false
	}

	fy := (lat - l.minLat) / (l.maxLat - l.minLat) * float64(l.rows-1)
	fx := (lon - l.minLon) / (l.maxLon - l.minLon) * float64(l.cols-1)

	y0 := int(fy)
	x0 := int(fx)
	if y0 >= l.rows-1 {
		y0 = l.rows - 2
	}
	if x0 >= l.cols-1 {
		x0 = l.cols - 2
	}
	ty := fy - float64(y0)
	tx := fx - float64(x0)

	h00 := l.heights[y0*l.cols+x0]
	h01 := l.heights[y0*l.cols+x0+1]
	h10 := l.heights[(y0+1)*l.cols+x0]
	h11 := l.heights[(y0+1)*l.cols+x0+1]

	top := h00 + (h01-h00)*tx
	bottom := h10 + (h11-h10)*tx
	return top + (bottom-top)*ty, true
}

type pendingSample struct {
	coord     geometry.Geodetic
	done      SampleCallback
	cancelled bool
}

// HeightmapProvider serves heights from a stack of heightmap levels ordered
// coarse to fine. The coarsest level is resident immediately; each Process
// call streams further levels in, simulating progressive terrain refinement.
// Pending samples resolve once every level is resident.
type HeightmapProvider struct {
	levels    []*HeightmapLevel
	resident  int
	corrector converters.ElevationCorrector
	pending   map[string][]*pendingSample
	keyOrder  []string
}

func NewHeightmapProvider(corrector converters.ElevationCorrector, levels ...*HeightmapLevel) *HeightmapProvider {
	resident := 0
	if len(levels) > 0 {
		resident = 1
	}
	return &HeightmapProvider{
		levels:    levels,
		resident:  resident,
		corrector: corrector,
		pending:   make(map[string][]*pendingSample),
	}
}

func (p *HeightmapProvider) GetHeight(coord geometry.Geodetic) (float64, bool) {
	// finest resident level wins
	for i := p.resident - 1; i >= 0; i-- {
		if h, ok := p.levels[i].Sample(coord.Lat, coord.Lon); ok {
			return p.correct(coord, h), true
		}
	}
	return 0, false
}

func (p *HeightmapProvider) SampleHeight(coord geometry.Geodetic, done SampleCallback) *SampleHandle {
	key := sampleKey(coord)
	sample := &pendingSample{coord: coord, done: done}
	if _, ok := p.pending[key]; !ok {
		p.keyOrder = append(p.keyOrder, key)
	}
	p.pending[key] = append(p.pending[key], sample)

	return NewSampleHandle(func() {
		sample.cancelled = true
	})
}

func (p *HeightmapProvider) Process(budget int) {
	for i := 0; i < budget && p.resident < len(p.levels); i++ {
		p.resident++
	}
	if p.resident < len(p.levels) {
		// still refining, keep samples pending
		return
	}

	keys := p.keyOrder
	pending := p.pending
	p.keyOrder = nil
	p.pending = make(map[string][]*pendingSample)

	for _, key := range keys {
		for _, sample := range pending[key] {
			if sample.cancelled {
				continue
			}
			h, ok := p.GetHeight(sample.coord)
			if !ok {
				h = 0
			}
			refined := sample.coord
			refined.Height = h
			sample.done(refined)
		}
	}
}

// FullyResident reports whether all refinement levels have streamed in.
func (p *HeightmapProvider) FullyResident() bool {
	return p.resident == len(p.levels)
}

func (p *HeightmapProvider) correct(coord geometry.Geodetic, h float64) float64 {
	if p.corrector == nil {
		return h
	}
	return p.corrector.CorrectElevation(coord.Lon, coord.Lat, h)
}

func sampleKey(coord geometry.Geodetic) string {
	lat := decimal.NewFromFloat(coord.Lat).Round(sampleKeyPrecision)
	lon := decimal.NewFromFloat(coord.Lon).Round(sampleKeyPrecision)
	return lat.String() + "/" + lon.String()
}
