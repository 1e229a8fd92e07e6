package terrain

import (
	"math"

	"github.com/lc1292131741/cesium/internal/converters"
)

// ProceduralSource generates deterministic seeded terrain from hash value
// noise, used to build heightmap levels without external data.
type ProceduralSource struct {
	Seed      int64
	Amplitude float64 // peak height in meters
	CellSize  float64 // lattice cell size in degrees
}

func NewProceduralSource(seed int64) *ProceduralSource {
	return &ProceduralSource{
		Seed:      seed,
		Amplitude: 800.0,
		CellSize:  0.05,
	}
}

func (s *ProceduralSource) hash2D(x, y int64) uint64 {
	h := uint64(s.Seed)
	h ^= uint64(x) * 0x45d9f3b
	h ^= uint64(y) * 0x45d9f3b * 3
	h = (h ^ (h >> 16)) * 0x45d9f3b
	h = (h ^ (h >> 16)) * 0x45d9f3b
	return h ^ (h >> 16)
}

func (s *ProceduralSource) lattice(x, y int64) float64 {
	return float64(s.hash2D(x, y)%100000) / 100000.0
}

// HeightAt returns the terrain height at lat/lon, meters above the ellipsoid.
// Two octaves of bilinear value noise.
func (s *ProceduralSource) HeightAt(lat, lon float64) float64 {
	return s.Amplitude * (0.75*s.octave(lat, lon, s.CellSize) +
		0.25*s.octave(lat, lon, s.CellSize/4))
}

func (s *ProceduralSource) octave(lat, lon, cell float64) float64 {
	fy := lat / cell
	fx := lon / cell
	y0 := int64(math.Floor(fy))
	x0 := int64(math.Floor(fx))
	ty := fy - float64(y0)
	tx := fx - float64(x0)

	h00 := s.lattice(x0, y0)
	h01 := s.lattice(x0+1, y0)
	h10 := s.lattice(x0, y0+1)
	h11 := s.lattice(x0+1, y0+1)

	top := h00 + (h01-h00)*tx
	bottom := h10 + (h11-h10)*tx
	return top + (bottom-top)*ty
}

// NewProceduralProvider builds a provider over the given lat/lon extent with
// numLevels refinement levels, each doubling the grid resolution of the one
// before it. Coarser levels decimate the source, so streamed-in refinement
// genuinely changes sampled heights.
func NewProceduralProvider(source *ProceduralSource, minLat, minLon, maxLat, maxLon float64, numLevels, baseRows, baseCols int, corrector converters.ElevationCorrector) (*HeightmapProvider, error) {
	levels := make([]*HeightmapLevel, 0, numLevels)
	rows, cols := baseRows, baseCols
	for i := 0; i < numLevels; i++ {
		heights := make([]float64, rows*cols)
		for r := 0; r < rows; r++ {
			lat := minLat + (maxLat-minLat)*float64(r)/float64(rows-1)
			for c := 0; c < cols; c++ {
				lon := minLon + (maxLon-minLon)*float64(c)/float64(cols-1)
				heights[r*cols+c] = source.HeightAt(lat, lon)
			}
		}
		level, err := NewHeightmapLevel(minLat, minLon, maxLat, maxLon, rows, cols, heights)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
		rows = rows*2 - 1
		cols = cols*2 - 1
	}
	return NewHeightmapProvider(corrector, levels...), nil
}
