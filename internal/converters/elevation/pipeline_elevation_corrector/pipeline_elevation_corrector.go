package pipeline_elevation_corrector

import "github.com/lc1292131741/cesium/internal/converters"

// Chains multiple elevation correctors, applying them in order.
type PipelineElevationCorrector struct {
	Correctors []converters.ElevationCorrector
}

func NewPipelineElevationCorrector(correctors ...converters.ElevationCorrector) converters.ElevationCorrector {
	return &PipelineElevationCorrector{
		Correctors: correctors,
	}
}

func (c *PipelineElevationCorrector) CorrectElevation(lon, lat, z float64) float64 {
	for _, corrector := range c.Correctors {
		z = corrector.CorrectElevation(lon, lat, z)
	}
	return z
}
