package pipeline_elevation_corrector

import (
	"testing"

	"github.com/lc1292131741/cesium/internal/converters"
	"github.com/lc1292131741/cesium/internal/converters/elevation/offset_elevation_corrector"
)

type scalingCorrector struct{ factor float64 }

func (c scalingCorrector) CorrectElevation(lon, lat, z float64) float64 {
	return z * c.factor
}

func TestPipelineAppliesCorrectorsInOrder(t *testing.T) {
	pipeline := NewPipelineElevationCorrector(
		offset_elevation_corrector.NewOffsetElevationCorrector(10),
		scalingCorrector{factor: 2},
	)

	// (5 + 10) * 2, not 5*2 + 10
	if got := pipeline.CorrectElevation(0, 0, 5); got != 30 {
		t.Fatalf("expected 30, got %f", got)
	}
}

func TestEmptyPipelineIsIdentity(t *testing.T) {
	var pipeline converters.ElevationCorrector = NewPipelineElevationCorrector()
	if got := pipeline.CorrectElevation(11, 46, 123.5); got != 123.5 {
		t.Fatalf("expected identity, got %f", got)
	}
}
