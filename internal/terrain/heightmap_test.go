package terrain

import (
	"math"
	"testing"

	"github.com/lc1292131741/cesium/internal/converters"
	"github.com/lc1292131741/cesium/internal/geometry"
)

func flatLevel(t *testing.T, height float64) *HeightmapLevel {
	t.Helper()
	heights := make([]float64, 4)
	for i := range heights {
		heights[i] = height
	}
	level, err := NewHeightmapLevel(0, 0, 1, 1, 2, 2, heights)
	if err != nil {
		t.Fatal(err)
	}
	return level
}

func TestHeightmapLevelValidation(t *testing.T) {
	if _, err := NewHeightmapLevel(0, 0, 1, 1, 1, 2, []float64{1, 2}); err == nil {
		t.Fatal("1-row grid must be rejected")
	}
	if _, err := NewHeightmapLevel(0, 0, 1, 1, 2, 2, []float64{1, 2, 3}); err == nil {
		t.Fatal("sample count mismatch must be rejected")
	}
	if _, err := NewHeightmapLevel(1, 0, 0, 1, 2, 2, make([]float64, 4)); err == nil {
		t.Fatal("inverted bounds must be rejected")
	}
}

func TestHeightmapLevelBilinearSample(t *testing.T) {
	// corners: 0 10 / 20 30
	level, err := NewHeightmapLevel(0, 0, 1, 1, 2, 2, []float64{0, 10, 20, 30})
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		lat, lon float64
		expected float64
	}{
		{0, 0, 0},
		{0, 1, 10},
		{1, 0, 20},
		{1, 1, 30},
		{0.5, 0.5, 15},
		{0, 0.5, 5},
		{0.5, 0, 10},
	}
	for _, tc := range cases {
		got, ok := level.Sample(tc.lat, tc.lon)
		if !ok {
			t.Fatalf("sample at (%f,%f) unexpectedly outside coverage", tc.lat, tc.lon)
		}
		if math.Abs(got-tc.expected) > 1e-12 {
			t.Fatalf("sample at (%f,%f): expected %f, got %f", tc.lat, tc.lon, tc.expected, got)
		}
	}

	if _, ok := level.Sample(2, 0.5); ok {
		t.Fatal("sample outside coverage must report false")
	}
}

func TestProviderRefinementStreamsIn(t *testing.T) {
	coarse := flatLevel(t, 100)
	fine := flatLevel(t, 140)
	p := NewHeightmapProvider(nil, coarse, fine)

	coord := geometry.Geodetic{Lat: 0.5, Lon: 0.5}
	if h, ok := p.GetHeight(coord); !ok || h != 100 {
		t.Fatalf("before refinement, expected the coarse height 100, got %f (ok=%v)", h, ok)
	}
	if p.FullyResident() {
		t.Fatal("finer level should not be resident yet")
	}

	p.Process(1)
	if !p.FullyResident() {
		t.Fatal("refinement level should have streamed in")
	}
	if h, _ := p.GetHeight(coord); h != 140 {
		t.Fatalf("after refinement, expected the fine height 140, got %f", h)
	}
}

func TestProviderSampleDeliversAfterRefinement(t *testing.T) {
	coarse := flatLevel(t, 100)
	fine := flatLevel(t, 140)
	p := NewHeightmapProvider(nil, coarse, fine)

	var got []float64
	coord := geometry.Geodetic{Lat: 0.5, Lon: 0.5}
	p.SampleHeight(coord, func(refined geometry.Geodetic) {
		got = append(got, refined.Height)
	})

	p.Process(0)
	if len(got) != 0 {
		t.Fatal("sample must stay pending until all levels are resident")
	}

	p.Process(1)
	if len(got) != 1 || got[0] != 140 {
		t.Fatalf("expected one callback with the refined height 140, got %v", got)
	}

	// a sample never fires twice
	p.Process(1)
	if len(got) != 1 {
		t.Fatalf("sample fired again: %v", got)
	}
}

func TestProviderSampleCancellation(t *testing.T) {
	p := NewHeightmapProvider(nil, flatLevel(t, 100))

	fired := false
	handle := p.SampleHeight(geometry.Geodetic{Lat: 0.5, Lon: 0.5}, func(geometry.Geodetic) {
		fired = true
	})
	handle.Cancel()
	handle.Cancel()

	p.Process(1)
	if fired {
		t.Fatal("cancelled sample must never fire")
	}
	if !handle.IsCancelled() {
		t.Fatal("handle must report cancelled")
	}
}

func TestProviderSampleOutsideCoverage(t *testing.T) {
	p := NewHeightmapProvider(nil, flatLevel(t, 100))

	var got []float64
	p.SampleHeight(geometry.Geodetic{Lat: 50, Lon: 50}, func(refined geometry.Geodetic) {
		got = append(got, refined.Height)
	})
	p.Process(1)

	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("outside coverage must refine to height 0, got %v", got)
	}
}

type doublingCorrector struct{}

func (doublingCorrector) CorrectElevation(lon, lat, z float64) float64 { return z * 2 }

func TestProviderAppliesElevationCorrector(t *testing.T) {
	var corrector converters.ElevationCorrector = doublingCorrector{}
	p := NewHeightmapProvider(corrector, flatLevel(t, 100))

	if h, _ := p.GetHeight(geometry.Geodetic{Lat: 0.5, Lon: 0.5}); h != 200 {
		t.Fatalf("corrector not applied, got %f", h)
	}
}

func TestSampleKeyStability(t *testing.T) {
	// 0.1+0.2 and 0.3 differ in the last float64 bit but must share a key
	a := geometry.Geodetic{Lat: 0.1 + 0.2, Lon: 1}
	b := geometry.Geodetic{Lat: 0.3, Lon: 1}
	if sampleKey(a) != sampleKey(b) {
		t.Fatalf("keys differ: %s vs %s", sampleKey(a), sampleKey(b))
	}

	c := geometry.Geodetic{Lat: 0.30001, Lon: 1}
	if sampleKey(a) == sampleKey(c) {
		t.Fatal("distinct coordinates must not collide")
	}
}

func TestProceduralProviderIsDeterministic(t *testing.T) {
	source := NewProceduralSource(7)
	p1, err := NewProceduralProvider(source, 45, 10, 46, 11, 2, 5, 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := NewProceduralProvider(NewProceduralSource(7), 45, 10, 46, 11, 2, 5, 5, nil)
	if err != nil {
		t.Fatal(err)
	}

	coord := geometry.Geodetic{Lat: 45.4, Lon: 10.7}
	h1, ok1 := p1.GetHeight(coord)
	h2, ok2 := p2.GetHeight(coord)
	if !ok1 || !ok2 || h1 != h2 {
		t.Fatalf("same seed must yield the same terrain: %f vs %f", h1, h2)
	}

	p3, err := NewProceduralProvider(NewProceduralSource(8), 45, 10, 46, 11, 2, 5, 5, nil)
	if err != nil {
		t.Fatal(err)
	}
	h3, _ := p3.GetHeight(coord)
	if h1 == h3 {
		t.Fatal("different seeds should yield different terrain")
	}
}
