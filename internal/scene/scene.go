package scene

import (
	"github.com/lc1292131741/cesium/internal/ellipsoid"
	"github.com/lc1292131741/cesium/internal/terrain"
)

// Mode is the scene's projection mode.
type Mode int

const (
	Mode3D Mode = iota
	Mode2D
)

func (m Mode) String() string {
	switch m {
	case Mode3D:
		return "3D"
	case Mode2D:
		return "2D"
	}
	return "unknown"
}

// Globe couples a reference ellipsoid with the terrain provider currently
// attached to it. The provider may be nil, in which case terrain queries
// degrade to height zero.
type Globe struct {
	ellipsoid ellipsoid.Ellipsoid
	provider  terrain.Provider
}

func NewGlobe(e ellipsoid.Ellipsoid) *Globe {
	return &Globe{ellipsoid: e}
}

func (g *Globe) Ellipsoid() ellipsoid.Ellipsoid {
	return g.ellipsoid
}

func (g *Globe) TerrainProvider() terrain.Provider {
	return g.provider
}

func (g *Globe) setTerrainProvider(provider terrain.Provider) {
	g.provider = provider
}

// Scene owns the globe and the change notifications other components react to.
type Scene struct {
	globe *Globe
	mode  Mode

	terrainProviderChanged *Event
	morphComplete          *Event
}

// NewScene builds a scene around the given globe. A nil globe is a valid
// degraded configuration.
func NewScene(globe *Globe) *Scene {
	return &Scene{
		globe:                  globe,
		mode:                   Mode3D,
		terrainProviderChanged: NewEvent(),
		morphComplete:          NewEvent(),
	}
}

func (s *Scene) Globe() *Globe {
	return s.globe
}

// SetGlobe attaches or replaces the globe. Callers that swap in a globe with
// terrain already attached should follow up with a provider change so
// dependents resample, which SetTerrainProvider does automatically.
func (s *Scene) SetGlobe(globe *Globe) {
	s.globe = globe
}

func (s *Scene) Mode() Mode {
	return s.mode
}

// SetTerrainProvider swaps the terrain provider on the globe and notifies
// subscribers.
func (s *Scene) SetTerrainProvider(provider terrain.Provider) {
	if s.globe != nil {
		s.globe.setTerrainProvider(provider)
	}
	s.terrainProviderChanged.Raise()
}

// MorphTo2D switches the projection mode and notifies subscribers that the
// morph finished. The morph itself is instantaneous here.
func (s *Scene) MorphTo2D() {
	s.mode = Mode2D
	s.morphComplete.Raise()
}

func (s *Scene) MorphTo3D() {
	s.mode = Mode3D
	s.morphComplete.Raise()
}

func (s *Scene) TerrainProviderChanged() *Event {
	return s.terrainProviderChanged
}

func (s *Scene) MorphComplete() *Event {
	return s.morphComplete
}

// Tick advances the scene's asynchronous work: it lets the terrain provider
// stream refinement levels in and deliver completed height samples.
func (s *Scene) Tick(budget int) {
	if s.globe == nil || s.globe.provider == nil {
		return
	}
	s.globe.provider.Process(budget)
}
