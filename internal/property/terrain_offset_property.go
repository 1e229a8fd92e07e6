package property

import (
	"github.com/lc1292131741/cesium/internal/ellipsoid"
	"github.com/lc1292131741/cesium/internal/geometry"
	"github.com/lc1292131741/cesium/internal/scene"
	"github.com/lc1292131741/cesium/internal/terrain"
)

// TerrainOffsetProperty computes the vertical offset vector that lifts a
// moving point from the ellipsoid surface up to the locally sampled terrain
// height.
//
// The expensive part of the lookup is asynchronous: a height refinement is
// registered with the terrain provider and completes out-of-band, while
// GetValue always answers immediately from the cached best-effort height.
// The cache is keyed on the evaluated position and is additionally forced
// stale by the scene's terrain-provider-changed and morph-complete
// notifications.
type TerrainOffsetProperty struct {
	scene                *scene.Scene
	heightSource         HeightReferenceSource
	extrudedHeightSource HeightReferenceSource
	resolvePosition      PositionResolver

	cachedPosition geometry.Coordinate
	cachedGeodetic geometry.Geodetic
	cachedNormal   geometry.Coordinate
	terrainHeight  float64
	hasCached      bool

	definitionChanged *scene.Event
	pendingSample     *terrain.SampleHandle

	removeTerrainChanged scene.RemoveCallback
	removeMorphComplete  scene.RemoveCallback
	destroyed            bool
}

// NewTerrainOffsetProperty binds a property to a scene, two height-reference
// sources and a position resolver. All four collaborators are required;
// passing nil is a programmer error and panics.
func NewTerrainOffsetProperty(sc *scene.Scene, heightSource, extrudedHeightSource HeightReferenceSource, resolvePosition PositionResolver) *TerrainOffsetProperty {
	if sc == nil {
		panic("property: scene is required")
	}
	if heightSource == nil || extrudedHeightSource == nil {
		panic("property: height reference sources are required")
	}
	if resolvePosition == nil {
		panic("property: position resolver is required")
	}

	p := &TerrainOffsetProperty{
		scene:                sc,
		heightSource:         heightSource,
		extrudedHeightSource: extrudedHeightSource,
		resolvePosition:      resolvePosition,
		definitionChanged:    scene.NewEvent(),
	}

	p.removeTerrainChanged = sc.TerrainProviderChanged().AddListener(p.invalidate)
	p.removeMorphComplete = sc.MorphComplete().AddListener(p.invalidate)

	return p
}

// DefinitionChanged fires whenever the cached terrain height changes value.
func (p *TerrainOffsetProperty) DefinitionChanged() *scene.Event {
	return p.definitionChanged
}

// GetValue evaluates the offset vector at the given time. When result is
// non-nil the value is also written into it.
//
// The zero vector is returned when the height reference configuration implies
// no ground offset, when the resolver yields no position, or when it yields
// exactly the origin. Re-evaluating at a position within PositionEpsilon of
// the previous one answers from cache without touching the terrain provider.
func (p *TerrainOffsetProperty) GetValue(time float64, result *geometry.Coordinate) geometry.Coordinate {
	if p.destroyed {
		panic("property: TerrainOffsetProperty used after Destroy")
	}

	heightRef, ok := p.heightSource.GetValue(time)
	if !ok {
		heightRef = HeightReferenceNone
	}
	extrudedRef, ok := p.extrudedHeightSource.GetValue(time)
	if !ok {
		extrudedRef = HeightReferenceNone
	}
	if heightRef == HeightReferenceNone && extrudedRef != HeightReferenceRelativeToGround {
		return writeResult(geometry.Coordinate{}, result)
	}

	position, ok := p.resolvePosition(time)
	if !ok || position.IsZero() {
		return writeResult(geometry.Coordinate{}, result)
	}

	if p.hasCached && position.EqualsEpsilon(p.cachedPosition, geometry.PositionEpsilon) {
		return writeResult(p.cachedNormal.MultiplyByScalar(p.terrainHeight), result)
	}

	p.cachedPosition = position
	p.hasCached = true
	p.updateClamping()
	p.cachedNormal = p.normalEllipsoid().GeodeticSurfaceNormal(position)

	return writeResult(p.cachedNormal.MultiplyByScalar(p.terrainHeight), result)
}

// updateClamping resolves the terrain height for the cached position. With no
// globe or provider attached it degrades to height zero. Otherwise it cancels
// any in-flight sample, registers a fresh asynchronous refinement and
// immediately takes whatever best-effort height is already resident.
func (p *TerrainOffsetProperty) updateClamping() {
	if p.pendingSample != nil {
		p.pendingSample.Cancel()
		p.pendingSample = nil
	}

	globe := p.scene.Globe()
	if globe == nil || globe.TerrainProvider() == nil {
		p.setTerrainHeight(0)
		return
	}
	provider := globe.TerrainProvider()

	geodetic := globe.Ellipsoid().CartesianToGeodetic(p.cachedPosition)
	p.cachedGeodetic = geodetic

	var handle *terrain.SampleHandle
	handle = provider.SampleHeight(geodetic, func(refined geometry.Geodetic) {
		if p.destroyed || p.pendingSample != handle {
			// superseded or torn down while the sample was in flight
			return
		}
		if !refined.EqualsSurfaceEpsilon(p.cachedGeodetic, geometry.PositionEpsilon) {
			// late callback for a coordinate we no longer track
			return
		}
		p.pendingSample = nil
		p.setTerrainHeight(refined.Height)
	})
	p.pendingSample = handle

	if h, ok := provider.GetHeight(geodetic); ok {
		p.setTerrainHeight(h)
	} else {
		p.setTerrainHeight(0)
	}
}

// invalidate forces a fresh height resolution at the current cached position.
// This is the only path that bypasses the epsilon check in GetValue. Before
// the first successful evaluation there is no cached position to resolve.
func (p *TerrainOffsetProperty) invalidate() {
	if !p.hasCached {
		return
	}
	p.updateClamping()
}

func (p *TerrainOffsetProperty) setTerrainHeight(h float64) {
	if h == p.terrainHeight {
		return
	}
	p.terrainHeight = h
	p.definitionChanged.Raise()
}

// TerrainHeight returns the last resolved (possibly best-effort) terrain
// height at the cached position.
func (p *TerrainOffsetProperty) TerrainHeight() float64 {
	return p.terrainHeight
}

// Equals reports whether the two properties are the same instance, or
// reference the same scene and have epsilon-equal cached positions.
func (p *TerrainOffsetProperty) Equals(other *TerrainOffsetProperty) bool {
	if p == other {
		return true
	}
	if other == nil {
		return false
	}
	return p.scene == other.scene &&
		p.cachedPosition.EqualsEpsilon(other.cachedPosition, geometry.PositionEpsilon)
}

// Destroy releases both scene subscriptions and any pending sample
// registration. Destroying twice is a no-op.
func (p *TerrainOffsetProperty) Destroy() {
	if p.destroyed {
		return
	}
	p.removeTerrainChanged()
	p.removeMorphComplete()
	if p.pendingSample != nil {
		p.pendingSample.Cancel()
		p.pendingSample = nil
	}
	p.destroyed = true
}

func (p *TerrainOffsetProperty) IsDestroyed() bool {
	return p.destroyed
}

func (p *TerrainOffsetProperty) normalEllipsoid() ellipsoid.Ellipsoid {
	if globe := p.scene.Globe(); globe != nil {
		return globe.Ellipsoid()
	}
	return ellipsoid.WGS84
}

func writeResult(value geometry.Coordinate, result *geometry.Coordinate) geometry.Coordinate {
	if result != nil {
		*result = value
	}
	return value
}
