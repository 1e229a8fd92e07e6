package property

import (
	"github.com/lc1292131741/cesium/internal/geometry"
)

// HeightReference controls whether a rendered entity's elevation follows
// terrain.
type HeightReference int

const (
	HeightReferenceNone HeightReference = iota
	HeightReferenceClampToGround
	HeightReferenceRelativeToGround
)

func (h HeightReference) String() string {
	switch h {
	case HeightReferenceNone:
		return "NONE"
	case HeightReferenceClampToGround:
		return "CLAMP_TO_GROUND"
	case HeightReferenceRelativeToGround:
		return "RELATIVE_TO_GROUND"
	}
	return "unknown"
}

// HeightReferenceSource is a reactive value source for a height reference
// mode. ok reports whether the source has a value at the given time; absent
// values are treated as HeightReferenceNone by consumers.
type HeightReferenceSource interface {
	GetValue(time float64) (HeightReference, bool)
}

// ConstantHeightReference is a HeightReferenceSource with a fixed value.
type ConstantHeightReference HeightReference

func (c ConstantHeightReference) GetValue(time float64) (HeightReference, bool) {
	return HeightReference(c), true
}

// PositionResolver maps a time value to a world-space position. ok reports
// whether a position exists at that time.
type PositionResolver func(time float64) (geometry.Coordinate, bool)
