package terrain

import (
	"github.com/lc1292131741/cesium/internal/geometry"
)

// SampleCallback receives the geodetic coordinate the sample was registered
// for, with Height replaced by the refined terrain height.
type SampleCallback func(refined geometry.Geodetic)

// Provider resolves terrain heights above the reference ellipsoid.
//
// GetHeight is a synchronous best-effort lookup against whatever detail is
// already resident. SampleHeight registers an asynchronous refinement whose
// callback fires at most once, from Process, on the caller's goroutine.
type Provider interface {
	GetHeight(coord geometry.Geodetic) (float64, bool)
	SampleHeight(coord geometry.Geodetic, done SampleCallback) *SampleHandle
	Process(budget int)
}

// SampleHandle owns a single asynchronous height-sample registration.
// Cancelling releases the registration; a cancelled sample never fires.
type SampleHandle struct {
	cancelled bool
	onCancel  func()
}

func NewSampleHandle(onCancel func()) *SampleHandle {
	return &SampleHandle{onCancel: onCancel}
}

func (h *SampleHandle) Cancel() {
	if h == nil || h.cancelled {
		return
	}
	h.cancelled = true
	if h.onCancel != nil {
		h.onCancel()
	}
}

func (h *SampleHandle) IsCancelled() bool {
	return h != nil && h.cancelled
}
