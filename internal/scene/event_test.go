package scene

import (
	"testing"

	"github.com/lc1292131741/cesium/internal/ellipsoid"
)

func TestEventRaiseOrder(t *testing.T) {
	e := NewEvent()
	var order []int
	e.AddListener(func() { order = append(order, 1) })
	e.AddListener(func() { order = append(order, 2) })
	e.AddListener(func() { order = append(order, 3) })

	e.Raise()

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("listeners fired out of order: %v", order)
	}
}

func TestEventRemoveIsIdempotent(t *testing.T) {
	e := NewEvent()
	calls := 0
	remove := e.AddListener(func() { calls++ })
	e.AddListener(func() { calls += 10 })

	remove()
	remove()

	e.Raise()
	if calls != 10 {
		t.Fatalf("removed listener fired, calls=%d", calls)
	}
	if e.NumberOfListeners() != 1 {
		t.Fatalf("expected 1 remaining listener, got %d", e.NumberOfListeners())
	}
}

func TestEventRemoveDuringRaise(t *testing.T) {
	e := NewEvent()
	calls := 0
	var removeSecond RemoveCallback
	e.AddListener(func() { removeSecond() })
	removeSecond = e.AddListener(func() { calls++ })

	// snapshot semantics: removal during delivery takes effect next raise
	e.Raise()
	if calls != 1 {
		t.Fatalf("expected the snapshot to still deliver, calls=%d", calls)
	}

	e.Raise()
	if calls != 1 {
		t.Fatalf("removed listener fired on second raise, calls=%d", calls)
	}
}

func TestSceneNotifications(t *testing.T) {
	sc := NewScene(NewGlobe(ellipsoid.WGS84))

	terrainChanges, morphs := 0, 0
	sc.TerrainProviderChanged().AddListener(func() { terrainChanges++ })
	sc.MorphComplete().AddListener(func() { morphs++ })

	sc.SetTerrainProvider(nil)
	if terrainChanges != 1 {
		t.Fatalf("SetTerrainProvider must notify, got %d", terrainChanges)
	}

	sc.MorphTo2D()
	if sc.Mode() != Mode2D {
		t.Fatalf("expected 2D mode, got %v", sc.Mode())
	}
	sc.MorphTo3D()
	if sc.Mode() != Mode3D {
		t.Fatalf("expected 3D mode, got %v", sc.Mode())
	}
	if morphs != 2 {
		t.Fatalf("each morph must notify once, got %d", morphs)
	}
}
