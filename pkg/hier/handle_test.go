package hier

import (
	"testing"

	"github.com/go-mesh/mesh/pkg/geom"
)

func newTestLevel(boxes ...geom.Box) *BoxLevel {
	l := NewBoxLevel(geom.Index{X: 1, Y: 1}, nil)
	for _, b := range boxes {
		l.AddBox(b)
	}
	return l
}

func TestLevelHandle_StartsAttached(t *testing.T) {
	level := newTestLevel(box(0, 0, 0))
	h := level.Handle()
	if !h.IsAttached() {
		t.Fatal("fresh handle should be attached")
	}
	if h.Level() != level {
		t.Error("Level() should return the creating level")
	}
}

func TestLevelHandle_OneHandlePerEpoch(t *testing.T) {
	level := newTestLevel(box(0, 0, 0))
	if level.Handle() != level.Handle() {
		t.Error("repeated Handle() calls within one epoch should return the same handle")
	}
}

func TestLevelHandle_DetachOnInitializeIsPermanent(t *testing.T) {
	level := newTestLevel(box(0, 0, 0))
	h := level.Handle()

	level.Initialize([]geom.Box{box(0, 1, 0)}, geom.Index{X: 2, Y: 2}, nil)
	if h.IsAttached() {
		t.Fatal("handle should be detached after Initialize")
	}

	// No later operation on the level re-attaches the old handle.
	level.AddBox(box(0, 2, 0))
	level.Initialize([]geom.Box{box(0, 3, 0)}, geom.Index{X: 1, Y: 1}, nil)
	level.Handle()
	if h.IsAttached() {
		t.Error("detached handle must never re-attach")
	}
}

func TestLevelHandle_DetachOnClearIsIdempotent(t *testing.T) {
	level := newTestLevel(box(0, 0, 0))
	h := level.Handle()

	level.Clear()
	if h.IsAttached() {
		t.Fatal("handle should be detached after Clear")
	}
	// Clearing again is a no-op for the already-detached handle.
	level.Clear()
	if h.IsAttached() {
		t.Error("handle should stay detached")
	}
}

func TestLevelHandle_NewEpochGetsFreshHandle(t *testing.T) {
	level := newTestLevel(box(0, 0, 0))
	old := level.Handle()

	level.Initialize([]geom.Box{box(0, 1, 0)}, geom.Index{X: 1, Y: 1}, nil)
	fresh := level.Handle()

	if fresh == old {
		t.Fatal("new epoch must get a new handle instance")
	}
	if !fresh.IsAttached() {
		t.Error("new epoch's handle should be attached")
	}
	if old.IsAttached() {
		t.Error("previous epoch's handle should stay detached")
	}
	if fresh.Level() != level {
		t.Error("fresh handle should be attached to the level")
	}
}

func TestLevelHandle_LevelPanicsWhenDetached(t *testing.T) {
	level := newTestLevel(box(0, 0, 0))
	h := level.Handle()
	level.Clear()

	defer func() {
		if recover() == nil {
			t.Error("expected panic calling Level() on a detached handle")
		}
	}()
	h.Level()
}

func TestLevelHandle_OnlyTheLevelDetaches(t *testing.T) {
	// Everything an outside holder can do with a handle: query it and
	// resolve the level. None of it may flip the attachment state.
	level := newTestLevel(box(0, 0, 0))
	h := level.Handle()

	for i := 0; i < 3; i++ {
		if !h.IsAttached() {
			t.Fatal("queries must not detach the handle")
		}
		_ = h.Level()
	}
	if !h.IsAttached() {
		t.Error("handle should still be attached after observer reads")
	}
}

// TestLevelHandle_ObserverSeesInvalidation is the end-to-end protocol
// flow: an observing connector retains the handle, the level mutates
// structurally, and the observer's next validity check fails.
func TestLevelHandle_ObserverSeesInvalidation(t *testing.T) {
	base := newTestLevel(box(0, 0, 0), box(0, 1, 0))
	head := newTestLevel(box(1, 0, 0))

	conn := NewConnector(base, head, geom.Index{X: 1, Y: 1})
	conn.FindOverlaps()
	if !conn.IsFinalized() {
		t.Fatal("connector should be finalized while both levels are stable")
	}

	// Structural change on the base level detaches its handle first.
	base.Initialize([]geom.Box{box(0, 9, 0)}, geom.Index{X: 1, Y: 1}, nil)

	if conn.IsFinalized() {
		t.Fatal("connector must observe the invalidation after base re-init")
	}

	// The stale derived data must not be recomputed against the old
	// epoch; rebuilding against the new epoch works again.
	rebuilt := NewConnector(base, head, geom.Index{X: 1, Y: 1})
	rebuilt.FindOverlaps()
	if !rebuilt.IsFinalized() {
		t.Error("rebuilt connector should be finalized in the new epoch")
	}
}
