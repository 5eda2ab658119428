package hier

import (
	"fmt"

	"github.com/go-mesh/mesh/pkg/geom"
)

// BoxLevel owns the boxes of one level of a mesh hierarchy, together
// with the level's refinement ratio and periodic shift table. A level has
// an identity that spans one epoch: from (re-)initialization until the
// next Initialize or Clear. Data derived from the level (connector
// neighborhoods, overlap sets) is valid only within the epoch it was
// computed in; the level's LevelHandle signals epoch boundaries to
// dependents.
type BoxLevel struct {
	boxes  BoxContainer
	ratio  geom.Index
	shifts []geom.Index
	handle *LevelHandle
}

// NewBoxLevel returns an empty level with the given refinement ratio and
// periodic shift table. shifts may be nil for a non-periodic level.
func NewBoxLevel(ratio geom.Index, shifts []geom.Index) *BoxLevel {
	return &BoxLevel{ratio: ratio, shifts: shifts}
}

// Initialize re-establishes the level's identity with a new box set,
// ratio, and shift table. Any outstanding handle is detached before the
// contents change, so dependents holding it observe the invalidation
// before they can read inconsistent state.
func (l *BoxLevel) Initialize(boxes []geom.Box, ratio geom.Index, shifts []geom.Index) {
	l.detachHandle()
	l.boxes.Clear()
	l.ratio = ratio
	l.shifts = shifts
	for _, b := range boxes {
		l.boxes.Insert(b)
	}
}

// Clear removes all boxes, detaching the handle first. It is the
// end-of-life path for a level epoch: a level that will no longer be
// used must be cleared so dependents are not left holding a handle that
// claims attachment to abandoned state.
func (l *BoxLevel) Clear() {
	l.detachHandle()
	l.boxes.Clear()
}

// Handle returns the handle for the level's current epoch, creating it
// on first use. At most one handle exists per epoch; after the epoch
// ends a subsequent call creates a fresh handle for the new epoch.
func (l *BoxLevel) Handle() *LevelHandle {
	if l.handle == nil {
		l.handle = newLevelHandle(l)
	}
	return l.handle
}

// detachHandle severs the current epoch's handle, if any. Called before
// every identity-changing mutation.
func (l *BoxLevel) detachHandle() {
	if l.handle != nil {
		l.handle.detach()
		l.handle = nil
	}
}

// AddBox inserts a real box into the level. It panics if b is a periodic
// image; images are derived, not added directly (see AddPeriodicImages).
// Returns false if a box with the same ID is already present.
func (l *BoxLevel) AddBox(b geom.Box) bool {
	if b.IsPeriodicImage() {
		panic(fmt.Sprintf("hier: AddBox called with periodic image %s", b.ID))
	}
	return l.boxes.Insert(b)
}

// AddPeriodicImages derives image boxes for every real box under every
// entry of the shift table and inserts them. Existing images are kept.
func (l *BoxLevel) AddPeriodicImages() {
	realBoxes := make([]geom.Box, 0, l.boxes.Size())
	for it := NewRealBoxIterator(&l.boxes); it.IsValid(); it.Next() {
		realBoxes = append(realBoxes, *it.Box())
	}
	for s, offset := range l.shifts {
		id := geom.ShiftID(s + 1)
		for _, b := range realBoxes {
			l.boxes.Insert(b.Shift(offset, id))
		}
	}
}

// Boxes returns the level's box container, periodic images included.
func (l *BoxLevel) Boxes() *BoxContainer {
	return &l.boxes
}

// RefineRatio returns the refinement ratio relative to the reference
// level.
func (l *BoxLevel) RefineRatio() geom.Index {
	return l.ratio
}

// ShiftTable returns the periodic shift offsets, indexed by ShiftID-1.
// The slice is read-only.
func (l *BoxLevel) ShiftTable() []geom.Index {
	return l.shifts
}

// ShiftOffset returns the offset for a shift ID. It panics on ShiftZero
// or an ID outside the table.
func (l *BoxLevel) ShiftOffset(id geom.ShiftID) geom.Index {
	if id.IsZero() || int(id) > len(l.shifts) {
		panic(fmt.Sprintf("hier: no shift table entry for shift %d", id))
	}
	return l.shifts[id-1]
}

// NumBoxes returns the total box count, periodic images included.
func (l *BoxLevel) NumBoxes() int {
	return l.boxes.Size()
}

// NumRealBoxes returns the number of real boxes.
func (l *BoxLevel) NumRealBoxes() int {
	n := 0
	for it := NewRealBoxIterator(&l.boxes); it.IsValid(); it.Next() {
		n++
	}
	return n
}

// NumRealCells returns the total cell count over the real boxes.
func (l *BoxLevel) NumRealCells() int {
	n := 0
	for it := NewRealBoxIterator(&l.boxes); it.IsValid(); it.Next() {
		n += it.Box().NumCells()
	}
	return n
}

// BoundingBox returns the smallest box covering every real box, with a
// zero ID. The second result is false for a level with no real boxes.
func (l *BoxLevel) BoundingBox() (geom.Box, bool) {
	it := NewRealBoxIterator(&l.boxes)
	if !it.IsValid() {
		return geom.Box{}, false
	}
	bound := *it.Box()
	bound.ID = geom.BoxID{}
	for it.Next(); it.IsValid(); it.Next() {
		b := it.Box()
		bound.Lower = bound.Lower.Min(b.Lower)
		bound.Upper = bound.Upper.Max(b.Upper)
	}
	return bound, true
}
