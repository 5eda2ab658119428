package hier

import "github.com/go-mesh/mesh/pkg/geom"

// RealBoxIterator is a forward cursor over the real boxes of a container,
// transparently skipping periodic images. The cursor never rests on an
// image box: construction and every advance skip past contiguous runs of
// images, so callers only ever observe real boxes.
//
// The cursor is forward-only. To restart a traversal, construct a fresh
// iterator; there is no seeking.
type RealBoxIterator struct {
	container *BoxContainer
	pos       int
}

// NewRealBoxIterator returns a cursor positioned at the first real box of
// c, or an exhausted cursor if c holds no real boxes.
func NewRealBoxIterator(c *BoxContainer) *RealBoxIterator {
	it := &RealBoxIterator{container: c}
	it.skipImages()
	return it
}

// IsValid reports whether the cursor denotes a real box. Once false, it
// stays false.
func (it *RealBoxIterator) IsValid() bool {
	return it.pos < len(it.container.boxes)
}

// Box returns the real box at the cursor. It panics if the cursor is not
// valid; callers must check IsValid first.
func (it *RealBoxIterator) Box() *geom.Box {
	if !it.IsValid() {
		panic("hier: dereference of exhausted RealBoxIterator")
	}
	return &it.container.boxes[it.pos]
}

// Next advances to the following real box, or exhausts the cursor if
// none remains.
func (it *RealBoxIterator) Next() {
	if it.pos < len(it.container.boxes) {
		it.pos++
	}
	it.skipImages()
}

// Equal reports whether two cursors reference the same container at the
// same underlying position. Exhausted cursors over the same container
// compare equal.
func (it *RealBoxIterator) Equal(other *RealBoxIterator) bool {
	return it.container == other.container && it.pos == other.pos
}

// skipImages moves the position past contiguous periodic images. The
// predicate is evaluated lazily here rather than precomputed, so a
// container filled between traversals is filtered correctly by the next
// fresh cursor.
func (it *RealBoxIterator) skipImages() {
	for it.pos < len(it.container.boxes) && it.container.boxes[it.pos].IsPeriodicImage() {
		it.pos++
	}
}
