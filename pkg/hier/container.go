package hier

import (
	"sort"
	"strings"

	"github.com/go-mesh/mesh/pkg/geom"
)

// BoxContainer is an ordered set of boxes, sorted by BoxID. The
// enumeration order is stable between mutations; cursors hold positions
// into it, so the container must not be mutated while a cursor over it is
// in use.
type BoxContainer struct {
	boxes []geom.Box
}

// NewBoxContainer returns a container holding the given boxes. Duplicate
// IDs keep the first occurrence.
func NewBoxContainer(boxes ...geom.Box) *BoxContainer {
	c := &BoxContainer{}
	for _, b := range boxes {
		c.Insert(b)
	}
	return c
}

// Insert adds a box, keeping BoxID order. It returns false if a box with
// the same ID is already present, leaving the container unchanged.
func (c *BoxContainer) Insert(b geom.Box) bool {
	pos := sort.Search(len(c.boxes), func(i int) bool {
		return !c.boxes[i].ID.Less(b.ID)
	})
	if pos < len(c.boxes) && c.boxes[pos].ID == b.ID {
		return false
	}
	c.boxes = append(c.boxes, geom.Box{})
	copy(c.boxes[pos+1:], c.boxes[pos:])
	c.boxes[pos] = b
	return true
}

// Contains reports whether a box with the given ID is present.
func (c *BoxContainer) Contains(id geom.BoxID) bool {
	pos := sort.Search(len(c.boxes), func(i int) bool {
		return !c.boxes[i].ID.Less(id)
	})
	return pos < len(c.boxes) && c.boxes[pos].ID == id
}

// Size returns the number of boxes, periodic images included.
func (c *BoxContainer) Size() int {
	return len(c.boxes)
}

// Empty reports whether the container holds no boxes.
func (c *BoxContainer) Empty() bool {
	return len(c.boxes) == 0
}

// Clear removes all boxes.
func (c *BoxContainer) Clear() {
	c.boxes = nil
}

// Boxes returns the boxes in enumeration order. The slice is shared with
// the container and must be treated as read-only.
func (c *BoxContainer) Boxes() []geom.Box {
	return c.boxes
}

// Iterator returns a cursor over all boxes, periodic images included.
func (c *BoxContainer) Iterator() *BoxIterator {
	return &BoxIterator{container: c}
}

// RealIterator returns a cursor that skips periodic images.
func (c *BoxContainer) RealIterator() *RealBoxIterator {
	return NewRealBoxIterator(c)
}

func (c *BoxContainer) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, b := range c.boxes {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(b.String())
	}
	sb.WriteString("}")
	return sb.String()
}

// BoxIterator is a forward cursor over every box in a container. The zero
// value is not usable; obtain one from BoxContainer.Iterator.
type BoxIterator struct {
	container *BoxContainer
	pos       int
}

// IsValid reports whether the cursor denotes an existing box.
func (it *BoxIterator) IsValid() bool {
	return it.pos < len(it.container.boxes)
}

// Box returns the box at the cursor. It panics if the cursor is not
// valid; callers must check IsValid first.
func (it *BoxIterator) Box() *geom.Box {
	if !it.IsValid() {
		panic("hier: dereference of exhausted BoxIterator")
	}
	return &it.container.boxes[it.pos]
}

// Next advances the cursor by one position.
func (it *BoxIterator) Next() {
	if it.pos < len(it.container.boxes) {
		it.pos++
	}
}

// Equal reports whether two cursors reference the same container at the
// same position.
func (it *BoxIterator) Equal(other *BoxIterator) bool {
	return it.container == other.container && it.pos == other.pos
}
