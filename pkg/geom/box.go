package geom

import "fmt"

// Box is a closed rectangular region of the index space. Lower and Upper
// are both inclusive; a box with any Upper component below the matching
// Lower component is empty.
type Box struct {
	ID    BoxID
	Lower Index
	Upper Index
}

// NewBox constructs a real box with the given identity and bounds.
func NewBox(owner, local int, lower, upper Index) Box {
	return Box{
		ID:    BoxID{Owner: owner, Local: local},
		Lower: lower,
		Upper: upper,
	}
}

// Empty reports whether the box contains no cells.
func (b Box) Empty() bool {
	return b.Upper.X < b.Lower.X || b.Upper.Y < b.Lower.Y
}

// NumCells returns the number of cells covered by the box.
func (b Box) NumCells() int {
	if b.Empty() {
		return 0
	}
	return (b.Upper.X - b.Lower.X + 1) * (b.Upper.Y - b.Lower.Y + 1)
}

// Contains reports whether the cell at idx lies inside the box.
func (b Box) Contains(idx Index) bool {
	return idx.X >= b.Lower.X && idx.X <= b.Upper.X &&
		idx.Y >= b.Lower.Y && idx.Y <= b.Upper.Y
}

// Intersects reports whether b and other share at least one cell.
func (b Box) Intersects(other Box) bool {
	return !b.Intersect(other).Empty()
}

// Intersect returns the overlap of b and other. The result keeps b's ID
// and may be empty.
func (b Box) Intersect(other Box) Box {
	return Box{
		ID:    b.ID,
		Lower: b.Lower.Max(other.Lower),
		Upper: b.Upper.Min(other.Upper),
	}
}

// Grow expands the box by width cells on every side. Negative components
// shrink it.
func (b Box) Grow(width Index) Box {
	return Box{
		ID:    b.ID,
		Lower: b.Lower.Sub(width),
		Upper: b.Upper.Add(width),
	}
}

// Shift returns a copy of the box translated by offset and stamped with
// the given shift identity.
func (b Box) Shift(offset Index, shift ShiftID) Box {
	return Box{
		ID:    BoxID{Owner: b.ID.Owner, Local: b.ID.Local, Shift: shift},
		Lower: b.Lower.Add(offset),
		Upper: b.Upper.Add(offset),
	}
}

// IsPeriodicImage reports whether the box is a periodic image of a real
// box rather than a real box itself.
func (b Box) IsPeriodicImage() bool {
	return b.ID.IsPeriodicImage()
}

func (b Box) String() string {
	return fmt.Sprintf("%s[%s..%s]", b.ID, b.Lower, b.Upper)
}
