package geom

import "fmt"

// ShiftID identifies a periodic shift applied to a box. ShiftZero means no
// shift: the box is a real box, not a periodic image. Nonzero values are
// 1-based indices into the owning level's shift table.
type ShiftID int

// ShiftZero is the shift of every real box.
const ShiftZero ShiftID = 0

// IsZero reports whether the shift is the zero shift.
func (s ShiftID) IsZero() bool {
	return s == ShiftZero
}

// BoxID uniquely identifies a box within a level. Two boxes that are
// periodic images of the same real box share Owner and Local but differ
// in Shift.
type BoxID struct {
	// Owner is the rank of the process owning the box.
	Owner int
	// Local is the owner-unique index of the box.
	Local int
	// Shift distinguishes periodic images from the real box.
	Shift ShiftID
}

// IsPeriodicImage reports whether the ID denotes a periodic image rather
// than a real box.
func (id BoxID) IsPeriodicImage() bool {
	return !id.Shift.IsZero()
}

// Compare orders IDs by Owner, then Local, then Shift. It returns -1
// when id sorts before other, 0 when equal, 1 otherwise.
func (id BoxID) Compare(other BoxID) int {
	if id.Owner != other.Owner {
		if id.Owner < other.Owner {
			return -1
		}
		return 1
	}
	if id.Local != other.Local {
		if id.Local < other.Local {
			return -1
		}
		return 1
	}
	if id.Shift != other.Shift {
		if id.Shift < other.Shift {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether id sorts before other.
func (id BoxID) Less(other BoxID) bool {
	return id.Compare(other) < 0
}

func (id BoxID) String() string {
	if id.IsPeriodicImage() {
		return fmt.Sprintf("%d#%d/%d", id.Owner, id.Local, id.Shift)
	}
	return fmt.Sprintf("%d#%d", id.Owner, id.Local)
}
