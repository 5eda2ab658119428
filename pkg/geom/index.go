package geom

import "fmt"

// Index is a cell coordinate or offset in the two-dimensional index space.
type Index struct {
	X, Y int
}

// Add returns the component-wise sum of i and other.
func (i Index) Add(other Index) Index {
	return Index{i.X + other.X, i.Y + other.Y}
}

// Sub returns the component-wise difference of i and other.
func (i Index) Sub(other Index) Index {
	return Index{i.X - other.X, i.Y - other.Y}
}

// Min returns the component-wise minimum of i and other.
func (i Index) Min(other Index) Index {
	return Index{min(i.X, other.X), min(i.Y, other.Y)}
}

// Max returns the component-wise maximum of i and other.
func (i Index) Max(other Index) Index {
	return Index{max(i.X, other.X), max(i.Y, other.Y)}
}

// IsZero reports whether both components are zero.
func (i Index) IsZero() bool {
	return i.X == 0 && i.Y == 0
}

func (i Index) String() string {
	return fmt.Sprintf("(%d,%d)", i.X, i.Y)
}
