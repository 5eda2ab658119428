package geom

import (
	"math"
	"testing"
)

func TestBoxNumCells(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		want int
	}{
		{"single cell", NewBox(0, 0, Index{0, 0}, Index{0, 0}), 1},
		{"4x4", NewBox(0, 0, Index{0, 0}, Index{3, 3}), 16},
		{"offset", NewBox(0, 0, Index{-2, 5}, Index{1, 6}), 8},
		{"empty x", NewBox(0, 0, Index{1, 0}, Index{0, 3}), 0},
		{"empty y", NewBox(0, 0, Index{0, 4}, Index{3, 3}), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.NumCells(); got != tt.want {
				t.Errorf("NumCells() = %d, want %d", got, tt.want)
			}
			if tt.box.Empty() != (tt.want == 0) {
				t.Errorf("Empty() = %v inconsistent with NumCells() = %d", tt.box.Empty(), tt.want)
			}
		})
	}
}

func TestBoxIntersect(t *testing.T) {
	a := NewBox(0, 0, Index{0, 0}, Index{7, 7})
	b := NewBox(0, 1, Index{4, 4}, Index{11, 11})

	got := a.Intersect(b)
	if got.Lower != (Index{4, 4}) || got.Upper != (Index{7, 7}) {
		t.Errorf("Intersect = %s, want [4,4..7,7]", got)
	}
	if got.ID != a.ID {
		t.Errorf("Intersect kept ID %s, want %s", got.ID, a.ID)
	}
	if !a.Intersects(b) || !b.Intersects(a) {
		t.Error("expected a and b to intersect")
	}

	far := NewBox(0, 2, Index{100, 100}, Index{101, 101})
	if a.Intersects(far) {
		t.Error("expected disjoint boxes not to intersect")
	}
	if !a.Intersect(far).Empty() {
		t.Error("expected empty intersection for disjoint boxes")
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox(0, 0, Index{0, 0}, Index{3, 3})
	if !b.Contains(Index{0, 0}) || !b.Contains(Index{3, 3}) {
		t.Error("expected corners to be contained")
	}
	if b.Contains(Index{4, 0}) || b.Contains(Index{0, -1}) {
		t.Error("expected out-of-bounds cells not to be contained")
	}
}

func TestBoxGrow(t *testing.T) {
	b := NewBox(0, 0, Index{2, 2}, Index{5, 5})
	grown := b.Grow(Index{1, 2})
	if grown.Lower != (Index{1, 0}) || grown.Upper != (Index{6, 7}) {
		t.Errorf("Grow = %s, want [1,0..6,7]", grown)
	}
}

func TestBoxShift(t *testing.T) {
	b := NewBox(3, 7, Index{0, 0}, Index{3, 3})
	img := b.Shift(Index{16, 0}, 2)

	if img.Lower != (Index{16, 0}) || img.Upper != (Index{19, 3}) {
		t.Errorf("Shift bounds = %s..%s, want (16,0)..(19,3)", img.Lower, img.Upper)
	}
	if img.ID.Owner != 3 || img.ID.Local != 7 {
		t.Errorf("Shift must keep owner/local, got %s", img.ID)
	}
	if !img.IsPeriodicImage() {
		t.Error("shifted box should be a periodic image")
	}
	if b.IsPeriodicImage() {
		t.Error("original box should stay real")
	}
}

func TestBoxIDCompare(t *testing.T) {
	ordered := []BoxID{
		{Owner: 0, Local: 0},
		{Owner: 0, Local: 0, Shift: 1},
		{Owner: 0, Local: 1},
		{Owner: 1, Local: 0},
		{Owner: 1, Local: 0, Shift: 2},
	}
	for i := range ordered {
		if ordered[i].Compare(ordered[i]) != 0 {
			t.Errorf("%s should compare equal to itself", ordered[i])
		}
		for j := i + 1; j < len(ordered); j++ {
			if !ordered[i].Less(ordered[j]) {
				t.Errorf("%s should sort before %s", ordered[i], ordered[j])
			}
			if ordered[j].Less(ordered[i]) {
				t.Errorf("%s should not sort before %s", ordered[j], ordered[i])
			}
		}
	}
}

func TestBoxIDCompare_ExtremeValues(t *testing.T) {
	// Component differences near the int range must not wrap around.
	lo := BoxID{Owner: math.MinInt}
	hi := BoxID{Owner: math.MaxInt}
	if got := lo.Compare(hi); got != -1 {
		t.Errorf("Compare(min, max) = %d, want -1", got)
	}
	if got := hi.Compare(lo); got != 1 {
		t.Errorf("Compare(max, min) = %d, want 1", got)
	}
	if !lo.Less(hi) || hi.Less(lo) {
		t.Error("Less misordered extreme owners")
	}

	a := BoxID{Owner: 0, Local: math.MinInt}
	b := BoxID{Owner: 0, Local: math.MaxInt}
	if !a.Less(b) || b.Less(a) {
		t.Error("Less misordered extreme locals")
	}
}

func TestIndexOps(t *testing.T) {
	a := Index{3, -2}
	b := Index{1, 5}
	if got := a.Add(b); got != (Index{4, 3}) {
		t.Errorf("Add = %s", got)
	}
	if got := a.Sub(b); got != (Index{2, -7}) {
		t.Errorf("Sub = %s", got)
	}
	if got := a.Min(b); got != (Index{1, -2}) {
		t.Errorf("Min = %s", got)
	}
	if got := a.Max(b); got != (Index{3, 5}) {
		t.Errorf("Max = %s", got)
	}
	if a.IsZero() || !(Index{}).IsZero() {
		t.Error("IsZero misreported")
	}
}
