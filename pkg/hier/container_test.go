package hier

import (
	"testing"

	"github.com/go-mesh/mesh/pkg/geom"
)

func box(owner, local int, shift geom.ShiftID) geom.Box {
	return geom.Box{
		ID:    geom.BoxID{Owner: owner, Local: local, Shift: shift},
		Lower: geom.Index{X: local * 10, Y: 0},
		Upper: geom.Index{X: local*10 + 3, Y: 3},
	}
}

func TestBoxContainer_InsertKeepsIDOrder(t *testing.T) {
	c := NewBoxContainer(
		box(1, 0, 0),
		box(0, 1, 0),
		box(0, 0, 1),
		box(0, 0, 0),
	)

	want := []geom.BoxID{
		{Owner: 0, Local: 0},
		{Owner: 0, Local: 0, Shift: 1},
		{Owner: 0, Local: 1},
		{Owner: 1, Local: 0},
	}
	got := c.Boxes()
	if len(got) != len(want) {
		t.Fatalf("Size = %d, want %d", len(got), len(want))
	}
	for i, b := range got {
		if b.ID != want[i] {
			t.Errorf("boxes[%d].ID = %s, want %s", i, b.ID, want[i])
		}
	}
}

func TestBoxContainer_InsertRejectsDuplicateID(t *testing.T) {
	c := NewBoxContainer()
	if !c.Insert(box(0, 0, 0)) {
		t.Fatal("first insert should succeed")
	}
	if c.Insert(box(0, 0, 0)) {
		t.Error("duplicate insert should be rejected")
	}
	if c.Size() != 1 {
		t.Errorf("Size = %d, want 1", c.Size())
	}
}

func TestBoxContainer_Contains(t *testing.T) {
	c := NewBoxContainer(box(0, 0, 0), box(0, 2, 0))
	if !c.Contains(geom.BoxID{Owner: 0, Local: 2}) {
		t.Error("expected container to contain 0#2")
	}
	if c.Contains(geom.BoxID{Owner: 0, Local: 1}) {
		t.Error("expected container not to contain 0#1")
	}
}

func TestBoxIterator_WalksEveryBox(t *testing.T) {
	c := NewBoxContainer(box(0, 0, 0), box(0, 0, 1), box(0, 1, 0))

	var ids []geom.BoxID
	for it := c.Iterator(); it.IsValid(); it.Next() {
		ids = append(ids, it.Box().ID)
	}
	if len(ids) != 3 {
		t.Fatalf("full iteration visited %d boxes, want 3", len(ids))
	}
}

func TestBoxIterator_EmptyContainer(t *testing.T) {
	c := NewBoxContainer()
	it := c.Iterator()
	if it.IsValid() {
		t.Error("iterator over empty container should be invalid")
	}
}

func TestBoxIterator_DereferenceExhaustedPanics(t *testing.T) {
	c := NewBoxContainer()
	it := c.Iterator()

	defer func() {
		if recover() == nil {
			t.Error("expected panic on dereferencing exhausted iterator")
		}
	}()
	it.Box()
}

func TestBoxContainer_Clear(t *testing.T) {
	c := NewBoxContainer(box(0, 0, 0))
	c.Clear()
	if !c.Empty() || c.Size() != 0 {
		t.Error("Clear should leave the container empty")
	}
}
