package hier

import (
	"sort"

	"github.com/go-mesh/mesh/pkg/geom"
)

// Connector records neighbor relationships between the boxes of a base
// level and a head level: for each real base box, the head boxes whose
// region intersects the base box grown by the connector width.
//
// A connector holds LevelHandles rather than the levels themselves. The
// neighbor data is derived from both levels' box sets, so it is valid
// only while both handles remain attached; once either level changes
// identity, IsFinalized reports false and the neighbor data must be
// discarded or recomputed against the levels' new epochs.
type Connector struct {
	base  *LevelHandle
	head  *LevelHandle
	width geom.Index

	neighbors map[geom.BoxID][]geom.BoxID
}

// NewConnector creates a connector between base and head with the given
// growth width, retaining both levels' current-epoch handles. Neighbor
// data starts empty; fill it with InsertNeighbor or FindOverlaps.
func NewConnector(base, head *BoxLevel, width geom.Index) *Connector {
	return &Connector{
		base:      base.Handle(),
		head:      head.Handle(),
		width:     width,
		neighbors: make(map[geom.BoxID][]geom.BoxID),
	}
}

// IsFinalized reports whether both endpoint levels are still in the
// epoch the connector was created in. Callers check this before trusting
// neighbor data; a false result means the data is stale.
func (c *Connector) IsFinalized() bool {
	return c.base.IsAttached() && c.head.IsAttached()
}

// Base returns the base level. It panics if the base handle has been
// detached; callers must check IsFinalized first.
func (c *Connector) Base() *BoxLevel {
	return c.base.Level()
}

// Head returns the head level. It panics if the head handle has been
// detached; callers must check IsFinalized first.
func (c *Connector) Head() *BoxLevel {
	return c.head.Level()
}

// Width returns the connector's growth width.
func (c *Connector) Width() geom.Index {
	return c.width
}

// InsertNeighbor records head as a neighbor of base. Duplicate edges are
// kept out; edges stay sorted per base box.
func (c *Connector) InsertNeighbor(base, head geom.BoxID) {
	set := c.neighbors[base]
	pos := sort.Search(len(set), func(i int) bool {
		return !set[i].Less(head)
	})
	if pos < len(set) && set[pos] == head {
		return
	}
	set = append(set, geom.BoxID{})
	copy(set[pos+1:], set[pos:])
	set[pos] = head
	c.neighbors[base] = set
}

// Neighbors returns the head neighbors recorded for a base box, in BoxID
// order. The slice is read-only; nil means no neighbors.
func (c *Connector) Neighbors(base geom.BoxID) []geom.BoxID {
	return c.neighbors[base]
}

// NumNeighborSets returns the number of base boxes with at least one
// recorded neighbor.
func (c *Connector) NumNeighborSets() int {
	return len(c.neighbors)
}

// FindOverlaps recomputes the neighbor sets from scratch: every real
// base box is grown by the connector width and tested against every head
// box, images included. It panics if the connector is not finalized,
// since the endpoint box sets would belong to a different epoch than the
// result claims to describe.
func (c *Connector) FindOverlaps() {
	if !c.IsFinalized() {
		panic("hier: FindOverlaps on a connector with a detached level")
	}
	base := c.base.Level()
	head := c.head.Level()
	c.neighbors = make(map[geom.BoxID][]geom.BoxID)
	for bi := NewRealBoxIterator(base.Boxes()); bi.IsValid(); bi.Next() {
		grown := bi.Box().Grow(c.width)
		for hi := head.Boxes().Iterator(); hi.IsValid(); hi.Next() {
			if grown.Intersects(*hi.Box()) {
				c.InsertNeighbor(bi.Box().ID, hi.Box().ID)
			}
		}
	}
}
