// Package hier provides the box-level hierarchy core: ordered box
// containers, box levels, and the connectors that relate two levels.
//
// # Levels and handles
//
// A BoxLevel owns a set of boxes describing one level of a structured
// mesh. Connectors and other dependents never hold a BoxLevel directly;
// they hold the level's LevelHandle and check LevelHandle.IsAttached
// before trusting data derived from the level. Whenever a level changes
// identity (Initialize, Clear), it detaches its handle first, so every
// dependent's next validity check fails and stale derived data is never
// used silently:
//
//	conn := hier.NewConnector(base, head, geom.Index{X: 1, Y: 1})
//	...
//	base.Clear() // detaches base's handle
//	conn.IsFinalized() // now false; rebuild before using neighbor data
//
// Detachment is monotonic: a handle never re-attaches, and a fresh epoch
// of the level gets a fresh handle.
//
// # Iteration
//
// BoxContainer enumerates boxes in BoxID order. RealBoxIterator walks the
// same order while transparently skipping periodic-image boxes:
//
//	for it := hier.NewRealBoxIterator(boxes); it.IsValid(); it.Next() {
//		use(it.Box())
//	}
//
// Containers must not be mutated while a cursor is alive over them.
package hier
