package hier_test

import (
	"fmt"

	"github.com/go-mesh/mesh/pkg/geom"
	"github.com/go-mesh/mesh/pkg/hier"
)

// This example shows the handle protocol between a level and a
// dependent. The dependent keeps the level's handle, not the level, and
// checks attachment before trusting anything derived from the level.
func ExampleLevelHandle() {
	level := hier.NewBoxLevel(geom.Index{X: 1, Y: 1}, nil)
	level.AddBox(geom.NewBox(0, 0, geom.Index{X: 0, Y: 0}, geom.Index{X: 7, Y: 7}))

	handle := level.Handle()
	fmt.Println("attached:", handle.IsAttached())

	// A structural change detaches the handle before mutating.
	level.Initialize(nil, geom.Index{X: 2, Y: 2}, nil)
	fmt.Println("attached:", handle.IsAttached())

	// The new epoch has its own handle.
	fmt.Println("new epoch attached:", level.Handle().IsAttached())

	// Output:
	// attached: true
	// attached: false
	// new epoch attached: true
}

// This example walks only the real boxes of a container that also holds
// periodic images.
func ExampleRealBoxIterator() {
	level := hier.NewBoxLevel(geom.Index{X: 1, Y: 1}, []geom.Index{{X: 16, Y: 0}})
	level.AddBox(geom.NewBox(0, 0, geom.Index{X: 0, Y: 0}, geom.Index{X: 7, Y: 7}))
	level.AddBox(geom.NewBox(0, 1, geom.Index{X: 8, Y: 0}, geom.Index{X: 15, Y: 7}))
	level.AddPeriodicImages()

	fmt.Println("total boxes:", level.NumBoxes())
	for it := hier.NewRealBoxIterator(level.Boxes()); it.IsValid(); it.Next() {
		fmt.Println("real box:", it.Box().ID)
	}

	// Output:
	// total boxes: 4
	// real box: 0#0
	// real box: 0#1
}
