package cmd

import (
	"fmt"

	"github.com/go-mesh/mesh/pkg/geom"
	"github.com/go-mesh/mesh/pkg/hier"
	"github.com/go-mesh/mesh/pkg/levelfile"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check a level file for consistency problems",
		Long: `Load a box-level description file and check it for consistency
problems beyond what loading already enforces.

Checks:
  - No two real boxes overlap
  - No real box is empty
  - Every periodic image matches its real box shifted by a table entry`,
		Usage: "mesh validate <level.yaml>",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("validate requires exactly one level file argument")
	}

	level, err := levelfile.Load(args[0])
	if err != nil {
		return err
	}

	problems := validateLevel(level)
	if len(problems) == 0 {
		fmt.Printf("%s: OK (%d real boxes, %d periodic images)\n",
			args[0], level.NumRealBoxes(), level.NumBoxes()-level.NumRealBoxes())
		return nil
	}
	for _, p := range problems {
		fmt.Printf("%s: %s\n", args[0], p)
	}
	return fmt.Errorf("%d consistency problem(s)", len(problems))
}

// validateLevel returns human-readable descriptions of every consistency
// problem found in the level.
func validateLevel(level *hier.BoxLevel) []string {
	var problems []string

	var realBoxes []geom.Box
	for it := hier.NewRealBoxIterator(level.Boxes()); it.IsValid(); it.Next() {
		realBoxes = append(realBoxes, *it.Box())
	}

	for i, b := range realBoxes {
		if b.Empty() {
			problems = append(problems, fmt.Sprintf("real box %s is empty", b.ID))
		}
		for _, other := range realBoxes[i+1:] {
			if b.Intersects(other) {
				problems = append(problems,
					fmt.Sprintf("real boxes %s and %s overlap", b.ID, other.ID))
			}
		}
	}

	for it := level.Boxes().Iterator(); it.IsValid(); it.Next() {
		img := it.Box()
		if !img.IsPeriodicImage() {
			continue
		}
		if int(img.ID.Shift) > len(level.ShiftTable()) {
			problems = append(problems,
				fmt.Sprintf("image %s references shift %d outside the shift table", img.ID, img.ID.Shift))
			continue
		}
		realID := geom.BoxID{Owner: img.ID.Owner, Local: img.ID.Local}
		if !level.Boxes().Contains(realID) {
			problems = append(problems,
				fmt.Sprintf("image %s has no real box %s", img.ID, realID))
			continue
		}
		offset := level.ShiftOffset(img.ID.Shift)
		for _, b := range realBoxes {
			if b.ID != realID {
				continue
			}
			want := b.Shift(offset, img.ID.Shift)
			if want.Lower != img.Lower || want.Upper != img.Upper {
				problems = append(problems,
					fmt.Sprintf("image %s does not match %s shifted by %s", img.ID, realID, offset))
			}
		}
	}

	return problems
}
