package cmd

import (
	"fmt"

	"github.com/go-mesh/mesh/pkg/hier"
	"github.com/go-mesh/mesh/pkg/levelfile"
)

func init() {
	RegisterCommand(&Command{
		Name:  "info",
		Short: "Print statistics for a level file",
		Long: `Load a box-level description file and print its statistics.

Shows:
  - Real box count and periodic image count
  - Total cell count over real boxes
  - Refinement ratio and periodic shift table
  - Bounding box of the real boxes`,
		Usage: "mesh info <level.yaml>",
		Run:   runInfo,
	})
}

func runInfo(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("info requires exactly one level file argument")
	}

	level, err := levelfile.Load(args[0])
	if err != nil {
		return err
	}

	images := level.NumBoxes() - level.NumRealBoxes()
	fmt.Printf("Level: %s\n", args[0])
	fmt.Printf("  Real boxes:      %d\n", level.NumRealBoxes())
	fmt.Printf("  Periodic images: %d\n", images)
	fmt.Printf("  Real cells:      %d\n", level.NumRealCells())
	fmt.Printf("  Refine ratio:    %s\n", level.RefineRatio())
	if shifts := level.ShiftTable(); len(shifts) > 0 {
		fmt.Printf("  Periodic shifts:\n")
		for i, s := range shifts {
			fmt.Printf("    %d: %s\n", i+1, s)
		}
	}
	if bound, ok := level.BoundingBox(); ok {
		fmt.Printf("  Bounding box:    %s..%s\n", bound.Lower, bound.Upper)
	}

	fmt.Println()
	fmt.Println("Real boxes:")
	for it := hier.NewRealBoxIterator(level.Boxes()); it.IsValid(); it.Next() {
		b := it.Box()
		fmt.Printf("  %-10s %s..%s (%d cells)\n", b.ID, b.Lower, b.Upper, b.NumCells())
	}
	return nil
}
