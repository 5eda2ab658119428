package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-mesh/mesh/cmd/mesh/internal/render"
	"github.com/go-mesh/mesh/pkg/levelfile"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Draw a level file to a PNG image",
		Long: `Load a box-level description file and draw it to a PNG image.

Real boxes are drawn solid; periodic images are drawn in a lighter
fill beneath them. Box IDs are labeled when the boxes are large
enough to hold the text.`,
		Usage: "mesh render <level.yaml> [-o out.png] [--cell-size N] [--no-labels]",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	opts := render.DefaultOptions()
	out := ""
	path := ""

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-o" || arg == "--output":
			if i+1 >= len(args) {
				return fmt.Errorf("%s requires a file path", arg)
			}
			out = args[i+1]
			i++
		case strings.HasPrefix(arg, "--cell-size="):
			n, err := strconv.Atoi(strings.TrimPrefix(arg, "--cell-size="))
			if err != nil || n < 1 {
				return fmt.Errorf("invalid --cell-size value %q", arg)
			}
			opts.CellSize = n
		case arg == "--no-labels":
			opts.Labels = false
		case strings.HasPrefix(arg, "-"):
			return fmt.Errorf("unknown flag %q", arg)
		default:
			if path != "" {
				return fmt.Errorf("render takes exactly one level file argument")
			}
			path = arg
		}
	}
	if path == "" {
		return fmt.Errorf("render requires a level file argument")
	}
	if out == "" {
		out = strings.TrimSuffix(path, ".yaml") + ".png"
	}

	level, err := levelfile.Load(path)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer f.Close()

	if err := render.WritePNG(f, level, opts); err != nil {
		return err
	}
	fmt.Printf("Rendered %s -> %s\n", path, out)
	return nil
}
