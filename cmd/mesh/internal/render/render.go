// Package render draws box levels into raster images for inspection.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-mesh/mesh/pkg/geom"
	"github.com/go-mesh/mesh/pkg/hier"
)

// Options controls the rendered output.
type Options struct {
	// CellSize is the pixel edge length of one index-space cell.
	CellSize int
	// Margin is the pixel border around the drawing.
	Margin int
	// Labels enables BoxID labels inside each box.
	Labels bool
}

// DefaultOptions are suitable for small levels.
func DefaultOptions() Options {
	return Options{CellSize: 8, Margin: 16, Labels: true}
}

var (
	background = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	realFill   = color.RGBA{R: 0x5b, G: 0x8d, B: 0xd9, A: 0xff}
	imageFill  = color.RGBA{R: 0xc9, G: 0xd8, B: 0xf0, A: 0xff}
	outline    = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	labelInk   = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
)

// Level renders the level into a new image. Periodic images are drawn in
// a lighter fill beneath the real boxes so wrap-around structure stays
// visible without obscuring the real layout.
func Level(level *hier.BoxLevel, opts Options) (*image.RGBA, error) {
	if opts.CellSize < 1 {
		return nil, fmt.Errorf("render: CellSize must be positive, got %d", opts.CellSize)
	}
	bound, ok := fullExtent(level)
	if !ok {
		return nil, fmt.Errorf("render: level has no boxes")
	}

	width := (bound.Upper.X-bound.Lower.X+1)*opts.CellSize + 2*opts.Margin
	height := (bound.Upper.Y-bound.Lower.Y+1)*opts.CellSize + 2*opts.Margin
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fill(img, img.Bounds(), background)

	// Lighter periodic images first, then real boxes on top.
	for it := level.Boxes().Iterator(); it.IsValid(); it.Next() {
		if it.Box().IsPeriodicImage() {
			drawBox(img, *it.Box(), bound.Lower, opts, imageFill)
		}
	}
	for it := hier.NewRealBoxIterator(level.Boxes()); it.IsValid(); it.Next() {
		drawBox(img, *it.Box(), bound.Lower, opts, realFill)
	}
	return img, nil
}

// WritePNG renders the level and encodes it as PNG.
func WritePNG(w io.Writer, level *hier.BoxLevel, opts Options) error {
	img, err := Level(level, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// fullExtent returns the bounding box over all boxes, images included,
// so shifted images stay inside the drawing.
func fullExtent(level *hier.BoxLevel) (geom.Box, bool) {
	it := level.Boxes().Iterator()
	if !it.IsValid() {
		return geom.Box{}, false
	}
	bound := *it.Box()
	for it.Next(); it.IsValid(); it.Next() {
		b := it.Box()
		bound.Lower = bound.Lower.Min(b.Lower)
		bound.Upper = bound.Upper.Max(b.Upper)
	}
	return bound, true
}

func drawBox(img *image.RGBA, b geom.Box, origin geom.Index, opts Options, c color.RGBA) {
	rect := image.Rect(
		opts.Margin+(b.Lower.X-origin.X)*opts.CellSize,
		opts.Margin+(b.Lower.Y-origin.Y)*opts.CellSize,
		opts.Margin+(b.Upper.X-origin.X+1)*opts.CellSize,
		opts.Margin+(b.Upper.Y-origin.Y+1)*opts.CellSize,
	)
	fill(img, rect, c)
	stroke(img, rect, outline)
	if opts.Labels {
		label(img, rect, b.ID.String())
	}
}

func fill(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func stroke(img *image.RGBA, rect image.Rectangle, c color.RGBA) {
	for x := rect.Min.X; x < rect.Max.X; x++ {
		img.SetRGBA(x, rect.Min.Y, c)
		img.SetRGBA(x, rect.Max.Y-1, c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		img.SetRGBA(rect.Min.X, y, c)
		img.SetRGBA(rect.Max.X-1, y, c)
	}
}

// label draws the box ID centered in rect, skipping boxes too small to
// hold the text.
func label(img *image.RGBA, rect image.Rectangle, text string) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	if width+4 > rect.Dx() || face.Height+4 > rect.Dy() {
		return
	}
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelInk),
		Face: face,
		Dot: fixed.P(
			rect.Min.X+(rect.Dx()-width)/2,
			rect.Min.Y+(rect.Dy()+face.Ascent)/2,
		),
	}
	drawer.DrawString(text)
}
