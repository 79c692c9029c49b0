// Package ringdraw renders a ring and the landmarks of its cap, to show how
// its orientation was decided.
package ringdraw

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/orient/advanced"
	"github.com/pkg/errors"
)

// Padding around the shape, in pixels, so that landmarks on the edge are
// visible
const drawPadding = 40

const landmarkRadius = 4

// Largest width or height of the shape itself, in pixels. Larger drawings are
// scaled down to fit.
const maxDrawSize = 4096

type landmark struct {
	label   string
	point   advanced.Point
	r, g, b float64
}

// Draw the ring into a new context. Scale is pixels per unit. The ring is
// filled green if it winds counterclockwise and red otherwise, and the cap
// landmarks are marked and labelled.
func Draw(ring advanced.Ring, c advanced.Cap, scale float64) *gg.Context {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range ring {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(ring) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	scale = fitScale(scale, maxX-minX, maxY-minY)
	width := pixels(scale*(maxX-minX)) + drawPadding*2
	height := pixels(scale*(maxY-minY)) + drawPadding*2
	ctx := gg.NewContext(width, height)
	ctx.SetRGB(0, 0, 0)
	ctx.DrawRectangle(0, 0, float64(width), float64(height))
	ctx.Fill()

	// Flip the context so the origin is at the bottom left
	ctx.Translate(0, float64(height))
	ctx.Scale(1, -1)
	// Translate for padding
	ctx.Translate(drawPadding, drawPadding)
	// Scale
	ctx.Scale(scale, scale)
	// Translate to min
	ctx.Translate(-minX, -minY)

	if len(ring) > 0 {
		ctx.MoveTo(ring[0].X, ring[0].Y)
		for _, p := range ring[1:] {
			ctx.LineTo(p.X, p.Y)
		}
		ctx.ClosePath()
		if c.IsCCW() {
			ctx.SetRGBA(0, 0.6, 0, 0.5)
		} else {
			ctx.SetRGBA(0.7, 0, 0, 0.5)
		}
		ctx.FillPreserve()
		ctx.SetRGB(1, 1, 1)
		ctx.SetLineWidth(2)
		ctx.Stroke()
	}

	if c.Shape == advanced.CapFlat {
		return ctx
	}

	// Highlight the segments that decided the answer
	ctx.SetRGB(0, 1, 1)
	ctx.SetLineWidth(4)
	ctx.MoveTo(c.UpLow.X, c.UpLow.Y)
	ctx.LineTo(c.UpHi.X, c.UpHi.Y)
	ctx.LineTo(c.DownHi.X, c.DownHi.Y)
	ctx.LineTo(c.DownLow.X, c.DownLow.Y)
	ctx.Stroke()

	landmarks := []landmark{
		{"up low", c.UpLow, 1, 1, 0},
		{"up hi", c.UpHi, 0, 1, 1},
		{"down hi", c.DownHi, 1, 0, 1},
		{"down low", c.DownLow, 1, 0.5, 0},
	}
	for _, l := range landmarks {
		if l.point.IsNull() {
			continue
		}
		// Labels and dots are drawn in pixel space so they don't scale or flip
		x, y := ctx.TransformPoint(l.point.X, l.point.Y)
		ctx.Push()
		ctx.Identity()
		ctx.SetRGB(l.r, l.g, l.b)
		ctx.DrawCircle(x, y, landmarkRadius)
		ctx.Fill()
		ctx.DrawStringAnchored(l.label, x+landmarkRadius*2, y, 0, 0.5)
		ctx.Pop()
	}
	return ctx
}

// Reduce scale so that neither extent exceeds maxDrawSize pixels.
func fitScale(scale, width, height float64) float64 {
	extent := math.Max(width, height)
	if extent*scale > maxDrawSize {
		return maxDrawSize / extent
	}
	return scale
}

// Pixel size for a scaled extent. Extents too large to represent (an infinite
// span between finite coordinates) are capped.
func pixels(size float64) int {
	if !(size < maxDrawSize) {
		return maxDrawSize
	}
	return int(size)
}

func WritePNG(w io.Writer, ring advanced.Ring, c advanced.Cap, scale float64) error {
	return errors.Wrap(Draw(ring, c, scale).EncodePNG(w), "encoding png")
}

// Save the drawing to a PNG file at path.
func SavePNG(path string, ring advanced.Ring, c advanced.Cap, scale float64) error {
	return errors.Wrapf(Draw(ring, c, scale).SavePNG(path), "saving %s", path)
}

// Print a PNG file to an iTerm compatible terminal.
func Echo(path string, w io.Writer) error {
	return errors.Wrap(imgcat.CatFile(path, w), "echoing image")
}
