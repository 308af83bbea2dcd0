// Package png renders a raster preview of a cell with gogpu/gg.
//
// The cell is scaled to fit the requested size, layers are filled in stack
// order with translucent colors, and the cell name is printed in the
// bottom-left corner.
//
// Importing the package registers the "png" format with export.
package png

import (
	"fmt"
	"image"
	"image/color"
	stdpng "image/png"
	"io"
	"math"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/stdcell/export"
	"github.com/gogpu/stdcell/layout"
)

func init() {
	export.Register("png", func() export.Exporter {
		return New()
	})
}

// Exporter renders PNG previews.
type Exporter struct {
	size       int // longest side of the drawing area in pixels
	padding    int
	background gg.RGBA
	label      bool
}

var _ export.Exporter = (*Exporter)(nil)

// Option configures an Exporter.
type Option func(*Exporter)

// WithSize sets the longest side of the drawing area. Default 800.
func WithSize(px int) Option {
	return func(e *Exporter) {
		if px > 0 {
			e.size = px
		}
	}
}

// WithPadding sets the blank border in pixels. Default 16.
func WithPadding(px int) Option {
	return func(e *Exporter) {
		if px >= 0 {
			e.padding = px
		}
	}
}

// WithBackground sets the background color as "#rrggbb".
func WithBackground(hex string) Option {
	return func(e *Exporter) {
		e.background = gg.Hex(hex)
	}
}

// WithoutLabel omits the cell name.
func WithoutLabel() Option {
	return func(e *Exporter) {
		e.label = false
	}
}

// New creates a PNG exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{size: 800, padding: 16, background: gg.RGB(1, 1, 1), label: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Write implements export.Exporter.
func (e *Exporter) Write(w io.Writer, c *layout.Cell) error {
	img, err := e.Render(c)
	if err != nil {
		return err
	}
	return stdpng.Encode(w, img)
}

// Render draws c and returns the image.
func (e *Exporter) Render(c *layout.Cell) (*image.RGBA, error) {
	if c == nil {
		return nil, export.ErrNilCell
	}

	bb := c.BBox()
	span := math.Max(bb.Width(), bb.Height())
	scale := 1.0
	if span > 0 {
		scale = float64(e.size) / span
	}
	width := int(math.Ceil(bb.Width()*scale)) + 2*e.padding
	height := int(math.Ceil(bb.Height()*scale)) + 2*e.padding
	width, height = max(width, 1), max(height, 1)

	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(e.background)

	// Layout y grows up, image y grows down.
	px := func(x float64) float64 { return float64(e.padding) + (x-bb.Min.X)*scale }
	py := func(y float64) float64 { return float64(e.padding) + (bb.Max.Y-y)*scale }

	order, groups := export.ByLayer(c.Flatten())
	for _, l := range order {
		col := gg.Hex(export.LayerColor(l))
		dc.SetRGBA(col.R, col.G, col.B, export.LayerOpacity(l))
		for _, r := range groups[l] {
			dc.DrawRectangle(px(r.Min.X), py(r.Max.Y), r.Width()*scale, r.Height()*scale)
		}
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("png: fill %s: %w", l, err)
		}
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("png: flush: %w", err)
	}

	src := dc.Image()
	out := image.NewRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)

	if e.label {
		d := &font.Drawer{
			Dst:  out,
			Src:  image.NewUniform(color.Black),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4, height-4),
		}
		d.DrawString(c.Name())
	}
	return out, nil
}
