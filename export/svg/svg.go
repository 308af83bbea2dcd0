// Package svg writes a flattened vector preview of a cell.
//
// Each layer becomes one <g> group in stack order, so wells end up at the
// bottom and metal on top. Layout y grows upward; SVG y grows downward, so
// every rectangle is flipped about the x axis. The viewBox is in microns.
//
// Importing the package registers the "svg" format with export.
package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/stdcell/export"
	"github.com/gogpu/stdcell/layout"
)

func init() {
	export.Register("svg", func() export.Exporter {
		return New()
	})
}

// Exporter writes SVG previews.
type Exporter struct {
	scale  float64 // pixels per micron
	margin float64 // microns around the bounding box
}

var _ export.Exporter = (*Exporter)(nil)

// Option configures an Exporter.
type Option func(*Exporter)

// WithScale sets the rendered size in pixels per micron. Default 100.
func WithScale(pxPerMicron float64) Option {
	return func(e *Exporter) {
		if pxPerMicron > 0 {
			e.scale = pxPerMicron
		}
	}
}

// WithMargin sets the blank border around the cell in microns. Default 0.5.
func WithMargin(microns float64) Option {
	return func(e *Exporter) {
		if microns >= 0 {
			e.margin = microns
		}
	}
}

// New creates an SVG exporter.
func New(opts ...Option) *Exporter {
	e := &Exporter{scale: 100, margin: 0.5}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Write implements export.Exporter.
func (e *Exporter) Write(w io.Writer, c *layout.Cell) error {
	if c == nil {
		return export.ErrNilCell
	}

	bb := c.BBox()
	minX, minY := bb.Min.X-e.margin, -bb.Max.Y-e.margin
	width, height := bb.Width()+2*e.margin, bb.Height()+2*e.margin

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`+"\n",
		num(width*e.scale), num(height*e.scale), num(minX), num(minY), num(width), num(height))
	bw.WriteString("<title>")
	if err := xml.EscapeText(bw, []byte(c.Name())); err != nil {
		return err
	}
	bw.WriteString("</title>\n")

	title := cases.Title(language.English)
	order, groups := export.ByLayer(c.Flatten())
	for _, l := range order {
		fmt.Fprintf(bw, `<g id="%s" fill="%s" fill-opacity="%s">`+"\n",
			l, export.LayerColor(l), num(export.LayerOpacity(l)))
		fmt.Fprintf(bw, "<title>%s</title>\n", title.String(string(l)))
		for _, r := range groups[l] {
			fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s"/>`+"\n",
				num(r.Min.X), num(-r.Max.Y), num(r.Width()), num(r.Height()))
		}
		bw.WriteString("</g>\n")
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// num formats v with at most six decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
