package stdcell

import (
	"fmt"

	"github.com/gogpu/stdcell/drt"
	"github.com/gogpu/stdcell/layout"
)

// Transistor builds the layout of one device.
//
// The cell holds the provider's active device at the origin followed by,
// in order: source straps, drain straps, the poly gate strap, the guard
// ring, bulk contacts and the ties from the source bus to the body.
// Parameters are validated before anything is drawn; an invalid
// transistor returns an error matching ErrInvalidParameter and no cell.
func (b *Builder) Transistor(t Transistor) (*layout.Cell, error) {
	f, err := t.validate("Transistor")
	if err != nil {
		return nil, err
	}
	return b.transistor(t.Type, f)
}

func (b *Builder) transistor(dt DeviceType, f Fingers) (*layout.Cell, error) {
	base, err := b.provider.ActiveDevice(dt.polarity(), f.Width, f.Count)
	if err != nil {
		return nil, fmt.Errorf("stdcell: %s active device: %w", dt, err)
	}

	c := layout.NewCell(transistorName(dt, f))
	c.AddRef(base, layout.Identity())

	d := devicePainter{r: b.rules, f: f, dt: dt, c: c}
	d.source()
	d.drain()
	d.gateStrap()
	d.guardRing()
	d.bulkContacts()
	d.ties()
	c.Seal()

	Logger().Debug("transistor built",
		"cell", c.Name(),
		"fingers", f.Count,
		"finger_width", f.Width,
		"shapes", len(c.Shapes()))
	return c, nil
}

// devicePainter draws the straps and body of one transistor around its
// active device. x0 is the left edge of the first source strap.
type devicePainter struct {
	r  *drt.Rules
	f  Fingers
	dt DeviceType
	c  *layout.Cell
}

func (d *devicePainter) rect(layer layout.Layer, x, y, w, h float64) {
	d.c.AddRect(layer, layout.RectXYWH(x, y, w, h))
}

func (d *devicePainter) x0() float64 {
	return -d.r.StrapOffset
}

// right is the x of the right edge of the last finger's pitch.
func (d *devicePainter) right() float64 {
	return float64(d.f.Count) * d.r.FingerPitch()
}

// sourceBusY is the bottom edge of the source bus.
func (d *devicePainter) sourceBusY() float64 {
	r := d.r
	return -r.StrapWidth - r.MetalSpacing + r.StrapOverlap
}

func (d *devicePainter) source() {
	r, nf := d.r, d.f.Count
	if nf < 2 {
		d.rect(layout.Metal1, d.x0(), d.sourceBusY(), r.StrapWidth, r.StrapWidth+r.MetalSpacing)
		return
	}

	t := float64(nf &^ 1)
	width := 2*(r.InterFingerSpacing-r.StrapInset) + (t-1)*r.InterFingerSpacing + t*r.GateLength
	d.rect(layout.Metal1, d.x0(), d.sourceBusY(), width, r.StrapWidth)
	for i := range d.f.SourceStrips {
		x := d.x0() + float64(i)*r.StrapPitch()
		d.rect(layout.Metal1, x, -r.MetalSpacing+r.StrapOverlap, r.StrapWidth, r.MetalSpacing)
	}
}

func (d *devicePainter) drain() {
	r, nf, w := d.r, d.f.Count, d.f.Width
	x := d.x0() + r.FingerPitch()
	if nf < 3 {
		d.rect(layout.Metal1, x, w-r.StrapOverlap, r.StrapWidth, r.StrapWidth+r.MetalSpacing)
		return
	}

	k := float64(nf)
	if nf%2 == 0 {
		k--
	}
	width := (r.InterFingerSpacing - r.StrapInset) + (k-1)*r.FingerPitch() - r.StrapInset
	d.rect(layout.Metal1, x, w+r.MetalSpacing-r.StrapOverlap, width, r.StrapWidth)
	for i := range d.f.DrainStrips {
		d.rect(layout.Metal1, x+float64(i)*r.StrapPitch(), w-r.StrapOverlap, r.StrapWidth, r.MetalSpacing)
	}
}

func (d *devicePainter) gateStrap() {
	r, nf := d.r, float64(d.f.Count)
	width := (nf-1)*r.PolyPadSpacing + nf*r.PolyPadWidth
	d.rect(layout.Poly2, r.PolyStrapX, d.f.Width+r.GateExtension, width, r.PolyPadWidth)
}

func (d *devicePainter) guardRing() {
	r, w := d.r, d.f.Width
	left, right := -r.BulkLeftOffset, d.right()+r.BulkRightOffset

	d.rect(layout.Comp, left, 0, r.BulkDiffWidth, w)
	d.rect(layout.Comp, right, 0, r.BulkDiffWidth, w)

	if h := w - 2*r.ContactEnclosure; h > 0 {
		d.rect(layout.Metal1, left, r.ContactEnclosure, r.BulkMetalWidth, h)
		d.rect(layout.Metal1, right, r.ContactEnclosure, r.BulkMetalWidth, h)
	} else {
		Logger().Warn("finger too short for guard ring metal",
			"device", d.dt.String(), "finger_width", w)
	}

	implant := d.dt.bodyImplant()
	h := w + 2*r.ImplantEnclosure
	d.rect(implant, -r.ImplantLeftOffset, -r.ImplantEnclosure, r.ImplantWidth, h)
	d.rect(implant, d.right()+r.ImplantRightOffset, -r.ImplantEnclosure, r.ImplantWidth, h)

	if d.dt.NeedsWell() {
		h := w + 2*r.WellEnclosure
		d.rect(layout.NWell, -r.WellLeftOffset, -r.WellEnclosure, r.ImplantWidth, h)
		d.rect(layout.NWell, d.right()+r.WellRightOffset, -r.WellEnclosure, r.ImplantWidth, h)
	}
}

func (d *devicePainter) bulkContacts() {
	r := d.r
	n := r.ContactsIn(d.f.Width)
	for i := range n {
		y := r.BulkContactStart + float64(i)*r.ContactPitch()
		d.rect(layout.Contact, -r.BulkContactLeftOffset, y, r.ContactSize, r.ContactSize)
		d.rect(layout.Contact, d.right()+r.BulkContactRightOffset, y, r.ContactSize, r.ContactSize)
	}
}

func (d *devicePainter) ties() {
	r, nf := d.r, d.f.Count

	busTop := -r.MetalSpacing + r.StrapOverlap
	tieH := r.MetalSpacing + r.TieExtension
	leftX := 2*d.x0() - r.TieWidth
	rightX := d.x0() + d.right() + r.StrapWidth + r.TieGap
	d.rect(layout.Metal1, leftX, busTop, r.TieWidth, tieH)
	d.rect(layout.Metal1, rightX, busTop, r.TieWidth, tieH)

	d.rect(layout.Metal1, leftX, d.sourceBusY(), r.StrapOffset+r.TieWidth, r.StrapWidth)

	// The right connector starts at the last source strap; with an odd
	// finger count that strap is one finger short of the edge.
	length := r.TieWidth + r.TieGap
	last := nf
	if nf%2 != 0 {
		length += 2*r.StrapInset + r.StrapWidth + r.GateLength
		last--
	}
	x := d.x0() + float64(last)*r.FingerPitch() + r.StrapWidth
	d.rect(layout.Metal1, x, d.sourceBusY(), length, r.StrapWidth)
}
