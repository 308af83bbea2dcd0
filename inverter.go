package stdcell

import (
	"math"

	"github.com/gogpu/stdcell/layout"
)

// Inverter composes a CMOS inverter from an NMOS pull-down and a PMOS
// pull-up.
//
// The pull-down sits at the origin. The pull-up is mirrored about its own
// half-height and raised by the taller device's finger width plus the
// device spacing, so both drain rows face each other. A metal1 column joins
// the drains into the output and a poly2 column joins the gate straps, with
// a landing pad and contact on the left for the input.
//
// Both transistors are validated before either is built.
func (b *Builder) Inverter(pullDown, pullUp Transistor) (*layout.Cell, error) {
	const op = "Inverter"
	if pullDown.Type != NMOS {
		return nil, &ParameterError{Op: op, Name: "pullDown.Type", Value: pullDown.Type, Reason: "want nmos"}
	}
	if pullUp.Type != PMOS {
		return nil, &ParameterError{Op: op, Name: "pullUp.Type", Value: pullUp.Type, Reason: "want pmos"}
	}
	fn, err := pullDown.validate(op)
	if err != nil {
		return nil, err
	}
	fp, err := pullUp.validate(op)
	if err != nil {
		return nil, err
	}

	nCell, err := b.transistor(NMOS, fn)
	if err != nil {
		return nil, err
	}
	pCell, err := b.transistor(PMOS, fp)
	if err != nil {
		return nil, err
	}

	r := b.rules
	offset := math.Max(fn.Width, fp.Width) + r.DeviceSpacing
	up := layout.MirrorY(fp.Width/2).Then(layout.Translate(0, offset))

	c := layout.NewCell(inverterName(fn, fp))
	c.AddRef(nCell, layout.Identity())
	c.AddRef(pCell, up)

	// Output: drain row to drain row, then a horizontal bus to the right.
	x := -r.StrapOffset + r.FingerPitch()
	nDrain := fn.Width - r.StrapOverlap + r.MetalSpacing + r.StrapWidth
	pDrain := up.Apply(layout.Pt(x, fp.Width-r.StrapOverlap+r.MetalSpacing+r.StrapWidth)).Y
	c.AddRect(layout.Metal1, layout.NewRect(layout.Pt(x, nDrain), layout.Pt(x+r.StrapWidth, pDrain)))

	s := outputStrips(fn, fp)
	c.AddRect(layout.Metal1, layout.RectXYWH(
		x+r.StrapWidth, nDrain+r.OutputBusRise,
		float64(s+3)*r.InterFingerSpacing, r.StrapWidth))

	// Input: gate strap to gate strap, then a landing to the left.
	nGate := fn.Width + r.GateExtension + r.PolyPadWidth
	pGate := up.Apply(layout.Pt(r.PolyStrapX, fp.Width+r.GateExtension+r.PolyPadWidth)).Y
	c.AddRect(layout.Poly2, layout.NewRect(
		layout.Pt(r.PolyStrapX, nGate),
		layout.Pt(r.PolyStrapX+r.PolyPadWidth, pGate)))

	land := layout.Pt(r.PolyStrapX-r.InputLandingLength, nGate+r.InputLandingRise)
	c.AddRect(layout.Poly2, layout.RectXYWH(land.X, land.Y, r.InputLandingLength, r.PolyPadWidth))
	c.AddRect(layout.Metal1, layout.RectXYWH(land.X, land.Y, r.StrapWidth, r.StrapWidth))
	c.AddRect(layout.Contact, layout.RectXYWH(
		land.X+r.ContactEnclosure, land.Y+r.ContactEnclosure,
		r.ContactSize, r.ContactSize))
	c.Seal()

	Logger().Debug("inverter built",
		"cell", c.Name(),
		"pull_up_offset", offset,
		"output_strips", s)
	return c, nil
}

// outputStrips sizes the output bus from the device with more straps.
func outputStrips(n, p Fingers) int {
	if p.SourceStrips+p.DrainStrips > n.SourceStrips+n.DrainStrips {
		return p.strips()
	}
	return n.strips()
}
