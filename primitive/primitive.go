// Package primitive supplies the base active-area and gate shape of a MOS
// device, the part of a transistor that the stdcell builders decorate with
// straps, guard ring and ties.
//
// The production provider is a process design kit. [Basic] is a
// self-contained stand-in that draws the same footprint from a rule table,
// so the builders, tests and exporters run without one.
package primitive

import (
	"fmt"

	"github.com/gogpu/stdcell/drt"
	"github.com/gogpu/stdcell/layout"
)

// Polarity selects an n-channel or p-channel device.
type Polarity int

const (
	// N is an n-channel device (pull-down).
	N Polarity = iota
	// P is a p-channel device (pull-up), built inside an n-well.
	P
)

// String returns "n" or "p".
func (p Polarity) String() string {
	switch p {
	case N:
		return "n"
	case P:
		return "p"
	default:
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
}

// Provider builds the active area and gate fingers of one device.
// Implementations must return a sealed cell whose geometry depends only on
// the arguments.
type Provider interface {
	ActiveDevice(pol Polarity, fingerWidth float64, fingerCount int) (*layout.Cell, error)
}

// Basic draws a device footprint from a rule table:
//   - one comp rectangle spanning every finger and source/drain gap
//   - one poly2 gate per finger, extended below the row and up into the
//     gate strap
//   - a column of contacts in every source/drain gap
//   - the device implant (nplus for N, pplus for P)
//   - an n-well around P devices
//
// Finger i occupies x in [i*pitch, i*pitch+gateLength]; the diffusion row
// spans y in [0, fingerWidth].
type Basic struct {
	Rules *drt.Rules
}

// Ensure Basic implements Provider.
var _ Provider = Basic{}

// ActiveDevice implements Provider.
func (b Basic) ActiveDevice(pol Polarity, fingerWidth float64, fingerCount int) (*layout.Cell, error) {
	if b.Rules == nil {
		return nil, fmt.Errorf("primitive: nil rules")
	}
	if pol != N && pol != P {
		return nil, fmt.Errorf("primitive: unknown polarity %v", pol)
	}
	if !(fingerWidth > 0) || fingerCount < 1 {
		return nil, fmt.Errorf("primitive: bad finger geometry w=%g nf=%d", fingerWidth, fingerCount)
	}

	r := b.Rules
	pitch := r.FingerPitch()
	w := fingerWidth

	c := layout.NewCell(fmt.Sprintf("%sfet_w%g_nf%d", pol, w, fingerCount))

	// Diffusion from the first source gap to the last.
	left := -r.InterFingerSpacing
	right := float64(fingerCount) * pitch
	active := layout.NewRect(layout.Pt(left, 0), layout.Pt(right, w))
	c.AddRect(layout.Comp, active)

	top := w + r.GateExtension + r.PolyPadWidth/2
	for i := 0; i < fingerCount; i++ {
		x := float64(i) * pitch
		c.AddRect(layout.Poly2, layout.NewRect(layout.Pt(x, -r.GateExtension), layout.Pt(x+r.GateLength, top)))
	}

	// One contact column per source/drain gap, centred in the gap.
	n := r.ContactsIn(w)
	y0 := (w - float64(n)*r.ContactPitch() + r.ContactSpacing) / 2
	for gap := 0; gap <= fingerCount; gap++ {
		cx := float64(gap)*pitch - r.InterFingerSpacing/2
		for j := 0; j < n; j++ {
			y := y0 + float64(j)*r.ContactPitch()
			c.AddRect(layout.Contact, layout.RectXYWH(cx-r.ContactSize/2, y, r.ContactSize, r.ContactSize))
		}
	}

	implant := layout.NPlus
	if pol == P {
		implant = layout.PPlus
	}
	e := r.ImplantEnclosure
	c.AddRect(implant, layout.NewRect(layout.Pt(left-e, -e), layout.Pt(right+e, w+e)))

	if pol == P {
		e = r.WellEnclosure
		c.AddRect(layout.NWell, layout.NewRect(layout.Pt(left-e, -e), layout.Pt(right+e, w+e)))
	}

	c.Seal()
	return c, nil
}

