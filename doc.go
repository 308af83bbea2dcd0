// Package stdcell generates mask-layout geometry for CMOS standard cells.
//
// # Overview
//
// Given a transistor's electrical parameters (device type, total gate width
// and folding factor) stdcell produces the rectangles that make up the
// physical device: the active area and gate fingers from a primitive
// provider, metal straps tying sources and drains together, a poly gate
// strap, a guard ring with bulk contacts, and the ties joining the source
// bus to the body. Two such devices compose into an inverter.
//
// # Quick Start
//
//	import "github.com/gogpu/stdcell"
//
//	// Pull-down: 2µm gate folded into two 1µm fingers
//	nmos, err := stdcell.BuildTransistor(stdcell.NMOS, 2, 2)
//
//	// Inverter with 2µm single-finger devices
//	inv, err := stdcell.BuildInverter(2, 1, 2, 1)
//
// The package-level functions use the gf180mcu rule table. For another
// process, a custom rule file or a real PDK provider, create a [Builder]:
//
//	b, err := stdcell.NewBuilder(stdcell.WithProcess("gf180mcu"))
//	cell, err := b.Transistor(stdcell.Transistor{Type: stdcell.PMOS, GateWidth: 4, Folding: 4})
//
// # Coordinates
//
// All lengths are microns. A transistor's diffusion row spans
// y ∈ [0, fingerWidth] with finger i starting at x = i·(gateLength +
// interFingerSpacing). Cells are immutable once returned; they share
// children by reference and are safe to read from many goroutines.
//
// # Output
//
// Cells are written by the exporters under export/ (GDSII, SVG, PNG) or
// inserted into any [layout.Sink].
//
// # Logging
//
// The package is silent by default. Install a handler with [SetLogger] to
// see build decisions at Debug level.
package stdcell
