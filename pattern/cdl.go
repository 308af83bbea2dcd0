package pattern

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/gogpu/stdcell"
	"github.com/gogpu/stdcell/drt"
)

// WriteCDL writes a CDL netlist of set: one subcircuit named after the set
// with a MOS line per device. Transistor patterns get private nets named
// after the pattern; inverters share vdd and vss.
//
//	M<n> <drain> <gate> <source> <bulk> <model> W=<w>u L=<l>u nf=<n>
func WriteCDL(w io.Writer, rules *drt.Rules, set *Set) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "* %s (%s)\n", set.Name, rules.Process)
	fmt.Fprintf(bw, ".SUBCKT %s vdd vss\n", set.Name)

	m := 0
	mos := func(d, g, s, b string, dt stdcell.DeviceType, width float64, folding int) error {
		f, err := stdcell.Decompose(width, folding)
		if err != nil {
			return err
		}
		model := rules.Models.NMOS
		if dt == stdcell.PMOS {
			model = rules.Models.PMOS
		}
		fmt.Fprintf(bw, "M%d %s %s %s %s %s W=%su L=%su nf=%d\n",
			m, d, g, s, b, model, um(width), um(rules.GateLength), f.Count)
		m++
		return nil
	}

	for _, p := range set.Patterns {
		var err error
		switch p.Device {
		case KindNMOS:
			err = mos(p.Name+"_d", p.Name+"_g", p.Name+"_s", "vss", stdcell.NMOS, p.Width, p.Folding)
		case KindPMOS:
			err = mos(p.Name+"_d", p.Name+"_g", p.Name+"_s", "vdd", stdcell.PMOS, p.Width, p.Folding)
		case KindInverter:
			in, out := p.Name+"_in", p.Name+"_out"
			if err = mos(out, in, "vss", "vss", stdcell.NMOS, p.Width, p.Folding); err == nil {
				err = mos(out, in, "vdd", "vdd", stdcell.PMOS, p.WidthP, p.FoldingP)
			}
		default:
			err = fmt.Errorf("%w: unknown device %q", ErrInvalidPattern, p.Device)
		}
		if err != nil {
			return fmt.Errorf("pattern %q: %w", p.Name, err)
		}
	}

	bw.WriteString(".ENDS\n")
	return bw.Flush()
}

func um(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
