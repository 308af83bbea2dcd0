package stdcell

import (
	"fmt"
	"sync"

	"github.com/gogpu/stdcell/drt"
	"github.com/gogpu/stdcell/layout"
	"github.com/gogpu/stdcell/primitive"
)

// Builder produces transistor and inverter cells for one rule table.
// A Builder is immutable and safe for concurrent use.
type Builder struct {
	rules    *drt.Rules
	provider primitive.Provider
}

// NewBuilder creates a Builder. Without options it uses the gf180mcu rules
// and the built-in primitive. An unknown process or invalid rule table
// returns an error matching ErrConfig.
func NewBuilder(opts ...Option) (*Builder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var rules *drt.Rules
	if o.rules != nil {
		if err := o.rules.Validate(); err != nil {
			return nil, &ConfigError{Process: o.rules.Process, Err: err}
		}
		rules = o.rules.Clone()
	} else {
		r, err := drt.Lookup(o.process)
		if err != nil {
			return nil, &ConfigError{Process: o.process, Err: err}
		}
		rules = r
	}

	provider := o.provider
	if provider == nil {
		provider = primitive.Basic{Rules: rules}
	}
	return &Builder{rules: rules, provider: provider}, nil
}

// Rules returns a copy of the builder's rule table.
func (b *Builder) Rules() *drt.Rules {
	return b.rules.Clone()
}

// Process returns the name of the builder's rule table.
func (b *Builder) Process() string {
	return b.rules.Process
}

var defaultBuilder = sync.OnceValues(func() (*Builder, error) {
	return NewBuilder()
})

// DefaultBuilder returns the shared gf180mcu builder used by
// BuildTransistor and BuildInverter.
func DefaultBuilder() (*Builder, error) {
	return defaultBuilder()
}

// BuildTransistor builds a transistor cell with the default builder.
func BuildTransistor(dt DeviceType, gateWidth float64, folding int) (*layout.Cell, error) {
	b, err := defaultBuilder()
	if err != nil {
		return nil, err
	}
	return b.Transistor(Transistor{Type: dt, GateWidth: gateWidth, Folding: folding})
}

// BuildInverter builds an inverter with the default builder from an NMOS
// pull-down of gateWidthN/foldingN and a PMOS pull-up of gateWidthP/foldingP.
func BuildInverter(gateWidthN float64, foldingN int, gateWidthP float64, foldingP int) (*layout.Cell, error) {
	b, err := defaultBuilder()
	if err != nil {
		return nil, err
	}
	return b.Inverter(
		Transistor{Type: NMOS, GateWidth: gateWidthN, Folding: foldingN},
		Transistor{Type: PMOS, GateWidth: gateWidthP, Folding: foldingP},
	)
}

func transistorName(dt DeviceType, f Fingers) string {
	return fmt.Sprintf("%s_w%g_nf%d", dt, f.Width, f.Count)
}

func inverterName(n, p Fingers) string {
	return fmt.Sprintf("inv_n%gx%d_p%gx%d", n.Width, n.Count, p.Width, p.Count)
}
