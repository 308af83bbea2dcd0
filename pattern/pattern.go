// Package pattern generates batches of cells from a pattern file.
//
// A pattern file lists transistors and inverters to build with one rule
// table. The batch is built concurrently, laid out on a square-ish grid in
// a single top cell, and can be described as a CDL netlist for LVS.
//
//	spacing: 20
//	patterns:
//	  - {name: n2x2, device: nmos, width: 2, folding: 2}
//	  - {name: inv, device: inverter, width: 2, folding: 1, width_p: 4, folding_p: 2}
package pattern

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/stdcell"
	"github.com/gogpu/stdcell/layout"
)

// ErrInvalidPattern is matched by every malformed pattern file.
var ErrInvalidPattern = errors.New("pattern: invalid pattern")

// DefaultSpacing is the grid pitch in microns when a file sets none.
const DefaultSpacing = 20.0

// Kind is what a pattern builds.
type Kind string

const (
	KindNMOS     Kind = "nmos"
	KindPMOS     Kind = "pmos"
	KindInverter Kind = "inverter"
)

// Pattern is one cell of a batch. Width and Folding describe the
// transistor, or the pull-down of an inverter; WidthP and FoldingP
// describe the inverter's pull-up.
type Pattern struct {
	Name     string  `yaml:"name"`
	Device   Kind    `yaml:"device"`
	Width    float64 `yaml:"width"`
	Folding  int     `yaml:"folding"`
	WidthP   float64 `yaml:"width_p,omitempty"`
	FoldingP int     `yaml:"folding_p,omitempty"`
}

// Set is a parsed pattern file.
type Set struct {
	Name     string    `yaml:"name"`
	Spacing  float64   `yaml:"spacing"`
	Patterns []Pattern `yaml:"patterns"`
}

// patternFile is the on-disk form of a Set. Foldings are pointers so a
// missing key can be told apart from an explicit zero.
type patternFile struct {
	Name     string         `yaml:"name"`
	Spacing  float64        `yaml:"spacing"`
	Patterns []patternEntry `yaml:"patterns"`
}

type patternEntry struct {
	Name     string  `yaml:"name"`
	Device   Kind    `yaml:"device"`
	Width    float64 `yaml:"width"`
	Folding  *int    `yaml:"folding"`
	WidthP   float64 `yaml:"width_p"`
	FoldingP *int    `yaml:"folding_p"`
}

// Load decodes and validates a YAML pattern file. Unknown keys are
// rejected. A missing folding or folding_p defaults to 1; an explicit
// value is kept as written and checked when the cell is built.
func Load(r io.Reader) (*Set, error) {
	var f patternFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrInvalidPattern)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	s := Set{Name: f.Name, Spacing: f.Spacing, Patterns: make([]Pattern, len(f.Patterns))}
	for i, e := range f.Patterns {
		s.Patterns[i] = Pattern{
			Name:     e.Name,
			Device:   e.Device,
			Width:    e.Width,
			Folding:  foldingOr(e.Folding, 1),
			WidthP:   e.WidthP,
			FoldingP: foldingOr(e.FoldingP, 0),
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	for i, e := range f.Patterns {
		if s.Patterns[i].Device == KindInverter && e.FoldingP == nil {
			s.Patterns[i].FoldingP = 1
		}
	}
	return &s, nil
}

func foldingOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// Validate normalizes device names, fills the set name, spacing and
// pattern names, and checks the batch structure. Electrical parameters,
// foldings included, are checked when cells are built.
func (s *Set) Validate() error {
	if s.Name == "" {
		s.Name = "patterns"
	}
	if s.Spacing == 0 {
		s.Spacing = DefaultSpacing
	}
	if s.Spacing < 0 {
		return fmt.Errorf("%w: negative spacing %g", ErrInvalidPattern, s.Spacing)
	}
	if len(s.Patterns) == 0 {
		return fmt.Errorf("%w: no patterns", ErrInvalidPattern)
	}

	seen := make(map[string]bool, len(s.Patterns))
	for i := range s.Patterns {
		p := &s.Patterns[i]
		kind, err := parseKind(string(p.Device))
		if err != nil {
			return fmt.Errorf("%w: pattern %d: %v", ErrInvalidPattern, i, err)
		}
		p.Device = kind
		if p.Name == "" {
			p.Name = fmt.Sprintf("%s_%d", kind, i)
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: duplicate name %q", ErrInvalidPattern, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

func parseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inverter", "inv":
		return KindInverter, nil
	}
	dt, err := stdcell.ParseDeviceType(s)
	if err != nil {
		return "", fmt.Errorf("unknown device %q", s)
	}
	if dt == stdcell.PMOS {
		return KindPMOS, nil
	}
	return KindNMOS, nil
}

// Build builds the pattern's cell with b.
func (p Pattern) Build(b *stdcell.Builder) (*layout.Cell, error) {
	switch p.Device {
	case KindNMOS:
		return b.Transistor(stdcell.Transistor{Type: stdcell.NMOS, GateWidth: p.Width, Folding: p.Folding})
	case KindPMOS:
		return b.Transistor(stdcell.Transistor{Type: stdcell.PMOS, GateWidth: p.Width, Folding: p.Folding})
	case KindInverter:
		return b.Inverter(
			stdcell.Transistor{Type: stdcell.NMOS, GateWidth: p.Width, Folding: p.Folding},
			stdcell.Transistor{Type: stdcell.PMOS, GateWidth: p.WidthP, Folding: p.FoldingP},
		)
	}
	return nil, fmt.Errorf("%w: unknown device %q", ErrInvalidPattern, p.Device)
}
