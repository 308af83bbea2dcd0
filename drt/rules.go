package drt

import (
	"fmt"
	"maps"
	"math"

	"github.com/gogpu/stdcell/layout"
)

// GDSLayer is a stream layer/datatype pair.
type GDSLayer struct {
	Layer    int16 `yaml:"layer"`
	Datatype int16 `yaml:"datatype"`
}

// Rules is the design rule table of one process.
//
// Field groups follow the order in which the transistor builder consumes
// them: finger row, source/drain straps, gate strap, guard ring, bulk ties,
// inverter composition.
type Rules struct {
	Process     string `yaml:"process"`
	Description string `yaml:"description"`

	// DBUnit is the database grid in microns.
	DBUnit float64 `yaml:"db_unit"`

	// Finger row.
	GateLength         float64 `yaml:"gate_length"`
	InterFingerSpacing float64 `yaml:"inter_finger_spacing"`
	GateExtension      float64 `yaml:"gate_extension"`

	// Source/drain metal straps.
	StrapWidth   float64 `yaml:"strap_width"`
	StrapOffset  float64 `yaml:"strap_offset"`
	StrapInset   float64 `yaml:"strap_inset"`
	StrapOverlap float64 `yaml:"strap_overlap"`
	MetalSpacing float64 `yaml:"metal_spacing"`

	// Gate strap.
	PolyPadWidth   float64 `yaml:"poly_pad_width"`
	PolyPadSpacing float64 `yaml:"poly_pad_spacing"`
	PolyStrapX     float64 `yaml:"poly_strap_x"`

	// Contacts.
	ContactSize      float64 `yaml:"contact_size"`
	ContactSpacing   float64 `yaml:"contact_spacing"`
	ContactEnclosure float64 `yaml:"contact_enclosure"`

	// Guard ring.
	BulkDiffWidth          float64 `yaml:"bulk_diff_width"`
	BulkMetalWidth         float64 `yaml:"bulk_metal_width"`
	BulkLeftOffset         float64 `yaml:"bulk_left_offset"`
	BulkRightOffset        float64 `yaml:"bulk_right_offset"`
	BulkContactLeftOffset  float64 `yaml:"bulk_contact_left_offset"`
	BulkContactRightOffset float64 `yaml:"bulk_contact_right_offset"`
	BulkContactStart       float64 `yaml:"bulk_contact_start"`
	ImplantWidth           float64 `yaml:"implant_width"`
	ImplantEnclosure       float64 `yaml:"implant_enclosure"`
	ImplantLeftOffset      float64 `yaml:"implant_left_offset"`
	ImplantRightOffset     float64 `yaml:"implant_right_offset"`
	WellEnclosure          float64 `yaml:"well_enclosure"`
	WellLeftOffset         float64 `yaml:"well_left_offset"`
	WellRightOffset        float64 `yaml:"well_right_offset"`

	// Bulk-to-source ties. A vertical tie is MetalSpacing+TieExtension
	// tall, starting at the top of the source bus.
	TieWidth     float64 `yaml:"tie_width"`
	TieGap       float64 `yaml:"tie_gap"`
	TieExtension float64 `yaml:"tie_extension"`

	// Inverter composition.
	DeviceSpacing      float64 `yaml:"device_spacing"`
	InputLandingLength float64 `yaml:"input_landing_length"`
	InputLandingRise   float64 `yaml:"input_landing_rise"`
	OutputBusRise      float64 `yaml:"output_bus_rise"`

	// Layers maps every drawn layer to its stream numbers.
	Layers map[layout.Layer]GDSLayer `yaml:"layers"`

	// Models names the netlist model of each device polarity.
	Models Models `yaml:"models"`
}

// Models names the netlist device models.
type Models struct {
	NMOS string `yaml:"nmos"`
	PMOS string `yaml:"pmos"`
}

// FingerPitch returns the distance between adjacent gate fingers.
func (r *Rules) FingerPitch() float64 {
	return r.GateLength + r.InterFingerSpacing
}

// StrapPitch returns the distance between adjacent source (or drain)
// straps: two fingers.
func (r *Rules) StrapPitch() float64 {
	return 2*r.GateLength + 2*r.InterFingerSpacing
}

// ContactPitch returns the centre-to-centre distance of stacked contacts.
func (r *Rules) ContactPitch() float64 {
	return r.ContactSize + r.ContactSpacing
}

// ContactsIn returns how many contacts fit in a column of the given
// length at ContactPitch.
func (r *Rules) ContactsIn(length float64) int {
	const eps = 1e-9
	return int(math.Floor(length/r.ContactPitch() + eps))
}

// LayerMap returns a copy of the layer map.
func (r *Rules) LayerMap() map[layout.Layer]GDSLayer {
	return maps.Clone(r.Layers)
}

// Clone returns a deep copy of the table.
func (r *Rules) Clone() *Rules {
	c := *r
	c.Layers = maps.Clone(r.Layers)
	return &c
}

// Validate checks that every length is positive and that the layer map
// covers every layer the builders draw.
func (r *Rules) Validate() error {
	if r.Process == "" {
		return fmt.Errorf("%w: process name is empty", ErrInvalidRules)
	}
	for _, f := range r.lengths() {
		if !(f.value > 0) {
			return fmt.Errorf("%w: %s: %s must be positive, got %g", ErrInvalidRules, r.Process, f.name, f.value)
		}
	}
	for _, l := range layout.Layers() {
		if _, ok := r.Layers[l]; !ok {
			return fmt.Errorf("%w: %s: layer %q has no stream mapping", ErrInvalidRules, r.Process, l)
		}
	}
	if r.Models.NMOS == "" || r.Models.PMOS == "" {
		return fmt.Errorf("%w: %s: device models are required", ErrInvalidRules, r.Process)
	}
	return nil
}

type namedLength struct {
	name  string
	value float64
}

func (r *Rules) lengths() []namedLength {
	return []namedLength{
		{"db_unit", r.DBUnit},
		{"gate_length", r.GateLength},
		{"inter_finger_spacing", r.InterFingerSpacing},
		{"gate_extension", r.GateExtension},
		{"strap_width", r.StrapWidth},
		{"strap_offset", r.StrapOffset},
		{"strap_inset", r.StrapInset},
		{"strap_overlap", r.StrapOverlap},
		{"metal_spacing", r.MetalSpacing},
		{"poly_pad_width", r.PolyPadWidth},
		{"poly_pad_spacing", r.PolyPadSpacing},
		{"poly_strap_x", r.PolyStrapX},
		{"contact_size", r.ContactSize},
		{"contact_spacing", r.ContactSpacing},
		{"contact_enclosure", r.ContactEnclosure},
		{"bulk_diff_width", r.BulkDiffWidth},
		{"bulk_metal_width", r.BulkMetalWidth},
		{"bulk_left_offset", r.BulkLeftOffset},
		{"bulk_right_offset", r.BulkRightOffset},
		{"bulk_contact_left_offset", r.BulkContactLeftOffset},
		{"bulk_contact_right_offset", r.BulkContactRightOffset},
		{"bulk_contact_start", r.BulkContactStart},
		{"implant_width", r.ImplantWidth},
		{"implant_enclosure", r.ImplantEnclosure},
		{"implant_left_offset", r.ImplantLeftOffset},
		{"implant_right_offset", r.ImplantRightOffset},
		{"well_enclosure", r.WellEnclosure},
		{"well_left_offset", r.WellLeftOffset},
		{"well_right_offset", r.WellRightOffset},
		{"tie_width", r.TieWidth},
		{"tie_extension", r.TieExtension},
		{"tie_gap", r.TieGap},
		{"device_spacing", r.DeviceSpacing},
		{"input_landing_length", r.InputLandingLength},
		{"input_landing_rise", r.InputLandingRise},
		{"output_bus_rise", r.OutputBusRise},
	}
}
