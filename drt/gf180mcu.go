package drt

import "github.com/gogpu/stdcell/layout"

// Default is the name of the built-in process.
const Default = "gf180mcu"

func init() {
	Register(gf180mcu())
}

// gf180mcu returns the GF180MCU 3.3 V table. Layer numbers follow the
// foundry DRC deck.
func gf180mcu() *Rules {
	return &Rules{
		Process:     Default,
		Description: "GlobalFoundries 180nm MCU, 3.3V devices",
		DBUnit:      0.001,

		GateLength:         0.28,
		InterFingerSpacing: 0.52,
		GateExtension:      0.22,

		StrapWidth:   0.38,
		StrapOffset:  0.375,
		StrapInset:   0.07,
		StrapOverlap: 0.06,
		MetalSpacing: 0.26,

		PolyPadWidth:   0.38,
		PolyPadSpacing: 0.42,
		PolyStrapX:     0.025,

		ContactSize:      0.22,
		ContactSpacing:   0.28,
		ContactEnclosure: 0.08,

		BulkDiffWidth:          0.37,
		BulkMetalWidth:         0.36,
		BulkLeftOffset:         1.11,
		BulkRightOffset:        0.37,
		BulkContactLeftOffset:  1.035,
		BulkContactRightOffset: 0.445,
		BulkContactStart:       0.14,
		ImplantWidth:           0.86,
		ImplantEnclosure:       0.23,
		ImplantLeftOffset:      1.39,
		ImplantRightOffset:     0.16,
		WellEnclosure:          0.43,
		WellLeftOffset:         1.66,
		WellRightOffset:        0.43,

		TieWidth:     0.36,
		TieGap:       0.365,
		TieExtension: 0.02,

		DeviceSpacing:      2,
		InputLandingLength: 2,
		InputLandingRise:   0.2,
		OutputBusRise:      0.23,

		Layers: map[layout.Layer]GDSLayer{
			layout.NWell:   {Layer: 21},
			layout.Comp:    {Layer: 22},
			layout.Poly2:   {Layer: 30},
			layout.PPlus:   {Layer: 31},
			layout.NPlus:   {Layer: 32},
			layout.Contact: {Layer: 33},
			layout.Metal1:  {Layer: 34},
		},

		Models: Models{NMOS: "nfet_03v3", PMOS: "pfet_03v3"},
	}
}
