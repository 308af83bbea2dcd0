package stdcell

import (
	"fmt"
	"strings"

	"github.com/gogpu/stdcell/layout"
	"github.com/gogpu/stdcell/primitive"
)

// DeviceType selects the transistor polarity.
type DeviceType int

const (
	// NMOS is the n-channel pull-down device.
	NMOS DeviceType = DeviceType(primitive.N)
	// PMOS is the p-channel pull-up device. It sits in an n-well and is the
	// only type that gets a well halo around its guard ring.
	PMOS DeviceType = DeviceType(primitive.P)
)

// String returns "nmos" or "pmos".
func (d DeviceType) String() string {
	switch d {
	case NMOS:
		return "nmos"
	case PMOS:
		return "pmos"
	default:
		return fmt.Sprintf("DeviceType(%d)", int(d))
	}
}

// Valid reports whether d is NMOS or PMOS.
func (d DeviceType) Valid() bool {
	return d == NMOS || d == PMOS
}

// NeedsWell reports whether the guard ring of d carries a well halo.
func (d DeviceType) NeedsWell() bool {
	return d == PMOS
}

// bodyImplant returns the implant of the body tie, opposite to the device's
// own source/drain implant.
func (d DeviceType) bodyImplant() layout.Layer {
	if d == PMOS {
		return layout.NPlus
	}
	return layout.PPlus
}

func (d DeviceType) polarity() primitive.Polarity {
	return primitive.Polarity(d)
}

// ParseDeviceType parses a device type name. It accepts "n", "nmos",
// "nfet" and their p counterparts, case-insensitively.
func ParseDeviceType(s string) (DeviceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "nmos", "nfet":
		return NMOS, nil
	case "p", "pmos", "pfet":
		return PMOS, nil
	}
	return 0, &ParameterError{Op: "ParseDeviceType", Name: "deviceType", Value: s, Reason: "want nmos or pmos"}
}

// Transistor describes one device by its electrical parameters.
type Transistor struct {
	Type      DeviceType
	GateWidth float64 // total gate width in microns
	Folding   int     // requested number of fingers
}

// Fingers decomposes the transistor. See Decompose.
func (t Transistor) Fingers() (Fingers, error) {
	return Decompose(t.GateWidth, t.Folding)
}

// validate checks every parameter of t and returns its decomposition.
func (t Transistor) validate(op string) (Fingers, error) {
	if !t.Type.Valid() {
		return Fingers{}, &ParameterError{Op: op, Name: "deviceType", Value: t.Type, Reason: "want nmos or pmos"}
	}
	f, err := decompose(op, t.GateWidth, t.Folding)
	if err != nil {
		return Fingers{}, err
	}
	return f, nil
}

func (t Transistor) String() string {
	return fmt.Sprintf("%s(w=%g, nf=%d)", t.Type, t.GateWidth, t.Folding)
}
