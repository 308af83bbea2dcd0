package stdcell

import (
	"errors"
	"testing"
)

func TestParseDeviceType(t *testing.T) {
	tests := []struct {
		in   string
		want DeviceType
	}{
		{"nmos", NMOS},
		{"NMOS", NMOS},
		{"n", NMOS},
		{" nfet ", NMOS},
		{"pmos", PMOS},
		{"P", PMOS},
		{"pfet", PMOS},
	}
	for _, tt := range tests {
		got, err := ParseDeviceType(tt.in)
		if err != nil {
			t.Errorf("ParseDeviceType(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDeviceType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDeviceType("cmos"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("ParseDeviceType(cmos) error = %v, want ErrInvalidParameter", err)
	}
}

func TestDeviceTypeString(t *testing.T) {
	if NMOS.String() != "nmos" || PMOS.String() != "pmos" {
		t.Errorf("String() = %q, %q", NMOS, PMOS)
	}
	if got := DeviceType(7).String(); got != "DeviceType(7)" {
		t.Errorf("DeviceType(7).String() = %q", got)
	}
}

func TestDeviceTypeNeedsWell(t *testing.T) {
	if NMOS.NeedsWell() {
		t.Error("NMOS.NeedsWell() = true")
	}
	if !PMOS.NeedsWell() {
		t.Error("PMOS.NeedsWell() = false")
	}
}

func TestErrorKinds(t *testing.T) {
	pe := &ParameterError{Op: "Transistor", Name: "gateWidth", Value: -1.0, Reason: "must be positive"}
	if got, want := pe.Error(), "stdcell: Transistor: invalid gateWidth -1: must be positive"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if errors.Is(pe, ErrConfig) {
		t.Error("ParameterError matches ErrConfig")
	}

	inner := errors.New("boom")
	ce := &ConfigError{Process: "x", Err: inner}
	if !errors.Is(ce, ErrConfig) || !errors.Is(ce, inner) {
		t.Errorf("ConfigError does not match ErrConfig and its cause: %v", ce)
	}
	if errors.Is(ce, ErrInvalidParameter) {
		t.Error("ConfigError matches ErrInvalidParameter")
	}
}
