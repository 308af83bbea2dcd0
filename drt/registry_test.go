package drt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules(name string) *Rules {
	r := gf180mcu()
	r.Process = name
	return r
}

func TestDefaultRegistered(t *testing.T) {
	assert.True(t, IsRegistered(Default))
	assert.Contains(t, Processes(), Default)

	r, err := Lookup(Default)
	require.NoError(t, err)
	assert.Equal(t, 0.28, r.GateLength)
	assert.Equal(t, 0.52, r.InterFingerSpacing)
	assert.InDelta(t, 1.6, r.StrapPitch(), 1e-12)
	assert.InDelta(t, 0.8, r.FingerPitch(), 1e-12)
	assert.InDelta(t, 0.5, r.ContactPitch(), 1e-12)
	assert.Equal(t, GDSLayer{Layer: 34}, r.Layers["metal1"])
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("sky130")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownProcess))
	assert.Contains(t, err.Error(), "sky130")
}

func TestLookupReturnsPrivateCopy(t *testing.T) {
	r := MustLookup(Default)
	r.GateLength = 99
	r.Layers["metal1"] = GDSLayer{Layer: 1}

	again := MustLookup(Default)
	assert.Equal(t, 0.28, again.GateLength)
	assert.Equal(t, int16(34), again.Layers["metal1"].Layer)
}

func TestRegisterAndUnregister(t *testing.T) {
	const name = "test-process"
	t.Cleanup(func() { Unregister(name) })

	r := testRules(name)
	Register(r)
	r.DeviceSpacing = 42 // must not leak into the registry

	got, err := Lookup(name)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.DeviceSpacing)
	assert.Equal(t, []string{Default, name}, Processes())

	Unregister(name)
	assert.False(t, IsRegistered(name))
	Unregister(name) // no-op
}

func TestRegisterPanics(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Panics(t, func() { Register(nil) })
	})
	t.Run("duplicate", func(t *testing.T) {
		assert.Panics(t, func() { Register(testRules(Default)) })
	})
	t.Run("invalid", func(t *testing.T) {
		r := testRules("broken")
		r.GateLength = 0
		assert.Panics(t, func() { Register(r) })
		assert.False(t, IsRegistered("broken"))
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Rules)
		want   string
	}{
		{"ok", func(*Rules) {}, ""},
		{"no name", func(r *Rules) { r.Process = "" }, "process name"},
		{"negative", func(r *Rules) { r.StrapWidth = -0.38 }, "strap_width"},
		{"zero", func(r *Rules) { r.DeviceSpacing = 0 }, "device_spacing"},
		{"missing layer", func(r *Rules) { delete(r.Layers, "contact") }, "contact"},
		{"missing model", func(r *Rules) { r.Models.PMOS = "" }, "models"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRules("v")
			tt.mutate(r)
			err := r.Validate()
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidRules)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestContactsIn(t *testing.T) {
	r := MustLookup(Default) // pitch 0.5
	tests := []struct {
		length float64
		want   int
	}{
		{0, 0},
		{0.49, 0},
		{0.5, 1},
		{2, 4},
		{1.5 - 1e-12, 3}, // rounding error below a whole pitch
		{2.49, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.ContactsIn(tt.length), "ContactsIn(%v)", tt.length)
	}
}
