package stdcell

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/stdcell/layout"
)

func TestInverterGolden(t *testing.T) {
	c, err := BuildInverter(2, 1, 2, 1)
	if err != nil {
		t.Fatalf("BuildInverter: %v", err)
	}
	if c.Name() != "inv_n2x1_p2x1" {
		t.Errorf("Name() = %q", c.Name())
	}
	if !c.Sealed() {
		t.Error("inverter is not sealed")
	}

	refs := c.Refs()
	if len(refs) != 2 {
		t.Fatalf("len(Refs()) = %d, want 2", len(refs))
	}
	if refs[0].Cell.Name() != "nmos_w2_nf1" || !refs[0].Placement.IsIdentity() {
		t.Errorf("pull-down ref = %s at %+v", refs[0].Cell.Name(), refs[0].Placement)
	}
	wantUp := layout.Placement{Reflect: true, Offset: layout.Pt(0, 6)}
	if refs[1].Cell.Name() != "pmos_w2_nf1" {
		t.Errorf("pull-up cell = %s", refs[1].Cell.Name())
	}
	if diff := cmp.Diff(wantUp, refs[1].Placement, approx); diff != "" {
		t.Errorf("pull-up placement (-want +got):\n%s", diff)
	}

	want := []layout.Shape{
		shape(layout.Metal1, 0.425, 2.58, 0.38, 0.84),
		shape(layout.Metal1, 0.805, 2.81, 2.08, 0.38),
		shape(layout.Poly2, 0.025, 2.6, 0.38, 0.8),
		shape(layout.Poly2, -1.975, 2.8, 2, 0.38),
		shape(layout.Metal1, -1.975, 2.8, 0.38, 0.38),
		shape(layout.Contact, -1.895, 2.88, 0.22, 0.22),
	}
	if diff := cmp.Diff(want, c.Shapes(), approx); diff != "" {
		t.Errorf("routing shapes (-want +got):\n%s", diff)
	}
}

func TestInverterPullUpFacesPullDown(t *testing.T) {
	tests := []struct {
		wN, wP float64
		fN, fP int
	}{
		{2, 1, 2, 1},
		{1, 1, 3, 2},
		{4, 2, 2, 4},
		{3, 3, 1, 1},
	}
	for _, tt := range tests {
		c, err := BuildInverter(tt.wN, tt.fN, tt.wP, tt.fP)
		if err != nil {
			t.Fatalf("BuildInverter(%+v): %v", tt, err)
		}
		n, p := c.Refs()[0], c.Refs()[1]
		if !p.Placement.Reflect {
			t.Errorf("%s: pull-up not mirrored", c.Name())
		}
		// The pull-up's diffusion row must sit entirely above the pull-down's.
		nRow := n.Cell.Refs()[0].BBox()
		pRow := p.Placement.ApplyRect(p.Cell.Refs()[0].Cell.ShapesOn(layout.Comp)[0].Rect)
		if pRow.Min.Y <= nRow.Max.Y {
			t.Errorf("%s: pull-up row %v not above pull-down %v", c.Name(), pRow, nRow)
		}

		out := c.Shapes()[0]
		if out.Layer != layout.Metal1 || out.Rect.Height() <= 0 {
			t.Errorf("%s: output column %v", c.Name(), out)
		}
		in := c.Shapes()[2]
		if in.Layer != layout.Poly2 || in.Rect.Height() <= 0 {
			t.Errorf("%s: input column %v", c.Name(), in)
		}
	}
}

func TestInverterOutputBusLength(t *testing.T) {
	tests := []struct {
		fN, fP int
		strips int
	}{
		{1, 1, 1},
		{2, 1, 2},
		{1, 4, 3},
		{5, 2, 3},
		{6, 6, 4},
	}
	for _, tt := range tests {
		c, err := BuildInverter(6, tt.fN, 6, tt.fP)
		if err != nil {
			t.Fatalf("BuildInverter(6, %d, 6, %d): %v", tt.fN, tt.fP, err)
		}
		bus := c.Shapes()[1]
		want := float64(tt.strips+3) * 0.52
		if diff := cmp.Diff(want, bus.Rect.Width(), approx); diff != "" {
			t.Errorf("fN=%d fP=%d: bus width (-want +got):\n%s", tt.fN, tt.fP, diff)
		}
	}
}

func TestInverterIdempotent(t *testing.T) {
	a, err := BuildInverter(3, 3, 6, 3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildInverter(3, 3, 6, 3)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Flatten(), b.Flatten()); diff != "" {
		t.Errorf("repeated inverters differ (-first +second):\n%s", diff)
	}
	if a.BBox() != b.BBox() {
		t.Errorf("BBox %v != %v", a.BBox(), b.BBox())
	}
}

func TestInverterDoesNotMutateChildren(t *testing.T) {
	c, err := BuildInverter(2, 2, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	alone := mustTransistor(t, PMOS, 2, 2)
	child := c.Refs()[1].Cell
	if diff := cmp.Diff(alone.Flatten(), child.Flatten()); diff != "" {
		t.Errorf("pull-up child differs from a standalone build (-alone +child):\n%s", diff)
	}
}

func TestInverterInvalid(t *testing.T) {
	b, err := DefaultBuilder()
	if err != nil {
		t.Fatal(err)
	}
	good := Transistor{Type: NMOS, GateWidth: 2, Folding: 1}
	goodP := Transistor{Type: PMOS, GateWidth: 2, Folding: 1}

	tests := []struct {
		name     string
		down, up Transistor
		param    string
	}{
		{"swapped types", goodP, good, "pullDown.Type"},
		{"two nmos", good, good, "pullUp.Type"},
		{"bad pull-down width", Transistor{Type: NMOS, GateWidth: 0, Folding: 1}, goodP, "gateWidth"},
		{"bad pull-up folding", good, Transistor{Type: PMOS, GateWidth: 2, Folding: 0}, "foldingFactor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := b.Inverter(tt.down, tt.up)
			if c != nil {
				t.Error("Inverter returned a cell with an error")
			}
			var pe *ParameterError
			if !errors.As(err, &pe) {
				t.Fatalf("Inverter error = %v, want *ParameterError", err)
			}
			if pe.Name != tt.param || pe.Op != "Inverter" {
				t.Errorf("ParameterError = %+v, want Op Inverter Name %s", pe, tt.param)
			}
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("error does not match ErrInvalidParameter")
			}
		})
	}

	if _, err := BuildInverter(-1, 1, 2, 1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("BuildInverter(-1, ...) error = %v", err)
	}
}
