package layout

import "testing"

func sealed(name string, shapes ...Shape) *Cell {
	c := NewCell(name)
	for _, s := range shapes {
		c.AddShape(s)
	}
	c.Seal()
	return c
}

// unionOfMembers recomputes the bounding box from scratch.
func unionOfMembers(c *Cell) (Rect, bool) {
	var bb Rect
	ok := false
	add := func(r Rect) {
		if !ok {
			bb, ok = r, true
			return
		}
		bb = bb.Union(r)
	}
	for _, s := range c.Shapes() {
		add(s.Rect)
	}
	for _, r := range c.Refs() {
		if !r.Cell.IsEmpty() {
			add(r.BBox())
		}
	}
	return bb, ok
}

func TestCellBBoxTracksMembers(t *testing.T) {
	child := sealed("child",
		Shape{Metal1, RectXYWH(0, 0, 1, 2)},
		Shape{Poly2, RectXYWH(-1, 1, 0.5, 0.5)},
	)

	top := NewCell("top")
	if !top.IsEmpty() {
		t.Fatal("new cell should be empty")
	}

	steps := []func(){
		func() { top.AddRect(Comp, RectXYWH(5, 5, 1, 1)) },
		func() { top.AddRef(child, Translate(10, 0)) },
		func() { top.AddRef(child, MirrorY(0)) },
		func() { top.AddRect(Contact, RectXYWH(-3, 0, 0.22, 0.22)) },
	}
	for i, step := range steps {
		step()
		want, ok := unionOfMembers(top)
		if !ok {
			t.Fatalf("step %d: no members", i)
		}
		if got := top.BBox(); got != want {
			t.Errorf("step %d: BBox() = %v, want %v", i, got, want)
		}
	}
}

func TestCellEmptyChildDoesNotGrow(t *testing.T) {
	empty := sealed("empty")
	top := NewCell("top")
	top.AddRect(Metal1, RectXYWH(1, 1, 1, 1))
	before := top.BBox()
	top.AddRef(empty, Translate(-100, -100))
	if got := top.BBox(); got != before {
		t.Errorf("empty child changed BBox: %v -> %v", before, got)
	}
}

func TestCellSealPanics(t *testing.T) {
	c := sealed("done", Shape{Metal1, RectXYWH(0, 0, 1, 1)})
	defer func() {
		if recover() == nil {
			t.Error("AddRect on sealed cell did not panic")
		}
	}()
	c.AddRect(Metal1, RectXYWH(0, 0, 1, 1))
}

func TestCellAddRefRequiresSealedChild(t *testing.T) {
	open := NewCell("open")
	top := NewCell("top")
	defer func() {
		if recover() == nil {
			t.Error("AddRef of unsealed child did not panic")
		}
	}()
	top.AddRef(open, Identity())
}

func TestCellFlatten(t *testing.T) {
	child := sealed("child", Shape{Metal1, RectXYWH(0, 0, 1, 2)})
	mid := NewCell("mid")
	mid.AddRect(Poly2, RectXYWH(0, 3, 1, 1))
	mid.AddRef(child, MirrorY(1))
	mid.Seal()

	top := NewCell("top")
	top.AddRef(mid, Translate(0, 10))
	top.Seal()

	got := top.Flatten()
	want := []Shape{
		{Poly2, RectXYWH(0, 13, 1, 1)},
		{Metal1, RectXYWH(0, 10, 1, 2)},
	}
	if len(got) != len(want) {
		t.Fatalf("Flatten() returned %d shapes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Layer != want[i].Layer ||
			!got[i].Rect.Min.Near(want[i].Rect.Min, 1e-12) ||
			!got[i].Rect.Max.Near(want[i].Rect.Max, 1e-12) {
			t.Errorf("shape %d = %v %v, want %v %v", i, got[i].Layer, got[i].Rect, want[i].Layer, want[i].Rect)
		}
	}
	if n := len(top.ShapesOn(Metal1)); n != 1 {
		t.Errorf("ShapesOn(Metal1) = %d shapes, want 1", n)
	}
}

func TestCellWalkChildrenFirstOnce(t *testing.T) {
	leaf := sealed("leaf", Shape{Metal1, RectXYWH(0, 0, 1, 1)})
	a := NewCell("a")
	a.AddRef(leaf, Identity())
	a.Seal()
	top := NewCell("top")
	top.AddRef(a, Identity())
	top.AddRef(leaf, Translate(5, 0))
	top.AddRef(a, Translate(10, 0))
	top.Seal()

	var order []string
	top.Walk(func(c *Cell) { order = append(order, c.Name()) })
	want := []string{"leaf", "a", "top"}
	if len(order) != len(want) {
		t.Fatalf("Walk visited %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Walk order = %v, want %v", order, want)
			break
		}
	}
}

func TestCellAccessorsReturnCopies(t *testing.T) {
	c := sealed("c", Shape{Metal1, RectXYWH(0, 0, 1, 1)})
	shapes := c.Shapes()
	shapes[0].Layer = Poly2
	if c.Shapes()[0].Layer != Metal1 {
		t.Error("Shapes() exposed internal slice")
	}
}
