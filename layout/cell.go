package layout

// Ref is a placed reference to another cell.
type Ref struct {
	Cell      *Cell
	Placement Placement
}

// BBox returns the bounding box of the referenced cell in the parent's
// coordinates.
func (r Ref) BBox() Rect {
	return r.Placement.ApplyRect(r.Cell.BBox())
}

// Cell is a named, ordered collection of shapes and placed references to
// other cells.
//
// A Cell is mutable only until Seal is called. Builders seal every cell
// before returning it; any later Add* call panics. Sealed cells are safe
// for concurrent reads.
type Cell struct {
	name   string
	shapes []Shape
	refs   []Ref
	bbox   Rect
	empty  bool
	sealed bool
}

// NewCell creates an empty cell.
func NewCell(name string) *Cell {
	return &Cell{name: name, empty: true}
}

// Name returns the cell name.
func (c *Cell) Name() string {
	return c.name
}

// AddShape appends a shape to the cell.
func (c *Cell) AddShape(s Shape) {
	c.mustBeOpen()
	c.shapes = append(c.shapes, s)
	c.grow(s.Rect)
}

// AddRect appends a rectangle on layer to the cell and returns the shape.
func (c *Cell) AddRect(layer Layer, r Rect) Shape {
	s := Shape{Layer: layer, Rect: r}
	c.AddShape(s)
	return s
}

// AddRef places child into the cell. The child is referenced, not copied;
// it must already be sealed so that the parent's bounding box stays valid.
func (c *Cell) AddRef(child *Cell, p Placement) Ref {
	c.mustBeOpen()
	if child == nil {
		panic("layout: AddRef child is nil")
	}
	if !child.sealed {
		panic("layout: AddRef child " + child.name + " is not sealed")
	}
	if child == c {
		panic("layout: AddRef cell references itself")
	}
	r := Ref{Cell: child, Placement: p}
	c.refs = append(c.refs, r)
	if !child.empty {
		c.grow(r.BBox())
	}
	return r
}

// Seal ends construction. It is safe to call Seal more than once.
func (c *Cell) Seal() {
	c.sealed = true
}

// Sealed reports whether construction has ended.
func (c *Cell) Sealed() bool {
	return c.sealed
}

// Shapes returns a copy of the cell's own shapes, in insertion order.
func (c *Cell) Shapes() []Shape {
	return append([]Shape(nil), c.shapes...)
}

// Refs returns a copy of the cell's references, in insertion order.
func (c *Cell) Refs() []Ref {
	return append([]Ref(nil), c.refs...)
}

// Len returns the number of own shapes and references.
func (c *Cell) Len() int {
	return len(c.shapes) + len(c.refs)
}

// IsEmpty reports whether the cell has no geometry at any depth.
func (c *Cell) IsEmpty() bool {
	return c.empty
}

// BBox returns the union of all members' bounding boxes. An empty cell
// returns the zero Rect.
func (c *Cell) BBox() Rect {
	return c.bbox
}

// Flatten returns every shape of the hierarchy in this cell's coordinates.
// Own shapes come first, then each reference depth-first in order.
func (c *Cell) Flatten() []Shape {
	var out []Shape
	c.flatten(Identity(), &out)
	return out
}

func (c *Cell) flatten(p Placement, out *[]Shape) {
	for _, s := range c.shapes {
		*out = append(*out, s.Transform(p))
	}
	for _, r := range c.refs {
		r.Cell.flatten(p.Multiply(r.Placement), out)
	}
}

// ShapesOn returns the flattened shapes on one layer.
func (c *Cell) ShapesOn(layer Layer) []Shape {
	var out []Shape
	for _, s := range c.Flatten() {
		if s.Layer == layer {
			out = append(out, s)
		}
	}
	return out
}

// Walk calls fn once for every distinct cell of the hierarchy, children
// before parents, ending with c itself. Distinct means distinct pointers.
func (c *Cell) Walk(fn func(*Cell)) {
	seen := make(map[*Cell]bool)
	var visit func(*Cell)
	visit = func(cell *Cell) {
		if seen[cell] {
			return
		}
		seen[cell] = true
		for _, r := range cell.refs {
			visit(r.Cell)
		}
		fn(cell)
	}
	visit(c)
}

func (c *Cell) grow(r Rect) {
	if c.empty {
		c.bbox = r
		c.empty = false
		return
	}
	c.bbox = c.bbox.Union(r)
}

func (c *Cell) mustBeOpen() {
	if c.sealed {
		panic("layout: cell " + c.name + " is sealed")
	}
}
