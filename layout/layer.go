package layout

// Layer names one manufacturing mask. The mapping from a Layer to stream
// layer/datatype numbers belongs to the process rule table, not to the
// geometry.
type Layer string

// Layers drawn by the stdcell builders.
const (
	Comp    Layer = "comp"    // active diffusion
	NWell   Layer = "nwell"   // n-type well
	Poly2   Layer = "poly2"   // gate poly
	PPlus   Layer = "pplus"   // p+ implant
	NPlus   Layer = "nplus"   // n+ implant
	Contact Layer = "contact" // diffusion/poly to metal1 contact
	Metal1  Layer = "metal1"  // first metal
)

// Layers returns every layer drawn by the builders, in stack order.
func Layers() []Layer {
	return []Layer{NWell, Comp, PPlus, NPlus, Poly2, Contact, Metal1}
}

// Shape is an axis-aligned rectangle on one layer.
type Shape struct {
	Layer Layer
	Rect  Rect
}

// Transform returns the shape with p applied to its rectangle.
func (s Shape) Transform(p Placement) Shape {
	return Shape{Layer: s.Layer, Rect: p.ApplyRect(s.Rect)}
}
