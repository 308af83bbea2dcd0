package layout

// Placement is the transform applied when a cell is inserted into another
// cell. It is an optional reflection across the x-axis followed by a
// translation:
//
//	x' = x + Offset.X
//	y' = ±y + Offset.Y   (minus when Reflect is set)
//
// The zero value is the identity.
type Placement struct {
	Reflect bool
	Offset  Point
}

// Identity returns the identity placement.
func Identity() Placement {
	return Placement{}
}

// Translate creates a translation placement.
func Translate(dx, dy float64) Placement {
	return Placement{Offset: Pt(dx, dy)}
}

// MirrorY creates a placement that mirrors geometry about the horizontal
// line y = y0. Points on the axis stay fixed.
func MirrorY(y0 float64) Placement {
	return Placement{Reflect: true, Offset: Pt(0, 2*y0)}
}

// Then returns the placement that applies p first and next second.
func (p Placement) Then(next Placement) Placement {
	return next.Multiply(p)
}

// Multiply composes two placements (p * other): other is applied first.
func (p Placement) Multiply(other Placement) Placement {
	off := other.Offset
	if p.Reflect {
		off.Y = -off.Y
	}
	return Placement{
		Reflect: p.Reflect != other.Reflect,
		Offset:  off.Add(p.Offset),
	}
}

// Apply applies the placement to a point.
func (p Placement) Apply(pt Point) Point {
	if p.Reflect {
		pt.Y = -pt.Y
	}
	return pt.Add(p.Offset)
}

// ApplyRect applies the placement to a rectangle. The result is normalized,
// so a reflected rectangle keeps Min <= Max.
func (p Placement) ApplyRect(r Rect) Rect {
	return NewRect(p.Apply(r.Min), p.Apply(r.Max))
}

// Invert returns the inverse placement.
func (p Placement) Invert() Placement {
	off := Pt(-p.Offset.X, -p.Offset.Y)
	if p.Reflect {
		off.Y = p.Offset.Y
	}
	return Placement{Reflect: p.Reflect, Offset: off}
}

// IsIdentity returns true if the placement leaves every point unchanged.
func (p Placement) IsIdentity() bool {
	return !p.Reflect && p.Offset.X == 0 && p.Offset.Y == 0
}

// IsTranslation returns true if the placement does not reflect.
func (p Placement) IsTranslation() bool {
	return !p.Reflect
}
