// Package layout provides the placement primitives shared by every cell
// builder in stdcell.
//
// # Coordinate System
//
// Layout coordinates follow mask conventions, not screen conventions:
//   - Units are microns
//   - X increases right
//   - Y increases up
//
// # Cells
//
// A [Cell] is an ordered collection of [Shape] values (axis-aligned
// rectangles tagged with a [Layer]) and [Ref] values (placed references to
// other cells). Its bounding box is maintained as the union of all members
// on every insertion.
//
// Cells are built by exactly one builder and sealed before they are handed
// out. A sealed cell is immutable and may be referenced by any number of
// parents, from any number of goroutines:
//
//	nmos := layout.NewCell("nmos")
//	nmos.AddRect(layout.Metal1, layout.RectXYWH(0, 0, 0.38, 0.64))
//	nmos.Seal()
//
//	top := layout.NewCell("top")
//	top.AddRef(nmos, layout.Identity())
//	top.AddRef(nmos, layout.MirrorY(1).Then(layout.Translate(0, 4)))
//
// # Placements
//
// A [Placement] is the restricted affine transform used by layout: an
// optional reflection across the x-axis followed by a translation. This is
// exactly the transform a GDSII SREF can express without rotation, so every
// placement survives export unchanged.
package layout
