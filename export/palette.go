package export

import "github.com/gogpu/stdcell/layout"

// palette holds the preview color of each layer, KLayout-like.
var palette = map[layout.Layer]string{
	layout.NWell:   "#8c8c8c",
	layout.Comp:    "#2fb830",
	layout.PPlus:   "#d9a441",
	layout.NPlus:   "#d96a41",
	layout.Poly2:   "#d9262b",
	layout.Contact: "#1a1a1a",
	layout.Metal1:  "#3a6ee8",
}

// LayerColor returns the "#rrggbb" preview color of a layer. Unknown layers
// are drawn grey.
func LayerColor(l layout.Layer) string {
	if c, ok := palette[l]; ok {
		return c
	}
	return "#808080"
}

// LayerOpacity returns the fill opacity used for a layer in previews.
// Wells and implants are faint so the devices inside stay visible.
func LayerOpacity(l layout.Layer) float64 {
	switch l {
	case layout.NWell, layout.PPlus, layout.NPlus:
		return 0.25
	case layout.Contact:
		return 0.9
	default:
		return 0.6
	}
}

// ByLayer groups flattened shapes by layer in stack order, omitting empty
// layers. Layers outside the builder stack follow in first-seen order.
func ByLayer(shapes []layout.Shape) ([]layout.Layer, map[layout.Layer][]layout.Rect) {
	groups := make(map[layout.Layer][]layout.Rect)
	var extra []layout.Layer
	known := make(map[layout.Layer]bool)
	for _, l := range layout.Layers() {
		known[l] = true
	}
	for _, s := range shapes {
		if _, seen := groups[s.Layer]; !seen && !known[s.Layer] {
			extra = append(extra, s.Layer)
		}
		groups[s.Layer] = append(groups[s.Layer], s.Rect)
	}

	var order []layout.Layer
	for _, l := range layout.Layers() {
		if len(groups[l]) > 0 {
			order = append(order, l)
		}
	}
	return append(order, extra...), groups
}
