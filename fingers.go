package stdcell

import "math"

// Fingers is the finger geometry derived from a gate width and a folding
// factor.
type Fingers struct {
	Width        float64 // gate width of one finger
	Count        int     // number of parallel fingers
	SourceStrips int     // vertical source straps
	DrainStrips  int     // vertical drain straps
}

// Decompose splits a transistor of total gateWidth into parallel fingers.
//
// With folding > 1 the device gets folding fingers of gateWidth/folding
// each; otherwise one finger of the full width. Sources and drains
// alternate along the row, starting and ending with a source, so for two
// or more fingers
//
//	SourceStrips = 2 + (Count-2)/2
//	DrainStrips  = (Count+1)/2
//
// and a single finger uses one strap of each.
//
// Decompose returns an error matching ErrInvalidParameter when gateWidth is
// not a positive finite number or folding is below one.
func Decompose(gateWidth float64, folding int) (Fingers, error) {
	return decompose("Decompose", gateWidth, folding)
}

func decompose(op string, gateWidth float64, folding int) (Fingers, error) {
	if !(gateWidth > 0) || math.IsInf(gateWidth, 1) {
		return Fingers{}, &ParameterError{Op: op, Name: "gateWidth", Value: gateWidth, Reason: "must be positive"}
	}
	if folding < 1 {
		return Fingers{}, &ParameterError{Op: op, Name: "foldingFactor", Value: folding, Reason: "must be at least 1"}
	}

	if folding == 1 {
		return Fingers{Width: gateWidth, Count: 1, SourceStrips: 1, DrainStrips: 1}, nil
	}
	return Fingers{
		Width:        gateWidth / float64(folding),
		Count:        folding,
		SourceStrips: 2 + (folding-2)/2,
		DrainStrips:  (folding + 1) / 2,
	}, nil
}

// strips returns the larger of the source and drain strap counts.
func (f Fingers) strips() int {
	return max(f.SourceStrips, f.DrainStrips)
}
