package layout

import "errors"

// ErrNilCell is returned when a nil cell is inserted into a Sink.
var ErrNilCell = errors.New("layout: nil cell")

// Sink accepts finished cells at a placement. It models the destination
// canvas of a host layout editor.
type Sink interface {
	Insert(c *Cell, p Placement) error
}

// Canvas is a Sink that collects insertions as references in its own top
// cell. Each canvas owns its top cell, so repeated generation runs never
// stack geometry onto a shared destination.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	top *Cell
}

// Ensure Canvas implements Sink.
var _ Sink = (*Canvas)(nil)

// NewCanvas creates a canvas whose top cell has the given name.
func NewCanvas(name string) *Canvas {
	return &Canvas{top: NewCell(name)}
}

// Insert places c on the canvas. c must be sealed.
func (cv *Canvas) Insert(c *Cell, p Placement) error {
	if c == nil {
		return ErrNilCell
	}
	if !c.Sealed() {
		return errors.New("layout: insert of unsealed cell " + c.Name())
	}
	cv.top.AddRef(c, p)
	return nil
}

// Len returns the number of insertions so far.
func (cv *Canvas) Len() int {
	return len(cv.top.refs)
}

// Finish seals and returns the top cell. The canvas must not be used
// afterwards.
func (cv *Canvas) Finish() *Cell {
	cv.top.Seal()
	return cv.top
}
