// Package export writes layout cells to files.
//
// Formats register themselves in init, following the database/sql driver
// pattern. Import a backend for its side effect and create it by name:
//
//	import _ "github.com/gogpu/stdcell/export/gds"
//
//	e, err := export.New("gds")
//	err = e.Write(f, cell)
//
// Available backends:
//   - gds: GDSII stream, hierarchy preserved
//   - svg: flattened vector preview
//   - png: rasterized preview
package export

import (
	"bytes"
	"errors"
	"io"

	"github.com/gogpu/stdcell/layout"
)

// ErrNilCell is returned when an exporter is asked to write a nil cell.
var ErrNilCell = errors.New("export: nil cell")

// Exporter writes one cell, with everything it references, to w.
type Exporter interface {
	Write(w io.Writer, c *layout.Cell) error
}

// Factory creates a new exporter with default options.
type Factory func() Exporter

// Bytes writes c with e into memory.
func Bytes(e Exporter, c *layout.Cell) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Write(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
