// Package gds writes cells as a GDSII stream.
//
// Every distinct cell of the hierarchy becomes one structure, children
// before parents, so a device shared by many placements is stored once.
// Shapes become BOUNDARY elements; references become SREF elements with
// the reflection bit set for mirrored placements.
//
// Importing the package registers the "gds" format with export.
package gds

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/gogpu/stdcell/drt"
	"github.com/gogpu/stdcell/export"
	"github.com/gogpu/stdcell/layout"
)

func init() {
	export.Register("gds", func() export.Exporter {
		return New()
	})
}

// Record types, high byte record, low byte data type.
const (
	recHeader   = 0x0002
	recBgnLib   = 0x0102
	recLibName  = 0x0206
	recUnits    = 0x0305
	recEndLib   = 0x0400
	recBgnStr   = 0x0502
	recStrName  = 0x0606
	recEndStr   = 0x0700
	recBoundary = 0x0800
	recSRef     = 0x0A00
	recLayer    = 0x0D02
	recDatatype = 0x0E02
	recXY       = 0x1003
	recEndEl    = 0x1100
	recSName    = 0x1206
	recSTrans   = 0x1A01
)

const (
	streamVersion = 600
	reflectBit    = 0x8000
)

// Exporter writes GDSII streams. It is safe for concurrent use.
type Exporter struct {
	libName string
	modTime time.Time
	dbUnit  float64
	layers  map[layout.Layer]drt.GDSLayer
}

var _ export.Exporter = (*Exporter)(nil)

// Option configures an Exporter.
type Option func(*Exporter)

// WithLibName sets the LIBNAME record. Defaults to the top cell's name.
func WithLibName(name string) Option {
	return func(e *Exporter) {
		e.libName = name
	}
}

// WithModTime sets the timestamps of BGNLIB and BGNSTR. Defaults to the
// Unix epoch so output is reproducible.
func WithModTime(t time.Time) Option {
	return func(e *Exporter) {
		e.modTime = t
	}
}

// WithRules takes the layer map and database unit from a rule table.
func WithRules(r *drt.Rules) Option {
	return func(e *Exporter) {
		e.layers = r.LayerMap()
		e.dbUnit = r.DBUnit
	}
}

// New creates an exporter with the gf180mcu layer map.
func New(opts ...Option) *Exporter {
	e := &Exporter{modTime: time.Unix(0, 0).UTC()}
	WithRules(drt.MustLookup(drt.Default))(e)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Write implements export.Exporter.
func (e *Exporter) Write(w io.Writer, top *layout.Cell) error {
	if top == nil {
		return export.ErrNilCell
	}

	var cells []*layout.Cell
	top.Walk(func(c *layout.Cell) {
		cells = append(cells, c)
	})
	names := structureNames(cells)

	lib := e.libName
	if lib == "" {
		lib = top.Name()
	}

	sw := &streamWriter{w: bufio.NewWriter(w)}
	sw.int16s(recHeader, streamVersion)
	sw.int16s(recBgnLib, e.timestamps()...)
	sw.str(recLibName, lib)
	sw.real8s(recUnits, e.dbUnit, e.dbUnit*1e-6)

	for _, c := range cells {
		if err := e.structure(sw, c, names); err != nil {
			return err
		}
	}
	sw.record(recEndLib, nil)
	return sw.flush()
}

func (e *Exporter) structure(sw *streamWriter, c *layout.Cell, names map[*layout.Cell]string) error {
	sw.int16s(recBgnStr, e.timestamps()...)
	sw.str(recStrName, names[c])

	for _, s := range c.Shapes() {
		gl, ok := e.layers[s.Layer]
		if !ok {
			return fmt.Errorf("gds: cell %s: layer %q has no stream mapping", c.Name(), s.Layer)
		}
		r := s.Rect
		sw.record(recBoundary, nil)
		sw.int16s(recLayer, gl.Layer)
		sw.int16s(recDatatype, gl.Datatype)
		sw.int32s(recXY,
			e.db(r.Min.X), e.db(r.Min.Y),
			e.db(r.Max.X), e.db(r.Min.Y),
			e.db(r.Max.X), e.db(r.Max.Y),
			e.db(r.Min.X), e.db(r.Max.Y),
			e.db(r.Min.X), e.db(r.Min.Y))
		sw.record(recEndEl, nil)
	}

	for _, ref := range c.Refs() {
		sw.record(recSRef, nil)
		sw.str(recSName, names[ref.Cell])
		if ref.Placement.Reflect {
			sw.uint16s(recSTrans, reflectBit)
		}
		off := ref.Placement.Offset
		sw.int32s(recXY, e.db(off.X), e.db(off.Y))
		sw.record(recEndEl, nil)
	}

	sw.record(recEndStr, nil)
	return sw.err
}

// db converts microns to database units.
func (e *Exporter) db(v float64) int32 {
	return int32(math.Round(v / e.dbUnit))
}

func (e *Exporter) timestamps() []int16 {
	t := e.modTime
	ts := []int16{
		int16(t.Year()), int16(t.Month()), int16(t.Day()),
		int16(t.Hour()), int16(t.Minute()), int16(t.Second()),
	}
	// modification and access time
	return append(ts, ts...)
}

// structureNames gives every distinct cell a unique structure name. Cells
// built separately with the same parameters share a name: the first keeps
// it and later ones get the lowest numeric suffix not used by any cell.
func structureNames(cells []*layout.Cell) map[*layout.Cell]string {
	taken := make(map[string]bool, len(cells))
	for _, c := range cells {
		taken[c.Name()] = true
	}

	names := make(map[*layout.Cell]string, len(cells))
	claimed := make(map[string]bool, len(cells))
	for _, c := range cells {
		if !claimed[c.Name()] {
			claimed[c.Name()] = true
			names[c] = c.Name()
			continue
		}
		for n := 1; ; n++ {
			name := c.Name() + "_" + strconv.Itoa(n)
			if !taken[name] {
				taken[name] = true
				names[c] = name
				break
			}
		}
	}
	return names
}

// streamWriter frames records and keeps the first write error.
type streamWriter struct {
	w   *bufio.Writer
	err error
}

func (sw *streamWriter) record(code uint16, data []byte) {
	if sw.err != nil {
		return
	}
	var hdr [4]byte
	binary.BigEndian.PutUint16(hdr[0:], uint16(len(data)+4))
	binary.BigEndian.PutUint16(hdr[2:], code)
	if _, sw.err = sw.w.Write(hdr[:]); sw.err != nil {
		return
	}
	_, sw.err = sw.w.Write(data)
}

func (sw *streamWriter) int16s(code uint16, vs ...int16) {
	data := make([]byte, 0, 2*len(vs))
	for _, v := range vs {
		data = binary.BigEndian.AppendUint16(data, uint16(v))
	}
	sw.record(code, data)
}

func (sw *streamWriter) uint16s(code uint16, vs ...uint16) {
	data := make([]byte, 0, 2*len(vs))
	for _, v := range vs {
		data = binary.BigEndian.AppendUint16(data, v)
	}
	sw.record(code, data)
}

func (sw *streamWriter) int32s(code uint16, vs ...int32) {
	data := make([]byte, 0, 4*len(vs))
	for _, v := range vs {
		data = binary.BigEndian.AppendUint32(data, uint32(v))
	}
	sw.record(code, data)
}

func (sw *streamWriter) real8s(code uint16, vs ...float64) {
	data := make([]byte, 0, 8*len(vs))
	for _, v := range vs {
		data = binary.BigEndian.AppendUint64(data, real8(v))
	}
	sw.record(code, data)
}

// str writes an ASCII string padded with NUL to an even length.
func (sw *streamWriter) str(code uint16, s string) {
	data := []byte(s)
	if len(data)%2 != 0 {
		data = append(data, 0)
	}
	sw.record(code, data)
}

func (sw *streamWriter) flush() error {
	if sw.err != nil {
		return sw.err
	}
	return sw.w.Flush()
}

// real8 encodes v as an excess-64 base-16 floating point number: one sign
// bit, a seven bit exponent and a 56 bit mantissa in [1/16, 1).
func real8(v float64) uint64 {
	if v == 0 {
		return 0
	}
	var sign uint64
	if v < 0 {
		sign = 1 << 63
		v = -v
	}
	exp := 64
	for v >= 1 {
		v /= 16
		exp++
	}
	for v < 1.0/16 {
		v *= 16
		exp--
	}
	mant := uint64(math.Round(v * (1 << 56)))
	if mant >= 1<<56 {
		mant >>= 4
		exp++
	}
	return sign | uint64(exp)<<56 | mant
}
