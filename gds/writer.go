package gds

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Writer writes GDSII stream files.
type Writer struct {
	w   io.Writer
	buf []byte
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteLibrary writes lib as a complete stream file.
func (w *Writer) WriteLibrary(lib *Library) error {
	if err := lib.validate(); err != nil {
		return err
	}
	w.int16s(Header, 600)
	w.int16s(BgnLib, timestamp(lib.Time)...)
	w.text(LibName, lib.Name)
	w.reals(Units, lib.Precision/lib.Unit, lib.Precision)
	for _, c := range lib.Cells {
		w.writeCell(lib, c)
	}
	w.record(EndLib, nil)
	return w.err
}

func (w *Writer) writeCell(lib *Library, c *Cell) {
	w.int16s(BgnStr, timestamp(lib.Time)...)
	w.text(StrName, c.Name)
	for _, b := range c.Boundaries {
		w.record(Boundary, nil)
		w.int16s(Layer, b.Layer)
		w.int16s(Datatype, b.Datatype)
		xy := make([]int32, 0, 2*(len(b.Points)+1))
		for i := range len(b.Points) + 1 {
			pt := b.Points[i%len(b.Points)]
			x, err := lib.dbUnits(pt.X)
			if err != nil {
				w.setErr(fmt.Errorf("cell %q: %w", c.Name, err))
				return
			}
			y, err := lib.dbUnits(pt.Y)
			if err != nil {
				w.setErr(fmt.Errorf("cell %q: %w", c.Name, err))
				return
			}
			xy = append(xy, x, y)
		}
		w.int32s(XY, xy...)
		w.record(EndEl, nil)
	}
	w.record(EndStr, nil)
}

func (w *Writer) setErr(err error) {
	if w.err == nil {
		w.err = err
	}
}

func (w *Writer) record(typ RecordType, data []byte) {
	if w.err != nil {
		return
	}
	if len(data) > maxRecordData {
		w.setErr(fmt.Errorf("%s record too long: %d bytes", typ, len(data)))
		return
	}
	w.buf = binary.BigEndian.AppendUint16(w.buf[:0], uint16(len(data)+4))
	w.buf = binary.BigEndian.AppendUint16(w.buf, uint16(typ))
	w.buf = append(w.buf, data...)
	_, err := w.w.Write(w.buf)
	w.setErr(err)
}

func (w *Writer) int16s(typ RecordType, vs ...int16) {
	data := make([]byte, 0, 2*len(vs))
	for _, v := range vs {
		data = binary.BigEndian.AppendUint16(data, uint16(v))
	}
	w.record(typ, data)
}

func (w *Writer) int32s(typ RecordType, vs ...int32) {
	data := make([]byte, 0, 4*len(vs))
	for _, v := range vs {
		data = binary.BigEndian.AppendUint32(data, uint32(v))
	}
	w.record(typ, data)
}

func (w *Writer) reals(typ RecordType, vs ...float64) {
	data := make([]byte, 0, 8*len(vs))
	for _, v := range vs {
		data = binary.BigEndian.AppendUint64(data, encodeReal(v))
	}
	w.record(typ, data)
}

func (w *Writer) text(typ RecordType, s string) {
	data := []byte(s)
	if len(data)%2 != 0 {
		data = append(data, 0)
	}
	w.record(typ, data)
}

// timestamp returns the modification and access time fields of BGNLIB and
// BGNSTR. The zero time is written as all zeros.
func timestamp(t time.Time) []int16 {
	if t.IsZero() {
		return make([]int16, 12)
	}
	f := []int16{
		int16(t.Year()), int16(t.Month()), int16(t.Day()),
		int16(t.Hour()), int16(t.Minute()), int16(t.Second()),
	}
	return append(f, f...)
}
