package gds

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// RecordType identifies a GDSII record. The high byte is the record type,
// the low byte the type of its data.
type RecordType uint16

const (
	Header   RecordType = 0x0002
	BgnLib   RecordType = 0x0102
	LibName  RecordType = 0x0206
	Units    RecordType = 0x0305
	EndLib   RecordType = 0x0400
	BgnStr   RecordType = 0x0502
	StrName  RecordType = 0x0606
	EndStr   RecordType = 0x0700
	Boundary RecordType = 0x0800
	Layer    RecordType = 0x0D02
	Datatype RecordType = 0x0E02
	XY       RecordType = 0x1003
	EndEl    RecordType = 0x1100
)

var recordNames = map[RecordType]string{
	Header:   "HEADER",
	BgnLib:   "BGNLIB",
	LibName:  "LIBNAME",
	Units:    "UNITS",
	EndLib:   "ENDLIB",
	BgnStr:   "BGNSTR",
	StrName:  "STRNAME",
	EndStr:   "ENDSTR",
	Boundary: "BOUNDARY",
	Layer:    "LAYER",
	Datatype: "DATATYPE",
	XY:       "XY",
	EndEl:    "ENDEL",
}

func (typ RecordType) String() string {
	if name, ok := recordNames[typ]; ok {
		return name
	}
	return fmt.Sprintf("RecordType(%#04x)", uint16(typ))
}

// Data types, the low byte of a RecordType.
const (
	noData  = 0x00
	int16s  = 0x02
	int32s  = 0x03
	real64s = 0x05
	ascii   = 0x06
)

// maxRecordData is the largest payload that fits a record. The length field
// is 16 bits, counts the 4-byte record header and must be even.
const maxRecordData = math.MaxUint16 - 1 - 4

// Record is a single GDSII record.
type Record struct {
	Type RecordType
	Data []byte
}

func (rec Record) Int16s() []int16 {
	out := make([]int16, len(rec.Data)/2)
	for i := range out {
		out[i] = int16(binary.BigEndian.Uint16(rec.Data[2*i:]))
	}
	return out
}

func (rec Record) Int32s() []int32 {
	out := make([]int32, len(rec.Data)/4)
	for i := range out {
		out[i] = int32(binary.BigEndian.Uint32(rec.Data[4*i:]))
	}
	return out
}

func (rec Record) Reals() []float64 {
	out := make([]float64, len(rec.Data)/8)
	for i := range out {
		out[i] = decodeReal(binary.BigEndian.Uint64(rec.Data[8*i:]))
	}
	return out
}

// Text returns ASCII data without its NUL padding.
func (rec Record) Text() string {
	return strings.TrimRight(string(rec.Data), "\x00")
}

func (rec Record) String() string {
	switch byte(rec.Type) {
	case int16s:
		return fmt.Sprintf("%s %v", rec.Type, rec.Int16s())
	case int32s:
		return fmt.Sprintf("%s %v", rec.Type, rec.Int32s())
	case real64s:
		return fmt.Sprintf("%s %v", rec.Type, rec.Reals())
	case ascii:
		return fmt.Sprintf("%s %q", rec.Type, rec.Text())
	default:
		return rec.Type.String()
	}
}

// encodeReal converts v to the GDSII 8-byte real: sign bit, excess-64
// base-16 exponent, 56-bit mantissa in [1/16, 1).
func encodeReal(v float64) uint64 {
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
	if mant == 1<<56 {
		mant >>= 4
		exp++
	}
	return sign | uint64(exp)<<56 | mant
}

func decodeReal(bits uint64) float64 {
	mant := float64(bits&(1<<56-1)) / (1 << 56)
	exp := int(bits>>56&0x7f) - 64
	v := mant * math.Pow(16, float64(exp))
	if bits&(1<<63) != 0 {
		v = -v
	}
	return v
}
