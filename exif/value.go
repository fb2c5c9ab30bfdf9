package exif

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Type is the TIFF field type of an IFD entry.
type Type uint16

// TIFF field types.
const (
	TypeByte      Type = 1
	TypeAscii     Type = 2
	TypeShort     Type = 3
	TypeLong      Type = 4
	TypeRational  Type = 5
	TypeSByte     Type = 6
	TypeUndef     Type = 7
	TypeSShort    Type = 8
	TypeSLong     Type = 9
	TypeSRational Type = 10
	TypeFloat     Type = 11
	TypeDouble    Type = 12
)

// Size returns the byte size of a single element of type t,
// or 0 if t is not a known type.
func (t Type) Size() int {
	switch t {
	case TypeByte, TypeAscii, TypeSByte, TypeUndef:
		return 1
	case TypeShort, TypeSShort:
		return 2
	case TypeLong, TypeSLong, TypeFloat:
		return 4
	case TypeRational, TypeSRational, TypeDouble:
		return 8
	}
	return 0
}

func (t Type) String() string {
	switch t {
	case TypeByte:
		return "Byte"
	case TypeAscii:
		return "Ascii"
	case TypeShort:
		return "Short"
	case TypeLong:
		return "Long"
	case TypeRational:
		return "Rational"
	case TypeSByte:
		return "SByte"
	case TypeUndef:
		return "Undef"
	case TypeSShort:
		return "SShort"
	case TypeSLong:
		return "SLong"
	case TypeSRational:
		return "SRational"
	case TypeFloat:
		return "Float"
	case TypeDouble:
		return "Double"
	}
	return "«invalid»"
}

// typeSize returns the number of bytes needed to store count elements of typ.
// It returns -1 for unknown types or if the size overflows.
func typeSize(typ Type, count uint32) int {
	n := typ.Size()
	if n == 0 {
		return -1
	}
	size := uint64(n) * uint64(count)
	if size > math.MaxInt32 {
		return -1
	}
	return int(size)
}

// Value is a decoded Exif field value.
//
// It is implemented only by the types of this package:
// Byte, Ascii, Short, Long, Rational, SByte, Undef,
// SShort, SLong, SRational, Float and Double.
type Value interface {
	// Type reports the TIFF type of the value.
	Type() Type

	// Count reports the number of elements as stored in the IFD entry.
	Count() int

	put(bo binary.ByteOrder, p []byte)
}

type (
	// Byte is an array of 8-bit unsigned integers.
	Byte []byte

	// Ascii is a text value. The NUL terminator is added on encoding.
	Ascii string

	// Short is an array of 16-bit unsigned integers.
	Short []uint16

	// Long is an array of 32-bit unsigned integers.
	Long []uint32

	// Rational holds numerator and denominator pairs.
	Rational []uint32

	// SByte is an array of 8-bit signed integers.
	SByte []int8

	// Undef is an opaque byte array interpreted per field definition.
	Undef []byte

	// SShort is an array of 16-bit signed integers.
	SShort []int16

	// SLong is an array of 32-bit signed integers.
	SLong []int32

	// SRational holds signed numerator and denominator pairs.
	SRational []int32

	// Float is an array of IEEE single precision values.
	Float []float32

	// Double is an array of IEEE double precision values.
	Double []float64
)

func (Byte) Type() Type      { return TypeByte }
func (Ascii) Type() Type     { return TypeAscii }
func (Short) Type() Type     { return TypeShort }
func (Long) Type() Type      { return TypeLong }
func (Rational) Type() Type  { return TypeRational }
func (SByte) Type() Type     { return TypeSByte }
func (Undef) Type() Type     { return TypeUndef }
func (SShort) Type() Type    { return TypeSShort }
func (SLong) Type() Type     { return TypeSLong }
func (SRational) Type() Type { return TypeSRational }
func (Float) Type() Type     { return TypeFloat }
func (Double) Type() Type    { return TypeDouble }

func (v Byte) Count() int      { return len(v) }
func (v Ascii) Count() int     { return len(v) + 1 }
func (v Short) Count() int     { return len(v) }
func (v Long) Count() int      { return len(v) }
func (v Rational) Count() int  { return len(v) / 2 }
func (v SByte) Count() int     { return len(v) }
func (v Undef) Count() int     { return len(v) }
func (v SShort) Count() int    { return len(v) }
func (v SLong) Count() int     { return len(v) }
func (v SRational) Count() int { return len(v) / 2 }
func (v Float) Count() int     { return len(v) }
func (v Double) Count() int    { return len(v) }

func (v Byte) put(bo binary.ByteOrder, p []byte)  { copy(p, v) }
func (v Undef) put(bo binary.ByteOrder, p []byte) { copy(p, v) }

func (v Ascii) put(bo binary.ByteOrder, p []byte) {
	n := copy(p, v)
	p[n] = 0
}

func (v SByte) put(bo binary.ByteOrder, p []byte) {
	for i, x := range v {
		p[i] = byte(x)
	}
}

func (v Short) put(bo binary.ByteOrder, p []byte) {
	for i, x := range v {
		bo.PutUint16(p[2*i:], x)
	}
}

func (v SShort) put(bo binary.ByteOrder, p []byte) {
	for i, x := range v {
		bo.PutUint16(p[2*i:], uint16(x))
	}
}

func (v Long) put(bo binary.ByteOrder, p []byte) {
	for i, x := range v {
		bo.PutUint32(p[4*i:], x)
	}
}

func (v Rational) put(bo binary.ByteOrder, p []byte) {
	Long(v[:2*v.Count()]).put(bo, p)
}

func (v SLong) put(bo binary.ByteOrder, p []byte) {
	for i, x := range v {
		bo.PutUint32(p[4*i:], uint32(x))
	}
}

func (v SRational) put(bo binary.ByteOrder, p []byte) {
	SLong(v[:2*v.Count()]).put(bo, p)
}

func (v Float) put(bo binary.ByteOrder, p []byte) {
	for i, x := range v {
		bo.PutUint32(p[4*i:], math.Float32bits(x))
	}
}

func (v Double) put(bo binary.ByteOrder, p []byte) {
	for i, x := range v {
		bo.PutUint64(p[8*i:], math.Float64bits(x))
	}
}

// Float returns the i-th fraction of r.
// A zero denominator yields NaN.
func (r Rational) Float(i int) float64 {
	num, den := r[2*i], r[2*i+1]
	if den == 0 {
		return math.NaN()
	}
	return float64(num) / float64(den)
}

// Float returns the i-th fraction of r.
// A zero denominator yields NaN.
func (r SRational) Float(i int) float64 {
	num, den := r[2*i], r[2*i+1]
	if den == 0 {
		return math.NaN()
	}
	return float64(num) / float64(den)
}

// DecodeValue decodes count elements of type typ from p.
//
// The length of p must be at least the encoded size of the value,
// otherwise ErrTruncatedDirectory is returned.
// Unknown types yield ErrUnsupportedTagType.
func DecodeValue(typ Type, count uint32, p []byte, bo binary.ByteOrder) (Value, error) {
	if typ.Size() == 0 {
		return nil, errors.Wrapf(ErrUnsupportedTagType, "type %d", typ)
	}
	n := typeSize(typ, count)
	if n < 0 || len(p) < n {
		return nil, errors.Wrapf(ErrTruncatedDirectory, "%s[%d] needs %d bytes, have %d",
			typ, count, n, len(p))
	}
	p = p[:n]

	cnt := int(count)
	switch typ {
	case TypeByte:
		return Byte(clone(p)), nil

	case TypeUndef:
		return Undef(clone(p)), nil

	case TypeAscii:
		return Ascii(strings.TrimRight(string(p), "\x00")), nil

	case TypeSByte:
		v := make(SByte, cnt)
		for i := range v {
			v[i] = int8(p[i])
		}
		return v, nil

	case TypeShort:
		v := make(Short, cnt)
		for i := range v {
			v[i] = bo.Uint16(p[2*i:])
		}
		return v, nil

	case TypeSShort:
		v := make(SShort, cnt)
		for i := range v {
			v[i] = int16(bo.Uint16(p[2*i:]))
		}
		return v, nil

	case TypeLong, TypeRational:
		m := cnt
		if typ == TypeRational {
			m *= 2
		}
		v := make([]uint32, m)
		for i := range v {
			v[i] = bo.Uint32(p[4*i:])
		}
		if typ == TypeRational {
			return Rational(v), nil
		}
		return Long(v), nil

	case TypeSLong, TypeSRational:
		m := cnt
		if typ == TypeSRational {
			m *= 2
		}
		v := make([]int32, m)
		for i := range v {
			v[i] = int32(bo.Uint32(p[4*i:]))
		}
		if typ == TypeSRational {
			return SRational(v), nil
		}
		return SLong(v), nil

	case TypeFloat:
		v := make(Float, cnt)
		for i := range v {
			v[i] = math.Float32frombits(bo.Uint32(p[4*i:]))
		}
		return v, nil

	case TypeDouble:
		v := make(Double, cnt)
		for i := range v {
			v[i] = math.Float64frombits(bo.Uint64(p[8*i:]))
		}
		return v, nil
	}

	panic("unreachable")
}

// EncodeValue returns the encoded bytes of v in byte order bo.
func EncodeValue(v Value, bo binary.ByteOrder) []byte {
	p := make([]byte, encodedSize(v))
	v.put(bo, p)
	return p
}

func encodedSize(v Value) int {
	return v.Type().Size() * v.Count()
}

func clone(p []byte) []byte {
	q := make([]byte, len(p))
	copy(q, p)
	return q
}
