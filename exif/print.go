package exif

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ebenezerdon/metashield-photo-privacy/exif/exiftag"
)

// Fdump writes all tags of x to w, one per line, grouped by directory.
func Fdump(w io.Writer, x *Exif) {
	showTags(w, "IFD0", exiftag.Tiff, x.IFD0)
	showTags(w, "IFD1", exiftag.Tiff, x.IFD1)
	showTags(w, "Exif", exiftag.Exif, x.Exif)
	showTags(w, "GPS", exiftag.GPS, x.GPS)
	showTags(w, "Interop", exiftag.Interop, x.Interop)

	if x.Thumb != nil {
		fmt.Fprintf(w, "thumb: %v bytes\n", len(x.Thumb))
	}
}

// Sdump returns the output of Fdump as a string.
func Sdump(x *Exif) string {
	buf := new(bytes.Buffer)
	Fdump(buf, x)
	return buf.String()
}

func showTags(w io.Writer, pfx string, ns uint32, d Dir) {
	if len(d) == 0 {
		return
	}
	fmt.Fprintln(w, pfx+":")
	for _, e := range d {
		if e.Value == nil {
			continue
		}
		s := fmtName(ns, e.Tag, 20)
		fmt.Fprintf(w, "  %s %s: %s\n", s, fmtType(e.Value), FormatValue(e.Value))
	}
}

func fmtName(ns uint32, tag uint16, maxlen int) string {
	id := exiftag.Id(ns | uint32(tag))
	return fmt.Sprintf("%04x %-*.*s", tag, maxlen, maxlen, id)
}

func fmtType(v Value) string {
	var n string
	switch v.Type() {
	case TypeByte:
		n = "b"
	case TypeAscii:
		n = "a"
	case TypeShort:
		n = "s"
	case TypeLong:
		n = "l"
	case TypeRational:
		n = "r"
	case TypeUndef:
		n = "u"
	case TypeSLong:
		n = "L"
	case TypeSRational:
		n = "R"
	case TypeSByte:
		n = "B"
	case TypeSShort:
		n = "S"
	case TypeFloat, TypeDouble:
		n = "f"
	default:
		n = "?"
	}
	return fmt.Sprintf("%d%s", v.Count(), n)
}

// FormatValue formats v for display.
//
// Text is quoted, opaque bytes are shown in hex
// and rationals as num/den fractions.
func FormatValue(v Value) string {
	switch v := v.(type) {
	case Ascii:
		return fmt.Sprintf("%q", string(v))
	case Byte:
		return fmt.Sprintf("% 2x", []byte(v))
	case Undef:
		return fmt.Sprintf("% 2x", []byte(v))
	case Rational:
		return fmtFractions(len(v)/2, func(i int) string {
			return fmt.Sprintf("%d/%d", v[2*i], v[2*i+1])
		})
	case SRational:
		return fmtFractions(len(v)/2, func(i int) string {
			return fmt.Sprintf("%d/%d", v[2*i], v[2*i+1])
		})
	case nil:
		return "<nil>"
	}
	return fmt.Sprint(v)
}

func fmtFractions(n int, f func(i int) string) string {
	s := make([]string, n)
	for i := range s {
		s[i] = f(i)
	}
	return "[" + strings.Join(s, " ") + "]"
}
