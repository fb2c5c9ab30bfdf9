package exif

import (
	"encoding/binary"
	"time"

	"github.com/ebenezerdon/metashield-photo-privacy/exif/exiftag"
)

// New initializes a new Exif structure for an image
// with the provided dimensions.
func New(dx, dy int) *Exif {
	x := Empty(binary.BigEndian)

	// resolution
	x.Set(exiftag.XResolution, Rational{72, 1})
	x.Set(exiftag.YResolution, Rational{72, 1})
	x.Set(exiftag.ResolutionUnit, Short{2}) // inch

	// centered subsampling
	x.Set(exiftag.YCbCrPositioning, Short{1})

	x.Set(exiftag.ExifVersion, Undef("0220"))
	x.Set(exiftag.FlashpixVersion, Undef("0100"))

	x.Set(exiftag.PixelXDimension, Long{uint32(dx)})
	x.Set(exiftag.PixelYDimension, Long{uint32(dy)})

	// sRGB colorspace
	x.Set(exiftag.ColorSpace, Short{1})

	// YCbCr, therefore not RGB
	x.Set(exiftag.ComponentsConfiguration, Undef{1, 2, 3, 0})

	return x
}

// TimeFormat is the layout of Exif date and time values.
const TimeFormat = "2006:01:02 15:04:05"

// Time reports the time from the specified DateTime and SubSecTime tags.
// Exif times carry no zone, so t is in time.Local.
func (x *Exif) Time(timeTag, subSecTag uint32) (t time.Time, ok bool) {
	s, ok := x.String(timeTag)
	if !ok {
		return time.Time{}, false
	}

	// some writers append garbage or a zone after the time
	if len(s) > len(TimeFormat) {
		s = s[:len(TimeFormat)]
	}
	t, err := time.ParseInLocation(TimeFormat, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}

	subs, ok := x.String(subSecTag)
	if !ok {
		return t, true
	}

	var nanos time.Duration
	res := time.Second
	for _, r := range subs {
		if r < '0' || '9' < r {
			break
		}
		res /= 10
		if res == 0 {
			break
		}
		nanos += time.Duration(r-'0') * res
	}
	return t.Add(nanos), true
}

// DateTime reports the Exif datetime. The fields checked
// in order are Exif/DateTimeOriginal, Exif/DateTimeDigitized and
// Tiff/DateTime. If neither is available, ok == false is returned.
func (x *Exif) DateTime() (t time.Time, ok bool) {
	t, ok = x.Time(exiftag.DateTimeOriginal, exiftag.SubSecTimeOriginal)
	if ok {
		return
	}

	t, ok = x.Time(exiftag.DateTimeDigitized, exiftag.SubSecTimeDigitized)
	if ok {
		return
	}

	return x.Time(exiftag.DateTime, exiftag.SubSecTime)
}

// SetTime sets the specified DateTime and SubSecTime tags to t.
func (x *Exif) SetTime(timeTag, subSecTag uint32, t time.Time) {
	v, subv := timeValues(t)
	x.Set(timeTag, v)
	x.Set(subSecTag, subv)
}

// SetDateTime sets the fields
// Exif/DateTimeOriginal, Exif/DateTimeDigitized and
// Tiff/DateTime to t.
func (x *Exif) SetDateTime(t time.Time) {
	x.SetTime(exiftag.DateTimeOriginal, exiftag.SubSecTimeOriginal, t)
	x.SetTime(exiftag.DateTimeDigitized, exiftag.SubSecTimeDigitized, t)
	x.SetTime(exiftag.DateTime, exiftag.SubSecTime, t)
}

func timeValues(t time.Time) (v, subv Value) {
	v = Ascii(t.Format(TimeFormat))

	nano := t.Nanosecond()
	if nano == 0 {
		return v, nil
	}

	p := make([]byte, 0, 9)
	res := int(1e8)
	for nano > 0 {
		digit := nano / res
		nano = nano % res
		res /= 10
		p = append(p, '0'+byte(digit))
	}
	return v, Ascii(p)
}
