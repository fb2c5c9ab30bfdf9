package exif

import (
	"fmt"
	"math"

	"github.com/ebenezerdon/metashield-photo-privacy/exif/exiftag"
)

// LatLong reports the GPS latitude and longitude in decimal degrees.
// Positive latitude means north, positive longitude means east.
//
// It reports false if either coordinate is missing or malformed.
func (x *Exif) LatLong() (lat, long float64, ok bool) {
	lat, ok1 := x.coord(exiftag.GPSLatitude, exiftag.GPSLatitudeRef, "N", "S")
	long, ok2 := x.coord(exiftag.GPSLongitude, exiftag.GPSLongitudeRef, "E", "W")
	if ok1 && ok2 {
		return lat, long, true
	}
	return 0, 0, false
}

func (x *Exif) coord(valt, reft uint32, pos, neg string) (float64, bool) {
	r, ok := x.Tag(valt).(Rational)
	if !ok || r.Count() < 3 {
		return 0, false
	}
	ref, _ := x.String(reft)
	switch ref {
	case "", pos, neg:
	default:
		return 0, false
	}
	return ToDecimal(r[0:2], r[2:4], r[4:6], ref)
}

// Altitude reports the GPS altitude in meters.
// Negative values are below sea level.
func (x *Exif) Altitude() (alt float64, ok bool) {
	r, ok := x.Tag(exiftag.GPSAltitude).(Rational)
	if !ok || r.Count() < 1 {
		return 0, false
	}
	alt = r.Float(0)
	if math.IsNaN(alt) {
		return 0, false
	}
	if ref, ok := x.Tag(exiftag.GPSAltitudeRef).(Byte); ok && len(ref) > 0 && ref[0] == 1 {
		alt = -alt
	}
	return alt, true
}

// SetLatLong sets the GPS latitude and longitude.
func (x *Exif) SetLatLong(lat, lon float64) {
	x.Set(exiftag.GPSVersionID, Byte{2, 2, 0, 0})

	latsig := "N"
	if lat < 0 {
		latsig = "S"
		lat = -lat
	}
	x.Set(exiftag.GPSLatitudeRef, Ascii(latsig))

	lonsig := "E"
	if lon < 0 {
		lonsig = "W"
		lon = -lon
	}
	x.Set(exiftag.GPSLongitudeRef, Ascii(lonsig))

	x.Set(exiftag.GPSLatitude, toDegMinSec(lat))
	x.Set(exiftag.GPSLongitude, toDegMinSec(lon))
}

// ToDecimal converts degree, minute and second fractions
// and a hemisphere reference into signed decimal degrees.
//
// Each of deg, min and sec must hold a single numerator/denominator pair.
// The result is negative when ref is "S" or "W".
// It reports false if a component is missing or has a zero denominator.
func ToDecimal(deg, min, sec Rational, ref string) (float64, bool) {
	if deg.Count() < 1 || min.Count() < 1 || sec.Count() < 1 {
		return 0, false
	}
	dd := deg.Float(0) + min.Float(0)/60 + sec.Float(0)/3600
	if math.IsNaN(dd) {
		return 0, false
	}
	if ref == "S" || ref == "W" {
		dd = -dd
	}
	return dd, true
}

// DMS is a coordinate in whole degrees, minutes and seconds.
type DMS struct {
	Deg, Min, Sec int
}

// ToDMS converts decimal degrees into DMS for display.
// The sign of dd is dropped; minutes and seconds are truncated, not rounded.
func ToDMS(dd float64) DMS {
	// absorb float error from the sexagesimal sum,
	// so that 46" doesn't come out as 45.9999…"
	const eps = 1e-6
	secs := math.Floor(math.Abs(dd)*3600 + eps)
	s := int64(secs)
	return DMS{
		Deg: int(s / 3600),
		Min: int(s / 60 % 60),
		Sec: int(s % 60),
	}
}

func (d DMS) String() string {
	return fmt.Sprintf("%d° %d' %d\"", d.Deg, d.Min, d.Sec)
}

func toDegMinSec(val float64) Rational {
	r := make(Rational, 6)

	// whole degrees
	i, f := math.Modf(val)
	r[0] = uint32(i)
	r[1] = 1

	// whole minutes
	i, f = math.Modf(f * 60)
	r[2] = uint32(i)
	r[3] = 1

	// store lat/long fractions to 30 cm precision on equator
	const degreeFractions = 100

	f *= 60 * degreeFractions
	r[4] = uint32(f + 0.5)
	r[5] = degreeFractions

	if r[4] == 60*degreeFractions {
		r[4] = 0
		r[2]++
		if r[2] == 60 {
			r[2] = 0
			r[0]++
		}
	}

	return r
}
