package exif

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/ebenezerdon/metashield-photo-privacy/exif/exiftag"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		deg, min, sec Rational
		ref           string
		want          float64
		ok            bool
	}{
		{Rational{40, 1}, Rational{26, 1}, Rational{46, 1}, "N", 40.446111, true},
		{Rational{79, 1}, Rational{58, 1}, Rational{56, 1}, "W", -79.982222, true},
		{Rational{33, 1}, Rational{51, 1}, Rational{3156, 100}, "S", -33.858767, true},
		{Rational{151, 1}, Rational{1255, 100}, Rational{0, 1}, "E", 151.209167, true},
		{Rational{12, 1}, Rational{0, 1}, Rational{0, 1}, "", 12, true},
		{Rational{40, 0}, Rational{26, 1}, Rational{46, 1}, "N", 0, false},
		{Rational{40, 1}, Rational{26, 1}, Rational{46, 0}, "N", 0, false},
		{Rational{40, 1}, nil, Rational{46, 1}, "N", 0, false},
	}
	for _, tt := range tests {
		got, ok := ToDecimal(tt.deg, tt.min, tt.sec, tt.ref)
		if ok != tt.ok {
			t.Errorf("ToDecimal(%v, %v, %v, %q) ok = %v, want %v", tt.deg, tt.min, tt.sec, tt.ref, ok, tt.ok)
			continue
		}
		if ok && math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("ToDecimal(%v, %v, %v, %q) = %v, want %v", tt.deg, tt.min, tt.sec, tt.ref, got, tt.want)
		}
	}
}

func TestToDMS(t *testing.T) {
	tests := []struct {
		dd   float64
		want DMS
		str  string
	}{
		{40.446111, DMS{40, 26, 45}, `40° 26' 45"`},
		{40 + 26.0/60 + 46.0/3600, DMS{40, 26, 46}, `40° 26' 46"`},
		{-(79 + 58.0/60 + 56.0/3600), DMS{79, 58, 56}, `79° 58' 56"`},
		{0, DMS{0, 0, 0}, `0° 0' 0"`},
		{179.99999, DMS{179, 59, 59}, `179° 59' 59"`},
	}
	for _, tt := range tests {
		got := ToDMS(tt.dd)
		if got != tt.want {
			t.Errorf("ToDMS(%v) = %+v, want %+v", tt.dd, got, tt.want)
		}
		if s := got.String(); s != tt.str {
			t.Errorf("ToDMS(%v).String() = %q, want %q", tt.dd, s, tt.str)
		}
	}
}

// TestToDMSInverse checks that ToDMS recovers the
// whole components of ToDecimal.
func TestToDMSInverse(t *testing.T) {
	for d := uint32(0); d < 180; d += 7 {
		for m := uint32(0); m < 60; m += 3 {
			for s := uint32(0); s < 60; s += 5 {
				for _, ref := range []string{"N", "S"} {
					dd, ok := ToDecimal(Rational{d, 1}, Rational{m, 1}, Rational{s, 1}, ref)
					if !ok {
						t.Fatalf("ToDecimal(%d, %d, %d) failed", d, m, s)
					}
					got := ToDMS(dd)
					want := DMS{int(d), int(m), int(s)}
					if got != want {
						t.Errorf("ToDMS(%v) = %+v, want %+v", dd, got, want)
					}
				}
			}
		}
	}
}

func TestLatLong(t *testing.T) {
	x := Empty(binary.BigEndian)
	if _, _, ok := x.LatLong(); ok {
		t.Error("LatLong of empty Exif ok")
	}

	x.Set(exiftag.GPSLatitudeRef, Ascii("N"))
	x.Set(exiftag.GPSLatitude, Rational{40, 1, 26, 1, 46, 1})
	x.Set(exiftag.GPSLongitudeRef, Ascii("W"))
	x.Set(exiftag.GPSLongitude, Rational{79, 1, 58, 1, 56, 1})

	lat, long, ok := x.LatLong()
	if !ok {
		t.Fatal("LatLong not ok")
	}
	if math.Abs(lat-40.4461) > 1e-4 || math.Abs(long+79.9822) > 1e-4 {
		t.Errorf("LatLong = %v, %v, want 40.4461, -79.9822", lat, long)
	}

	// missing reference is positive
	x.Set(exiftag.GPSLongitudeRef, nil)
	if _, long, ok := x.LatLong(); !ok || long < 0 {
		t.Errorf("LatLong without ref = %v, %v", long, ok)
	}

	// invalid reference
	x.Set(exiftag.GPSLongitudeRef, Ascii("X"))
	if _, _, ok := x.LatLong(); ok {
		t.Error("LatLong with invalid ref ok")
	}
	x.Set(exiftag.GPSLongitudeRef, Ascii("W"))

	// too few components
	x.Set(exiftag.GPSLatitude, Rational{40, 1, 26, 1})
	if _, _, ok := x.LatLong(); ok {
		t.Error("LatLong with short latitude ok")
	}

	// wrong type
	x.Set(exiftag.GPSLatitude, Long{40, 26, 46})
	if _, _, ok := x.LatLong(); ok {
		t.Error("LatLong with Long latitude ok")
	}
}

func TestAltitude(t *testing.T) {
	x := Empty(binary.LittleEndian)
	if _, ok := x.Altitude(); ok {
		t.Error("Altitude of empty Exif ok")
	}

	x.Set(exiftag.GPSAltitude, Rational{2785, 10})
	if alt, ok := x.Altitude(); !ok || alt != 278.5 {
		t.Errorf("Altitude = %v, %v, want 278.5", alt, ok)
	}

	x.Set(exiftag.GPSAltitudeRef, Byte{1})
	if alt, ok := x.Altitude(); !ok || alt != -278.5 {
		t.Errorf("Altitude below sea level = %v, %v, want -278.5", alt, ok)
	}

	x.Set(exiftag.GPSAltitude, Rational{1, 0})
	if _, ok := x.Altitude(); ok {
		t.Error("Altitude with zero denominator ok")
	}
}

func TestSetLatLong(t *testing.T) {
	coords := []struct{ lat, long float64 }{
		{51.5125, -0.125},
		{-33.8688, 151.2093},
		{40.446111, -79.982222},
		{0, 0},
		{-89.99999, 179.99999},
	}
	for _, c := range coords {
		x := Empty(binary.BigEndian)
		x.SetLatLong(c.lat, c.long)

		enc, err := x.EncodeBytes()
		if err != nil {
			t.Fatal(err)
		}
		x, err = DecodeBytes(enc)
		if err != nil {
			t.Fatal(err)
		}

		lat, long, ok := x.LatLong()
		if !ok {
			t.Errorf("SetLatLong(%v, %v): no coordinates", c.lat, c.long)
			continue
		}

		// seconds are stored with 1/100 precision
		const eps = 0.005 / 3600
		if math.Abs(lat-c.lat) > eps || math.Abs(long-c.long) > eps {
			t.Errorf("SetLatLong(%v, %v) yields %v, %v", c.lat, c.long, lat, long)
		}
	}
}
