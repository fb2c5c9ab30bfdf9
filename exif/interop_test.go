package exif_test

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"

	goexif "github.com/rwcarlsen/goexif/exif"

	"github.com/ebenezerdon/metashield-photo-privacy/exif"
	"github.com/ebenezerdon/metashield-photo-privacy/exif/exiftag"
	"github.com/ebenezerdon/metashield-photo-privacy/testutil"
)

// TestInterop checks encoded data with an independent decoder.
func TestInterop(t *testing.T) {
	for _, bo := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		x := testutil.Sample(t, bo)

		enc, err := x.EncodeBytes()
		if err != nil {
			t.Fatal(err)
		}

		gx, err := goexif.Decode(bytes.NewReader(enc))
		if err != nil {
			t.Fatalf("%v: goexif decode: %v", bo, err)
		}

		for _, f := range []struct {
			name goexif.FieldName
			want string
		}{
			{goexif.Make, "Canon"},
			{goexif.Model, "Canon EOS 5D Mark IV"},
			{goexif.DateTimeOriginal, "2021:06:15 14:30:00"},
		} {
			tag, err := gx.Get(f.name)
			if err != nil {
				t.Errorf("%v: goexif %s: %v", bo, f.name, err)
				continue
			}
			s, err := tag.StringVal()
			if err != nil || s != f.want {
				t.Errorf("%v: goexif %s = %q, %v, want %q", bo, f.name, s, err, f.want)
			}
		}

		lat, long, err := gx.LatLong()
		if err != nil {
			t.Fatalf("%v: goexif LatLong: %v", bo, err)
		}
		if math.Abs(lat-testutil.SampleLat) > 1e-9 || math.Abs(long-testutil.SampleLong) > 1e-9 {
			t.Errorf("%v: goexif LatLong = %v, %v", bo, lat, long)
		}

		thumb, err := gx.JpegThumbnail()
		if err != nil {
			t.Errorf("%v: goexif thumbnail: %v", bo, err)
		} else if !bytes.Equal(thumb, x.Thumb) {
			t.Errorf("%v: goexif thumbnail differs", bo)
		}
	}
}

// TestDecodeJPEG decodes the Exif of a JPEG file written by testutil
// and compares it to the source data.
func TestDecodeJPEG(t *testing.T) {
	x := testutil.Sample(t, binary.LittleEndian)
	jpg := testutil.SampleJPEG(t, binary.LittleEndian)

	// locate the Exif payload after SOI and the APP1 header
	const pfx = 2 + 4 + 6
	n := int(jpg[4])<<8 | int(jpg[5])
	x2, err := exif.DecodeBytes(jpg[pfx : 4+n])
	if err != nil {
		t.Fatal(err)
	}

	for _, tag := range []uint32{exiftag.Make, exiftag.Model, exiftag.LensModel, exiftag.InteroperabilityIndex} {
		a, _ := x.String(tag)
		b, ok := x2.String(tag)
		if !ok || a != b {
			t.Errorf("%s = %q, want %q", exiftag.Id(tag), b, a)
		}
	}

	lat, long, ok := x2.LatLong()
	if !ok || math.Abs(lat-testutil.SampleLat) > 1e-9 || math.Abs(long-testutil.SampleLong) > 1e-9 {
		t.Errorf("LatLong = %v, %v, %v", lat, long, ok)
	}
	if alt, ok := x2.Altitude(); !ok || alt != 278.5 {
		t.Errorf("Altitude = %v, %v", alt, ok)
	}
	if !bytes.Equal(x2.Thumb, x.Thumb) {
		t.Error("thumbnail differs")
	}
}
