// Package testutil builds JPEG and Exif test data.
package testutil

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ebenezerdon/metashield-photo-privacy/exif"
	"github.com/ebenezerdon/metashield-photo-privacy/exif/exiftag"
)

// Sample coordinates, 40° 26' 46" N 79° 58' 56" W.
const (
	SampleLat  = 40 + 26.0/60 + 46.0/3600
	SampleLong = -(79 + 58.0/60 + 56.0/3600)
)

// JPEG returns a baseline JPEG image of size dx × dy
// having only the segments written by image/jpeg.
func JPEG(t testing.TB, dx, dy int) []byte {
	im := image.NewRGBA(image.Rect(0, 0, dx, dy))
	for x := 0; x < dx; x++ {
		for y := 0; y < dy; y++ {
			c := color.RGBA{uint8(x * 255 / dx), uint8(y * 255 / dy), 128, 255}
			im.Set(x, y, c)
		}
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, im, nil); err != nil {
		t.Fatal("image encode:", err)
	}
	return buf.Bytes()
}

// Segment returns a JPEG marker segment with data.
func Segment(marker byte, data []byte) []byte {
	p := make([]byte, 4, 4+len(data))
	p[0], p[1] = 0xff, marker
	binary.BigEndian.PutUint16(p[2:], uint16(len(data)+2))
	return append(p, data...)
}

// Insert returns jpg with segs inserted after the start of image marker.
func Insert(jpg []byte, segs ...[]byte) []byte {
	var r []byte
	r = append(r, jpg[:2]...)
	for _, s := range segs {
		r = append(r, s...)
	}
	return append(r, jpg[2:]...)
}

// ExifSegment returns an APP1 segment holding the raw Exif block.
func ExifSegment(block []byte) []byte {
	return Segment(0xe1, append([]byte("Exif\x00\x00"), block...))
}

// Sample returns Exif data having device info, capture parameters,
// GPS coordinates at SampleLat and SampleLong and a thumbnail.
func Sample(t testing.TB, bo binary.ByteOrder) *exif.Exif {
	x := exif.Empty(bo)

	x.Set(exiftag.Make, exif.Ascii("Canon"))
	x.Set(exiftag.Model, exif.Ascii("Canon EOS 5D Mark IV"))
	x.Set(exiftag.Software, exif.Ascii("Firmware Version 1.0.4"))
	x.Set(exiftag.Orientation, exif.Short{1})
	x.Set(exiftag.XResolution, exif.Rational{72, 1})
	x.Set(exiftag.YResolution, exif.Rational{72, 1})
	x.Set(exiftag.DateTime, exif.Ascii("2021:06:15 14:30:00"))

	x.Set(exiftag.ExposureTime, exif.Rational{1, 250})
	x.Set(exiftag.FNumber, exif.Rational{28, 10})
	x.Set(exiftag.ISOSpeedRatings, exif.Short{400})
	x.Set(exiftag.ExifVersion, exif.Undef("0230"))
	x.Set(exiftag.DateTimeOriginal, exif.Ascii("2021:06:15 14:30:00"))
	x.Set(exiftag.ExposureBiasValue, exif.SRational{-1, 3})
	x.Set(exiftag.LensModel, exif.Ascii("EF24-105mm f/4L IS II USM"))

	x.Set(exiftag.InteroperabilityIndex, exif.Ascii("R98"))

	x.Set(exiftag.GPSVersionID, exif.Byte{2, 3, 0, 0})
	x.Set(exiftag.GPSLatitudeRef, exif.Ascii("N"))
	x.Set(exiftag.GPSLatitude, exif.Rational{40, 1, 26, 1, 46, 1})
	x.Set(exiftag.GPSLongitudeRef, exif.Ascii("W"))
	x.Set(exiftag.GPSLongitude, exif.Rational{79, 1, 58, 1, 56, 1})
	x.Set(exiftag.GPSAltitudeRef, exif.Byte{0})
	x.Set(exiftag.GPSAltitude, exif.Rational{2785, 10})

	x.IFD1 = exif.Dir{
		{Tag: uint16(exiftag.Compression), Value: exif.Short{6}},
	}
	x.Thumb = JPEG(t, 8, 8)

	return x
}

// SampleJPEG returns a JPEG image with Exif data from Sample.
func SampleJPEG(t testing.TB, bo binary.ByteOrder) []byte {
	block, err := Sample(t, bo).EncodeBytes()
	if err != nil {
		t.Fatal("exif encode:", err)
	}
	return Insert(JPEG(t, 32, 24), ExifSegment(block))
}

// MediaFileNames returns paths of files with extension ext
// under the directory named by the MEDIA_TEST environment variable.
// It skips the test if there are none.
func MediaFileNames(t testing.TB, ext string) []string {
	root := os.Getenv("MEDIA_TEST")
	if root == "" {
		t.Skip("MEDIA_TEST not set")
	}

	var files []string
	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.Mode().IsRegular() && strings.EqualFold(filepath.Ext(path), ext) {
			files = append(files, path)
		}
		return nil
	})

	if len(files) == 0 {
		t.Skipf("no %s files in %s", ext, root)
	}
	return files
}
