package jpeg

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/jpeg"
	"io"
	"os"
	"testing"

	"github.com/pkg/errors"

	"github.com/ebenezerdon/metashield-photo-privacy/testutil"
)

func TestScanner(t *testing.T) {
	for _, fn := range testutil.MediaFileNames(t, ".jpg") {
		t.Log(fn)
		p, err := os.ReadFile(fn)
		if err != nil {
			t.Error(err)
			continue
		}
		l, err := Scan(p)
		if err != nil {
			t.Error("Scan error:", err)
			continue
		}
		testPartition(t, p, l)
	}
}

func TestScanSample(t *testing.T) {
	for _, bo := range []binary.ByteOrder{binary.BigEndian, binary.LittleEndian} {
		p := testutil.SampleJPEG(t, bo)
		l, err := Scan(p)
		if err != nil {
			t.Fatal("Scan error:", err)
		}
		testPartition(t, p, l)

		if l.Exif != 1 {
			t.Fatalf("Exif segment index is %d, want 1", l.Exif)
		}
		data := l.ExifData(p)
		if len(data) < 8 || !(bytes.HasPrefix(data, []byte("MM\x00*")) || bytes.HasPrefix(data, []byte("II*\x00"))) {
			t.Errorf("ExifData does not start with a TIFF header: % .16x", data)
		}

		last := l.Segments[len(l.Segments)-1]
		if last.Marker != SOS {
			t.Errorf("last segment has marker %#02x, want SOS", last.Marker)
		}
	}
}

// testPartition checks that segments in l cover p
// in order without gaps or overlaps.
func testPartition(t *testing.T, p []byte, l *Layout) {
	t.Helper()

	dump := new(bytes.Buffer)
	off := 0
	for i, s := range l.Segments {
		fmt.Fprintf(dump, "%3d %#02x %6d %5d\n", i, s.Marker, s.Offset, s.Len)
		if s.Offset != off {
			t.Errorf("segment %d at %d, want %d\n%s", i, s.Offset, off, dump.Bytes())
			return
		}
		if s.Len <= 0 {
			t.Errorf("segment %d is empty\n%s", i, dump.Bytes())
			return
		}
		if !s.IsFill() && (p[s.Offset] != 0xff || p[s.Offset+1] != s.Marker) {
			t.Errorf("segment %d does not start with its marker\n%s", i, dump.Bytes())
		}
		off += s.Len
	}
	if off != len(p) {
		t.Errorf("segments cover %d bytes of %d\n%s", off, len(p), dump.Bytes())
	}
}

func TestScanLayout(t *testing.T) {
	app0 := testutil.Segment(APP0, []byte("JFIF\x00\x01\x02"))
	exif := testutil.Segment(APP1, []byte("Exif\x00\x00MM\x00\x2a\x00\x00\x00\x00"))
	xmp := testutil.Segment(APP1, []byte("http://ns.adobe.com/xap/1.0/\x00<x/>"))
	sos := []byte{0xff, SOS, 0x00, 0x04, 0x01, 0x02, 0xab, 0xff, 0x00, 0xcd, 0xff, 0xd0, 0x12, 0xff, EOI}

	j := func(v ...[]byte) []byte {
		return bytes.Join(v, nil)
	}
	soi := []byte{0xff, SOI}

	tests := []struct {
		name    string
		p       []byte
		markers []byte
		exif    int
	}{
		{
			"plain",
			j(soi, app0, sos),
			[]byte{SOI, APP0, SOS},
			-1,
		},
		{
			"exif",
			j(soi, app0, exif, sos),
			[]byte{SOI, APP0, APP1, SOS},
			2,
		},
		{
			"xmp before exif",
			j(soi, xmp, exif, sos),
			[]byte{SOI, APP1, APP1, SOS},
			2,
		},
		{
			"two exif",
			j(soi, exif, exif, sos),
			[]byte{SOI, APP1, APP1, SOS},
			1,
		},
		{
			"fill bytes",
			j(soi, []byte{0xff, 0xff, 0xff}, app0, sos),
			[]byte{SOI, 0, APP0, SOS},
			-1,
		},
		{
			"garbage",
			j(soi, []byte{0x00, 0x12}, exif, sos),
			[]byte{SOI, 0, APP1, SOS},
			2,
		},
		{
			"standalone",
			j(soi, []byte{0xff, TEM, 0xff, RST0 + 3}, app0, sos),
			[]byte{SOI, TEM, RST0 + 3, APP0, SOS},
			-1,
		},
		{
			"end of image",
			j(soi, app0, []byte{0xff, EOI}),
			[]byte{SOI, APP0, EOI},
			-1,
		},
		{
			"trailer",
			j(soi, exif, []byte{0xff, EOI, 1, 2, 3}),
			[]byte{SOI, APP1, EOI, 0},
			1,
		},
		{
			"no scan",
			j(soi, app0),
			[]byte{SOI, APP0},
			-1,
		},
		{
			"lone 0xff at end",
			j(soi, app0, []byte{0xff}),
			[]byte{SOI, APP0, 0},
			-1,
		},
	}

	for _, tt := range tests {
		l, err := Scan(tt.p)
		if err != nil {
			t.Errorf("%s: Scan error: %v", tt.name, err)
			continue
		}
		testPartition(t, tt.p, l)

		var markers []byte
		for _, s := range l.Segments {
			markers = append(markers, s.Marker)
		}
		if !bytes.Equal(markers, tt.markers) {
			t.Errorf("%s: markers are % x, want % x", tt.name, markers, tt.markers)
		}
		if l.Exif != tt.exif {
			t.Errorf("%s: Exif index is %d, want %d", tt.name, l.Exif, tt.exif)
		}
	}
}

func TestScanError(t *testing.T) {
	tests := []struct {
		name string
		p    []byte
		err  error
	}{
		{"empty", nil, ErrNotJpeg},
		{"png", []byte("\x89PNG\r\n\x1a\n"), ErrNotJpeg},
		{"short", []byte{0xff}, ErrNotJpeg},
		{"missing length", []byte{0xff, SOI, 0xff, APP1, 0x00}, ErrTruncatedSegment},
		{"length past end", []byte{0xff, SOI, 0xff, APP1, 0x00, 0x10, 'E', 'x'}, ErrTruncatedSegment},
		{"length below 2", []byte{0xff, SOI, 0xff, APP0, 0x00, 0x01, 0xff, SOS}, ErrTruncatedSegment},
		{"sos header past end", []byte{0xff, SOI, 0xff, SOS, 0x00, 0x0c, 1}, ErrTruncatedSegment},
	}

	for _, tt := range tests {
		_, err := Scan(tt.p)
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: Scan error is %v, want %v", tt.name, err, tt.err)
		}
	}
}

func TestSplice(t *testing.T) {
	jpg := testutil.JPEG(t, 16, 16)
	block := []byte("MM\x00\x2a\x00\x00\x00\x08\x00\x00\x00\x00\x00\x00")
	src := testutil.SampleJPEG(t, binary.BigEndian)

	srcLayout, err := Scan(src)
	if err != nil {
		t.Fatal(err)
	}
	exifSeg := srcLayout.Segments[srcLayout.Exif]

	// replace
	testSplice(t, "replace", src, block, len(src)-exifSeg.Len+4+6+len(block))

	// remove
	testSplice(t, "remove", src, nil, len(src)-exifSeg.Len)

	// insert
	testSplice(t, "insert", jpg, block, len(jpg)+4+6+len(block))

	// nothing to remove
	testSplice(t, "unchanged", jpg, nil, len(jpg))
}

func testSplice(t *testing.T, name string, p, block []byte, wantLen int) {
	t.Helper()

	l, err := Scan(p)
	if err != nil {
		t.Fatalf("%s: Scan error: %v", name, err)
	}

	q, err := l.Splice(p, block)
	if err != nil {
		t.Fatalf("%s: Splice error: %v", name, err)
	}
	if len(q) != wantLen {
		t.Errorf("%s: spliced length is %d, want %d", name, len(q), wantLen)
	}

	w := new(bytes.Buffer)
	n, err := l.WriteSplice(w, p, block)
	if err != nil {
		t.Fatalf("%s: WriteSplice error: %v", name, err)
	}
	if n != int64(w.Len()) || !bytes.Equal(w.Bytes(), q) {
		t.Errorf("%s: WriteSplice differs from Splice", name)
	}

	ql, err := Scan(q)
	if err != nil {
		t.Fatalf("%s: Scan of spliced data error: %v", name, err)
	}
	testPartition(t, q, ql)

	if block == nil {
		if ql.Exif >= 0 {
			t.Errorf("%s: Exif still present", name)
		}
	} else if got := ql.ExifData(q); !bytes.Equal(got, block) {
		t.Errorf("%s: spliced Exif is % x, want % x", name, got, block)
	}

	// segments other than Exif must be unchanged
	var want, got [][]byte
	for i, s := range l.Segments {
		if i != l.Exif {
			want = append(want, s.Bytes(p))
		}
	}
	for i, s := range ql.Segments {
		if i != ql.Exif {
			got = append(got, s.Bytes(q))
		}
	}
	if !bytes.Equal(bytes.Join(want, nil), bytes.Join(got, nil)) {
		t.Errorf("%s: segments other than Exif differ", name)
	}

	if _, _, err := image.Decode(bytes.NewReader(q)); err != nil {
		t.Errorf("%s: image decode error: %v", name, err)
	}
}

func TestSpliceTooLong(t *testing.T) {
	jpg := testutil.JPEG(t, 8, 8)
	l, err := Scan(jpg)
	if err != nil {
		t.Fatal(err)
	}

	_, err = l.Splice(jpg, make([]byte, MaxChunkLen-len(ExifPrefix)))
	if err != nil {
		t.Errorf("Splice of longest block error: %v", err)
	}

	_, err = l.Splice(jpg, make([]byte, MaxChunkLen-len(ExifPrefix)+1))
	if !errors.Is(err, ErrTooLong) {
		t.Errorf("Splice of long block error is %v, want %v", err, ErrTooLong)
	}
}

func TestWriteChunk(t *testing.T) {
	buf := new(bytes.Buffer)
	if err := WriteChunk(buf, APP1, []byte("abc")); err != nil {
		t.Fatal(err)
	}
	want := []byte{0xff, APP1, 0x00, 0x05, 'a', 'b', 'c'}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("WriteChunk wrote % x, want % x", buf.Bytes(), want)
	}

	if err := WriteChunk(io.Discard, APP1, make([]byte, MaxChunkLen+1)); err != ErrTooLong {
		t.Errorf("WriteChunk error is %v, want %v", err, ErrTooLong)
	}
}
