// Package jpeg locates the marker segments of JPEG files
// and rewrites the application segment holding Exif data.
//
// Scan data after the start of scan marker is never interpreted,
// it is treated as opaque bytes that are copied verbatim.
package jpeg

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

var (
	// ErrNotJpeg is returned if the file is not a jpeg file.
	ErrNotJpeg = errors.New("jpeg: missing start of image marker")

	// ErrTruncatedSegment is returned if a segment length
	// is invalid or extends past the end of the data.
	ErrTruncatedSegment = errors.New("jpeg: truncated segment")

	// ErrTooLong is returned if the a chunk is too long to be written in an jpeg file.
	ErrTooLong = errors.New("jpeg: encoded length too long")
)

// Markers
const (
	TEM  = 0x01
	RST0 = 0xd0
	RST7 = 0xd7
	SOI  = 0xd8
	EOI  = 0xd9
	SOS  = 0xda
	APP0 = 0xe0
	APP1 = 0xe1
)

// MaxChunkLen is the maximum length of segment data
// following the marker and the length field.
const MaxChunkLen = 65535 - 2

// ExifPrefix starts the data of the APP1 segment holding Exif.
var ExifPrefix = []byte("Exif\x00\x00")

// Segment is a byte range within a JPEG file.
type Segment struct {
	// Marker is the byte following 0xff that starts the segment.
	// It is zero for fill bytes and garbage between segments.
	Marker byte

	Offset int // start of segment, including the marker
	Len    int // length including marker and length field
}

// IsFill reports if s is padding or garbage between segments.
func (s Segment) IsFill() bool {
	return s.Marker == 0
}

// Bytes returns the bytes of s within p.
func (s Segment) Bytes(p []byte) []byte {
	return p[s.Offset : s.Offset+s.Len]
}

// Data returns the segment data following the marker and length field,
// or nil for segments without one.
func (s Segment) Data(p []byte) []byte {
	if s.IsFill() || standalone(s.Marker) || s.Len < 4 {
		return nil
	}
	if s.Marker == SOS {
		// length field covers only the header
		n := int(p[s.Offset+2])<<8 | int(p[s.Offset+3])
		return p[s.Offset+4 : s.Offset+2+n]
	}
	return p[s.Offset+4 : s.Offset+s.Len]
}

// IsChunk reports if s has marker and its data starts with pfx.
func (s Segment) IsChunk(p []byte, marker byte, pfx []byte) bool {
	return s.Marker == marker && bytes.HasPrefix(s.Data(p), pfx)
}

// Layout lists the segments of a JPEG file.
//
// Segments are ordered and partition the file:
// each byte belongs to exactly one segment.
type Layout struct {
	Segments []Segment

	// Exif is the index of the first APP1 segment
	// holding Exif data, or -1 if there is none.
	Exif int
}

// Scan returns the layout of the JPEG data in p.
// It stops at the start of scan, or at the end of image
// if it comes first.
func Scan(p []byte) (*Layout, error) {
	s, err := NewScanner(p)
	if err != nil {
		return nil, err
	}
	l := &Layout{Exif: -1}
	for s.Next() {
		seg := s.Segment()
		if l.Exif < 0 && seg.IsChunk(p, APP1, ExifPrefix) {
			l.Exif = len(l.Segments)
		}
		l.Segments = append(l.Segments, seg)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

// ExifData returns the raw Exif data in p without the
// APP1 prefix, or nil if l has no Exif segment.
func (l *Layout) ExifData(p []byte) []byte {
	if l.Exif < 0 {
		return nil
	}
	return l.Segments[l.Exif].Data(p)[len(ExifPrefix):]
}

// Scanner iterates through the segments of JPEG data.
type Scanner struct {
	p   []byte
	pos int

	seg Segment

	scanState int

	err error
}

const (
	scanStateBegin  = iota
	scanStateNormal // before start of scan
	scanStateTail   // end of image seen
	scanStateDone
)

// NewScanner returns a Scanner for p.
// It returns ErrNotJpeg if p does not start with a start of image marker.
func NewScanner(p []byte) (*Scanner, error) {
	if len(p) < 2 || p[0] != 0xff || p[1] != SOI {
		return nil, ErrNotJpeg
	}
	return &Scanner{p: p}, nil
}

// Next advances to the next segment.
// It returns false when the scan is complete or an error occurred.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}

	p := s.p
	switch s.scanState {
	case scanStateBegin:
		// start of image
		s.emit(SOI, 2)
		s.scanState = scanStateNormal
		return true

	case scanStateTail:
		s.scanState = scanStateDone
		if s.pos < len(p) {
			// bytes after end of image
			s.emit(0, len(p)-s.pos)
			return true
		}
		return false

	case scanStateDone:
		return false
	}

	if s.pos == len(p) {
		// no start of scan
		s.scanState = scanStateDone
		return false
	}

	// find next marker
	i := nextMarker(p[s.pos:])
	if i < 0 {
		// no more markers
		s.emit(0, len(p)-s.pos)
		s.scanState = scanStateDone
		return true
	}
	if i > 0 {
		// padding or garbage before the marker
		s.emit(0, i)
		return true
	}

	// found marker at p[s.pos] with bytes:
	// 0xff marker sizehi sizelo
	marker := p[s.pos+1]
	if standalone(marker) {
		if marker == EOI {
			s.scanState = scanStateTail
		}
		s.emit(marker, 2)
		return true
	}

	l := chunkLen(p[s.pos:])
	if l < 0 {
		s.err = errors.Wrapf(ErrTruncatedSegment, "marker %#02x at %d", marker, s.pos)
		return false
	}

	if marker == SOS {
		// scan data extends until the end
		s.emit(marker, len(p)-s.pos)
		s.scanState = scanStateDone
		return true
	}

	s.emit(marker, l)
	return true
}

func (s *Scanner) emit(marker byte, n int) {
	s.seg = Segment{Marker: marker, Offset: s.pos, Len: n}
	s.pos += n
}

// Segment returns the most recent segment found by Next.
func (s *Scanner) Segment() Segment {
	return s.seg
}

// Bytes returns the bytes of the most recent segment.
// The returned slice must not be modified.
func (s *Scanner) Bytes() []byte {
	return s.seg.Bytes(s.p)
}

// Err returns any error encountered during Next.
func (s *Scanner) Err() error {
	return s.err
}

// standalone reports if marker has no length field.
func standalone(marker byte) bool {
	switch {
	case marker == TEM,
		RST0 <= marker && marker <= RST7,
		marker == SOI,
		marker == EOI:
		return true
	}
	return false
}

// nextMarker returns the position of the next marker in p, or -1
// if there is none. A marker is 0xff followed by neither 0x00 nor 0xff,
// so the marker of a run of 0xff fill bytes is at the last one.
func nextMarker(p []byte) int {
	for i := 0; i+1 < len(p); i++ {
		if p[i] == 0xff && p[i+1] != 0xff && p[i+1] != 0x00 {
			return i
		}
	}
	return -1
}

// chunkLen returns the number of bytes in the chunk starting at p,
// including the marker. It returns -1 if the chunk is not valid.
func chunkLen(p []byte) int {
	if len(p) < 4 {
		return -1
	}
	l := int(p[2])<<8 + int(p[3])
	if l < 2 || len(p) < l+2 {
		// invalid or truncated chunk
		return -1
	}
	return l + 2 // length with marker
}

// WriteChunk writes a segment with marker and chunkdata to w.
func WriteChunk(w io.Writer, marker byte, chunkdata []byte) error {
	if len(chunkdata) > MaxChunkLen {
		return ErrTooLong
	}
	n := len(chunkdata) + 2

	var buf [4]byte
	buf[0] = 0xff
	buf[1] = marker
	buf[2] = byte(uint32(n) >> 8)
	buf[3] = byte(n)
	n, err := w.Write(buf[:])
	if err != nil {
		return err
	}
	if n != 4 {
		return io.ErrShortWrite
	}

	n, err = w.Write(chunkdata)
	if err != nil {
		return err
	}
	if n != len(chunkdata) {
		return io.ErrShortWrite
	}
	return nil
}
