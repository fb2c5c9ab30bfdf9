package jpeg

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// ExifChunk returns the data of an APP1 segment holding the raw Exif block.
func ExifChunk(block []byte) ([]byte, error) {
	if len(ExifPrefix)+len(block) > MaxChunkLen {
		return nil, errors.Wrapf(ErrTooLong, "jpeg: exif block of %d bytes", len(block))
	}
	buf := new(bytes.Buffer)
	buf.Grow(4 + len(ExifPrefix) + len(block))
	chunk := make([]byte, 0, len(ExifPrefix)+len(block))
	chunk = append(chunk, ExifPrefix...)
	chunk = append(chunk, block...)
	if err := WriteChunk(buf, APP1, chunk); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Edits returns the edits of the file that replace its Exif
// with block, the raw Exif data starting with the TIFF header.
//
// If block is nil, the Exif segment is removed.
// If the file has no Exif segment, a new one is inserted
// after the start of image marker.
func (l *Layout) Edits(block []byte) (Edits, error) {
	var seg []byte
	if block != nil {
		var err error
		seg, err = ExifChunk(block)
		if err != nil {
			return nil, err
		}
	}

	if l.Exif < 0 {
		if seg == nil {
			return nil, nil
		}
		// Exif should be the first segment after SOI
		return Edits{{Offset: 2, Data: seg}}, nil
	}

	s := l.Segments[l.Exif]
	return Edits{{Offset: int64(s.Offset), Size: s.Len, Data: seg}}, nil
}

// Splice returns a copy of p, the data l was scanned from,
// having its Exif segment replaced by block, as in Edits.
// All other bytes of p are copied unchanged.
func (l *Layout) Splice(p, block []byte) ([]byte, error) {
	ed, err := l.Edits(block)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	buf.Grow(len(p) + len(block) + 10)
	if _, err := ed.Apply(buf, bytes.NewReader(p)); err != nil {
		return nil, errors.Wrap(err, "jpeg: splice")
	}
	return buf.Bytes(), nil
}

// WriteSplice writes p with its Exif segment replaced by block to w.
func (l *Layout) WriteSplice(w io.Writer, p, block []byte) (int64, error) {
	ed, err := l.Edits(block)
	if err != nil {
		return 0, err
	}
	r, err := ed.Reader(bytes.NewReader(p))
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(w, r)
	return n, errors.Wrap(err, "jpeg: write splice")
}
