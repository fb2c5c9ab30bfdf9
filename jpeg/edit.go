package jpeg

import (
	"io"

	"github.com/pkg/errors"
)

// ErrBadEdits is returned for Edits that are unordered or overlap.
var ErrBadEdits = errors.New("jpeg: edits unordered or overlapping")

// Edit replaces Size bytes of a stream at Offset with Data.
//
// A zero Size inserts Data, and empty Data deletes bytes.
type Edit struct {
	Offset int64
	Size   int
	Data   []byte
}

// Edits is a list of changes to a stream, ordered by Offset.
// Edits must not overlap.
type Edits []Edit

// Valid reports if e is ordered and has no overlapping elements.
func (e Edits) Valid() bool {
	var end int64
	for _, x := range e {
		if x.Size < 0 || x.Offset < end {
			return false
		}
		end = x.Offset + int64(x.Size)
	}
	return true
}

// Apply writes r to w with e applied, and returns the number of bytes written.
func (e Edits) Apply(w io.Writer, r io.Reader) (int64, error) {
	er, err := e.Reader(r)
	if err != nil {
		return 0, err
	}
	return io.Copy(w, er)
}

// Reader returns a reader yielding r with e applied.
//
// Reading fails with io.ErrUnexpectedEOF if r ends
// before the end of the last edit.
func (e Edits) Reader(r io.Reader) (io.Reader, error) {
	if !e.Valid() {
		return nil, ErrBadEdits
	}
	if len(e) == 0 {
		return r, nil
	}
	return &editReader{src: r, edits: e}, nil
}

type editReader struct {
	src   io.Reader
	edits Edits

	pos  int64  // bytes consumed from src
	data []byte // pending data of the last edit reached
}

func (r *editReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		if len(r.data) != 0 {
			n := copy(p, r.data)
			r.data = r.data[n:]
			return n, nil
		}

		if len(r.edits) == 0 {
			return r.src.Read(p)
		}
		e := r.edits[0]

		if r.pos < e.Offset {
			if rem := e.Offset - r.pos; int64(len(p)) > rem {
				p = p[:rem]
			}
			n, err := r.src.Read(p)
			r.pos += int64(n)
			if err == io.EOF {
				if r.pos < e.Offset {
					err = io.ErrUnexpectedEOF
				} else {
					err = nil
				}
			}
			if n != 0 || err != nil {
				return n, err
			}
			continue
		}

		if e.Size != 0 {
			n, err := io.CopyN(io.Discard, r.src, int64(e.Size))
			r.pos += n
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			if err != nil {
				return 0, err
			}
		}
		r.data = e.Data
		r.edits = r.edits[1:]
	}
}
