package jpeg

import (
	"bytes"
	"io"
	"testing"
)

func TestEdits(t *testing.T) {
	src := make([]byte, 1<<17)
	for i := range src {
		src[i] = byte(i*7 + i>>8)
	}
	ins := bytes.Repeat([]byte("exif"), 1<<11)

	j := func(v ...[]byte) []byte {
		return bytes.Join(v, nil)
	}

	tests := []struct {
		name  string
		edits Edits
		want  []byte
	}{
		{"none", nil, src},
		{"delete", Edits{{1 << 10, 1 << 7, nil}}, j(src[:1<<10], src[1<<10+1<<7:])},
		{"replace", Edits{{100123, 987, []byte("segment")}}, j(src[:100123], []byte("segment"), src[100123+987:])},
		{"insert", Edits{{2, 0, ins}}, j(src[:2], ins, src[2:])},
		{"insert at start", Edits{{0, 0, ins}}, j(ins, src)},
		{"append", Edits{{int64(len(src)), 0, ins}}, j(src, ins)},
		{"delete tail", Edits{{1000, len(src) - 1000, nil}}, src[:1000]},
		{"several", Edits{{2, 8, ins}, {1000, 500, nil}, {1500, 0, []byte("x")}},
			j(src[:2], ins, src[10:1000], []byte("x"), src[1500:])},
	}

	for _, tt := range tests {
		buf := new(bytes.Buffer)
		n, err := tt.edits.Apply(buf, bytes.NewReader(src))
		if err != nil {
			t.Errorf("%s: Apply error: %v", tt.name, err)
			continue
		}
		if n != int64(buf.Len()) {
			t.Errorf("%s: Apply reports %d bytes written, got %d", tt.name, n, buf.Len())
		}
		if !bytes.Equal(buf.Bytes(), tt.want) {
			t.Errorf("%s: Apply data mismatch", tt.name)
		}

		// small reads cross edit boundaries
		for _, size := range []int{1, 61, 4096} {
			r, err := tt.edits.Reader(bytes.NewReader(src))
			if err != nil {
				t.Fatalf("%s: Reader error: %v", tt.name, err)
			}
			got, err := io.ReadAll(&smallReader{r, size})
			if err != nil {
				t.Errorf("%s/%d: read error: %v", tt.name, size, err)
				continue
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("%s/%d: Reader data mismatch", tt.name, size)
			}
		}
	}
}

func TestEditsValid(t *testing.T) {
	tests := []struct {
		edits Edits
		valid bool
	}{
		{nil, true},
		{Edits{{0, 2, nil}, {2, 0, []byte("x")}}, true},
		{Edits{{4, 0, nil}, {4, 0, nil}}, true},
		{Edits{{10, 2, nil}, {5, 0, nil}}, false},
		{Edits{{0, 4, nil}, {2, 1, nil}}, false},
		{Edits{{0, -1, nil}}, false},
	}
	for i, tt := range tests {
		if got := tt.edits.Valid(); got != tt.valid {
			t.Errorf("%d: Valid() = %v, want %v", i, got, tt.valid)
		}
		if _, err := tt.edits.Reader(bytes.NewReader(nil)); (err == nil) != tt.valid {
			t.Errorf("%d: Reader error is %v", i, err)
		}
	}
}

func TestEditsShortSource(t *testing.T) {
	for _, e := range []Edits{
		{{100, 10, []byte("x")}},
		{{45, 10, nil}},
	} {
		_, err := e.Apply(io.Discard, bytes.NewReader(make([]byte, 50)))
		if err != io.ErrUnexpectedEOF {
			t.Errorf("%v: Apply error is %v, want %v", e, err, io.ErrUnexpectedEOF)
		}
	}
}

type smallReader struct {
	r io.Reader
	n int
}

func (r *smallReader) Read(p []byte) (int, error) {
	if len(p) > r.n {
		p = p[:r.n]
	}
	return r.r.Read(p)
}
