// Package exif decodes and encodes the TIFF structured Exif block
// embedded in JPEG files.
package exif

import (
	"encoding/binary"
	"sort"

	"github.com/ebenezerdon/metashield-photo-privacy/exif/exiftag"
)

// Exif represents decoded Exif data.
//
// Pointer tags that link directories (Exif, GPS and Interop IFD pointers,
// thumbnail offset and length) are not kept in the directories.
// They are recreated by EncodeBytes from the layout of the encoded data.
type Exif struct {
	// ByteOrder of the encoded data.
	ByteOrder binary.ByteOrder

	IFD0    Dir // primary image tags (0th)
	Exif    Dir // capture parameters
	GPS     Dir // location
	Interop Dir // interoperability
	IFD1    Dir // thumbnail image tags (1st)

	// Thumb is the raw JPEG thumbnail, if any.
	Thumb []byte

	// Skipped records the entries DecodeBytes could not decode
	// and left out of the directories, and the rationals kept with
	// a zero denominator. It is nil if every entry decoded cleanly.
	Skipped error
}

// Empty returns Exif data with no tags and no thumbnail.
func Empty(bo binary.ByteOrder) *Exif {
	return &Exif{ByteOrder: bo}
}

// IsEmpty reports if x has no tags and no thumbnail.
func (x *Exif) IsEmpty() bool {
	return len(x.IFD0) == 0 && len(x.Exif) == 0 && len(x.GPS) == 0 &&
		len(x.Interop) == 0 && len(x.IFD1) == 0 && len(x.Thumb) == 0
}

// Dir returns the directory for the namespace of tag t
// from package exiftag. Tags in the Tiff namespace are
// looked up in IFD0.
func (x *Exif) Dir(t uint32) *Dir {
	switch exiftag.Namespace(t) {
	case exiftag.Tiff:
		return &x.IFD0
	case exiftag.Exif:
		return &x.Exif
	case exiftag.GPS:
		return &x.GPS
	case exiftag.Interop:
		return &x.Interop
	}
	return nil
}

// Tag returns the value of tag t from package exiftag,
// or nil if the tag is not present.
func (x *Exif) Tag(t uint32) Value {
	d := x.Dir(t)
	if d == nil {
		return nil
	}
	if e := d.Tag(exiftag.Code(t)); e != nil {
		return e.Value
	}
	return nil
}

// Set sets tag t to v. The tag is removed if v is nil.
func (x *Exif) Set(t uint32, v Value) {
	d := x.Dir(t)
	if d == nil {
		return
	}
	if v == nil {
		d.Remove(exiftag.Code(t))
		return
	}
	d.EnsureTag(exiftag.Code(t)).Value = v
}

// String returns the text of the Ascii tag t.
// It reports false if the tag is missing, empty or not Ascii.
func (x *Exif) String(t uint32) (string, bool) {
	a, ok := x.Tag(t).(Ascii)
	return string(a), ok && a != ""
}

// Entry is a tagged field within a Dir.
type Entry struct {
	Tag   uint16
	Value Value
}

// Dir represents an Image File Directory (IFD) within Exif.
//
// Entries are kept sorted by tag, as the TIFF format requires,
// and each tag appears at most once.
type Dir []Entry

// Sort sorts entries according to tag values, as needed by Tag() and Index().
func (d Dir) Sort() {
	sort.Stable(dirSort(d))
}

// Tag returns a pointer to the Entry with tag t, or nil if t does not exist.
func (d Dir) Tag(t uint16) *Entry {
	i := d.Index(t)
	if i != -1 {
		return &d[i]
	}
	return nil
}

// Index returns the index of tag t, or -1 if t does not exist in d.
func (d Dir) Index(t uint16) int {
	i := sort.Search(len(d), func(i int) bool {
		return t <= d[i].Tag
	})
	if i == len(d) || d[i].Tag != t {
		return -1
	}
	return i
}

// EnsureTag returns a pointer to the Entry with tag t.
//
// An Entry with a nil Value is inserted if t does not exist in d.
func (d *Dir) EnsureTag(t uint16) *Entry {
	i := sort.Search(len(*d), func(i int) bool {
		return t <= (*d)[i].Tag
	})
	switch {
	case i == len(*d):
		*d = append(*d, Entry{Tag: t})
	case (*d)[i].Tag != t:
		*d = append(*d, Entry{})
		copy((*d)[i+1:], (*d)[i:])
		(*d)[i] = Entry{Tag: t}
	}
	return &(*d)[i]
}

// Remove removes t from d.
func (d *Dir) Remove(t uint16) {
	i := d.Index(t)
	if i == -1 {
		return
	}

	copy((*d)[i:], (*d)[i+1:])
	*d = (*d)[:len(*d)-1]
}

type dirSort []Entry

func (s dirSort) Len() int           { return len(s) }
func (s dirSort) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s dirSort) Less(i, j int) bool { return s[i].Tag < s[j].Tag }
