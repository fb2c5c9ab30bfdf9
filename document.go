package metashield

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ebenezerdon/metashield-photo-privacy/exif"
	"github.com/ebenezerdon/metashield-photo-privacy/exif/exiftag"
	"github.com/ebenezerdon/metashield-photo-privacy/jpeg"
)

// Document is a loaded JPEG file. It is not modified after creation.
type Document struct {
	name   string
	raw    []byte
	layout *jpeg.Layout
	exif   *exif.Exif
	err    error

	prefix string
	log    zerolog.Logger
}

// Name returns the file name of d.
func (d *Document) Name() string { return d.name }

// Size returns the length of the file in bytes.
func (d *Document) Size() int { return len(d.raw) }

// Bytes returns a copy of the original file.
func (d *Document) Bytes() []byte {
	return append([]byte(nil), d.raw...)
}

// Layout returns the segment layout of the file,
// or nil if the file could not be scanned.
func (d *Document) Layout() *jpeg.Layout { return d.layout }

// Exif returns the decoded Exif data, or nil if
// the file has no Exif or it could not be decoded.
func (d *Document) Exif() *exif.Exif { return d.exif }

// Err returns the error encountered while parsing the file, if any.
func (d *Document) Err() error { return d.err }

// LatLong returns the GPS coordinates of the photo.
func (d *Document) LatLong() (lat, long float64, ok bool) {
	if d.exif == nil {
		return 0, 0, false
	}
	return d.exif.LatLong()
}

// HasCleanableMetadata reports if the primary, Exif
// or GPS directories of the file hold any tags.
func (d *Document) HasCleanableMetadata() bool {
	x := d.exif
	return x != nil && (len(x.IFD0) != 0 || len(x.Exif) != 0 || len(x.GPS) != 0)
}

// CleanName returns the file name for the stripped file.
func (d *Document) CleanName() string {
	return d.prefix + d.name
}

// Strip returns the file with its Exif replaced by
// an empty Exif block in the original byte order.
// Image data and all other segments are kept unchanged.
//
// A file without Exif is returned as is.
func (d *Document) Strip() ([]byte, error) {
	block, err := d.emptyBlock()
	if err != nil {
		return nil, err
	}
	if block == nil {
		return d.Bytes(), nil
	}

	p, err := d.layout.Splice(d.raw, block)
	if err != nil {
		return nil, errors.Wrapf(err, "metashield: strip %s", d.name)
	}
	d.log.Info().Int("bytes", len(p)).Int("removed", len(d.raw)-len(p)).Msg("stripped")
	return p, nil
}

// WriteStripped writes the stripped file to w.
func (d *Document) WriteStripped(w io.Writer) (int64, error) {
	block, err := d.emptyBlock()
	if err != nil {
		return 0, err
	}
	if block == nil {
		n, err := io.Copy(w, bytes.NewReader(d.raw))
		return n, errors.Wrapf(err, "metashield: write %s", d.name)
	}

	n, err := d.layout.WriteSplice(w, d.raw, block)
	if err != nil {
		return n, errors.Wrapf(err, "metashield: strip %s", d.name)
	}
	d.log.Info().Int64("bytes", n).Msg("stripped")
	return n, nil
}

// emptyBlock returns the encoded empty Exif that replaces the Exif of d,
// or nil if d has no Exif segment.
func (d *Document) emptyBlock() ([]byte, error) {
	if d.layout == nil {
		return nil, errors.Wrapf(ErrCouldNotParse, "metashield: strip %s", d.name)
	}
	if d.layout.Exif < 0 {
		return nil, nil
	}
	return exif.Empty(d.byteOrder()).EncodeBytes()
}

// byteOrder returns the byte order of the Exif of d.
// It is read from the raw header so that files with
// undecodable Exif keep their byte order too.
func (d *Document) byteOrder() binary.ByteOrder {
	if d.exif != nil && d.exif.ByteOrder != nil {
		return d.exif.ByteOrder
	}
	if raw := d.layout.ExifData(d.raw); len(raw) >= 2 && raw[0] == 'I' && raw[1] == 'I' {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// String returns the Ascii value of tag t, or the empty string.
func (d *Document) String(t uint32) string {
	if d.exif == nil {
		return ""
	}
	s, _ := d.exif.String(t)
	return s
}

// Field is a labeled value for display.
type Field struct {
	Label string
	Tag   uint32
	Value string
}

// Section is a group of fields for display.
type Section struct {
	Title  string
	Fields []Field
}

var sectionTags = []struct {
	title  string
	fields []Field
}{
	{"Device Info", []Field{
		{Label: "Make", Tag: exiftag.Make},
		{Label: "Model", Tag: exiftag.Model},
		{Label: "Software", Tag: exiftag.Software},
	}},
	{"Photo Data", []Field{
		{Label: "Taken Date", Tag: exiftag.DateTimeOriginal},
		{Label: "Exposure", Tag: exiftag.ExposureTime},
		{Label: "F-Stop", Tag: exiftag.FNumber},
		{Label: "ISO", Tag: exiftag.ISOSpeedRatings},
	}},
	{"GPS Coordinates", []Field{
		{Label: "Latitude", Tag: exiftag.GPSLatitude},
		{Label: "Longitude", Tag: exiftag.GPSLongitude},
		{Label: "Altitude", Tag: exiftag.GPSAltitude},
	}},
}

// maxFieldLen is the length above which field values are shortened.
const maxFieldLen = 50

// Sections returns the privacy relevant tags of d grouped for display.
// Missing tags are left out, and so are sections with no tags.
// It returns nil if d has no cleanable metadata.
func (d *Document) Sections() []Section {
	if !d.HasCleanableMetadata() {
		return nil
	}

	var r []Section
	for _, st := range sectionTags {
		var fields []Field
		for _, f := range st.fields {
			v := d.exif.Tag(f.Tag)
			if v == nil {
				continue
			}
			s := displayValue(v)
			if s == "" {
				continue
			}
			f.Value = shorten(s)
			fields = append(fields, f)
		}
		if len(fields) != 0 {
			r = append(r, Section{Title: st.title, Fields: fields})
		}
	}
	return r
}

func displayValue(v exif.Value) string {
	if a, ok := v.(exif.Ascii); ok {
		return string(a)
	}
	if v.Count() == 0 {
		return ""
	}
	return exif.FormatValue(v)
}

func shorten(s string) string {
	r := []rune(s)
	if len(r) <= maxFieldLen {
		return s
	}
	return string(r[:maxFieldLen-3]) + "..."
}
