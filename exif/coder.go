package exif

import (
	"encoding/binary"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

const (
	// sub-IFD pointers
	ifd0exifSub    = 0x8769
	ifd0gpsSub     = 0x8825
	exifInteropSub = 0xA005

	// thumbnail data in IFD1
	ifd1thumbOffset = 0x201
	ifd1thumbLength = 0x202

	// TIFF type of sub-IFD pointers in TIFF Supplement 1
	typeIFD = 13

	tiffMagic = 42
	headerLen = 8  // endianness, magic, 1st IFD pointer
	entryLen  = 12 // tag, type, count, value or offset
)

// MaxLen is the longest encoded Exif that fits in a JPEG APP1 segment.
const MaxLen = 65535 - 2 - 6

var (
	// ErrCorruptHeader is returned if the TIFF header magic is invalid.
	ErrCorruptHeader = errors.New("exif: corrupt header")

	// ErrUnsupportedByteOrder is returned if the TIFF header
	// byte order marker is neither "II" nor "MM".
	ErrUnsupportedByteOrder = errors.New("exif: unsupported byte order")

	// ErrTruncatedDirectory is returned if an IFD or a value
	// extends past the end of the data.
	ErrTruncatedDirectory = errors.New("exif: truncated directory")

	// ErrMalformedDirectoryChain is returned for IFD offsets
	// that are out of bounds or would revisit an IFD.
	ErrMalformedDirectoryChain = errors.New("exif: malformed directory chain")

	// ErrUnsupportedTagType is recorded in Exif.Skipped for entries
	// having an unknown type.
	ErrUnsupportedTagType = errors.New("exif: unsupported tag type")

	// ErrZeroDenominator is recorded in Exif.Skipped for rational
	// entries having a zero denominator. Such entries are kept.
	ErrZeroDenominator = errors.New("exif: zero denominator")

	// ErrTooLong is returned if the serialized exif is too long to be written in a JPEG file.
	ErrTooLong = errors.New("exif: encoded length too long")
)

// DecodeBytes decodes the raw Exif data from p.
// The data must start with the TIFF header.
//
// Structural problems abort decoding and no Exif is returned.
// Entries that can't be decoded individually are left out
// and recorded in the Skipped field of the result.
// Rationals with a zero denominator are recorded as well,
// but stay in their directory.
func DecodeBytes(p []byte) (*Exif, error) {
	if len(p) < headerLen {
		return nil, errors.Wrapf(ErrTruncatedDirectory, "header needs %d bytes, have %d", headerLen, len(p))
	}

	var bo binary.ByteOrder
	switch {
	case p[0] == 'M' && p[1] == 'M':
		bo = binary.BigEndian
	case p[0] == 'I' && p[1] == 'I':
		bo = binary.LittleEndian
	default:
		return nil, errors.Wrapf(ErrUnsupportedByteOrder, "marker %q", p[:2])
	}

	if bo.Uint16(p[2:]) != tiffMagic {
		return nil, ErrCorruptHeader
	}

	d := &decoder{
		bo:      bo,
		p:       p,
		visited: make(map[int]bool),
	}
	x := &Exif{ByteOrder: bo}

	ptr := int(bo.Uint32(p[4:]))
	if ptr == 0 {
		// no IFD0
		return x, nil
	}

	ifd0, err := d.dir("IFD0", ptr)
	if err != nil {
		return nil, err
	}
	x.IFD0 = ifd0.entries

	subs := []struct {
		name string
		ptr  int
		dst  *Dir
	}{
		{"Exif", ifd0.sub[ifd0exifSub], &x.Exif},
		{"GPS", ifd0.sub[ifd0gpsSub], &x.GPS},
	}
	for _, s := range subs {
		if s.ptr == 0 {
			continue
		}
		sub, err := d.dir(s.name, s.ptr)
		if err != nil {
			return nil, err
		}
		*s.dst = sub.entries

		// Interop pointer belongs to the Exif IFD
		if ptr := sub.sub[exifInteropSub]; ptr != 0 && ifd0.sub[exifInteropSub] == 0 {
			ifd0.sub[exifInteropSub] = ptr
		}
	}

	if ptr := ifd0.sub[exifInteropSub]; ptr != 0 {
		sub, err := d.dir("Interop", ptr)
		if err != nil {
			return nil, err
		}
		x.Interop = sub.entries
	}

	if ifd0.next != 0 {
		// IFD1 must follow IFD0
		if ifd0.next <= ifd0.offset {
			return nil, errors.Wrapf(ErrMalformedDirectoryChain,
				"IFD1 offset %d precedes IFD0 at %d", ifd0.next, ifd0.offset)
		}
		ifd1, err := d.dir("IFD1", ifd0.next)
		if err != nil {
			return nil, err
		}
		x.IFD1 = ifd1.entries

		tofs, okofs := ifd1.sub[ifd1thumbOffset]
		tlen, oklen := ifd1.sub[ifd1thumbLength]
		if okofs && oklen && tlen != 0 {
			if 0 < tofs && tofs+tlen <= len(p) {
				x.Thumb = clone(p[tofs : tofs+tlen])
			} else {
				d.skip(errors.Errorf("exif: IFD1 thumbnail at %d+%d out of bounds", tofs, tlen))
			}
		}
	}

	if d.skipped != nil {
		x.Skipped = d.skipped
	}
	return x, nil
}

type decoder struct {
	bo binary.ByteOrder
	p  []byte

	// IFD offsets seen so far
	visited map[int]bool

	skipped *multierror.Error
}

type rawDir struct {
	offset  int
	entries Dir

	// pointer values found in the IFD
	sub map[uint16]int

	// next IFD offset
	next int
}

// pointerTags lists the entries handled by the decoder rather than stored in Dirs.
var pointerTags = map[string][]uint16{
	"IFD0": {ifd0exifSub, ifd0gpsSub, exifInteropSub},
	"Exif": {exifInteropSub},
	"IFD1": {ifd1thumbOffset, ifd1thumbLength},
}

func isPointerTag(name string, tag uint16) bool {
	for _, t := range pointerTags[name] {
		if t == tag {
			return true
		}
	}
	return false
}

func (d *decoder) skip(err error) {
	d.skipped = multierror.Append(d.skipped, err)
}

func (d *decoder) dir(name string, offset int) (*rawDir, error) {
	p, bo := d.p, d.bo

	if offset < headerLen || len(p) <= offset {
		return nil, errors.Wrapf(ErrMalformedDirectoryChain, "%s offset %d out of bounds", name, offset)
	}
	if d.visited[offset] {
		return nil, errors.Wrapf(ErrMalformedDirectoryChain, "%s offset %d already visited", name, offset)
	}
	d.visited[offset] = true

	if len(p) < offset+2 {
		return nil, errors.Wrapf(ErrTruncatedDirectory, "%s entry count at %d", name, offset)
	}
	ntags := int(bo.Uint16(p[offset:]))
	end := offset + 2 + ntags*entryLen
	if len(p) < end {
		return nil, errors.Wrapf(ErrTruncatedDirectory, "%s with %d entries at %d", name, ntags, offset)
	}

	r := &rawDir{
		offset: offset,
		sub:    make(map[uint16]int),
	}

	// next IFD pointer, tolerate its absence at the very end
	if end+4 <= len(p) {
		r.next = int(bo.Uint32(p[end:]))
	}

	pos := offset + 2
	for i := 0; i < ntags; i, pos = i+1, pos+entryLen {
		tag := bo.Uint16(p[pos:])
		typ := Type(bo.Uint16(p[pos+2:]))
		count := bo.Uint32(p[pos+4:])
		valuebits := p[pos+8 : pos+12]

		if isPointerTag(name, tag) {
			if count != 1 || (typ != TypeLong && typ != TypeShort && typ != typeIFD) {
				d.skip(errors.Errorf("exif: %s pointer tag %#04x has type %d count %d", name, tag, typ, count))
				continue
			}
			if typ == TypeShort {
				r.sub[tag] = int(bo.Uint16(valuebits))
			} else {
				r.sub[tag] = int(bo.Uint32(valuebits))
			}
			continue
		}

		if typ.Size() == 0 {
			d.skip(errors.Wrapf(ErrUnsupportedTagType, "%s tag %#04x type %d", name, tag, typ))
			continue
		}
		nbytes := typeSize(typ, count)
		if nbytes < 0 {
			return nil, errors.Wrapf(ErrTruncatedDirectory,
				"%s tag %#04x with %d values", name, tag, count)
		}

		// If value doesn't fit in tag header,
		// then it is an offset from the start
		// of the tiff header (EXIF 2.2 §4.6.2).
		if nbytes > 4 {
			valueoffset := uint64(bo.Uint32(valuebits))
			if uint64(len(p)) < valueoffset+uint64(nbytes) {
				return nil, errors.Wrapf(ErrTruncatedDirectory,
					"%s tag %#04x value at %d+%d", name, tag, valueoffset, nbytes)
			}
			valuebits = p[valueoffset : valueoffset+uint64(nbytes)]
		}

		v, err := DecodeValue(typ, count, valuebits, bo)
		if err != nil {
			d.skip(errors.Wrapf(err, "%s tag %#04x", name, tag))
			continue
		}

		if zeroDenominator(v) {
			d.skip(errors.Wrapf(ErrZeroDenominator, "%s tag %#04x", name, tag))
		}

		r.entries = append(r.entries, Entry{Tag: tag, Value: v})
	}

	// Tags should appear sorted according to TIFF spec,
	// and it will help in searching as well.
	r.entries.Sort()
	r.entries = d.dedup(name, r.entries)

	return r, nil
}

func zeroDenominator(v Value) bool {
	switch v := v.(type) {
	case Rational:
		for i := 1; i < len(v); i += 2 {
			if v[i] == 0 {
				return true
			}
		}
	case SRational:
		for i := 1; i < len(v); i += 2 {
			if v[i] == 0 {
				return true
			}
		}
	}
	return false
}

// dedup keeps the first of entries having the same tag in sorted d.
func (d *decoder) dedup(name string, dir Dir) Dir {
	if len(dir) < 2 {
		return dir
	}
	out := dir[:1]
	for _, e := range dir[1:] {
		if e.Tag == out[len(out)-1].Tag {
			d.skip(errors.Errorf("exif: %s duplicate tag %#04x", name, e.Tag))
			continue
		}
		out = append(out, e)
	}
	return out
}

// EncodeBytes encodes Exif data as a byte slice starting with the TIFF header.
//
// Empty Exif data encodes to a header and an IFD0 with no entries.
// It returns an error if the byte order is not set or
// the encoded length is longer than MaxLen.
func (x *Exif) EncodeBytes() ([]byte, error) {
	bo := x.ByteOrder
	if bo != binary.BigEndian && bo != binary.LittleEndian {
		return nil, errors.Wrap(ErrUnsupportedByteOrder, "exif: encode")
	}

	// prepare dirs without pointer tags, which are added below when needed
	ifd0 := &block{dir: prepDir("IFD0", x.IFD0)}
	exif := &block{dir: prepDir("Exif", x.Exif)}
	gps := &block{dir: prepDir("GPS", x.GPS)}
	interop := &block{dir: prepDir("Interop", x.Interop)}
	ifd1 := &block{dir: prepDir("IFD1", x.IFD1)}
	thumb := x.Thumb

	if len(interop.dir) != 0 {
		exif.dir.EnsureTag(exifInteropSub).Value = Long{0}
	}
	if len(exif.dir) != 0 {
		ifd0.dir.EnsureTag(ifd0exifSub).Value = Long{0}
	}
	if len(gps.dir) != 0 {
		ifd0.dir.EnsureTag(ifd0gpsSub).Value = Long{0}
	}
	if len(thumb) != 0 {
		ifd1.dir.EnsureTag(ifd1thumbOffset).Value = Long{0}
		ifd1.dir.EnsureTag(ifd1thumbLength).Value = Long{uint32(len(thumb))}
	}

	// layout pass: assign offsets in Exif 2.2 order
	blocks := []*block{ifd0}
	for _, b := range []*block{exif, interop, gps, ifd1} {
		if len(b.dir) != 0 {
			blocks = append(blocks, b)
		}
	}

	offset := headerLen
	for _, b := range blocks {
		offset = b.layout(offset)
	}
	thumbOffset := offset
	offset += len(thumb)

	if offset > MaxLen {
		return nil, errors.Wrapf(ErrTooLong, "exif: %d bytes", offset)
	}

	// resolve pass: fill in pointers now that offsets are known
	if len(exif.dir) != 0 {
		ifd0.dir.Tag(ifd0exifSub).Value = Long{uint32(exif.offset)}
	}
	if len(interop.dir) != 0 {
		exif.dir.Tag(exifInteropSub).Value = Long{uint32(interop.offset)}
	}
	if len(gps.dir) != 0 {
		ifd0.dir.Tag(ifd0gpsSub).Value = Long{uint32(gps.offset)}
	}
	if len(ifd1.dir) != 0 {
		ifd0.next = ifd1.offset
	}
	if len(thumb) != 0 {
		ifd1.dir.Tag(ifd1thumbOffset).Value = Long{uint32(thumbOffset)}
	}

	p := make([]byte, offset)

	// write header
	if bo == binary.BigEndian {
		p[0], p[1] = 'M', 'M'
	} else {
		p[0], p[1] = 'I', 'I'
	}
	bo.PutUint16(p[2:], tiffMagic)
	bo.PutUint32(p[4:], uint32(ifd0.offset))

	for _, b := range blocks {
		b.write(bo, p)
	}
	copy(p[thumbOffset:], thumb)

	return p, nil
}

// prepDir returns a sorted copy of d without nil values
// and pointer tags owned by the encoder.
func prepDir(name string, d Dir) Dir {
	var r Dir
	for _, e := range d {
		if e.Value == nil || isPointerTag(name, e.Tag) {
			continue
		}
		r = append(r, e)
	}
	r.Sort()
	return r
}

// block is an IFD being encoded.
type block struct {
	dir Dir

	offset int // IFD offset, set by layout
	next   int // next IFD offset or zero
}

// layout places b at offset, and returns the offset after
// the IFD and its out-of-line values.
func (b *block) layout(offset int) int {
	b.offset = offset
	offset += 2 + len(b.dir)*entryLen + 4
	for _, e := range b.dir {
		if n := encodedSize(e.Value); n > 4 {
			// values start on word boundary
			offset += n + n&1
		}
	}
	return offset
}

func (b *block) write(bo binary.ByteOrder, p []byte) {
	offset := b.offset

	// offset for data outside tag header
	dataoffset := offset + 2 + len(b.dir)*entryLen + 4

	bo.PutUint16(p[offset:], uint16(len(b.dir)))
	offset += 2

	for _, e := range b.dir {
		v := e.Value
		bo.PutUint16(p[offset:], e.Tag)
		bo.PutUint16(p[offset+2:], uint16(v.Type()))
		bo.PutUint32(p[offset+4:], uint32(v.Count()))
		if n := encodedSize(v); n <= 4 {
			v.put(bo, p[offset+8:offset+12])
		} else {
			bo.PutUint32(p[offset+8:], uint32(dataoffset))
			v.put(bo, p[dataoffset:dataoffset+n])
			dataoffset += n + n&1
		}
		offset += entryLen
	}

	bo.PutUint32(p[offset:], uint32(b.next))
}
