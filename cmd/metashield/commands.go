package main

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/ebenezerdon/metashield-photo-privacy"
	"github.com/ebenezerdon/metashield-photo-privacy/exif"
)

var commands = []command{
	{"view", view},
	{"gps", gps},
	{"prompt", prompt},
	{"strip", strip},
	{"dump", dump},
	{"thumb", thumb},
}

func view(d *metashield.Document, src string) error {
	fmt.Printf("%s (%s):\n", src, metashield.FormatBytes(int64(d.Size())))
	secs := d.Sections()
	if secs == nil {
		fmt.Println("  No cleanable metadata found.")
		return nil
	}
	for _, s := range secs {
		fmt.Printf("  %s\n", s.Title)
		for _, f := range s.Fields {
			fmt.Printf("    %-12s %s\n", f.Label, f.Value)
		}
	}
	if s := d.PrivacySummary(); s != nil && s.Orientation.Valid() {
		fmt.Printf("  Orientation: %v\n", s.Orientation)
	}
	return nil
}

func gps(d *metashield.Document, src string) error {
	lat, long, ok := d.LatLong()
	if !ok {
		fmt.Printf("%s: No GPS Data\n", src)
		return nil
	}
	fmt.Printf("%s: %11.6f %11.6f  %s %s, %s %s",
		src, lat, long,
		exif.ToDMS(lat), hemisphere(lat, "N", "S"),
		exif.ToDMS(long), hemisphere(long, "E", "W"))
	if x := d.Exif(); x != nil {
		if alt, ok := x.Altitude(); ok {
			fmt.Printf("  %.1f m", alt)
		}
	}
	fmt.Println()
	return nil
}

func hemisphere(v float64, pos, neg string) string {
	if v < 0 {
		return neg
	}
	return pos
}

func prompt(d *metashield.Document, src string) error {
	fmt.Println(d.PrivacyPrompt())
	return nil
}

func strip(d *metashield.Document, src string) error {
	if !d.HasCleanableMetadata() {
		log.Info().Str("file", src).Msg("no cleanable metadata")
	}

	fn := outPath(src, d.CleanName())
	f, err := os.Create(fn)
	if err != nil {
		return err
	}

	n, err := d.WriteStripped(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(fn)
		return err
	}

	log.Info().Str("file", fn).
		Str("size", metashield.FormatBytes(n)).
		Int64("removed", int64(d.Size())-n).
		Msg("written")
	return nil
}

func dump(d *metashield.Document, src string) error {
	fmt.Printf("%s:\n", src)
	if err := d.Err(); err != nil {
		fmt.Printf("  error: %v\n", err)
	}
	if l := d.Layout(); l != nil {
		for i, s := range l.Segments {
			mark := "fill"
			if !s.IsFill() {
				mark = fmt.Sprintf("ff%02x", s.Marker)
			}
			note := ""
			if i == l.Exif {
				note = " exif"
			}
			fmt.Printf("  %8d %8d %s%s\n", s.Offset, s.Len, mark, note)
		}
	}
	if x := d.Exif(); x != nil {
		exif.Fdump(os.Stdout, x)
		if x.Skipped != nil {
			fmt.Printf("skipped: %v\n", x.Skipped)
		}
	}
	return nil
}

func thumb(d *metashield.Document, src string) error {
	x := d.Exif()
	if x == nil || len(x.Thumb) == 0 {
		return errors.Errorf("%s: no thumbnail", src)
	}

	im, err := jpeg.Decode(bytes.NewReader(x.Thumb))
	if err != nil {
		return errors.Wrap(err, "thumbnail")
	}
	if s := d.PrivacySummary(); s != nil {
		im = s.Orientation.Apply(im)
	}

	base := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
	fn := outPath(src, base+"_thumb.jpg")
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	err = jpeg.Encode(f, im, nil)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	b := im.Bounds()
	log.Info().Str("file", fn).Int("dx", b.Dx()).Int("dy", b.Dy()).Msg("thumbnail")
	return nil
}
