package metashield

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ebenezerdon/metashield-photo-privacy/exif"
	"github.com/ebenezerdon/metashield-photo-privacy/exif/exiftag"
	"github.com/ebenezerdon/metashield-photo-privacy/orient"
)

// Summary records the privacy relevant metadata of a photo.
type Summary struct {
	// Recording equipment manufacturer and model name.
	Make, Model string

	// Software used to create or edit the image.
	Software string

	// DateTimeOriginal is the capture date as stored in Exif,
	// and TakenAt is its parsed value. TakenAt is zero if
	// the date is missing or invalid.
	DateTimeOriginal string
	TakenAt          time.Time

	// HasGPS reports if the file has any GPS tags,
	// even if they don't form a valid location.
	HasGPS bool

	// GPS records the location of the photo.
	GPS struct {
		// Latitude and Longitude are valid if Valid is set.
		// Positive latitude means north, positive longitude means east.
		Latitude  float64
		Longitude float64
		Valid     bool

		// Altitude in meters above sea level, valid if HasAltitude is set.
		Altitude    float64
		HasAltitude bool
	}

	// Orientation is the Exif orientation, or orient.Undefined.
	Orientation orient.Orientation
}

// PrivacySummary returns the summary of the metadata of d,
// or nil if d has no Exif.
func (d *Document) PrivacySummary() *Summary {
	if d.exif == nil {
		return nil
	}
	return NewSummary(d.exif)
}

// NewSummary returns the summary of x.
func NewSummary(x *exif.Exif) *Summary {
	s := &Summary{HasGPS: len(x.GPS) != 0}
	s.Make, _ = x.String(exiftag.Make)
	s.Model, _ = x.String(exiftag.Model)
	s.Software, _ = x.String(exiftag.Software)
	s.DateTimeOriginal, _ = x.String(exiftag.DateTimeOriginal)
	if t, ok := x.Time(exiftag.DateTimeOriginal, exiftag.SubSecTimeOriginal); ok {
		s.TakenAt = t
	}

	s.GPS.Latitude, s.GPS.Longitude, s.GPS.Valid = x.LatLong()
	s.GPS.Altitude, s.GPS.HasAltitude = x.Altitude()

	if v, ok := x.Tag(exiftag.Orientation).(exif.Short); ok && len(v) == 1 {
		s.Orientation = orient.Orientation(v[0])
	}
	return s
}

const promptIntro = "Analyze this metadata for privacy risks: "

// Prompt returns a plain text description of s for
// an assistant that assesses privacy risks.
// It contains no raw metadata values other than text.
func (s *Summary) Prompt() string {
	if s == nil {
		return "No metadata found."
	}

	var parts []string
	if s.HasGPS {
		parts = append(parts, "Contains GPS Coordinates.")
	} else {
		parts = append(parts, "No GPS data.")
	}
	if s.Make != "" || s.Model != "" {
		dev := strings.TrimSpace(s.Make + " " + s.Model)
		parts = append(parts, "Device: "+dev+".")
	}
	if s.DateTimeOriginal != "" {
		parts = append(parts, "Date Taken: "+s.DateTimeOriginal+".")
	}
	return promptIntro + strings.Join(parts, " ")
}

// PrivacyPrompt returns the prompt of the privacy summary of d.
func (d *Document) PrivacyPrompt() string {
	return d.PrivacySummary().Prompt()
}

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatBytes formats a file size for display using
// binary multiples and at most two decimals, such as "1.5 KB".
func FormatBytes(n int64) string {
	if n <= 0 {
		return "0 Bytes"
	}
	i, div := 0, int64(1)
	for i < len(byteUnits)-1 && n/div >= 1024 {
		div *= 1024
		i++
	}
	v := math.Round(float64(n)/float64(div)*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + byteUnits[i]
}
