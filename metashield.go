// Package metashield inspects and removes the Exif metadata of JPEG photos.
//
// A Session holds the single photo being worked on. Loading a photo
// decodes its Exif so that device, capture and location details can be
// shown, and the photo can be written back with the Exif emptied while
// its image data stays untouched.
package metashield

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ebenezerdon/metashield-photo-privacy/exif"
	"github.com/ebenezerdon/metashield-photo-privacy/jpeg"
)

// ErrUnsupportedMediaType is returned by Load for files that are not JPEG.
var ErrUnsupportedMediaType = errors.New("metashield: unsupported media type")

// ErrCouldNotParse is matched by errors from Load and Parse
// when the file or its metadata is malformed.
var ErrCouldNotParse = errors.New("metashield: could not parse metadata")

// ParseError records a failure to parse a file.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("metashield: could not parse %s: %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is reports true for ErrCouldNotParse.
func (e *ParseError) Is(target error) bool { return target == ErrCouldNotParse }

// AcceptsMediaType reports if files of media type mt can be loaded.
func AcceptsMediaType(mt string) bool {
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = mt[:i]
	}
	switch strings.ToLower(strings.TrimSpace(mt)) {
	case "image/jpeg", "image/jpg":
		return true
	}
	return false
}

// Session holds the current document.
// It is safe for concurrent use.
type Session struct {
	log    zerolog.Logger
	prefix string

	mu  sync.Mutex
	doc *Document
}

// NewSession returns a Session with no document.
func NewSession(opts ...Option) *Session {
	s := &Session{
		log:    zerolog.Nop(),
		prefix: DefaultCleanPrefix,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Load reads a file from r and makes it the current document.
//
// Files with a media type other than JPEG are rejected with
// ErrUnsupportedMediaType, and the current document is kept.
//
// If the file is malformed, the document is still made current
// with its bytes available but without Exif, and an error matching
// ErrCouldNotParse is returned along with the document.
func (s *Session) Load(name, mediaType string, r io.Reader) (*Document, error) {
	log := s.log.With().Str("file", name).Logger()

	if !AcceptsMediaType(mediaType) {
		log.Warn().Str("type", mediaType).Msg("rejected")
		return nil, errors.Wrapf(ErrUnsupportedMediaType, "%s: %q", name, mediaType)
	}

	p, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "metashield: read %s", name)
	}

	d, err := Parse(name, p)
	d.prefix = s.prefix
	d.log = log

	s.mu.Lock()
	s.doc = d
	s.mu.Unlock()

	ev := log.Info().Int("bytes", len(p)).Bool("exif", d.exif != nil)
	if d.exif != nil && d.exif.Skipped != nil {
		ev = ev.Int("skipped", countErrors(d.exif.Skipped))
		log.Debug().Err(d.exif.Skipped).Msg("skipped tags")
	}
	ev.Msg("loaded")
	if err != nil {
		log.Warn().Err(err).Msg("parse failed")
	}

	return d, err
}

// Current returns the current document, or nil if there is none.
func (s *Session) Current() *Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Reset drops the current document.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc != nil {
		s.log.Debug().Str("file", s.doc.name).Msg("reset")
	}
	s.doc = nil
}

// Parse parses the JPEG file p named name.
//
// It always returns a Document. On error the Document
// has no Exif, and the error matches ErrCouldNotParse.
// A file without Exif is not an error.
func Parse(name string, p []byte) (*Document, error) {
	d := &Document{
		name:   name,
		raw:    p,
		prefix: DefaultCleanPrefix,
		log:    zerolog.Nop(),
	}

	l, err := jpeg.Scan(p)
	if err != nil {
		d.err = &ParseError{Name: name, Err: err}
		return d, d.err
	}
	d.layout = l

	raw := l.ExifData(p)
	if raw == nil {
		return d, nil
	}

	x, err := exif.DecodeBytes(raw)
	if err != nil {
		d.err = &ParseError{Name: name, Err: err}
		return d, d.err
	}
	d.exif = x
	return d, nil
}

func countErrors(err error) int {
	if e, ok := err.(interface{ WrappedErrors() []error }); ok {
		return len(e.WrappedErrors())
	}
	return 1
}
