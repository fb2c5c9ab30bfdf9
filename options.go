package metashield

import "github.com/rs/zerolog"

// DefaultCleanPrefix is prepended to file names by Document.CleanName.
const DefaultCleanPrefix = "CLEAN_"

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger of the Session.
// Sessions don't log by default.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithCleanPrefix sets the prefix of the names of stripped files.
func WithCleanPrefix(pfx string) Option {
	return func(s *Session) {
		s.prefix = pfx
	}
}
