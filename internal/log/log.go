// Package log holds the package-level structured logger shared by the
// parameter-set initializer and the isogeny strategy walker. It never
// sits on a hot path: field and curve arithmetic do not log.
package log

import (
	"os"

	"github.com/rs/zerolog"
)

// L is the logger used throughout gosike. Callers may replace it (e.g.
// to silence output or redirect it into their own logging pipeline)
// before the first parameter set is resolved.
var L = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
	Level(zerolog.WarnLevel).
	With().Timestamp().Logger()
