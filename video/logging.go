package video

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level logger for the video worker, overridable by
// embedding applications the same way the root package's Log is.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)
