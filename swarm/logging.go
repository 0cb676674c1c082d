package swarm

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level logger for swarm worker panics and timeouts.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)
