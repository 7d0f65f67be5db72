package util

import (
	"os"

	"github.com/rs/zerolog"
)

var debugLog = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.Disabled).
	With().Timestamp().Logger()

// EnableDebug raises the diagnostic log level. It is wired to the
// top-level --verbose switch and stays disabled otherwise.
func EnableDebug() {
	debugLog = debugLog.Level(zerolog.DebugLevel)
}

func Debug(format string, v ...interface{}) {
	debugLog.Debug().Msgf(format, v...)
}
