package treestore

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logout = zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}

// Logger is the package-level logger. Subscriber callback faults and other
// side-channel diagnostics go through it; data-path operations never log on
// their success paths. The level defaults to warn and can be overridden with
// the TREESTORE_LOG environment variable (trace, debug, info, ...).
var Logger = zerolog.New(logout).
	With().Timestamp().Logger().
	Level(defaultLevel())

func defaultLevel() zerolog.Level {
	env := os.Getenv("TREESTORE_LOG")
	if env == "" {
		return zerolog.WarnLevel
	}
	lvl, err := zerolog.ParseLevel(env)
	if err != nil {
		return zerolog.WarnLevel
	}
	return lvl
}
