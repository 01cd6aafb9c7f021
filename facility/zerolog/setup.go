package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config builds the zerolog logger behind a Facility.
type Config struct {
	Writer     io.Writer // default: os.Stderr
	Console    bool      // pretty output via zerolog.ConsoleWriter
	NoColor    bool      // disable ANSI colors in console output
	TimeFormat string    // console time layout; default RFC3339Nano
	Timestamp  bool      // add zerolog's own "time" field
}

// NewFromConfig builds a zerolog logger from cfg and wraps it in a Facility.
func NewFromConfig(cfg Config) *Facility {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor, TimeFormat: time.RFC3339Nano}
		if cfg.TimeFormat != "" {
			cw.TimeFormat = cfg.TimeFormat
		}
		if !cfg.Timestamp {
			cw.PartsExclude = append(cw.PartsExclude, zerolog.TimestampFieldName)
		}
		w = cw
	}

	zl := zerolog.New(w).Level(zerolog.TraceLevel)
	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	return New(zl)
}
