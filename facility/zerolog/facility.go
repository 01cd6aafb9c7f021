package zerolog

import (
	"github.com/rs/zerolog"

	"github.com/trickstertwo/unilog/adapter/unified"
)

// Facility routes unified adapters into an rs/zerolog logger.
//
// Open pre-binds subsystem and category onto a child logger, so Emit is a
// single level check plus Msg. Faults are written with WithLevel(FatalLevel),
// which records "fatal" without exiting the process.
type Facility struct {
	l zerolog.Logger
}

func New(l zerolog.Logger) *Facility {
	return &Facility{l: l}
}

// Open always succeeds.
func (f *Facility) Open(subsystem, category string) (unified.Sink, bool) {
	child := f.l.With().
		Str("subsystem", subsystem).
		Str("category", category).
		Logger()
	return &Sink{l: child}, true
}

// Sink writes composed lines as zerolog messages.
type Sink struct {
	l zerolog.Logger
}

func (s *Sink) Emit(sev unified.Severity, line string) {
	zlvl := mapSeverity(sev)

	// Fast path: drop early if below logger's min level (no Event allocation).
	if zlvl < s.l.GetLevel() {
		return
	}
	s.l.WithLevel(zlvl).Msg(line)
}

func mapSeverity(sev unified.Severity) zerolog.Level {
	switch sev {
	case unified.SeverityDebug:
		return zerolog.DebugLevel
	case unified.SeverityInfo:
		return zerolog.InfoLevel
	case unified.SeverityError:
		return zerolog.ErrorLevel
	default:
		return zerolog.FatalLevel
	}
}
