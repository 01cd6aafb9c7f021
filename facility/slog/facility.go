package slog

import (
	"context"
	"log/slog"

	"github.com/trickstertwo/unilog/adapter/unified"
)

// LevelFault is the slog level faults are written at.
const LevelFault = slog.LevelError + 4

// Facility routes unified adapters into a *slog.Logger.
type Facility struct {
	l *slog.Logger
}

func New(l *slog.Logger) *Facility {
	if l == nil {
		l = slog.Default()
	}
	return &Facility{l: l}
}

// Open always succeeds.
func (f *Facility) Open(subsystem, category string) (unified.Sink, bool) {
	return &Sink{l: f.l.With(
		slog.String("subsystem", subsystem),
		slog.String("category", category),
	)}, true
}

// Sink writes composed lines as slog messages.
type Sink struct {
	l *slog.Logger
}

func (s *Sink) Emit(sev unified.Severity, line string) {
	// Use LogAttrs for minimal allocations
	s.l.LogAttrs(context.Background(), toSlog(sev), line)
}

func toSlog(sev unified.Severity) slog.Level {
	switch sev {
	case unified.SeverityDebug:
		return slog.LevelDebug
	case unified.SeverityInfo:
		return slog.LevelInfo
	case unified.SeverityError:
		return slog.LevelError
	default:
		return LevelFault
	}
}

// ReplaceLevelNames is a slog.HandlerOptions.ReplaceAttr hook that prints
// LevelFault as "FAULT" instead of "ERROR+4".
func ReplaceLevelNames(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelFault {
		a.Value = slog.StringValue("FAULT")
	}
	return a
}
