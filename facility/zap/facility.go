package zap

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/unilog/adapter/unified"
)

// Facility routes unified adapters into an existing zap.Logger.
//
// Each Open returns a child logger named after the category with the
// subsystem attached as a field, so the cost is paid once per adapter and
// not per line. zap has no fault level; faults are written at error level
// with severity=fault to avoid DPanic/Fatal side effects.
type Facility struct {
	l *zap.Logger
}

// New creates a facility for the provided zap logger.
func New(l *zap.Logger) *Facility {
	if l == nil {
		l = zap.NewNop()
	}
	return &Facility{l: l}
}

// Open always succeeds: a zap logger is available wherever the process is.
func (f *Facility) Open(subsystem, category string) (unified.Sink, bool) {
	return &Sink{l: f.l.Named(category).With(zap.String("subsystem", subsystem))}, true
}

// Sink writes composed lines as zap messages.
type Sink struct {
	l *zap.Logger
}

// Emit writes line at the zap level for sev.
func (s *Sink) Emit(sev unified.Severity, line string) {
	// Fast path: skip if disabled.
	ce := s.l.Check(toZapLevel(sev), line)
	if ce == nil {
		return
	}
	ce.Write(zap.Stringer("severity", sev))
}

func toZapLevel(sev unified.Severity) zapcore.Level {
	switch sev {
	case unified.SeverityDebug:
		return zapcore.DebugLevel
	case unified.SeverityInfo:
		return zapcore.InfoLevel
	default:
		// error and fault; avoid DPanic/Fatal in library code.
		return zapcore.ErrorLevel
	}
}
