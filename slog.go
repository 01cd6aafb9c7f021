package unilog

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogHandler adapts a Handler to slog.Handler so code written against
// log/slog reaches the same backend as the unilog front-end.
type SlogHandler struct {
	handler Handler
	group   string
}

// NewSlogHandler creates a slog.Handler wrapping h.
func NewSlogHandler(h Handler) *SlogHandler {
	return &SlogHandler{handler: h}
}

// Enabled reports whether the handler's minimum level admits level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return LevelFromSlog(level) >= s.handler.MinLevel()
}

// Handle converts the record's attrs into per-call metadata and forwards it.
func (s *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	var md Metadata
	if r.NumAttrs() > 0 {
		md = make(Metadata, r.NumAttrs())
		r.Attrs(func(a slog.Attr) bool {
			addAttr(md, s.group, a)
			return true
		})
	}
	s.handler.Log(LevelFromSlog(r.Level), r.Message, md, sourceFromPC(r.PC))
	return nil
}

// WithAttrs binds attrs onto a child Handler.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	md := make(Metadata, len(attrs))
	for _, a := range attrs {
		addAttr(md, s.group, a)
	}
	return &SlogHandler{handler: s.handler.With(md), group: s.group}
}

// WithGroup returns a SlogHandler that prefixes subsequent keys with name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	group := name
	if s.group != "" {
		group = s.group + "." + name
	}
	return &SlogHandler{handler: s.handler, group: group}
}

// LevelFromSlog floors a slog.Level to the nearest named Level at or below it.
func LevelFromSlog(l slog.Level) Level {
	switch {
	case l >= slog.Level(LevelCritical):
		return LevelCritical
	case l >= slog.LevelError:
		return LevelError
	case l >= slog.LevelWarn:
		return LevelWarning
	case l >= slog.Level(LevelNotice):
		return LevelNotice
	case l >= slog.LevelInfo:
		return LevelInfo
	case l >= slog.LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// addAttr flattens a into md, joining group names with dots.
func addAttr(md Metadata, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			addAttr(md, key, ga)
		}
		return
	}
	if key == "" {
		return
	}
	md[key] = valueFromSlog(a.Value)
}

func valueFromSlog(v slog.Value) Value {
	switch v.Kind() {
	case slog.KindString:
		return StringValue(v.String())
	case slog.KindInt64:
		return Int64Value(v.Int64())
	case slog.KindUint64:
		return Uint64Value(v.Uint64())
	case slog.KindFloat64:
		return Float64Value(v.Float64())
	case slog.KindBool:
		return BoolValue(v.Bool())
	case slog.KindDuration:
		return DurationValue(v.Duration())
	case slog.KindTime:
		return TimeValue(v.Time())
	}
	switch x := v.Any().(type) {
	case error:
		return ErrorValue(x)
	case fmt.Stringer:
		return StringerValue(x)
	default:
		return AnyValue(x)
	}
}
