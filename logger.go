package unilog

import (
	"sync"
	"sync/atomic"

	"github.com/trickstertwo/xclock"
)

// Logger is the front-end for one label. It owns level filtering and
// dispatches everything else to its Handler.
type Logger struct {
	label   string
	handler Handler

	// Observers: lock-free reads via atomic.Value; synchronized updates via obsMu.
	// Stored value is []Observer and MUST be treated as immutable by readers.
	observers atomic.Value // holds []Observer
	obsMu     sync.Mutex
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	l := &Logger{
		label:   cfg.Label,
		handler: cfg.Handler,
	}
	if len(cfg.Observers) > 0 {
		obs := make([]Observer, len(cfg.Observers))
		copy(obs, cfg.Observers)
		l.observers.Store(obs)
	} else {
		l.observers.Store(([]Observer)(nil))
	}
	return l
}

// Label returns the name this logger was created for.
func (l *Logger) Label() string { return l.label }

// Handler returns the backend this logger dispatches to.
func (l *Logger) Handler() Handler { return l.handler }

// Level returns the handler's minimum level.
func (l *Logger) Level() Level { return l.handler.MinLevel() }

// SetLevel changes the handler's minimum level.
func (l *Logger) SetLevel(level Level) { l.handler.SetMinLevel(level) }

// Metadata returns the handler's bound value for key.
func (l *Logger) Metadata(key string) (Value, bool) { return l.handler.Metadata(key) }

// SetMetadata binds v to key on the handler; a zero Value removes it.
func (l *Logger) SetMetadata(key string, v Value) { l.handler.SetMetadata(key, v) }

// Enabled reports whether logs at 'level' would be emitted by this logger.
// Use to avoid building fields in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.handler.MinLevel()
}

// Level entry points returning fluent builders.

func (l *Logger) Trace() *Event    { return getEvent(l, LevelTrace) }
func (l *Logger) Debug() *Event    { return getEvent(l, LevelDebug) }
func (l *Logger) Info() *Event     { return getEvent(l, LevelInfo) }
func (l *Logger) Notice() *Event   { return getEvent(l, LevelNotice) }
func (l *Logger) Warning() *Event  { return getEvent(l, LevelWarning) }
func (l *Logger) Error() *Event    { return getEvent(l, LevelError) }
func (l *Logger) Critical() *Event { return getEvent(l, LevelCritical) }

// Log emits msg at level with per-call metadata, bypassing the Event builder.
func (l *Logger) Log(level Level, msg string, md Metadata) {
	if l.Enabled(level) {
		l.dispatch(level, msg, md, caller(2))
	}
}

// With returns a child logger with bound fields.
func (l *Logger) With(fs ...Field) *Logger {
	child := &Logger{
		label:   l.label,
		handler: l.handler.With(FieldsToMetadata(fs)),
	}
	// Inherit a snapshot of observers.
	child.observers.Store(l.snapshotObservers())
	return child
}

func (l *Logger) snapshotObservers() []Observer {
	v := l.observers.Load()
	if v == nil {
		return nil
	}
	cur := v.([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

func (l *Logger) AddObserver(o Observer) {
	l.obsMu.Lock()
	defer l.obsMu.Unlock()
	cur := l.snapshotObservers()
	cur = append(cur, o)
	l.observers.Store(cur)
}

// dispatch forwards an already level-checked event to the handler and
// observers.
func (l *Logger) dispatch(level Level, msg string, md Metadata, src Source) {
	l.handler.Log(level, msg, md, src)

	v := l.observers.Load()
	if v == nil {
		return
	}
	obs := v.([]Observer)
	if len(obs) == 0 {
		return
	}

	entry := Entry{
		At:       xclock.Now(),
		Label:    l.label,
		Level:    level,
		Message:  msg,
		Metadata: md.Clone(),
		Source:   src,
	}

	for _, o := range obs {
		o.OnLog(entry)
	}
}
