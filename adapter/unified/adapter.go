package unified

import (
	"sync"

	"github.com/trickstertwo/unilog"
)

// Adapter bridges unilog to the platform's unified logging facility.
//
// Per call it:
//   - drops the event when the environment variable named after the label
//     is set to anything but "true";
//   - merges per-call metadata over the bound metadata and renders it
//     inline as "msg -- k=v k=v";
//   - prefixes the level's icon and forwards the line at the closest
//     native severity, or to the fallback when the facility was
//     unavailable at construction.
//
// The sink binding is decided once in New and never re-evaluated. Bound
// metadata and its cached rendering are guarded by mu, so Log may run
// concurrently with SetMetadata.
type Adapter struct {
	label     string
	subsystem string
	sink      Sink // nil: unbound, lines go to fallback
	fallback  Fallback
	env       Env

	mu       sync.RWMutex
	minLevel unilog.Level
	metadata unilog.Metadata
	pretty   string // Prettify(metadata), recomputed on every mutation
}

var _ unilog.Handler = (*Adapter)(nil)

// New creates the adapter for label. It panics on an empty label or when
// no application identifier can be resolved: both are startup
// misconfigurations of the embedding program.
func New(label string, opts ...Option) *Adapter {
	if label == "" {
		panic("unified: New called with an empty label")
	}
	o := Options{MinLevel: unilog.LevelInfo}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasFacility {
		o.Facility = DefaultFacility()
	}
	if o.Env == nil {
		o.Env = OSEnv
	}
	if o.AppID == "" {
		o.AppID = resolveAppID()
	}
	if o.AppID == "" {
		panic("unified: application identifier could not be resolved; set " + AppIDEnv + " or use WithAppID")
	}
	if o.Fallback == nil {
		o.Fallback = NewWriterFallback(nil, o.AppID)
	}

	a := &Adapter{
		label:     label,
		subsystem: o.AppID,
		fallback:  o.Fallback,
		env:       o.Env,
		minLevel:  o.MinLevel,
	}
	if o.Facility != nil {
		if sink, ok := o.Facility.Open(o.AppID, label); ok && sink != nil {
			a.sink = sink
		}
	}
	a.replaceLocked(o.Metadata)
	return a
}

// Label returns the logger label, which is also the native category and
// the muting variable's name.
func (a *Adapter) Label() string { return a.label }

// Subsystem returns the application identifier the sink is scoped under.
func (a *Adapter) Subsystem() string { return a.subsystem }

// Bound reports whether a native sink was bound at construction.
func (a *Adapter) Bound() bool { return a.sink != nil }

// Suppressed reports whether the environment currently mutes this label.
func (a *Adapter) Suppressed() bool { return muted(a.env, a.label) }

// Log formats and forwards one event. src is accepted for interface
// compatibility and not rendered.
func (a *Adapter) Log(level unilog.Level, msg string, md unilog.Metadata, _ unilog.Source) {
	if muted(a.env, a.label) {
		return
	}

	a.mu.RLock()
	pretty := a.pretty
	if len(md) > 0 {
		pretty = Prettify(dropZero(a.metadata.Merge(md)))
	}
	a.mu.RUnlock()

	line := Compose(level, msg, pretty)
	if a.sink != nil {
		a.sink.Emit(SeverityFor(level), line)
		return
	}
	a.fallback.Print(line)
}

func (a *Adapter) MinLevel() unilog.Level {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.minLevel
}

func (a *Adapter) SetMinLevel(l unilog.Level) {
	a.mu.Lock()
	a.minLevel = l
	a.mu.Unlock()
}

// Metadata returns the bound value for key.
func (a *Adapter) Metadata(key string) (unilog.Value, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	v, ok := a.metadata[key]
	return v, ok
}

// SetMetadata binds v to key, or removes key when v is the zero Value.
func (a *Adapter) SetMetadata(key string, v unilog.Value) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if v.IsZero() {
		if _, ok := a.metadata[key]; !ok {
			return
		}
		delete(a.metadata, key)
	} else {
		if a.metadata == nil {
			a.metadata = make(unilog.Metadata, 1)
		}
		a.metadata[key] = v
	}
	a.pretty = Prettify(a.metadata)
}

// ReplaceMetadata swaps the whole bound metadata map for a copy of md.
func (a *Adapter) ReplaceMetadata(md unilog.Metadata) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.replaceLocked(md.Clone())
}

// MetadataSnapshot returns a copy of the bound metadata.
func (a *Adapter) MetadataSnapshot() unilog.Metadata {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.metadata.Clone()
}

// With returns a child adapter sharing the sink, fallback and environment
// with md merged over the bound metadata. The receiver is not modified.
func (a *Adapter) With(md unilog.Metadata) unilog.Handler {
	a.mu.RLock()
	merged := a.metadata.Merge(md)
	minLevel := a.minLevel
	a.mu.RUnlock()

	child := &Adapter{
		label:     a.label,
		subsystem: a.subsystem,
		sink:      a.sink,
		fallback:  a.fallback,
		env:       a.env,
		minLevel:  minLevel,
	}
	child.replaceLocked(merged)
	return child
}

// replaceLocked takes ownership of md.
func (a *Adapter) replaceLocked(md unilog.Metadata) {
	md = dropZero(md)
	if len(md) == 0 {
		md = nil
	}
	a.metadata = md
	a.pretty = Prettify(md)
}

// dropZero deletes keys holding the zero Value from md in place.
func dropZero(md unilog.Metadata) unilog.Metadata {
	for k, v := range md {
		if v.IsZero() {
			delete(md, k)
		}
	}
	return md
}
