package unified

import "sync/atomic"

// Facility is a platform logging service that can hand out sinks scoped
// to an application (subsystem) and a category.
type Facility interface {
	// Open binds a sink for (subsystem, category). ok is false when the
	// facility is unavailable on this host.
	Open(subsystem, category string) (sink Sink, ok bool)
}

// Sink accepts one composed line at a native severity. The line is opaque:
// implementations must not interpret it as a format string.
type Sink interface {
	Emit(sev Severity, line string)
}

// Fallback receives composed lines when no native sink is bound. It has no
// notion of severity or category.
type Fallback interface {
	Print(line string)
}

// FacilityFunc adapter.
type FacilityFunc func(subsystem, category string) (Sink, bool)

func (f FacilityFunc) Open(subsystem, category string) (Sink, bool) { return f(subsystem, category) }

// SinkFunc adapter.
type SinkFunc func(Severity, string)

func (f SinkFunc) Emit(sev Severity, line string) { f(sev, line) }

// FallbackFunc adapter.
type FallbackFunc func(string)

func (f FallbackFunc) Print(line string) { f(line) }

// defaultFacility is set by a facility package (e.g., facility/journal) in
// its init() to avoid import cycles. New uses it when no WithFacility
// option is given.
var defaultFacility atomic.Pointer[Facility]

// RegisterDefaultFacility registers the facility used by New when none is
// configured explicitly. Facility packages call this from init():
//
//	func init() {
//	  unified.RegisterDefaultFacility(Facility{})
//	}
func RegisterDefaultFacility(f Facility) {
	if f == nil {
		defaultFacility.Store(nil)
		return
	}
	defaultFacility.Store(&f)
}

// DefaultFacility returns the registered default facility, or nil.
func DefaultFacility() Facility {
	p := defaultFacility.Load()
	if p == nil {
		return nil
	}
	return *p
}
