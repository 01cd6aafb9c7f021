package journal

import (
	sdjournal "github.com/coreos/go-systemd/v22/journal"

	"github.com/trickstertwo/unilog/adapter/unified"
)

// Journal field names attached to every entry besides MESSAGE and PRIORITY.
const (
	FieldIdentifier = "SYSLOG_IDENTIFIER"
	FieldSubsystem  = "UNILOG_SUBSYSTEM"
	FieldCategory   = "UNILOG_CATEGORY"
)

// Seams for tests; the real journal socket is rarely reachable there.
var (
	enabled = sdjournal.Enabled
	send    = sdjournal.Send
)

// Facility is the systemd journal. Open reports it unavailable when the
// journal socket cannot be reached, leaving adapters on their fallback.
type Facility struct{}

// Open returns a sink tagging entries with subsystem and category.
func (Facility) Open(subsystem, category string) (unified.Sink, bool) {
	if !enabled() {
		return nil, false
	}
	return &Sink{vars: map[string]string{
		FieldIdentifier: subsystem,
		FieldSubsystem:  subsystem,
		FieldCategory:   category,
	}}, true
}

// Sink writes to the journal. vars is never mutated after Open, so Emit is
// safe for concurrent use.
type Sink struct {
	vars map[string]string
}

// Emit sends line as the MESSAGE field. Send errors are dropped: the
// adapter treats the native sink as non-failing.
func (s *Sink) Emit(sev unified.Severity, line string) {
	_ = send(line, Priority(sev), s.vars)
}

// Priority maps a native severity onto a journal priority.
func Priority(sev unified.Severity) sdjournal.Priority {
	switch sev {
	case unified.SeverityDebug:
		return sdjournal.PriDebug
	case unified.SeverityInfo:
		return sdjournal.PriInfo
	case unified.SeverityError:
		return sdjournal.PriErr
	case unified.SeverityFault:
		return sdjournal.PriCrit
	default:
		return sdjournal.PriNotice
	}
}
