package unified

import "github.com/trickstertwo/unilog"

// Severity is the native facility's four-step classification.
type Severity uint8

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityError
	SeverityFault
)

func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityError:
		return "error"
	case SeverityFault:
		return "fault"
	default:
		return "unknown"
	}
}

// SeverityFor maps a front-end level onto the closest native severity.
// The facility has no trace, notice or warning, so those collapse onto
// debug and info; critical is the closest thing to a fault.
func SeverityFor(l unilog.Level) Severity {
	switch {
	case l < unilog.LevelInfo:
		return SeverityDebug // trace, debug
	case l < unilog.LevelError:
		return SeverityInfo // info, notice, warning
	case l < unilog.LevelCritical:
		return SeverityError
	default:
		return SeverityFault
	}
}

// Icon returns the visual marker prefixed to lines at level l. Trace and
// info carry none. Unnamed levels take the marker of the named level below
// them, as SeverityFor does.
func Icon(l unilog.Level) string {
	switch {
	case l >= unilog.LevelCritical:
		return "🔥"
	case l >= unilog.LevelError:
		return "❌"
	case l >= unilog.LevelWarning:
		return "⚠️"
	case l >= unilog.LevelNotice:
		return "📌"
	case l >= unilog.LevelInfo:
		return ""
	case l >= unilog.LevelDebug:
		return "💬"
	default:
		return ""
	}
}
