// Package unified forwards unilog events to the platform's unified logging
// facility.
//
// An Adapter is created once per label. At construction it asks the
// configured Facility for a sink scoped to (application identifier,
// label); if the facility is unavailable the adapter stays unbound and
// every line goes to a plain Fallback instead.
//
// Each line is the level icon, the message, and the merged metadata:
//
//	⚠️ disk low -- mount=/var pct=5
//
// Lines are forwarded at one of four native severities (debug, info,
// error, fault). Setting the environment variable named after a label to
// anything other than "true" mutes that logger without touching levels.
//
// Facility packages register themselves as the default from init(), so a
// blank import is enough to pick the systemd journal:
//
//	import _ "github.com/trickstertwo/unilog/facility/journal"
package unified
