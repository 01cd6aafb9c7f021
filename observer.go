package unilog

import "time"

// Entry is sent to Observers when an event passes the level filter.
type Entry struct {
	At       time.Time
	Label    string
	Level    Level
	Message  string
	Metadata Metadata // per-call metadata only; copy per emit, safe to hold
	Source   Source
}

// Observer is notified for each emitted entry (Observer pattern).
// Implementations MUST be concurrency-safe.
type Observer interface {
	OnLog(entry Entry)
}

// ObserverFunc adapter.
type ObserverFunc func(Entry)

func (f ObserverFunc) OnLog(e Entry) { f(e) }
