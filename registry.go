package unilog

import "sync"

// Factory constructs the Handler for a label. Handler packages expose one
// (e.g., unified.Factory) for use with Bootstrap.
type Factory func(label string) Handler

var (
	registryMu sync.RWMutex
	factory    Factory
	loggers    = map[string]*Logger{}
)

// Bootstrap installs the handler factory used by Get. Loggers created
// under a previous factory are discarded.
func Bootstrap(f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factory = f
	loggers = map[string]*Logger{}
}

// Get returns the Logger for label, creating it on first use. Every call
// with the same label returns the same Logger and therefore the same
// Handler. Panics if Bootstrap was never called, or on an empty label.
func Get(label string) *Logger {
	if label == "" {
		panic("unilog: Get called with an empty label")
	}

	registryMu.RLock()
	l, ok := loggers[label]
	registryMu.RUnlock()
	if ok {
		return l
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if l, ok := loggers[label]; ok {
		return l
	}
	if factory == nil {
		panic("unilog: no factory bootstrapped. Call unilog.Bootstrap(unified.Factory()) first")
	}
	l = newLogger(Config{Label: label, Handler: factory(label)})
	loggers[label] = l
	return l
}

// Reset drops the factory and every cached Logger. Intended for tests.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	factory = nil
	loggers = map[string]*Logger{}
}
