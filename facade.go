package unilog

import "sync/atomic"

// Facade: global access (Singleton + Facade).
var global atomic.Pointer[Logger]

// SetGlobal sets the global Logger (Singleton setter).
func SetGlobal(l *Logger) { global.Store(l) }

// L returns the global Logger; panic if unset to surface misconfig early.
func L() *Logger {
	l := global.Load()
	if l == nil {
		panic("unilog: global logger not set. Build one and call unilog.SetGlobal(...)")
	}
	return l
}

// Facade helpers using global Singleton logger.
// Usage: unilog.Info().Str("k","v").Msg("hello")

func Trace() *Event    { return L().Trace() }
func Debug() *Event    { return L().Debug() }
func Info() *Event     { return L().Info() }
func Notice() *Event   { return L().Notice() }
func Warning() *Event  { return L().Warning() }
func Error() *Event    { return L().Error() }
func Critical() *Event { return L().Critical() }
