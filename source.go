package unilog

import "runtime"

// caller resolves the Source of the frame skip levels up; 0 is caller itself.
func caller(skip int) Source {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Source{}
	}
	var fn string
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
	}
	return Source{File: file, Function: fn, Line: line}
}

// sourceFromPC resolves a Source from a program counter recorded elsewhere,
// such as slog.Record.PC.
func sourceFromPC(pc uintptr) Source {
	if pc == 0 {
		return Source{}
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	return Source{File: f.File, Function: f.Function, Line: f.Line}
}
