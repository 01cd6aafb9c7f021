package unilog

// Source identifies the call site of a log event.
type Source struct {
	File     string
	Function string
	Line     int
}

// Handler is the logging backend Strategy (e.g., the unified adapter).
// Level filtering happens in the Logger before Log is called; handlers read
// their own MinLevel only to report it.
type Handler interface {
	Log(level Level, msg string, md Metadata, src Source)

	MinLevel() Level
	SetMinLevel(level Level)

	// Metadata returns the bound value for key.
	Metadata(key string) (Value, bool)
	// SetMetadata binds v to key; a zero Value removes the key.
	SetMetadata(key string, v Value)

	With(md Metadata) Handler // return a child handler with bound metadata (do not mutate receiver)
}
