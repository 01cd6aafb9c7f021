package unilog

import (
	"fmt"
	"time"
)

// Field is a typed key/value pair for structured logging.
type Field struct {
	K string
	V Value
}

// Helpers for ergonomics.

func Str(k, v string) Field             { return Field{K: k, V: StringValue(v)} }
func Int64(k string, v int64) Field     { return Field{K: k, V: Int64Value(v)} }
func Uint64(k string, v uint64) Field   { return Field{K: k, V: Uint64Value(v)} }
func Float64(k string, v float64) Field { return Field{K: k, V: Float64Value(v)} }
func Bool(k string, v bool) Field       { return Field{K: k, V: BoolValue(v)} }
func Dur(k string, v time.Duration) Field {
	return Field{K: k, V: DurationValue(v)}
}
func Time(k string, v time.Time) Field        { return Field{K: k, V: TimeValue(v)} }
func Err(k string, e error) Field             { return Field{K: k, V: ErrorValue(e)} }
func Bytes(k string, b []byte) Field          { return Field{K: k, V: BytesValue(b)} }
func Stringer(k string, v fmt.Stringer) Field { return Field{K: k, V: StringerValue(v)} }
func Any(k string, v any) Field               { return Field{K: k, V: AnyValue(v)} }

// FieldsToMetadata collects fields into a Metadata map. Later fields win
// on duplicate keys; nil is returned for no fields.
func FieldsToMetadata(fs []Field) Metadata {
	if len(fs) == 0 {
		return nil
	}
	md := make(Metadata, len(fs))
	for _, f := range fs {
		if f.V.IsZero() {
			delete(md, f.K)
			continue
		}
		md[f.K] = f.V
	}
	return md
}
