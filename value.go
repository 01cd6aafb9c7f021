package unilog

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt64
	KindUint64
	KindFloat64
	KindBool
	KindDuration
	KindTime
	KindError
	KindBytes
	KindStringer
	KindAny
)

// Value is a compact, reflection-free union for metadata values.
// The zero Value carries no value; setting it as metadata removes the key.
type Value struct {
	Kind     Kind
	Str      string
	Int64    int64
	Uint64   uint64
	Float64  float64
	Bool     bool
	Dur      time.Duration
	Time     time.Time
	Err      error
	Bytes    []byte
	Stringer fmt.Stringer
	Any      any
}

func StringValue(v string) Value          { return Value{Kind: KindString, Str: v} }
func Int64Value(v int64) Value            { return Value{Kind: KindInt64, Int64: v} }
func Uint64Value(v uint64) Value          { return Value{Kind: KindUint64, Uint64: v} }
func Float64Value(v float64) Value        { return Value{Kind: KindFloat64, Float64: v} }
func BoolValue(v bool) Value              { return Value{Kind: KindBool, Bool: v} }
func DurationValue(v time.Duration) Value { return Value{Kind: KindDuration, Dur: v} }
func TimeValue(v time.Time) Value         { return Value{Kind: KindTime, Time: v} }
func ErrorValue(err error) Value          { return Value{Kind: KindError, Err: err} }
func BytesValue(v []byte) Value           { return Value{Kind: KindBytes, Bytes: v} }
func StringerValue(v fmt.Stringer) Value  { return Value{Kind: KindStringer, Stringer: v} }
func AnyValue(v any) Value                { return Value{Kind: KindAny, Any: v} }

// IsZero reports whether v carries no value.
func (v Value) IsZero() bool { return v.Kind == 0 }

// String renders the value the way it appears inline in a log line.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInt64:
		return strconv.FormatInt(v.Int64, 10)
	case KindUint64:
		return strconv.FormatUint(v.Uint64, 10)
	case KindFloat64:
		return strconv.FormatFloat(v.Float64, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindDuration:
		return v.Dur.String()
	case KindTime:
		return v.Time.Format(time.RFC3339Nano)
	case KindError:
		if v.Err == nil {
			return "<nil>"
		}
		return v.Err.Error()
	case KindBytes:
		if utf8.Valid(v.Bytes) {
			return string(v.Bytes)
		}
		return hex.EncodeToString(v.Bytes)
	case KindStringer:
		if v.Stringer == nil {
			return "<nil>"
		}
		return v.Stringer.String()
	case KindAny:
		return fmt.Sprint(v.Any)
	default:
		return ""
	}
}
