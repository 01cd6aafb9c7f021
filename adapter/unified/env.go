package unified

import "os"

// Env reads environment variables. The adapter consults it on every call
// to decide whether its label has been muted.
type Env interface {
	Lookup(key string) (string, bool)
}

// EnvFunc adapter.
type EnvFunc func(key string) (string, bool)

func (f EnvFunc) Lookup(key string) (string, bool) { return f(key) }

// OSEnv reads the process environment.
var OSEnv Env = EnvFunc(os.LookupEnv)

// MapEnv is a fixed environment, mostly useful in tests.
type MapEnv map[string]string

func (m MapEnv) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// muted reports whether env silences label. Only an unset variable or the
// literal "true" lets output through; "false", "" and anything else mute.
func muted(env Env, label string) bool {
	v, ok := env.Lookup(label)
	return ok && v != "true"
}
