package unified

import "github.com/trickstertwo/unilog"

// Factory returns a unilog.Factory that builds one Adapter per label with
// opts applied. Combine with unilog.Bootstrap:
//
//	unilog.Bootstrap(unified.Factory(unified.WithAppID("com.example.app")))
//	log := unilog.Get("DISK")
func Factory(opts ...Option) unilog.Factory {
	return func(label string) unilog.Handler {
		return New(label, opts...)
	}
}

// Use bootstraps the unilog registry with Factory(opts...), sets the logger
// for label as the global logger, and returns it.
func Use(label string, opts ...Option) *unilog.Logger {
	unilog.Bootstrap(Factory(opts...))
	l := unilog.Get(label)
	unilog.SetGlobal(l)
	return l
}
