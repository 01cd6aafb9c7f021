package unified

import (
	"os"
	"path/filepath"

	"github.com/trickstertwo/unilog"
)

// AppIDEnv names the variable DefaultAppID consults first.
const AppIDEnv = "UNILOG_APP_ID"

// Options configures New. Zero values select the defaults documented on
// each Option.
type Options struct {
	Facility    Facility
	hasFacility bool
	Fallback    Fallback
	Env         Env
	AppID       string
	MinLevel    unilog.Level
	Metadata    unilog.Metadata
}

// Option mutates Options.
type Option func(*Options)

// WithFacility selects the native facility. Passing nil forces the
// adapter to stay unbound. Default: the registered default facility.
func WithFacility(f Facility) Option {
	return func(o *Options) {
		o.Facility = f
		o.hasFacility = true
	}
}

// WithFallback sets the sink used while unbound. Default: a WriterFallback
// on os.Stderr.
func WithFallback(f Fallback) Option {
	return func(o *Options) { o.Fallback = f }
}

// WithEnv sets the environment consulted for label muting. Default: OSEnv.
func WithEnv(e Env) Option {
	return func(o *Options) { o.Env = e }
}

// WithAppID sets the subsystem the native sink is scoped under. Default:
// DefaultAppID().
func WithAppID(id string) Option {
	return func(o *Options) { o.AppID = id }
}

// WithMinLevel sets the initial minimum level. Default: LevelInfo.
func WithMinLevel(l unilog.Level) Option {
	return func(o *Options) { o.MinLevel = l }
}

// WithMetadata sets the initial base metadata. The map is copied.
func WithMetadata(md unilog.Metadata) Option {
	return func(o *Options) { o.Metadata = md.Clone() }
}

var resolveAppID = DefaultAppID

// DefaultAppID resolves the application identifier from $UNILOG_APP_ID,
// falling back to the base name of the running executable. It returns ""
// when neither is available.
func DefaultAppID() string {
	if id, ok := os.LookupEnv(AppIDEnv); ok && id != "" {
		return id
	}
	exe, err := os.Executable()
	if err != nil || exe == "" {
		if len(os.Args) == 0 || os.Args[0] == "" {
			return ""
		}
		exe = os.Args[0]
	}
	return filepath.Base(exe)
}
