package unilog

import "errors"

var (
	// ErrNoHandler is returned by Build when no Handler was configured.
	ErrNoHandler = errors.New("unilog: no handler configured")
	// ErrEmptyLabel is returned by Build when the label is empty.
	ErrEmptyLabel = errors.New("unilog: empty label")
)

// Config for constructing a Logger (Factory data structure).
type Config struct {
	Label     string
	Handler   Handler
	MinLevel  *Level // optional; nil keeps the handler's own level
	Observers []Observer
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder(label string) *Builder {
	return &Builder{cfg: Config{Label: label}}
}

func (b *Builder) WithHandler(h Handler) *Builder {
	b.cfg.Handler = h
	return b
}

func (b *Builder) WithMinLevel(l Level) *Builder {
	b.cfg.MinLevel = &l
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build constructs the Logger (Factory + Builder).
func (b *Builder) Build() (*Logger, error) {
	if b.cfg.Label == "" {
		return nil, ErrEmptyLabel
	}
	if b.cfg.Handler == nil {
		return nil, ErrNoHandler
	}
	// Propagate the level into the handler; it owns the value.
	if b.cfg.MinLevel != nil {
		b.cfg.Handler.SetMinLevel(*b.cfg.MinLevel)
	}
	return newLogger(b.cfg), nil
}
