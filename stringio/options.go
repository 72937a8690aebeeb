package stringio

import "log/slog"

// Option configures stream construction and reopening.
type Option func(*config)

type config struct {
	mode    string
	modeSet bool
	name    string
	logger  *slog.Logger
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMode sets the access mode ("r", "w", "a", optionally suffixed with "+"
// and "b"). Without it a stream is read-write, or read-only over frozen
// content.
func WithMode(mode string) Option {
	return func(c *config) {
		c.mode = mode
		c.modeSet = true
	}
}

// WithName sets the name reported by Name and Stat.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithLogger sets the logger used for lifecycle events. Events are logged at
// debug level. The default discards them.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

var discardLogger = slog.New(slog.DiscardHandler)
