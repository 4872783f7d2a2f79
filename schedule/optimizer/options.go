package optimizer

import "github.com/relia1/unconfrs/obslog"

// config holds Improve/ImproveWithRestarts' optional settings.
// Defaults (nil logger, i.e. obslog.Discard) unless overridden.
type config struct {
	logger obslog.Logger
}

// Option configures Improve/ImproveWithRestarts.
type Option func(*config)

// WithLogger attaches a structured logger. Improve emits one
// debug-level event per applied improving move; ImproveWithRestarts
// additionally emits one debug-level event per run and one info-level
// summary at the end. A nil
// logger (the zero value, also the default) is equivalent to
// obslog.Discard{}.
func WithLogger(logger obslog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	c := config{logger: obslog.Discard{}}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = obslog.Discard{}
	}
	return c
}
