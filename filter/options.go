package filter

import "log/slog"

// DefaultName is the filter name used in log records when none is given.
const DefaultName = "laplacian"

// Option mutates adapter options. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	name   string
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		name:   DefaultName,
		logger: slog.Default(),
	}
}

// WithName sets the filter name reported by Name and attached to every log
// record. An empty name keeps the default.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the logger. A nil logger keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
