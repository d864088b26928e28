package harness

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/intergen/logging"
	"github.com/katalvlaran/intergen/store"
)

// Option customises Run.
type Option func(*runOptions)

type runOptions struct {
	logger   *slog.Logger
	sink     store.Sink
	registry *prometheus.Registry
}

func newRunOptions(opts ...Option) runOptions {
	o := runOptions{logger: logging.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger routes run and per-attempt logs to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("harness: WithLogger(nil)")
	}
	return func(o *runOptions) {
		o.logger = l
	}
}

// WithSink writes artifacts to s instead of opening Config.Sink over
// Config.Folder. The caller keeps ownership: Run does not close s.
func WithSink(s store.Sink) Option {
	if s == nil {
		panic("harness: WithSink(nil)")
	}
	return func(o *runOptions) {
		o.sink = s
	}
}

// WithRegistry records metrics on reg instead of a fresh per-run registry.
func WithRegistry(reg *prometheus.Registry) Option {
	if reg == nil {
		panic("harness: WithRegistry(nil)")
	}
	return func(o *runOptions) {
		o.registry = reg
	}
}
