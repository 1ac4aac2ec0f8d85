package eval

import (
	"runtime"

	"github.com/born-ml/texpr/internal/logging"
	"github.com/born-ml/texpr/internal/parallel"
)

// Options configures evaluation.
type Options struct {
	Logger   *logging.Logger
	Parallel parallel.Config // dense fills only; sequential by default
	Workers  int             // concurrent expressions in All; 0 means NumCPU
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the logger used for debug output.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithParallel enables chunked parallel filling of dense targets.
func WithParallel(cfg parallel.Config) Option {
	return func(o *Options) { o.Parallel = cfg }
}

// WithWorkers limits how many expressions All evaluates at once.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func buildOptions(opts []Option) Options {
	o := Options{Parallel: parallel.Sequential()}
	for _, opt := range opts {
		opt(&o)
	}
	o.Logger = logging.OrNoop(o.Logger)
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	return o
}
