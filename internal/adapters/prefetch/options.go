package prefetch

// Option applies a configuration option to the Pool.
type Option func(*Pool)

// WithWorkers sets the number of concurrent fetch workers.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}
