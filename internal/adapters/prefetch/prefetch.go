// Package prefetch fans object fetches out over a bounded worker pool so a
// load is not serialized on per-object latency.
package prefetch

import (
	"context"
	"sync"
)

// Default pool configuration constants.
const (
	defaultWorkers = 4
)

// FetchFunc retrieves one named object. Implementations carry their own
// retry policy; the pool treats any returned error as fatal for the batch.
type FetchFunc func(ctx context.Context, name string) ([]byte, error)

// Pool runs fetches concurrently with a fixed worker count.
type Pool struct {
	fetch   FetchFunc
	workers int
}

// New creates a Pool with configuration options.
func New(fetch FetchFunc, opts ...Option) *Pool {
	p := &Pool{
		fetch:   fetch,
		workers: defaultWorkers,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Workers returns the configured worker count.
func (p *Pool) Workers() int { return p.workers }

// FetchAll retrieves every named object and returns them keyed by name. The
// first fetch error cancels the remaining work and fails the batch.
func (p *Pool) FetchAll(ctx context.Context, names []string) (map[string][]byte, error) {
	if len(names) == 0 {
		return map[string][]byte{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan string)
	out := make(map[string][]byte, len(names))

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)

	workers := p.workers
	if workers > len(names) {
		workers = len(names)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				data, err := p.fetch(ctx, name)

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
						cancel()
					}
					mu.Unlock()
					continue
				}
				out[name] = data
				mu.Unlock()
			}
		}()
	}

feed:
	for _, name := range names {
		select {
		case jobs <- name:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
