package worker

import (
	"context"
	"sync"

	"github.com/ayhamDev/roza-catalog/render"
)

// Pool fans render jobs out to a fixed set of workers sharing one job
// channel. Jobs beyond the worker count queue in submission order.
type Pool struct {
	jobs    chan job
	stop    chan struct{}
	once    sync.Once
	workers []*Worker
}

// NewPool starts n workers (at least one). Install an Env before
// submitting jobs.
func NewPool(n int, opts ...Option) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		jobs: make(chan job),
		stop: make(chan struct{}),
	}
	for i := 0; i < n; i++ {
		p.workers = append(p.workers, newWorker(p.jobs, opts...))
	}
	return p
}

// Install provides the render environment to every worker.
func (p *Pool) Install(env Env) {
	for _, w := range p.workers {
		w.Install(env)
	}
}

// Render dispatches doc to the next free worker, queueing if all are
// busy.
func (p *Pool) Render(ctx context.Context, doc any) (*render.Result, error) {
	return submit(ctx, p.jobs, p.stop, doc)
}

// Close stops every worker. In-flight jobs finish.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.stop)
		for _, w := range p.workers {
			w.Close()
		}
	})
}
