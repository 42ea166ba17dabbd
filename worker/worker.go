// Package worker runs catalog renders on dedicated goroutines behind a
// serialization boundary.
//
// Documents cross the boundary as JSON: Render marshals the caller's
// value up front, so a document that cannot survive serialization is
// rejected before any drawing starts, and the worker goroutine decodes
// a fresh Document of its own. Caller and worker never share mutable
// state. Each worker renders one document at a time; concurrent callers
// queue on the job channel.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ayhamDev/roza-catalog/assets"
	"github.com/ayhamDev/roza-catalog/catalog"
	"github.com/ayhamDev/roza-catalog/fonts"
	"github.com/ayhamDev/roza-catalog/render"
)

var (
	// ErrNotSerializable means the document failed the JSON round-trip
	// check and never reached a worker.
	ErrNotSerializable = errors.New("worker: document is not serializable")

	// ErrEnvNotReady means Render was called before Install.
	ErrEnvNotReady = errors.New("worker: render environment not installed")

	// ErrClosed means the worker or pool has been shut down.
	ErrClosed = errors.New("worker: closed")
)

// Env is the render environment a worker needs before it can accept
// jobs: loaded fonts and the image pipeline. Either field may be nil,
// which restricts renders to core PDF fonts and embedded assets.
type Env struct {
	Fonts   *fonts.Registry
	Fetcher *assets.Fetcher
}

type job struct {
	ctx     context.Context
	payload []byte
	out     chan jobResult
}

type jobResult struct {
	res *render.Result
	err error
}

// Worker renders documents one at a time on its own goroutine.
type Worker struct {
	log  *zap.Logger
	jobs chan job
	stop chan struct{}
	once sync.Once

	mu  sync.Mutex
	env *Env
}

// Option configures a Worker or every worker in a Pool.
type Option func(*Worker)

// WithLogger sets the worker's logger. The default discards logs.
func WithLogger(log *zap.Logger) Option {
	return func(w *Worker) {
		w.log = log
	}
}

// New starts a worker. Install an Env before submitting jobs.
func New(opts ...Option) *Worker {
	return newWorker(make(chan job), opts...)
}

func newWorker(jobs chan job, opts ...Option) *Worker {
	w := &Worker{
		log:  zap.NewNop(),
		jobs: jobs,
		stop: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	go w.run()
	return w
}

// Install provides the render environment. It may be called again to
// swap environments between jobs.
func (w *Worker) Install(env Env) {
	w.mu.Lock()
	w.env = &env
	w.mu.Unlock()
}

// Render serializes doc across the worker boundary, renders it on the
// worker goroutine, and returns the result. Blocks while the worker is
// busy with earlier jobs unless ctx expires first.
func (w *Worker) Render(ctx context.Context, doc any) (*render.Result, error) {
	return submit(ctx, w.jobs, w.stop, doc)
}

// Close stops the worker. In-flight jobs finish; later Render calls
// fail with ErrClosed.
func (w *Worker) Close() {
	w.once.Do(func() {
		close(w.stop)
	})
}

func submit(ctx context.Context, jobs chan<- job, stop <-chan struct{}, doc any) (*render.Result, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSerializable, err)
	}

	select {
	case <-stop:
		return nil, ErrClosed
	default:
	}

	out := make(chan jobResult, 1)
	select {
	case jobs <- job{ctx: ctx, payload: payload, out: out}:
	case <-stop:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case r := <-out:
		return r.res, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (w *Worker) run() {
	for {
		select {
		case <-w.stop:
			return
		case j := <-w.jobs:
			j.out <- w.render(j)
		}
	}
}

func (w *Worker) render(j job) jobResult {
	w.mu.Lock()
	env := w.env
	w.mu.Unlock()
	if env == nil {
		return jobResult{err: ErrEnvNotReady}
	}

	var doc catalog.Document
	if err := json.Unmarshal(j.payload, &doc); err != nil {
		return jobResult{err: fmt.Errorf("worker: decoding document: %w", err)}
	}

	var opts []render.Option
	if env.Fonts != nil {
		opts = append(opts, render.WithFontRegistry(env.Fonts))
	}
	if env.Fetcher != nil {
		opts = append(opts, render.WithImageFetcher(env.Fetcher))
	}

	start := time.Now()
	res, err := render.New(opts...).Render(j.ctx, &doc)
	if err != nil {
		w.log.Warn("render failed",
			zap.String("company", doc.Info.Name),
			zap.Error(err))
		return jobResult{err: err}
	}
	w.log.Info("render complete",
		zap.String("company", doc.Info.Name),
		zap.Int("pages", res.Pages),
		zap.Int("bytes", len(res.PDF)),
		zap.Duration("elapsed", time.Since(start)))
	return jobResult{res: res}
}
