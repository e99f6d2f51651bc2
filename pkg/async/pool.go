package async

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ghuser/itemhub/pkg/logger"
)

// Sentinel errors for pool submission. Both surface as faults on the
// returned Future, so wrapped operations resolve to their fallback value
// rather than propagating either error to the HTTP layer.
var (
	// ErrQueueFull indicates the pending queue is at capacity and the worker
	// count has already reached MaxWorkers.
	ErrQueueFull = errors.New("async: queue full")

	// ErrPoolClosed indicates Submit was called after Shutdown.
	ErrPoolClosed = errors.New("async: pool closed")
)

// Config holds the pool sizing knobs.
type Config struct {
	// MinWorkers is the steady-state worker count, started by Start.
	MinWorkers int
	// MaxWorkers is the burst ceiling. When the queue is full, extra workers
	// are spawned up to this limit before submissions are rejected.
	MaxWorkers int
	// QueueCapacity is the maximum number of pending tasks.
	QueueCapacity int
	// NamePrefix labels worker goroutines in log output.
	NamePrefix string
}

func (c Config) validate() error {
	if c.MinWorkers <= 0 {
		return fmt.Errorf("async: MinWorkers must be > 0, got %d", c.MinWorkers)
	}
	if c.MaxWorkers < c.MinWorkers {
		return fmt.Errorf("async: MaxWorkers (%d) must be >= MinWorkers (%d)", c.MaxWorkers, c.MinWorkers)
	}
	if c.QueueCapacity < 0 {
		return fmt.Errorf("async: QueueCapacity must be >= 0, got %d", c.QueueCapacity)
	}
	return nil
}

// Pool is a bounded worker pool with a FIFO pending queue. Tasks are started
// in submission order as workers free up; completion order is unspecified.
type Pool struct {
	cfg   Config
	log   logger.Logger
	queue chan func()

	mu      sync.RWMutex
	closed  bool
	wg      sync.WaitGroup
	workers atomic.Int32
}

// NewPool validates cfg and returns an unstarted Pool. Call Start before
// submitting work.
func NewPool(cfg Config, log logger.Logger) (*Pool, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.NamePrefix == "" {
		cfg.NamePrefix = "async"
	}
	return &Pool{
		cfg:   cfg,
		log:   log.With("pool", cfg.NamePrefix),
		queue: make(chan func(), cfg.QueueCapacity),
	}, nil
}

// Start launches the steady-state workers.
func (p *Pool) Start() {
	for i := 0; i < p.cfg.MinWorkers; i++ {
		p.workers.Add(1)
		p.wg.Add(1)
		go p.worker(i)
	}
	p.log.Info("worker pool started",
		"min_workers", p.cfg.MinWorkers,
		"max_workers", p.cfg.MaxWorkers,
		"queue_capacity", p.cfg.QueueCapacity,
	)
}

// Shutdown stops accepting work, drains the pending queue, and waits for all
// workers to exit or ctx to expire.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		p.log.Info("worker pool stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("async: shutdown: %w", ctx.Err())
	}
}

// submit enqueues task. When the queue is full the worker count is grown
// toward MaxWorkers before giving up with ErrQueueFull.
func (p *Pool) submit(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.queue <- task:
		queueDepth.Set(float64(len(p.queue)))
		return nil
	default:
	}

	// Queue full: try to claim a burst worker slot.
	for {
		n := p.workers.Load()
		if n >= int32(p.cfg.MaxWorkers) {
			return ErrQueueFull
		}
		if p.workers.CompareAndSwap(n, n+1) {
			p.wg.Add(1)
			go p.burstWorker(task)
			return nil
		}
	}
}

// worker is a steady-state worker: it runs until the queue is closed.
func (p *Pool) worker(id int) {
	defer p.wg.Done()
	log := p.log.With("worker", fmt.Sprintf("%s-%d", p.cfg.NamePrefix, id))
	log.Debug("worker started")
	for task := range p.queue {
		queueDepth.Set(float64(len(p.queue)))
		task()
	}
	log.Debug("worker stopped")
}

// burstWorker runs the task that found the queue full, then keeps draining
// the queue until it is empty before releasing its slot.
func (p *Pool) burstWorker(task func()) {
	defer p.wg.Done()
	defer p.workers.Add(-1)
	task()
	for {
		select {
		case t, ok := <-p.queue:
			if !ok {
				return
			}
			t()
		default:
			return
		}
	}
}
