// Package resource bounds the memory, worker and IO budgets shared by
// concurrent deduplication jobs.
package resource

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrExceedsLimit is returned when a single reservation is larger than the
// configured limit and could never be granted.
var ErrExceedsLimit = errors.New("resource: request exceeds limit")

// Config holds resource limits. A zero field means unlimited.
type Config struct {
	// MemoryLimitBytes caps the working memory reserved by running jobs.
	// Without a cap reservations are only counted.
	MemoryLimitBytes int64

	// MaxWorkers caps the jobs running at once.
	MaxWorkers int64

	// IOLimitBytesPerSec caps blob and input throughput.
	IOLimitBytesPerSec int64
}

// budget is a weighted semaphore that also counts what is currently held.
type budget struct {
	sem   *semaphore.Weighted // nil when unlimited
	limit int64
	held  atomic.Int64
}

func newBudget(limit int64) *budget {
	b := &budget{limit: limit}
	if limit > 0 {
		b.sem = semaphore.NewWeighted(limit)
	}
	return b
}

func (b *budget) acquire(ctx context.Context, n int64) error {
	if b.sem != nil {
		if n > b.limit {
			return fmt.Errorf("%w: want %d, limit %d", ErrExceedsLimit, n, b.limit)
		}
		if err := b.sem.Acquire(ctx, n); err != nil {
			return err
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}
	b.held.Add(n)
	return nil
}

func (b *budget) tryAcquire(n int64) bool {
	if b.sem != nil && !b.sem.TryAcquire(n) {
		return false
	}
	b.held.Add(n)
	return true
}

func (b *budget) release(n int64) {
	if b.sem != nil {
		b.sem.Release(n)
	}
	b.held.Add(-n)
}

// Controller hands out the budgets of Config. All methods are safe on a nil
// *Controller, which imposes no limits.
type Controller struct {
	cfg     Config
	memory  *budget
	workers *budget
	io      *rate.Limiter // nil when unlimited
}

// NewController builds a controller enforcing cfg.
func NewController(cfg Config) *Controller {
	c := &Controller{
		cfg:     cfg,
		memory:  newBudget(cfg.MemoryLimitBytes),
		workers: newBudget(cfg.MaxWorkers),
	}
	if cfg.IOLimitBytesPerSec > 0 {
		// One second of throughput may be spent at once.
		c.io = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}
	return c
}

// Config returns the limits the controller was created with.
func (c *Controller) Config() Config {
	if c == nil {
		return Config{}
	}
	return c.cfg
}

// AcquireMemory reserves bytes of working memory, waiting for running jobs
// to release theirs when the limit is reached. A request above the limit
// fails immediately with ErrExceedsLimit.
func (c *Controller) AcquireMemory(ctx context.Context, bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}
	if err := c.memory.acquire(ctx, bytes); err != nil {
		if errors.Is(err, ErrExceedsLimit) {
			return fmt.Errorf("memory: %w", err)
		}
		return err
	}
	return nil
}

// TryAcquireMemory is AcquireMemory without waiting.
func (c *Controller) TryAcquireMemory(bytes int64) bool {
	if c == nil || bytes <= 0 {
		return true
	}
	return c.memory.tryAcquire(bytes)
}

// ReleaseMemory returns a reservation made by AcquireMemory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}
	c.memory.release(bytes)
}

// MemoryUsage reports the bytes currently reserved.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memory.held.Load()
}

// AcquireWorker takes a worker slot, blocking while all slots are busy.
func (c *Controller) AcquireWorker(ctx context.Context) error {
	if c == nil {
		return ctx.Err()
	}
	return c.workers.acquire(ctx, 1)
}

// TryAcquireWorker takes a worker slot if one is free.
func (c *Controller) TryAcquireWorker() bool {
	if c == nil {
		return true
	}
	return c.workers.tryAcquire(1)
}

// ReleaseWorker frees a slot taken by AcquireWorker or TryAcquireWorker.
func (c *Controller) ReleaseWorker() {
	if c == nil {
		return
	}
	c.workers.release(1)
}

// WaitIO blocks until n more bytes may be transferred. Transfers above the
// limiter burst are charged in burst-sized steps.
func (c *Controller) WaitIO(ctx context.Context, n int) error {
	if c == nil || c.io == nil || n <= 0 {
		return nil
	}
	for burst := c.io.Burst(); n > 0; {
		step := min(n, burst)
		if err := c.io.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}
