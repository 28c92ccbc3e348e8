// Package batcher buffers items and hands them to a flush function in rate-limited batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add after Stop.
var ErrStopped = errors.New("batcher stopped")

// Options tune batching.
type Options struct {
	// Size flushes once this many items are buffered.
	Size int
	// Interval flushes a partial batch after this long.
	Interval time.Duration
	// RPS bounds flushes per second.
	RPS int
}

// FlushFunc persists a batch. The slice is owned by the callee.
type FlushFunc[T any] func(context.Context, []T) error

// Batcher buffers items and flushes them by size or interval.
type Batcher[T any] struct {
	flush   FlushFunc[T]
	opts    Options
	items   chan T
	limiter ratelimit.Limiter
	logger  *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. Zero options fall back to a batch of 100, one second and 10 flushes
// per second.
func New[T any](logger *zap.Logger, flush FlushFunc[T], opts Options) *Batcher[T] {
	if opts.Size <= 0 {
		opts.Size = 100
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.RPS <= 0 {
		opts.RPS = 10
	}
	return &Batcher[T]{
		flush:   flush,
		opts:    opts,
		items:   make(chan T, opts.Size*2),
		limiter: ratelimit.New(opts.RPS),
		logger:  logger,
		stop:    make(chan struct{}),
	}
}

// Start runs the flush loop until ctx is done or Stop is called.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and waits for the loop to exit.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues an item, blocking while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.opts.Interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.opts.Size)
	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}
		batch := make([]T, len(buf))
		copy(batch, buf)
		buf = buf[:0]

		b.limiter.Take()
		if err := b.flush(ctx, batch); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
			return
		}
		b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
	}
	drain := func() {
		for {
			select {
			case item := <-b.items:
				buf = append(buf, item)
			default:
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			flush(context.WithoutCancel(ctx))
			return
		case <-b.stop:
			drain()
			flush(context.WithoutCancel(ctx))
			return
		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.opts.Size {
				flush(ctx)
			}
		case <-ticker.C:
			flush(ctx)
		}
	}
}
