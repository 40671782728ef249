// Package batcher provides a generic buffered sink that flushes batches
// by size or interval, pacing flushes through a rate limiter.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Batcher buffers items and flushes them once the batch fills up or the
// interval elapses. Items queued before Stop are flushed before the
// loop exits.
type Batcher[T any] struct {
	flush    func(context.Context, []T) error
	items    chan T
	size     int
	interval time.Duration
	rl       ratelimit.Limiter
	logger   *zap.Logger

	wg   sync.WaitGroup
	stop chan struct{}
}

// New constructs a Batcher flushing through the given callback.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, size int, interval time.Duration, rps int) *Batcher[T] {
	return &Batcher[T]{
		logger:   logger,
		flush:    flush,
		items:    make(chan T, size*2),
		size:     size,
		interval: interval,
		rl:       ratelimit.New(rps),
		stop:     make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop terminates the loop and waits for the final flush. Add must not
// be called concurrently with Stop.
func (b *Batcher[T]) Stop() {
	close(b.stop)
	b.wg.Wait()
}

// Add queues an item, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.size)

	emit := func() {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("flush batch", zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	for {
		select {
		case <-ctx.Done():
			emit()
			return

		case <-b.stop:
			// drain items queued before Stop
			for {
				select {
				case item := <-b.items:
					buf = append(buf, item)
					if len(buf) >= b.size {
						emit()
					}
				default:
					emit()
					return
				}
			}

		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.size {
				emit()
			}

		case <-ticker.C:
			emit()
		}
	}
}
