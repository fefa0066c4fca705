package funi

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"
	"time"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/funi/table"
	"github.com/hupe1980/funi/tolerance"
)

// UniqueBatch runs Unique on every table concurrently and returns the
// results in input order.
//
// At most WithConcurrency tables (default GOMAXPROCS) run at once; each call
// itself stays single-threaded. With WithResourceController every table
// first reserves a worker slot and its working memory. The first failure
// cancels the tables that have not started yet and is returned.
func UniqueBatch[T tolerance.Float](ctx context.Context, tables []*table.Table[T], tol T, opts ...Option) ([]*Result[T], error) {
	o := applyOptions(opts)
	start := time.Now()

	limit := o.concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]*Result[T], len(tables))
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, tbl := range tables {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rc := o.controller
			if err := rc.AcquireWorker(gctx); err != nil {
				return err
			}
			defer rc.ReleaseWorker()

			need := workingSetBytes(tbl)
			if err := rc.AcquireMemory(gctx, need); err != nil {
				return fmt.Errorf("funi: table %d: %w", i, err)
			}
			defer rc.ReleaseMemory(need)

			res, err := unique(gctx, tbl, tol, &o)
			if err != nil {
				return fmt.Errorf("funi: table %d: %w", i, err)
			}
			results[i] = res
			completed.Add(1)
			return nil
		})
	}
	err := g.Wait()

	failed := len(tables) - int(completed.Load())
	o.metricsCollector.RecordBatch(len(tables), failed, time.Since(start))
	o.logger.LogBatch(ctx, len(tables), failed)

	if err != nil {
		return nil, err
	}
	return results, nil
}

// workingSetBytes estimates the peak allocation of one call: a copy of the
// unique rows plus four int-sized working arrays per row.
func workingSetBytes[T tolerance.Float](tbl *table.Table[T]) int64 {
	if tbl == nil {
		return 0
	}
	var zero T
	h, w := int64(tbl.Height()), int64(tbl.Width())
	return h*w*int64(unsafe.Sizeof(zero)) + 4*h*int64(unsafe.Sizeof(int(0)))
}
