// Package fanout runs a function over a slice of items on a fixed pool of
// worker goroutines, keeping results in input order.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item using at most workers goroutines and returns
// the results in input order. A workers value below 1 is treated as 1.
//
// Once ctx is canceled, items not yet started record ctx.Err() without
// calling fn. Calls already in progress run to completion; fn should watch
// ctx itself if it can block.
func Run[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	workers = min(max(workers, 1), len(items))

	next := make(chan int)
	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for i := range next {
				if err := ctx.Err(); err != nil {
					results[i] = Result[R]{Err: err}
					continue
				}
				v, err := fn(ctx, items[i])
				results[i] = Result[R]{Value: v, Err: err}
			}
		})
	}

	for i := range items {
		next <- i
	}
	close(next)
	wg.Wait()

	return results
}
