package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

var errTaskPanicked = errors.New("task panicked")

// outcome is the settled result of one fan-out task.
type outcome[T any] struct {
	val T
	err error
}

// settle runs fetch for every key with at most limit calls in flight and
// waits for all of them. A failing (or panicking) task never cancels its
// siblings: each result lands in the slot matching its key.
func settle[T any](ctx context.Context, limit int, keys []string, fetch func(context.Context, string) (T, error)) []outcome[T] {
	results := make([]outcome[T], len(keys))
	if len(keys) == 0 {
		return results
	}

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, key := range keys {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					results[i] = outcome[T]{err: fmt.Errorf("%w: %s: %v", errTaskPanicked, key, r)}
				}
			}()
			v, err := fetch(ctx, key)
			results[i] = outcome[T]{val: v, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
