// Package fanout runs independent units of work concurrently and joins
// their failures after all of them settle.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Run invokes fn once per unit, each on its own goroutine, and waits for
// every invocation to finish. A failing unit never cancels its siblings;
// the returned error joins all failures in unit order, or is nil when every
// unit succeeded.
func Run[T any](ctx context.Context, units []T, fn func(context.Context, T) error) error {
	if len(units) == 0 {
		return nil
	}
	errs := make([]error, len(units))
	var wg sync.WaitGroup
	for i, unit := range units {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = fn(ctx, unit)
		}()
	}
	wg.Wait()
	return errors.Join(errs...)
}
