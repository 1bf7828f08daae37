// Package batch steps independent worlds concurrently. This is the
// only concurrency in the module: physics.World.DoStep never spawns a
// goroutine, and no two goroutines here ever touch the same World, so
// there is no shared mutable state to guard (spec §5).
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/determinisk/kernel/physics"
)

// Result is one world's outcome after Run has stepped it.
type Result struct {
	World *physics.World
	Err   error
}

// Run advances every world in worlds by steps ticks, each on its own
// goroutine, and returns one Result per world in the same order they
// were given. A panic inside any one world's Step is not recovered
// here — per spec §5, a panic means a programmer error (a malformed
// construction that validation should have caught), and batch does not
// paper over that by swallowing it.
//
// If ctx is canceled, in-flight worlds finish their current Step (it
// has no suspension points to cancel mid-flight) but Run stops
// requesting further steps from them and returns ctx.Err().
func Run(ctx context.Context, worlds []*physics.World, steps int) ([]Result, error) {
	results := make([]Result, len(worlds))
	g, gctx := errgroup.WithContext(ctx)

	for i, w := range worlds {
		i, w := i, w
		g.Go(func() error {
			for s := 0; s < steps; s++ {
				select {
				case <-gctx.Done():
					results[i] = Result{World: w, Err: gctx.Err()}
					return gctx.Err()
				default:
				}
				w.DoStep()
			}
			results[i] = Result{World: w}
			return nil
		})
	}

	err := g.Wait()
	return results, err
}
