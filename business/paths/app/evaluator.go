// Package app contains application services and port definitions for the paths context.
package app

import (
	"context"
	"sort"

	"github.com/holiman/uint256"
	"golang.org/x/sync/errgroup"

	marketsDomain "github.com/seinj0312/mev-templates/business/markets/domain"
	"github.com/seinj0312/mev-templates/business/paths/domain"
)

// Quote is the simulation outcome for one path. OK is false when the
// path could not be simulated against the snapshot (missing reserve
// data or infeasible swap math); such paths should be skipped for this
// snapshot, not treated as errors.
type Quote struct {
	Path      *domain.ArbPath
	AmountIn  *uint256.Int // whole tokens of the base token
	AmountOut *uint256.Int // base units, nil when !OK
	OK        bool
}

// Evaluator fans simulation of a whole path collection out across
// workers. Simulation is pure and the snapshot is read-only, so no
// locking is involved.
type Evaluator struct {
	workers int
}

// NewEvaluator creates an Evaluator. workers <= 1 runs single-threaded.
func NewEvaluator(workers int) *Evaluator {
	if workers < 1 {
		workers = 1
	}
	return &Evaluator{workers: workers}
}

// EvaluateAll simulates every path with the given input amount against
// one shared snapshot. The result slice has one Quote per input path,
// in input order, regardless of worker count.
func (e *Evaluator) EvaluateAll(ctx context.Context, paths []domain.ArbPath, amountIn *uint256.Int, reserves marketsDomain.ReserveSnapshot) ([]Quote, error) {
	quotes := make([]Quote, len(paths))
	chunkSize := (len(paths) + e.workers - 1) / e.workers

	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < e.workers; w++ {
		lo := w * chunkSize
		hi := min(lo+chunkSize, len(paths))
		if lo >= hi {
			break
		}
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				out, ok := paths[i].Simulate(amountIn, reserves)
				quotes[i] = Quote{
					Path:      &paths[i],
					AmountIn:  amountIn,
					AmountOut: out,
					OK:        ok,
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return quotes, nil
}

// TopQuotes returns up to limit successful quotes ordered by output
// amount, highest first. The sort is stable, so ties keep generation
// order. The input slice is not modified.
func TopQuotes(quotes []Quote, limit int) []Quote {
	ranked := make([]Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.OK {
			ranked = append(ranked, q)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AmountOut.Gt(ranked[j].AmountOut)
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
