// Package app contains application services and port definitions for the paths context.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	marketsDomain "github.com/seinj0312/mev-templates/business/markets/domain"
	"github.com/seinj0312/mev-templates/business/paths/domain"
)

// Generator enumerates triangular arbitrage cycles over a pool list.
type Generator struct {
	workers  int
	reporter ProgressReporter
	logger   *slog.Logger
}

// NewGenerator creates a Generator. workers <= 1 runs single-threaded;
// a nil reporter disables progress reporting.
func NewGenerator(workers int, reporter ProgressReporter, logger *slog.Logger) *Generator {
	if workers < 1 {
		workers = 1
	}
	if reporter == nil {
		reporter = NopReporter{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		workers:  workers,
		reporter: reporter,
		logger:   logger,
	}
}

// Generate produces every distinct 3-hop cycle that starts and ends on
// tokenIn: pool1 trades tokenIn for A, pool2 trades A for B, pool3
// trades B back to tokenIn, with the three pool addresses pairwise
// distinct. Enumeration follows the input list order; the result order
// is acceptance order and is identical whether generation runs on one
// worker or many. The pool list is only read; every returned path is
// freshly allocated.
func (g *Generator) Generate(ctx context.Context, pools []*marketsDomain.Pool, tokenIn common.Address) ([]domain.ArbPath, error) {
	start := time.Now()
	g.reporter.Start(len(pools))

	chunks := make([][]domain.ArbPath, g.workers)
	chunkSize := (len(pools) + g.workers - 1) / g.workers

	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < g.workers; w++ {
		lo := w * chunkSize
		hi := min(lo+chunkSize, len(pools))
		if lo >= hi {
			break
		}
		eg.Go(func() error {
			out, err := g.generateRange(egCtx, pools, tokenIn, lo, hi)
			if err != nil {
				return err
			}
			chunks[w] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Merging chunks in partition order reproduces the serial
	// enumeration order exactly.
	var paths []domain.ArbPath
	for _, c := range chunks {
		paths = append(paths, c...)
	}

	elapsed := time.Since(start)
	g.reporter.Done(len(paths), elapsed)
	g.logger.Info("generated 3-hop arbitrage paths",
		"pools", len(pools),
		"paths", len(paths),
		"workers", g.workers,
		"elapsed", elapsed,
	)
	return paths, nil
}

// generateRange runs the outer loop over pools[lo:hi] while the two
// inner loops cover the full list.
func (g *Generator) generateRange(ctx context.Context, pools []*marketsDomain.Pool, tokenIn common.Address, lo, hi int) ([]domain.ArbPath, error) {
	var paths []domain.ArbPath

	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pool1 := pools[i]
		if !pool1.CanTrade(tokenIn) {
			g.reporter.Advance(1)
			continue
		}
		zeroForOne1 := pool1.Token0 == tokenIn
		tokenOut1 := pool1.OtherToken(tokenIn)

		for _, pool2 := range pools {
			if !pool2.CanTrade(tokenOut1) {
				continue
			}
			zeroForOne2 := pool2.Token0 == tokenOut1
			tokenOut2 := pool2.OtherToken(tokenOut1)

			for _, pool3 := range pools {
				if !pool3.CanTrade(tokenOut2) {
					continue
				}
				// The last hop's direction uses the same
				// token0-vs-input comparison as every other
				// hop; a symmetric can-trade test here would
				// flip direction whenever the base token is
				// the pool's token1.
				zeroForOne3 := pool3.Token0 == tokenOut2
				tokenOut3 := pool3.OtherToken(tokenOut2)

				if tokenOut3 != tokenIn {
					continue
				}
				if pool1.Address == pool2.Address ||
					pool1.Address == pool3.Address ||
					pool2.Address == pool3.Address {
					continue
				}

				paths = append(paths, domain.ArbPath{
					Hops: []domain.Hop{
						{Pool: pool1, ZeroForOne: zeroForOne1},
						{Pool: pool2, ZeroForOne: zeroForOne2},
						{Pool: pool3, ZeroForOne: zeroForOne3},
					},
				})
			}
		}
		g.reporter.Advance(1)
	}

	return paths, nil
}

// FilterBlacklisted returns the paths that do not touch any token in
// the blacklist, preserving order.
func FilterBlacklisted(paths []domain.ArbPath, blacklist marketsDomain.TokenSet) []domain.ArbPath {
	if len(blacklist) == 0 {
		return paths
	}
	kept := make([]domain.ArbPath, 0, len(paths))
	for _, p := range paths {
		if !p.ShouldBlacklist(blacklist) {
			kept = append(kept, p)
		}
	}
	return kept
}
