package app

import (
	"context"
	"testing"

	"github.com/holiman/uint256"

	marketsDomain "github.com/seinj0312/mev-templates/business/markets/domain"
)

func meshSnapshot(pools []*marketsDomain.Pool) marketsDomain.ReserveSnapshot {
	snapshot := make(marketsDomain.ReserveSnapshot, len(pools))
	for _, p := range pools {
		snapshot[p.Address] = marketsDomain.NewReserve(1_000_000_000, 1_000_000_000)
	}
	return snapshot
}

func TestEvaluator_EvaluateAll(t *testing.T) {
	pools := meshPools()
	paths := generate(t, 1, pools, tokenA)
	snapshot := meshSnapshot(pools)

	quotes, err := NewEvaluator(4).EvaluateAll(context.Background(), paths, uint256.NewInt(1), snapshot)
	if err != nil {
		t.Fatalf("EvaluateAll: %v", err)
	}

	if len(quotes) != len(paths) {
		t.Fatalf("len(quotes) = %d, want %d", len(quotes), len(paths))
	}
	for i, q := range quotes {
		if q.Path != &paths[i] {
			t.Fatalf("quote %d not aligned with input order", i)
		}
		if !q.OK {
			t.Errorf("quote %d failed against a complete snapshot", i)
		}
		if q.AmountOut == nil || q.AmountOut.IsZero() {
			t.Errorf("quote %d: empty output", i)
		}
	}
}

func TestEvaluator_MissingReserveMarkedAbsent(t *testing.T) {
	pools := meshPools()
	paths := generate(t, 1, pools, tokenA)
	snapshot := meshSnapshot(pools)

	// Drop one pool; every path through it must come back absent.
	dropped := pools[2].Address
	delete(snapshot, dropped)

	quotes, err := NewEvaluator(2).EvaluateAll(context.Background(), paths, uint256.NewInt(1), snapshot)
	if err != nil {
		t.Fatalf("EvaluateAll: %v", err)
	}

	for i, q := range quotes {
		wantOK := !paths[i].HasPool(dropped)
		if q.OK != wantOK {
			t.Errorf("quote %d: ok = %v, want %v", i, q.OK, wantOK)
		}
	}
}

func TestTopQuotes(t *testing.T) {
	quotes := []Quote{
		{AmountOut: uint256.NewInt(5), OK: true},
		{OK: false},
		{AmountOut: uint256.NewInt(9), OK: true},
		{AmountOut: uint256.NewInt(7), OK: true},
	}

	top := TopQuotes(quotes, 2)
	if len(top) != 2 {
		t.Fatalf("len(top) = %d, want 2", len(top))
	}
	if top[0].AmountOut.Uint64() != 9 || top[1].AmountOut.Uint64() != 7 {
		t.Errorf("top = [%s, %s], want [9, 7]", top[0].AmountOut.Dec(), top[1].AmountOut.Dec())
	}

	if all := TopQuotes(quotes, 0); len(all) != 3 {
		t.Errorf("limit 0 returned %d, want all 3 successful quotes", len(all))
	}
}

func TestEvaluator_DeterministicAcrossWorkers(t *testing.T) {
	pools := meshPools()
	paths := generate(t, 1, pools, tokenA)
	snapshot := meshSnapshot(pools)

	base, err := NewEvaluator(1).EvaluateAll(context.Background(), paths, uint256.NewInt(5), snapshot)
	if err != nil {
		t.Fatalf("EvaluateAll: %v", err)
	}
	wide, err := NewEvaluator(8).EvaluateAll(context.Background(), paths, uint256.NewInt(5), snapshot)
	if err != nil {
		t.Fatalf("EvaluateAll: %v", err)
	}

	for i := range base {
		if base[i].OK != wide[i].OK {
			t.Fatalf("quote %d: ok mismatch", i)
		}
		if base[i].OK && !base[i].AmountOut.Eq(wide[i].AmountOut) {
			t.Errorf("quote %d: %s != %s", i, base[i].AmountOut.Dec(), wide[i].AmountOut.Dec())
		}
	}
}
