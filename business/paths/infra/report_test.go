package infra

import (
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	marketsDomain "github.com/seinj0312/mev-templates/business/markets/domain"
	"github.com/seinj0312/mev-templates/business/paths/app"
	"github.com/seinj0312/mev-templates/business/paths/domain"
)

func samplePath() *domain.ArbPath {
	tokenA := common.HexToAddress("0x000000000000000000000000000000000000aaa1")
	tokenB := common.HexToAddress("0x000000000000000000000000000000000000bbb1")
	pool := &marketsDomain.Pool{
		Address:   common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Token0:    tokenA,
		Token1:    tokenB,
		Decimals0: 18,
		Decimals1: 18,
		Fee:       3,
	}
	back := &marketsDomain.Pool{
		Address:   common.HexToAddress("0x2222222222222222222222222222222222222222"),
		Token0:    tokenB,
		Token1:    tokenA,
		Decimals0: 18,
		Decimals1: 18,
		Fee:       3,
	}
	return &domain.ArbPath{
		Hops: []domain.Hop{
			{Pool: pool, ZeroForOne: true},
			{Pool: back, ZeroForOne: true},
		},
	}
}

func TestWriteQuotes(t *testing.T) {
	// 1.5 base tokens out at 18 decimals.
	out, _ := uint256.FromDecimal("1500000000000000000")
	quotes := []app.Quote{
		{
			Path:      samplePath(),
			AmountIn:  uint256.NewInt(1),
			AmountOut: out,
			OK:        true,
		},
	}

	var b strings.Builder
	WriteQuotes(&b, quotes)

	got := b.String()
	if !strings.Contains(got, "1.500000") {
		t.Errorf("output missing whole-token amount:\n%s", got)
	}
	if !strings.Contains(got, "0x1111") {
		t.Errorf("output missing route:\n%s", got)
	}
}

func TestWriteQuotes_Empty(t *testing.T) {
	var b strings.Builder
	WriteQuotes(&b, nil)
	if !strings.Contains(b.String(), "no simulatable paths") {
		t.Errorf("unexpected output: %s", b.String())
	}
}

func TestConsoleReporter(t *testing.T) {
	var b strings.Builder
	r := &ConsoleReporter{out: &b, reportEvery: 1}

	r.Start(2)
	r.Advance(1)
	r.Advance(1)
	r.Done(7, 125*time.Millisecond)

	got := b.String()
	if !strings.Contains(got, "2/2 pools scanned") {
		t.Errorf("missing progress line:\n%s", got)
	}
	if !strings.Contains(got, "Generated 7 3-hop arbitrage paths") {
		t.Errorf("missing summary line:\n%s", got)
	}
}
