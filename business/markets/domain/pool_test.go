package domain

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

var (
	weth = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	usdc = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
)

func TestPool_Validate(t *testing.T) {
	tests := []struct {
		name    string
		pool    Pool
		wantErr error
	}{
		{
			name: "valid",
			pool: Pool{Token0: weth, Token1: usdc, Fee: 3},
		},
		{
			name:    "same_tokens",
			pool:    Pool{Token0: weth, Token1: weth, Fee: 3},
			wantErr: ErrSameTokens,
		},
		{
			name:    "fee_at_denominator",
			pool:    Pool{Token0: weth, Token1: usdc, Fee: FeeDenominator},
			wantErr: ErrFeeTooHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pool.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPool_CanTrade(t *testing.T) {
	pool := Pool{Token0: weth, Token1: usdc}

	if !pool.CanTrade(weth) || !pool.CanTrade(usdc) {
		t.Error("CanTrade should accept both pool tokens")
	}
	if pool.CanTrade(common.HexToAddress("0x1")) {
		t.Error("CanTrade accepted a foreign token")
	}
}

func TestPool_OtherToken(t *testing.T) {
	pool := Pool{Token0: weth, Token1: usdc}

	if got := pool.OtherToken(weth); got != usdc {
		t.Errorf("OtherToken(weth) = %s, want usdc", got.Hex())
	}
	if got := pool.OtherToken(usdc); got != weth {
		t.Errorf("OtherToken(usdc) = %s, want weth", got.Hex())
	}
}

func TestTokenSet(t *testing.T) {
	set := NewTokenSet(weth)

	if !set.Contains(weth) {
		t.Error("Contains(weth) = false")
	}
	if set.Contains(usdc) {
		t.Error("Contains(usdc) = true")
	}
}
