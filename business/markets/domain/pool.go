// Package domain contains the core domain types for the markets context.
package domain

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// FeeDenominator is the fixed denominator for pool fee fractions.
// A Uniswap V2 style 0.3% fee is stored as Fee=3.
const FeeDenominator = 1000

// Common validation errors.
var (
	ErrSameTokens = errors.New("markets: token0 and token1 are identical")
	ErrFeeTooHigh = errors.New("markets: fee numerator >= denominator")
)

// DexVariant identifies the AMM protocol family a pool belongs to.
type DexVariant uint8

const (
	// VariantUniswapV2 is a constant-product pool with the fee taken
	// from the input amount.
	VariantUniswapV2 DexVariant = 2
)

// String returns a human-readable variant name.
func (v DexVariant) String() string {
	switch v {
	case VariantUniswapV2:
		return "UniswapV2"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(v))
	}
}

// Pool is the static description of one two-asset constant-product
// liquidity pool. It is immutable once loaded; reserve state lives in
// ReserveSnapshot and is supplied separately per simulation.
type Pool struct {
	Address   common.Address
	Variant   DexVariant
	Token0    common.Address
	Token1    common.Address
	Decimals0 uint8
	Decimals1 uint8
	// Fee is the numerator over FeeDenominator (3 => 0.3%).
	Fee uint64
}

// Validate checks the static invariants a pool record must satisfy
// before it may enter the registry.
func (p *Pool) Validate() error {
	if p.Token0 == p.Token1 {
		return fmt.Errorf("%w: pool %s token %s", ErrSameTokens, p.Address.Hex(), p.Token0.Hex())
	}
	if p.Fee >= FeeDenominator {
		return fmt.Errorf("%w: pool %s fee %d/%d", ErrFeeTooHigh, p.Address.Hex(), p.Fee, FeeDenominator)
	}
	return nil
}

// CanTrade reports whether the pool has the given token on either side.
func (p *Pool) CanTrade(token common.Address) bool {
	return p.Token0 == token || p.Token1 == token
}

// OtherToken returns the counterpart of the given token in this pool.
// The token must be one of the pool's two tokens.
func (p *Pool) OtherToken(token common.Address) common.Address {
	if p.Token0 == token {
		return p.Token1
	}
	return p.Token0
}

// String returns a short human-readable description.
func (p *Pool) String() string {
	return fmt.Sprintf("%s %s/%s fee=%d/%d", p.Address.Hex(), p.Token0.Hex(), p.Token1.Hex(), p.Fee, FeeDenominator)
}
