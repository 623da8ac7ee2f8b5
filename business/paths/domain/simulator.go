// Package domain contains the core domain types for the paths context:
// the constant-product output function and the arbitrage path value type.
package domain

import (
	"github.com/holiman/uint256"

	marketsDomain "github.com/seinj0312/mev-templates/business/markets/domain"
)

var feeDenominator = uint256.NewInt(marketsDomain.FeeDenominator)

// GetAmountOut computes the output of a constant-product swap with the
// fee deducted from the input side:
//
//	amountInWithFee = amountIn * (FeeDenominator - fee)
//	out = amountInWithFee * reserveOut / (reserveIn * FeeDenominator + amountInWithFee)
//
// Division truncates toward zero, matching on-chain UniswapV2 math.
// Returns ok=false when an intermediate product overflows 256 bits or
// the denominator is zero (empty reserves and zero input). Inputs are
// never mutated.
func GetAmountOut(amountIn, reserveIn, reserveOut *uint256.Int, fee uint64) (*uint256.Int, bool) {
	feeFactor := uint256.NewInt(marketsDomain.FeeDenominator - fee)

	amountInWithFee, overflow := new(uint256.Int).MulOverflow(amountIn, feeFactor)
	if overflow {
		return nil, false
	}

	numerator, overflow := new(uint256.Int).MulOverflow(amountInWithFee, reserveOut)
	if overflow {
		return nil, false
	}

	denominator, overflow := new(uint256.Int).MulOverflow(reserveIn, feeDenominator)
	if overflow {
		return nil, false
	}
	denominator, overflow = denominator.AddOverflow(denominator, amountInWithFee)
	if overflow {
		return nil, false
	}
	if denominator.IsZero() {
		return nil, false
	}

	return numerator.Div(numerator, denominator), true
}
