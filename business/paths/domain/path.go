package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	marketsDomain "github.com/seinj0312/mev-templates/business/markets/domain"
)

// Hop is a single swap through one pool within a path. ZeroForOne is
// true when the hop consumes token0 and produces token1.
type Hop struct {
	Pool       *marketsDomain.Pool
	ZeroForOne bool
}

// TokenIn returns the token this hop consumes.
func (h Hop) TokenIn() common.Address {
	if h.ZeroForOne {
		return h.Pool.Token0
	}
	return h.Pool.Token1
}

// TokenOut returns the token this hop produces.
func (h Hop) TokenOut() common.Address {
	if h.ZeroForOne {
		return h.Pool.Token1
	}
	return h.Pool.Token0
}

// DecimalsIn returns the decimal scale of the token this hop consumes.
func (h Hop) DecimalsIn() uint8 {
	if h.ZeroForOne {
		return h.Pool.Decimals0
	}
	return h.Pool.Decimals1
}

// ArbPath is an ordered closed cycle of pool hops starting and ending
// on the same base token. It holds pool references but never reserve
// state, so one path collection can be re-simulated against many
// snapshots. Paths are immutable after construction and safe to share
// across goroutines.
type ArbPath struct {
	Hops []Hop
}

// NHop returns the number of hops in the path.
func (p *ArbPath) NHop() int {
	return len(p.Hops)
}

// TokenIn returns the base token the cycle starts on.
func (p *ArbPath) TokenIn() common.Address {
	return p.Hops[0].TokenIn()
}

// TokenOut returns the token the cycle ends on. For a well-formed
// closed cycle this equals TokenIn.
func (p *ArbPath) TokenOut() common.Address {
	return p.Hops[len(p.Hops)-1].TokenOut()
}

// HasPool reports whether any hop routes through the given pool
// address. Callers use it to decide whether a reserve update for that
// pool affects this path.
func (p *ArbPath) HasPool(address common.Address) bool {
	for _, hop := range p.Hops {
		if hop.Pool.Address == address {
			return true
		}
	}
	return false
}

// ShouldBlacklist reports whether any pool in the path touches a token
// from the given set. Every hop is checked; a match anywhere in the
// cycle is sufficient.
func (p *ArbPath) ShouldBlacklist(blacklist marketsDomain.TokenSet) bool {
	for _, hop := range p.Hops {
		if blacklist.Contains(hop.Pool.Token0) || blacklist.Contains(hop.Pool.Token1) {
			return true
		}
	}
	return false
}

// Simulate runs the whole cycle against one reserve snapshot and
// returns the final output amount in base units of the base token.
//
// amountIn is in whole tokens; it is scaled once by 10^decimals of the
// first hop's input token, then the already-scaled value flows through
// every hop. Returns ok=false when any hop's pool is missing from the
// snapshot or the swap math is infeasible (overflow, empty reserves);
// the caller should skip the path for this snapshot and retry on a
// later one.
func (p *ArbPath) Simulate(amountIn *uint256.Int, reserves marketsDomain.ReserveSnapshot) (*uint256.Int, bool) {
	unit := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(p.Hops[0].DecimalsIn())))
	amountOut, overflow := new(uint256.Int).MulOverflow(amountIn, unit)
	if overflow {
		return nil, false
	}

	for _, hop := range p.Hops {
		reserve, ok := reserves[hop.Pool.Address]
		if !ok {
			return nil, false
		}

		reserveIn, reserveOut := reserve.Reserve0, reserve.Reserve1
		if !hop.ZeroForOne {
			reserveIn, reserveOut = reserveOut, reserveIn
		}

		amountOut, ok = GetAmountOut(amountOut, reserveIn, reserveOut, hop.Pool.Fee)
		if !ok {
			return nil, false
		}
	}

	return amountOut, true
}

// String renders the cycle as a token route, e.g.
// "0xAAA.. -0xP1..-> 0xBBB.. -0xP2..-> 0xAAA..".
func (p *ArbPath) String() string {
	var b strings.Builder
	b.WriteString(shortHex(p.TokenIn()))
	for _, hop := range p.Hops {
		fmt.Fprintf(&b, " -%s-> %s", shortHex(hop.Pool.Address), shortHex(hop.TokenOut()))
	}
	return b.String()
}

func shortHex(a common.Address) string {
	h := a.Hex()
	return h[:6] + ".." + h[len(h)-4:]
}
