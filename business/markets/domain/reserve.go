// Package domain contains the core domain types for the markets context.
package domain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Reserve is the point-in-time reserve state of one pool, in native
// token base units. Values are never mutated by the path engine.
type Reserve struct {
	Reserve0 *uint256.Int
	Reserve1 *uint256.Int
}

// NewReserve builds a Reserve from uint64 quantities, convenient for
// construction in tests and fixtures.
func NewReserve(reserve0, reserve1 uint64) Reserve {
	return Reserve{
		Reserve0: uint256.NewInt(reserve0),
		Reserve1: uint256.NewInt(reserve1),
	}
}

// ReserveSnapshot maps pool addresses to their reserves at one point in
// time. A snapshot is treated as immutable for the duration of a
// simulation call; refreshing it between calls is the owner's concern.
type ReserveSnapshot map[common.Address]Reserve

// TokenSet is a set of token addresses, used for blacklisting.
type TokenSet map[common.Address]struct{}

// NewTokenSet builds a TokenSet from a list of addresses.
func NewTokenSet(tokens ...common.Address) TokenSet {
	s := make(TokenSet, len(tokens))
	for _, t := range tokens {
		s[t] = struct{}{}
	}
	return s
}

// Contains reports whether the token is in the set.
func (s TokenSet) Contains(token common.Address) bool {
	_, ok := s[token]
	return ok
}
