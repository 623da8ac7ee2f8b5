package infra

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/seinj0312/mev-templates/business/markets/domain"
)

// snapshotEntry is the wire form of one pool's reserves. Quantities are
// decimal strings since they routinely exceed 64 bits.
type snapshotEntry struct {
	Reserve0 string `json:"reserve0"`
	Reserve1 string `json:"reserve1"`
}

// LoadSnapshotJSON reads a captured reserve snapshot of the form
//
//	{"0xPool...": {"reserve0": "123", "reserve1": "456"}, ...}
//
// Unlike the pool cache, a snapshot is taken atomically by its producer,
// so any malformed entry fails the whole load.
func LoadSnapshotJSON(path string) (domain.ReserveSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	return ReadSnapshot(f)
}

// ReadSnapshot parses a reserve snapshot from r. See LoadSnapshotJSON.
func ReadSnapshot(r io.Reader) (domain.ReserveSnapshot, error) {
	var raw map[string]snapshotEntry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}

	snapshot := make(domain.ReserveSnapshot, len(raw))
	for addr, entry := range raw {
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("snapshot: bad pool address %q", addr)
		}
		reserve0, err := uint256.FromDecimal(entry.Reserve0)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: reserve0 %q: %w", addr, entry.Reserve0, err)
		}
		reserve1, err := uint256.FromDecimal(entry.Reserve1)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: reserve1 %q: %w", addr, entry.Reserve1, err)
		}
		snapshot[common.HexToAddress(addr)] = domain.Reserve{
			Reserve0: reserve0,
			Reserve1: reserve1,
		}
	}
	return snapshot, nil
}

// LoadBlacklist reads a token blacklist file with one hex address per
// line. Blank lines and lines starting with '#' are ignored.
func LoadBlacklist(path string) (domain.TokenSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open blacklist: %w", err)
	}
	defer f.Close()

	return ReadBlacklist(f)
}

// ReadBlacklist parses a token blacklist from r. See LoadBlacklist.
func ReadBlacklist(r io.Reader) (domain.TokenSet, error) {
	set := make(domain.TokenSet)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if !common.IsHexAddress(text) {
			return nil, fmt.Errorf("blacklist line %d: bad address %q", line, text)
		}
		set[common.HexToAddress(text)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read blacklist: %w", err)
	}
	return set, nil
}
