// Package infra contains infrastructure adapters for the markets context:
// file-based loaders for the pool cache, reserve snapshots and token
// blacklists.
package infra

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/seinj0312/mev-templates/business/markets/domain"
)

// Pool cache CSV columns.
const (
	colAddress = iota
	colVariant
	colToken0
	colToken1
	colDecimals0
	colDecimals1
	colFee
	numPoolColumns
)

// LoadPoolsCSV reads a pool cache file with records of the form
//
//	address,version,token0,token1,decimals0,decimals1,fee
//
// A header row is detected and skipped. Malformed rows (bad address,
// identical tokens, unparseable numbers) are logged and skipped rather
// than failing the whole load, so one bad cache line cannot take the
// engine down.
func LoadPoolsCSV(path string, logger *slog.Logger) ([]*domain.Pool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pool cache: %w", err)
	}
	defer f.Close()

	return ReadPools(f, logger)
}

// ReadPools parses pool cache records from r. See LoadPoolsCSV.
func ReadPools(r io.Reader, logger *slog.Logger) ([]*domain.Pool, error) {
	if logger == nil {
		logger = slog.Default()
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = numPoolColumns
	reader.TrimLeadingSpace = true

	var pools []*domain.Pool
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			logger.Warn("skipping malformed pool cache row", "line", line, "error", err)
			continue
		}
		if line == 1 && record[colAddress] == "address" {
			continue
		}

		pool, err := parsePool(record)
		if err != nil {
			logger.Warn("skipping invalid pool record", "line", line, "error", err)
			continue
		}
		pools = append(pools, pool)
	}

	return pools, nil
}

func parsePool(record []string) (*domain.Pool, error) {
	for _, col := range []int{colAddress, colToken0, colToken1} {
		if !common.IsHexAddress(record[col]) {
			return nil, fmt.Errorf("bad address %q", record[col])
		}
	}

	variant, err := strconv.ParseUint(record[colVariant], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("bad variant %q: %w", record[colVariant], err)
	}
	if domain.DexVariant(variant) != domain.VariantUniswapV2 {
		return nil, fmt.Errorf("unsupported variant %q", record[colVariant])
	}

	decimals0, err := strconv.ParseUint(record[colDecimals0], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("bad decimals0 %q: %w", record[colDecimals0], err)
	}
	decimals1, err := strconv.ParseUint(record[colDecimals1], 10, 8)
	if err != nil {
		return nil, fmt.Errorf("bad decimals1 %q: %w", record[colDecimals1], err)
	}
	fee, err := strconv.ParseUint(record[colFee], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad fee %q: %w", record[colFee], err)
	}

	pool := &domain.Pool{
		Address:   common.HexToAddress(record[colAddress]),
		Variant:   domain.DexVariant(variant),
		Token0:    common.HexToAddress(record[colToken0]),
		Token1:    common.HexToAddress(record[colToken1]),
		Decimals0: uint8(decimals0),
		Decimals1: uint8(decimals1),
		Fee:       fee,
	}
	if err := pool.Validate(); err != nil {
		return nil, err
	}
	return pool, nil
}
