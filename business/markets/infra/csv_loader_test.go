package infra

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/seinj0312/mev-templates/business/markets/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReadPools(t *testing.T) {
	input := strings.Join([]string{
		"address,version,token0,token1,decimals0,decimals1,fee",
		"0x1111111111111111111111111111111111111111,2,0x000000000000000000000000000000000000aaa1,0x000000000000000000000000000000000000bbb1,18,6,3",
		"0x2222222222222222222222222222222222222222,2,0x000000000000000000000000000000000000bbb1,0x000000000000000000000000000000000000ccc1,6,18,3",
	}, "\n")

	pools, err := ReadPools(strings.NewReader(input), discardLogger())
	if err != nil {
		t.Fatalf("ReadPools: %v", err)
	}
	if len(pools) != 2 {
		t.Fatalf("len(pools) = %d, want 2", len(pools))
	}

	first := pools[0]
	if first.Address != common.HexToAddress("0x1111111111111111111111111111111111111111") {
		t.Errorf("address = %s", first.Address.Hex())
	}
	if first.Variant != domain.VariantUniswapV2 {
		t.Errorf("variant = %v", first.Variant)
	}
	if first.Decimals0 != 18 || first.Decimals1 != 6 {
		t.Errorf("decimals = %d/%d, want 18/6", first.Decimals0, first.Decimals1)
	}
	if first.Fee != 3 {
		t.Errorf("fee = %d, want 3", first.Fee)
	}
}

func TestReadPools_SkipsInvalidRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{
			name: "same_tokens",
			row:  "0x3333333333333333333333333333333333333333,2,0x000000000000000000000000000000000000aaa1,0x000000000000000000000000000000000000aaa1,18,18,3",
		},
		{
			name: "bad_address",
			row:  "not-an-address,2,0x000000000000000000000000000000000000aaa1,0x000000000000000000000000000000000000bbb1,18,18,3",
		},
		{
			name: "unsupported_variant",
			row:  "0x3333333333333333333333333333333333333333,3,0x000000000000000000000000000000000000aaa1,0x000000000000000000000000000000000000bbb1,18,18,3",
		},
		{
			name: "bad_fee",
			row:  "0x3333333333333333333333333333333333333333,2,0x000000000000000000000000000000000000aaa1,0x000000000000000000000000000000000000bbb1,18,18,oops",
		},
		{
			name: "wrong_column_count",
			row:  "0x3333333333333333333333333333333333333333,2,0x000000000000000000000000000000000000aaa1",
		},
	}

	valid := "0x1111111111111111111111111111111111111111,2,0x000000000000000000000000000000000000aaa1,0x000000000000000000000000000000000000bbb1,18,18,3"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.row + "\n" + valid
			pools, err := ReadPools(strings.NewReader(input), discardLogger())
			if err != nil {
				t.Fatalf("ReadPools: %v", err)
			}
			if len(pools) != 1 {
				t.Fatalf("len(pools) = %d, want 1 (bad row skipped)", len(pools))
			}
		})
	}
}

func TestReadPools_Empty(t *testing.T) {
	pools, err := ReadPools(strings.NewReader(""), discardLogger())
	if err != nil {
		t.Fatalf("ReadPools: %v", err)
	}
	if len(pools) != 0 {
		t.Fatalf("len(pools) = %d, want 0", len(pools))
	}
}
