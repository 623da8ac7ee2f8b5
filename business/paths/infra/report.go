package infra

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/seinj0312/mev-templates/business/paths/app"
)

// WriteQuotes renders evaluated quotes as a ranked table. Amounts are
// converted from base units to whole tokens of the base token for
// display only; ranking upstream stays in exact integer math.
func WriteQuotes(w io.Writer, quotes []app.Quote) {
	if len(quotes) == 0 {
		fmt.Fprintln(w, "no simulatable paths for this snapshot")
		return
	}

	fmt.Fprintf(w, "%-4s %-14s %-14s %s\n", "#", "amount in", "amount out", "route")
	for i, q := range quotes {
		decimals := int32(q.Path.Hops[0].DecimalsIn())
		out := decimal.NewFromBigInt(q.AmountOut.ToBig(), -decimals)
		fmt.Fprintf(w, "%-4d %-14s %-14s %s\n",
			i+1,
			q.AmountIn.Dec(),
			out.StringFixed(6),
			q.Path.String(),
		)
	}
}
