// Package infra contains infrastructure adapters for the paths context:
// progress reporters and result rendering.
package infra

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"
)

// ConsoleReporter implements app.ProgressReporter for plain CLI output.
// It prints a progress line at most once per reportEvery steps to keep
// large runs readable. Advance is safe to call from many workers.
type ConsoleReporter struct {
	out         io.Writer
	total       int64
	completed   atomic.Int64
	reportEvery int64
}

// NewConsoleReporter creates a ConsoleReporter writing to stdout.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{out: os.Stdout, reportEvery: 1}
}

// Start announces the total number of generation steps.
func (r *ConsoleReporter) Start(total int) {
	r.total = int64(total)
	r.reportEvery = max(r.total/20, 1)
	fmt.Fprintf(r.out, "Generating 3-hop paths over %d pools\n", total)
}

// Advance records n completed steps.
func (r *ConsoleReporter) Advance(n int) {
	completed := r.completed.Add(int64(n))
	if completed%r.reportEvery == 0 || completed == r.total {
		fmt.Fprintf(r.out, "  %d/%d pools scanned\n", completed, r.total)
	}
}

// Done announces the final path count and elapsed wall time.
func (r *ConsoleReporter) Done(generated int, elapsed time.Duration) {
	fmt.Fprintf(r.out, "Generated %d 3-hop arbitrage paths in %s\n", generated, elapsed.Round(time.Millisecond))
}
