// Package app contains application services and port definitions for the paths context.
package app

import "time"

// ProgressReporter receives progress events during path generation. It
// is an injected observer; the generator carries no ambient reporting
// state. Implementations must tolerate concurrent Advance calls.
type ProgressReporter interface {
	// Start announces the total number of generation steps.
	Start(total int)

	// Advance records n completed steps.
	Advance(n int)

	// Done announces the final path count and elapsed wall time.
	Done(generated int, elapsed time.Duration)
}

// NopReporter is a ProgressReporter that discards all events. It is
// the default for library consumers and tests.
type NopReporter struct{}

func (NopReporter) Start(int)               {}
func (NopReporter) Advance(int)             {}
func (NopReporter) Done(int, time.Duration) {}
