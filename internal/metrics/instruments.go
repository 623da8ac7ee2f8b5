package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instruments holds the path engine's counters.
type Instruments struct {
	PathsGenerated     metric.Int64Counter
	Simulations        metric.Int64Counter
	SimulationFailures metric.Int64Counter
}

// NewInstruments creates the engine counters on the given provider.
func NewInstruments(provider MetricProvider) (*Instruments, error) {
	meter := provider.Meter("pathfinder")

	pathsGenerated, err := meter.Int64Counter("pathfinder.paths.generated",
		metric.WithDescription("Number of arbitrage paths produced by generation"))
	if err != nil {
		return nil, err
	}
	simulations, err := meter.Int64Counter("pathfinder.simulations.total",
		metric.WithDescription("Number of path simulations run"))
	if err != nil {
		return nil, err
	}
	failures, err := meter.Int64Counter("pathfinder.simulations.failures",
		metric.WithDescription("Number of path simulations without a result"))
	if err != nil {
		return nil, err
	}

	return &Instruments{
		PathsGenerated:     pathsGenerated,
		Simulations:        simulations,
		SimulationFailures: failures,
	}, nil
}

// RecordSimulations counts a batch of simulations and its failures.
func (i *Instruments) RecordSimulations(ctx context.Context, total, failed int64) {
	i.Simulations.Add(ctx, total)
	if failed > 0 {
		i.SimulationFailures.Add(ctx, failed,
			metric.WithAttributes(attribute.String("reason", "absent")))
	}
}
