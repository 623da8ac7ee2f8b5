// Package main is the entry point for the triangular arbitrage path finder.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/holiman/uint256"
	"github.com/joho/godotenv"

	marketsDomain "github.com/seinj0312/mev-templates/business/markets/domain"
	marketsInfra "github.com/seinj0312/mev-templates/business/markets/infra"
	pathsApp "github.com/seinj0312/mev-templates/business/paths/app"
	pathsInfra "github.com/seinj0312/mev-templates/business/paths/infra"
	"github.com/seinj0312/mev-templates/internal/config"
	"github.com/seinj0312/mev-templates/internal/logger"
	"github.com/seinj0312/mev-templates/internal/metrics"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	// Parse flags
	configPath := flag.String("config", "", "Path to configuration file")
	cliMode := flag.Bool("cli", false, "Run in CLI mode with logs (no TUI)")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("pathfinder %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	// TUI is the default, CLI is for debugging
	tuiMode := !*cliMode

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		if !tuiMode {
			fmt.Fprintf(os.Stderr, "received shutdown signal: %v\n", sig)
		}
		cancel()
	}()

	if err := run(ctx, *configPath, tuiMode); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, tuiMode bool) error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.App.TUIMode = tuiMode

	// Setup logger (suppress logs while the TUI owns the terminal)
	var log *logger.Logger
	if tuiMode {
		log = logger.New(io.Discard, logger.ParseLevel(cfg.App.LogLevel), cfg.App.Name, nil)
	} else {
		log = logger.New(os.Stderr, logger.ParseLevel(cfg.App.LogLevel), cfg.App.Name, nil)
		log.Info(ctx, "starting pathfinder",
			"version", version,
			"environment", cfg.App.Environment,
		)
	}

	// Initialize observability if enabled
	var instruments *metrics.Instruments
	if cfg.Telemetry.Enabled {
		providerCfgs := []metrics.OptionFn{
			metrics.WithServiceName(cfg.Telemetry.ServiceName),
			metrics.WithProviderConfig(metrics.NewPrometheusConfig()),
		}
		if cfg.Telemetry.OTLPEndpoint != "" {
			providerCfgs = append(providerCfgs, metrics.WithProviderConfig(
				metrics.NewOtelCollectorConfig(cfg.Telemetry.OTLPEndpoint, nil, true),
			))
		}
		provider := metrics.NewMetricProvider(providerCfgs...)
		defer provider.Shutdown(context.Background())

		instruments, err = metrics.NewInstruments(provider)
		if err != nil {
			return fmt.Errorf("failed to create instruments: %w", err)
		}

		go metrics.ServePrometheusMetrics(metrics.WithPort(strconv.Itoa(cfg.Telemetry.PrometheusPort)))
		log.Info(ctx, "prometheus metrics server started", "port", cfg.Telemetry.PrometheusPort)
	}

	// Load inputs
	pools, err := marketsInfra.LoadPoolsCSV(cfg.Markets.PoolCachePath, log.Slog())
	if err != nil {
		return fmt.Errorf("failed to load pool cache: %w", err)
	}
	log.Info(ctx, "loaded pool cache", "path", cfg.Markets.PoolCachePath, "pools", len(pools))

	blacklist := marketsDomain.TokenSet{}
	if cfg.Markets.BlacklistPath != "" {
		blacklist, err = marketsInfra.LoadBlacklist(cfg.Markets.BlacklistPath)
		if err != nil {
			return fmt.Errorf("failed to load blacklist: %w", err)
		}
		log.Info(ctx, "loaded token blacklist", "tokens", len(blacklist))
	}

	// Pick a progress reporter
	var reporter pathsApp.ProgressReporter
	var tui *pathsInfra.TUIReporter
	tuiDone := make(chan error, 1)
	if tuiMode {
		tui = pathsInfra.NewTUIReporter()
		reporter = tui
		go func() { tuiDone <- tui.Run() }()
	} else {
		reporter = pathsInfra.NewConsoleReporter()
	}

	// Generate paths
	generator := pathsApp.NewGenerator(cfg.Paths.Workers, reporter, log.Slog())
	paths, err := generator.Generate(ctx, pools, cfg.Paths.BaseTokenAddress())
	if tuiMode {
		// The TUI quits itself on the Done event; wait so result
		// output does not race with its final frame.
		if tuiErr := <-tuiDone; tuiErr != nil {
			log.Warn(ctx, "tui exited with error", "error", tuiErr)
		}
	}
	if err != nil {
		return fmt.Errorf("path generation failed: %w", err)
	}
	if instruments != nil {
		instruments.PathsGenerated.Add(ctx, int64(len(paths)))
	}

	kept := pathsApp.FilterBlacklisted(paths, blacklist)
	if dropped := len(paths) - len(kept); dropped > 0 {
		log.Info(ctx, "dropped blacklisted paths", "dropped", dropped, "kept", len(kept))
	}

	// Without a captured snapshot there is nothing to simulate
	if cfg.Markets.SnapshotPath == "" {
		fmt.Printf("Generated %d paths (%d after blacklist); no reserve snapshot configured\n", len(paths), len(kept))
		return nil
	}

	snapshot, err := marketsInfra.LoadSnapshotJSON(cfg.Markets.SnapshotPath)
	if err != nil {
		return fmt.Errorf("failed to load reserve snapshot: %w", err)
	}
	log.Info(ctx, "loaded reserve snapshot", "pools", len(snapshot))

	evaluator := pathsApp.NewEvaluator(cfg.Paths.Workers)
	for _, amount := range cfg.Paths.AmountsIn {
		quotes, err := evaluator.EvaluateAll(ctx, kept, uint256.NewInt(uint64(amount)), snapshot)
		if err != nil {
			return fmt.Errorf("evaluation failed: %w", err)
		}

		failed := 0
		for _, q := range quotes {
			if !q.OK {
				failed++
			}
		}
		if instruments != nil {
			instruments.RecordSimulations(ctx, int64(len(quotes)), int64(failed))
		}

		fmt.Printf("\nTop paths for %d %s in:\n", amount, cfg.Paths.BaseToken)
		pathsInfra.WriteQuotes(os.Stdout, pathsApp.TopQuotes(quotes, cfg.Paths.TopResults))
	}

	return nil
}
