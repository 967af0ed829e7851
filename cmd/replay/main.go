// Package main is the scenario runner. It wires the ticket core using
// samber/do v2, seeds an in-memory store, replays a YAML scenario against the
// ticket service, and writes the resulting activity to stdout as JSON lines.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/ticketcore/internal/adapters/memstore"
	"github.com/jsamuelsen11/ticketcore/internal/app"
	"github.com/jsamuelsen11/ticketcore/internal/app/audit"
	"github.com/jsamuelsen11/ticketcore/internal/domain/ticket"
	"github.com/jsamuelsen11/ticketcore/internal/platform/config"
	"github.com/jsamuelsen11/ticketcore/internal/platform/health"
	"github.com/jsamuelsen11/ticketcore/internal/platform/logging"
	"github.com/jsamuelsen11/ticketcore/internal/platform/telemetry"
	"github.com/jsamuelsen11/ticketcore/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Getenv("APP_PROFILE"), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, profile string, stdout, stderr io.Writer) error {
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, stderr)

	otel, err := initTelemetry(ctx, cfg, stderr)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	sc, err := LoadScenario(cfg.Replay.Scenario)
	if err != nil {
		return err
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger, stdout)

	// Resolve the runner (eagerly wires the full graph).
	runner, err := do.Invoke[*Runner](injector)
	if err != nil {
		return fmt.Errorf("resolving runner: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*memstore.Store](injector))
	registry.Register(do.MustInvoke[*memstore.ActivityLog](injector))

	if err := registry.Err(ctx); err != nil {
		return fmt.Errorf("preflight check: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, cfg.Replay.Timeout)
	defer cancel()

	logger.Info("replaying scenario",
		slog.String("scenario", cfg.Replay.Scenario),
		slog.Int("steps", len(sc.Steps)),
	)

	sum, runErr := runner.Run(runCtx, sc)

	// The log is checked even when the run stopped early.
	if err := registry.Err(ctx); err != nil {
		return errors.Join(runErr, fmt.Errorf("integrity check: %w", err))
	}
	if runErr != nil {
		return fmt.Errorf("replaying scenario: %w", runErr)
	}

	logger.Info("scenario complete",
		slog.Int("steps", sum.Steps),
		slog.Int("failed", sum.Failed),
		slog.Int("events", sum.Events),
	)
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

// initTelemetry sends stdout exporter output to w so that it does not mix
// with the JSON lines on stdout.
func initTelemetry(ctx context.Context, cfg *config.Config, w io.Writer) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
		telemetry.WithWriter(w),
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
		telemetry.WithWriter(w),
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger, out io.Writer) {
	do.Provide(injector, func(_ do.Injector) (*memstore.Store, error) {
		return memstore.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*memstore.ActivityLog, error) {
		return memstore.NewActivityLog(), nil
	})

	do.Provide(injector, func(i do.Injector) (*audit.Recorder, error) {
		log := do.MustInvoke[*memstore.ActivityLog](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		var opts []audit.Option
		if metrics != nil {
			opts = append(opts, audit.WithFailureCounter(metrics.ActivityWriteFailures))
		}
		return audit.NewRecorder(log, logger, opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TicketService, error) {
		store := do.MustInvoke[*memstore.Store](i)
		recorder := do.MustInvoke[*audit.Recorder](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		opts := []app.Option{
			app.WithLogger(logger),
			app.WithMetrics(metrics),
			app.WithConflictRetries(cfg.Store.ConflictRetries),
			app.WithBulkWorkers(cfg.Store.BulkWorkers),
		}
		if cfg.Tickets.HideClosed {
			closed := false
			opts = append(opts, app.WithDefaultFilter(ticket.Filter{Closed: &closed}))
		}
		return app.NewTicketService(store, recorder, opts...), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*Runner, error) {
		return NewRunner(RunnerConfig{
			Service:     do.MustInvoke[ports.TicketService](i),
			Seeder:      do.MustInvoke[*memstore.Store](i),
			Events:      do.MustInvoke[*memstore.ActivityLog](i),
			Output:      out,
			Logger:      logger,
			StopOnError: cfg.Replay.StopOnError,
		}), nil
	})
}
