package cli

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/hezhis/dispatch"
	"github.com/hezhis/dispatch/internal/commands"
	"github.com/hezhis/dispatch/internal/config"
	"github.com/hezhis/dispatch/internal/logging"
	"github.com/hezhis/dispatch/internal/telemetry"
	"github.com/hezhis/dispatch/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const appName = "commandhandlers"

// app is the bootstrapped process: a frozen dispatcher with every command
// handler registered, plus the ambient services it reports to.
type app struct {
	logger     zerolog.Logger
	dispatcher *dispatch.Dispatcher[commands.Command]
	registry   *prometheus.Registry
	shutdown   func(context.Context) error
}

func newApp(ctx context.Context, cfg config.Config, out io.Writer) (*app, error) {
	logger := logging.New(appName, logging.ProfileRuntime, cfg.Log, out)

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	metrics, err := middleware.NewMetrics(registry)
	if err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	d := dispatch.New[commands.Command](cfg.Dispatcher.Name, dispatch.WithMiddleware(
		handlerChain(logger, otel.Tracer(middleware.TracerName), metrics, cfg.Dispatcher.SlowThreshold)...,
	))
	if err := commands.Bootstrap(d, commands.NewHandlers(logger), cfg.Handlers); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}
	d.Freeze()

	return &app{
		logger:     logger,
		dispatcher: d,
		registry:   registry,
		shutdown:   shutdown,
	}, nil
}

// handlerChain orders the middleware outermost first. Recover sits innermost
// so a panic reaches tracing, metrics and logging as ErrHandlerPanic.
func handlerChain(logger zerolog.Logger, tracer trace.Tracer, metrics *middleware.Metrics, slow time.Duration) []dispatch.Middleware {
	return []dispatch.Middleware{
		middleware.Tracing(tracer),
		metrics.Middleware(),
		middleware.Logging(logger),
		middleware.SlowLog(logger, slow),
		middleware.Recover(logger),
	}
}

// dispatch logs unroutable messages; handler failures are already logged
// by the Logging middleware.
func (a *app) dispatch(ctx context.Context, msg commands.Command) error {
	err := a.dispatcher.Dispatch(ctx, msg)
	if errors.Is(err, dispatch.ErrUnroutable) {
		a.logger.Error().Err(err).Msg("dispatch failed")
	}
	return err
}

// report logs the dispatch counters collected so far.
func (a *app) report() error {
	families, err := a.registry.Gather()
	if err != nil {
		return err
	}
	for _, family := range families {
		if family.GetName() != "dispatch_messages_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			event := a.logger.Info()
			for _, label := range metric.GetLabel() {
				event = event.Str(label.GetName(), label.GetValue())
			}
			event.Float64("count", metric.GetCounter().GetValue()).Msg("dispatch summary")
		}
	}
	return nil
}

func (a *app) close(ctx context.Context) {
	if err := a.shutdown(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("telemetry shutdown")
	}
}
