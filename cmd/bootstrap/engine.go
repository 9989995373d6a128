package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"dropdeck/internal/engine"
	"dropdeck/internal/handler/api"
	"dropdeck/internal/infra/stream"
	"dropdeck/internal/pkg/config"
	"dropdeck/internal/usecase/commands"
)

var EngineModule = fx.Module("engine",
	fx.Provide(
		engine.NewMetrics,
		engine.NewHub,
		engine.NewPublisher,
		engine.NewLifecycle,
		NewEventSink,
		NewRegistry,
		func(r *engine.Registry) commands.LifecycleNotifier { return r },
		func(r *engine.Registry) api.EventSubscriber { return r },
	),
)

func NewEventSink(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) engine.EventSink {
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Brokers[0] == "" {
		logger.Info("no broker configured, lifecycle events stay in-process")
		return engine.NopSink{}
	}

	sink := stream.NewKafkaSink(cfg.Kafka, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return sink.Close()
		},
	})
	logger.Info("kafka event sink enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return sink
}

func NewRegistry(lc fx.Lifecycle, lifecycle *engine.Lifecycle, hub *engine.Hub, cfg config.Config, metrics *engine.Metrics, logger *slog.Logger) *engine.Registry {
	registry := engine.NewRegistry(lifecycle, hub, cfg.Engine, metrics, logger)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return registry.Shutdown(ctx)
		},
	})
	return registry
}
