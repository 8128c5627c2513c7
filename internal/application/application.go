package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"margin_engine/internal/config"
	"margin_engine/internal/domain/service/positioning"
	"margin_engine/internal/domain/service/pricing"
	"margin_engine/internal/domain/service/quote"
	"margin_engine/internal/domain/value"
	"margin_engine/internal/infrastructure/cache"
	"margin_engine/internal/infrastructure/metrics"
	"margin_engine/internal/infrastructure/persistence"
	"margin_engine/internal/migrations"
	"margin_engine/internal/server"
	"margin_engine/internal/worker"
	"margin_engine/pkg/application/connectors"
	"margin_engine/pkg/application/modules"
	"margin_engine/pkg/contextx"
	"margin_engine/pkg/logx"
	"margin_engine/pkg/middlewarex"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

var errCatalogNotLoaded = errors.New("catalog is not loaded")

// Run собирает зависимости и держит серверы до отмены контекста.
func Run(ctx context.Context, cfg config.Config) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}), //nolint:exhaustruct
	)

	engine, err := newEngine(cfg.Engine)
	if err != nil {
		return fmt.Errorf("newEngine: %w", err)
	}

	var readiness []func(context.Context) error

	quoteService := quote.NewService(engine).WithObserver(metrics.NewPricing(registry))

	if cfg.Cache.UseRedis() {
		rdb := &connectors.Redis{
			Address:            cfg.Cache.Redis.Address,
			Username:           cfg.Cache.Redis.Username,
			Password:           cfg.Cache.Redis.Password,
			DatabaseNumber:     cfg.Cache.Redis.DatabaseNumber,
			PoolSize:           cfg.Cache.Redis.PoolSize,
			MinIdleConnections: cfg.Cache.Redis.MinIdleConns,
			MaxIdleConnections: cfg.Cache.Redis.MaxIdleConns,
		}
		defer rdb.Close(ctx)

		quoteService.WithCache(cache.NewRedis(rdb.Client(ctx), cfg.Cache.TTL))
		readiness = append(readiness, rdb.Ping)
	} else {
		quoteService.WithCache(cache.NewMemory(cfg.Cache.TTL, cfg.Cache.CleanupInterval))
	}

	var repo worker.ProductRepository

	if cfg.Postgres.Enabled() {
		pg := &connectors.Postgres{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		}
		if cfg.Postgres.Migrate {
			pg.Migrations = migrations.FS
		}
		defer pg.Close(ctx)

		repo = persistence.NewProductRepository(pg.Client(ctx))
		readiness = append(readiness, pg.Ping)
	} else {
		repo = persistence.NewMemoryProductRepository(persistence.ReferenceProducts())
	}

	catalog := positioning.NewCatalog()
	refresher := worker.NewCatalogRefresher(repo, catalog).WithInterval(cfg.Catalog.RefreshInterval)

	readiness = append(readiness, func(context.Context) error {
		if !catalog.Loaded() {
			return errCatalogNotLoaded
		}
		return nil
	})

	s := server.NewServer(
		server.NewPricingServer(quoteService, engine),
		server.NewMarketServer(positioning.NewService(catalog)),
	)

	var masker logx.SensitiveDataMaskerInterface = logx.NewNopSensitiveDataMasker()
	if cfg.HTTP.MaskCosts {
		masker = logx.NewSensitiveDataMasker()
	}

	httpServer := &http.Server{ //nolint:exhaustruct
		Addr: cfg.HTTP.ListenAddress,
		Handler: server.NewHandler(s, server.HandlerOptions{
			SensitiveDataMasker: masker,
			LogFieldMaxLen:      cfg.HTTP.LogFieldMaxLen,
			Metrics:             middlewarex.NewHTTPMetrics(registry),
		}),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.Worker{Name: "catalogRefresher"}.Run(ctx, g, refresher)
	modules.HTTPServer{ShutdownTimeout: cfg.HTTP.ShutdownTimeout}.Run(ctx, g, httpServer)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
		Ready:         allReady(readiness),
	}.Run(ctx, g)
	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	logger(ctx).Info(
		"application started",
		slog.Int(logx.FieldGridPoints, engine.Resolution()),
		slog.Bool("redis-cache", cfg.Cache.UseRedis()),
		slog.Bool("postgres-catalog", cfg.Postgres.Enabled()),
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func newEngine(cfg config.Engine) (*pricing.Engine, error) {
	engine := pricing.NewEngine().
		WithResolution(cfg.Resolution).
		WithWorkers(cfg.Workers)

	for name, margin := range cfg.SegmentMargins {
		segment, err := value.ParseSegment(name)
		if err != nil {
			return nil, fmt.Errorf("ENGINE_SEGMENT_MARGINS: %w", err)
		}

		policy, _ := segment.Policy()
		policy.TargetMargin = margin

		engine.WithSegmentPolicy(segment, policy)
	}

	if err := engine.Check(); err != nil {
		return nil, fmt.Errorf("engine.Check: %w", err)
	}

	return engine, nil
}

func allReady(checks []func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				return err
			}
		}
		return nil
	}
}
