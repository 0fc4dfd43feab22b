// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the migration dashboard HTTP server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the fixture source: PostgreSQL when DATABASE_URL is set
//     (migrations run first), the fixture directory otherwise.
//  4. Load and index the fixtures. They never change while the process runs.
//  5. Connect to Redis when REDIS_URL is set, for the report cache.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/migrationboard/internal/api"
	"github.com/taibuivan/migrationboard/internal/auth"
	"github.com/taibuivan/migrationboard/internal/catalog"
	"github.com/taibuivan/migrationboard/internal/fixture"
	"github.com/taibuivan/migrationboard/internal/platform/config"
	"github.com/taibuivan/migrationboard/internal/platform/constants"
	"github.com/taibuivan/migrationboard/internal/platform/migration"
	pgstore "github.com/taibuivan/migrationboard/internal/platform/postgres"
	redisstore "github.com/taibuivan/migrationboard/internal/platform/redis"
	"github.com/taibuivan/migrationboard/internal/platform/sec"
	"github.com/taibuivan/migrationboard/internal/report"
	"github.com/taibuivan/migrationboard/internal/urlmap"
	"github.com/taibuivan/migrationboard/internal/web"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String(constants.FieldApp, constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String("version", constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String(constants.FieldApp, constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log = log.With(slog.String("catalog", cfg.CatalogName))
	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("base_path", cfg.BasePath()),
	)

	// Root context for startup, so misconfiguration is caught quickly rather
	// than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	health := api.HealthDependencies{}

	// ── 3. Fixture Source ─────────────────────────────────────────────────
	var source fixture.Source = fixture.NewDirSource(cfg.FixtureDir)

	if cfg.UsesDatabase() {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing_postgres_pool")
			pool.Close()
		}()

		source = fixture.NewPostgresSource(pool)
		health.CheckDatabase = func(ctx context.Context) error { return pgstore.Ping(ctx, pool) }
	}

	// ── 4. Fixtures ───────────────────────────────────────────────────────
	snapshot, err := fixture.Load(startupCtx, source, log)
	must(log, err, "load fixtures")
	health.Fixtures = source.Describe()

	for _, issue := range fixture.Check(snapshot) {
		log.Warn("fixture_issue", slog.String("document", issue.Document), slog.String("issue", issue.Message))
	}

	// ── 5. Redis ──────────────────────────────────────────────────────────
	var cache report.Cache
	if cfg.UsesRedis() {
		var rdb *goredis.Client
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing_redis_client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		}()

		cache = report.NewRedisCache(rdb)
		health.CheckCache = func(ctx context.Context) error { return redisstore.Ping(ctx, rdb) }
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	if cfg.DashboardPassword == "" {
		log.Warn("dashboard_password_missing")
	}

	secret := cfg.SessionSecret
	if secret == "" {
		secret, err = sec.RandomSecret()
		must(log, err, "generate session secret")
		log.Warn("session_secret_ephemeral")
	}

	tokens, err := sec.NewSessionTokens(secret, constants.SessionIssuer, constants.SessionTTL)
	must(log, err, "initialize session tokens")

	gate, err := auth.NewService(cfg.DashboardPassword, tokens, cfg.CatalogName, log)
	must(log, err, "initialize password gate")
	cookies := auth.NewCookies(cfg.SessionCookie, cfg.BasePath(), cfg.IsProduction(), constants.SessionTTL)

	catalogService := catalog.NewService(catalog.BuildIndex(snapshot.Categories), log)
	reportService := report.NewService(snapshot, report.Meta{
		Catalog:        cfg.CatalogName,
		Title:          cfg.CatalogTitle,
		Domain:         cfg.CatalogDomain,
		SourcePlatform: cfg.SourcePlatform,
		TargetPlatform: cfg.TargetPlatform,
	}, cache, cfg.ReportCacheTTL, log)

	pages, err := web.NewHandler(web.Deps{
		BasePath: cfg.BasePath(),
		Site: web.Site{
			Title:          cfg.CatalogTitle,
			Domain:         cfg.CatalogDomain,
			SourcePlatform: cfg.SourcePlatform,
			TargetPlatform: cfg.TargetPlatform,
		},
		Snapshot: snapshot,
		Catalog:  catalogService,
		Reports:  reportService,
		Auth:     gate,
		Cookies:  cookies,
		Logger:   log,
	})
	must(log, err, "parse page templates")

	liveness, readiness := api.NewHealthHandlers(health, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokens, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Session:   auth.NewHandler(gate, cookies),
		Catalog:   catalog.NewHandler(catalogService),
		URLs:      urlmap.NewHandler(snapshot.URLs),
		Reports:   report.NewHandler(reportService),
		Web:       pages,
	})

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_failed", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("server_shutting_down", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_failed", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned and
// handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
