package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres"
	animalrepo "github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres/animal"
	birthrepo "github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres/birth"
	exitrepo "github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres/exitevent"
	farmrepo "github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres/farm"
	inseminationrepo "github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres/insemination"
	productionrepo "github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres/production"
	reportrepo "github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres/report"
	sanitaryrepo "github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres/sanitary"
	transferrepo "github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres/transfer"
	userrepo "github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres/user"
	weighingrepo "github.com/heartmarshall/agrotiquiza-backend/internal/adapter/postgres/weighing"
	"github.com/heartmarshall/agrotiquiza-backend/internal/auth"
	"github.com/heartmarshall/agrotiquiza-backend/internal/config"
	authsvc "github.com/heartmarshall/agrotiquiza-backend/internal/service/auth"
	farmsvc "github.com/heartmarshall/agrotiquiza-backend/internal/service/farm"
	healthsvc "github.com/heartmarshall/agrotiquiza-backend/internal/service/health"
	"github.com/heartmarshall/agrotiquiza-backend/internal/service/livestock"
	reportsvc "github.com/heartmarshall/agrotiquiza-backend/internal/service/report"
	usersvc "github.com/heartmarshall/agrotiquiza-backend/internal/service/user"
	"github.com/heartmarshall/agrotiquiza-backend/internal/transport/middleware"
	"github.com/heartmarshall/agrotiquiza-backend/internal/transport/rest"
	"github.com/heartmarshall/agrotiquiza-backend/internal/transport/rest/loader"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories, services and handlers, and serves HTTP
// until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application", append(buildAttrs(), slog.String("log_level", cfg.Log.Level))...)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	handler, cleanup := newHandler(cfg, pool, logger)
	defer cleanup()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// newHandler wires repositories, services and REST handlers on top of pool
// and returns the root HTTP handler. cleanup stops background workers.
func newHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (handler http.Handler, cleanup func()) {
	// Repositories
	txm := postgres.NewTxManager(pool)
	animals := animalrepo.New(pool)
	farms := farmrepo.New(pool)
	births := birthrepo.New(pool)
	sanitary := sanitaryrepo.New(pool)
	users := userrepo.New(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager)
	userService := usersvc.NewService(logger, users, txm, cfg.Auth)
	farmService := farmsvc.NewService(logger, farms)
	livestockService := livestock.NewService(
		logger, animals, farms,
		weighingrepo.New(pool),
		births,
		productionrepo.New(pool),
		exitrepo.New(pool),
		transferrepo.New(pool),
		txm,
		cfg.Livestock,
	)
	healthService := healthsvc.NewService(logger, animals, sanitary, inseminationrepo.New(pool), txm, cfg.Livestock)
	reportService := reportsvc.NewService(logger, reportrepo.New(pool), births, sanitary, farms)

	// Handlers
	handlers := rest.Handlers{
		Probe:        rest.NewProbeHandler(pool, Version),
		Auth:         rest.NewAuthHandler(authService, userService, logger),
		Users:        rest.NewUserHandler(userService, logger),
		Farms:        rest.NewFarmHandler(farmService, logger),
		Animals:      rest.NewAnimalHandler(livestockService, logger),
		Events:       rest.NewEventHandler(livestockService, logger),
		Sanitary:     rest.NewSanitaryHandler(healthService, logger),
		Reproduction: rest.NewReproductionHandler(healthService, logger),
		Reports:      rest.NewReportHandler(reportService, logger),
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit)

	opts := rest.RouterOptions{
		LoginLimit: limiter.Limit("login", cfg.RateLimit.LoginPerMinute),
	}

	var metrics *middleware.Metrics
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = middleware.NewMetrics(reg)
		opts.Metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
		opts.MetricsPath = cfg.Metrics.Path
	}

	mux := rest.NewRouter(handlers, opts)
	handler = middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		metricsMiddleware(metrics, mux),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		loader.Middleware(farms),
	)(mux)
	return handler, limiter.Stop
}

// serve runs srv until ctx is done, then drains in-flight requests within
// the configured shutdown timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// metricsMiddleware labels requests by the mux pattern they match. It
// returns nil when metrics are disabled, which Chain skips.
func metricsMiddleware(m *middleware.Metrics, mux *http.ServeMux) middleware.Middleware {
	if m == nil {
		return nil
	}
	return m.Middleware(func(r *http.Request) string {
		_, pattern := mux.Handler(r)
		return pattern
	})
}
