package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"campushub/docs"
	"campushub/internal/calendar"
	"campushub/internal/config"
	"campushub/internal/database"
	handlers "campushub/internal/http/handler"
	"campushub/internal/http/middleware"
	"campushub/internal/logger"
	"campushub/internal/otel"
	"campushub/internal/repository/blob"
	"campushub/internal/scheduler"
	"campushub/internal/service"
	"campushub/internal/storage"
	"campushub/internal/uptime"
)

// @title Campus Hub API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(flushCtx)
	}()

	store, closeStore, err := openStore(ctx, cfg.Store, log)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}
	defer closeStore.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	sweepMetrics, err := uptime.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("register sweep metrics: %w", err)
	}
	httpMetrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		log.Warn("unknown calendar timezone, using UTC", zap.String("timezone", cfg.Calendar.Timezone), zap.Error(err))
		loc = time.UTC
	}
	var fetcher calendar.Fetcher
	if cfg.Calendar.FeedURL != "" {
		fetcher = calendar.NewHTTPFetcher(cfg.Calendar.FeedURL, 15*time.Second)
	} else {
		log.Warn("ICAL_URL is not set, calendar endpoint will fail")
	}
	if cfg.AdminToken == "" {
		log.Warn("ADMIN_TOKEN is not set, admin endpoints are disabled")
	}

	// Initialize repositories and services
	statusRepo := blob.NewStatusBlob(store)
	statusSvc := service.NewStatusService(statusRepo, log)
	monitorSvc := service.NewMonitorService(statusRepo, uptime.NewHTTPProber(cfg.Monitor.ProbeTimeout), sweepMetrics, log, cfg.Monitor.MinInterval)
	submissionSvc := service.NewSubmissionService(blob.NewSubmissionBlob(store), blob.NewRatingBlob(store), log)
	calendarSvc := service.NewCalendarService(blob.NewCalendarBlob(store), fetcher, cfg.Calendar.TTL, loc, log)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             1 << 20,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		DisableStartupMessage: cfg.IsProduction(),
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		Store:       store,
		Status:      statusSvc,
		Monitor:     monitorSvc,
		Submissions: submissionSvc,
		Calendar:    calendarSvc,
		AdminToken:  cfg.AdminToken,
		Gatherer:    reg,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	var sweeps *scheduler.SweepScheduler
	if cfg.Monitor.CronSpec != "" {
		sweeps = scheduler.NewSweepScheduler(monitorSvc, log, cfg.Monitor.CronSpec, cfg.Monitor.ProbeTimeout+10*time.Second)
		if err := sweeps.Start(); err != nil {
			return err
		}
	}

	listenErr := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info("http server listening", zap.String("addr", addr), zap.String("store", cfg.Store.Driver))
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if sweeps != nil {
		sweeps.Stop(shutdownCtx)
	}
	if err := app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore builds the configured key-value backend and whatever must be closed with it.
func openStore(ctx context.Context, cfg config.StoreConfig, log *zap.Logger) (storage.Store, io.Closer, error) {
	switch cfg.Driver {
	case "minio":
		s, err := storage.NewMinIO(cfg.MinIO)
		return s, nopCloser{}, err
	case "postgres":
		s, db, err := database.OpenStore(ctx, cfg.Database, log)
		if err != nil {
			return nil, nil, err
		}
		return s, db, nil
	case "redis":
		client, err := storage.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedis(client, cfg.Redis.KeyPrefix), client, nil
	case "memory", "":
		log.Warn("using in-memory store, data is lost on restart")
		return storage.NewMemory(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Driver)
	}
}
