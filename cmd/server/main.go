package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storesense/internal/catalog"
	"storesense/internal/detection"
	"storesense/internal/detection/confirmedstore"
	"storesense/internal/detection/handler"
	"storesense/internal/events"
	"storesense/internal/geofence"
	"storesense/internal/platform/config"
	"storesense/internal/platform/devicetoken"
	"storesense/internal/platform/httpserver"
	"storesense/internal/platform/logger"
	"storesense/internal/platform/metrics"
	"storesense/internal/platform/middleware"
	platformredis "storesense/internal/platform/redis"
)

// main wires the detection engine to its storage, event stream, and HTTP
// surface. Business logic lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Store catalog: Postgres when configured, in-memory otherwise.
	var cat detection.Catalog
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("opening postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		pg := catalog.NewPostgres(db, log)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Error("ensuring catalog schema", "error", err)
			os.Exit(1)
		}
		cat = pg
		log.Info("catalog backed by postgres")
	} else {
		cat = catalog.NewMemory()
		log.Warn("no POSTGRES_DSN set, catalog is in-memory and empty")
	}

	// Confirmed-store persistence: Redis when configured.
	var storage detection.ConfirmedStorage = confirmedstore.NewMemory()
	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connecting to redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		storage = confirmedstore.NewRedis(redisClient.Client)
		log.Info("confirmed stores backed by redis")
	}

	// Detection event stream: Kafka when brokers are configured, the log
	// otherwise.
	publisher := events.NewPublisher(256)
	var sink events.Sink = events.LogSink{Logger: log}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := events.NewKafkaSink(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("connecting to kafka", "error", err)
			os.Exit(1)
		}
		defer kafkaSink.Close()
		if err := kafkaSink.EnsureTopic(ctx, 3, 1); err != nil {
			log.Error("ensuring kafka topic", "error", err)
			os.Exit(1)
		}
		sink = kafkaSink
		log.Info("detection events streaming to kafka", "topic", cfg.Kafka.Topic)
	}
	worker := events.NewWorker(sink, publisher.Inbox(), log)
	go func() { _ = worker.Run(ctx) }()

	svc, err := detection.New(cat, storage,
		detection.WithLogger(log),
		detection.WithMetrics(m),
		detection.WithEventSink(publisher),
		detection.WithFenceCache(geofence.NewCache(geofence.WithTTL(cfg.Detection.FenceCacheTTL))),
		detection.WithConfig(detection.Config{
			MaxDistanceM:     cfg.Detection.MaxDistanceM,
			WatchRadiusM:     cfg.Detection.WatchRadiusM,
			WirelessFallback: cfg.Detection.WirelessFallback,
		}),
	)
	if err != nil {
		log.Error("building detection service", "error", err)
		os.Exit(1)
	}
	if err := svc.Init(ctx); err != nil {
		log.Error("loading confirmed stores", "error", err)
		os.Exit(1)
	}

	tokens := devicetoken.New(cfg.DeviceTokenKey, "storesense")

	router := chi.NewRouter()
	router.Use(
		middleware.Recovery(log),
		middleware.RequestID,
		middleware.Logger(log),
		middleware.Timeout(30*time.Second),
		middleware.Latency(m),
	)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.RequireDevice(tokens, log))
		handler.New(svc, log).Register(r)
	})

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting storesense", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
