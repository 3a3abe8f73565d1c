package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"octosupply/pkg/api"
	"octosupply/pkg/config"
	"octosupply/pkg/logger"
	"octosupply/pkg/metrics"
	"octosupply/pkg/notify"
	"octosupply/pkg/otel"
	"octosupply/pkg/session"
)

// @title OctoSupply API
// @version 1.0
// @description CRUD API for the cat-tech supply storefront
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(os.Stdout, logger.ParseLevel(cfg.Log.Level), cfg.App.Name, otel.GetTraceID)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	traceCfg := otel.Config{
		ServiceName: cfg.Telemetry.ServiceName,
		Host:        cfg.Telemetry.Host,
		Probability: cfg.Telemetry.Probability,
		Insecure:    cfg.Telemetry.Insecure,
	}
	if cfg.Telemetry.Stdout {
		traceCfg.Stdout = os.Stderr
	}
	tp, shutdownTracing, err := otel.InitTracing(log, traceCfg)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdownTracing(context.Background())

	var rdb *redis.Client
	if needsRedis(cfg) {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
	}

	stores, closeStores, err := openStores(ctx, cfg, rdb, time.Now())
	if err != nil {
		return err
	}
	defer closeStores()
	log.Info(ctx, "stores ready", "backend", cfg.Store.Backend, "seed", cfg.Store.Seed)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	var sessions session.Store
	if cfg.Auth.Enabled {
		if cfg.Store.Backend == "redis" {
			sessions = session.NewRedisStore(rdb, cfg.Auth.SessionTTL)
		} else {
			sessions = session.NewMemoryStore(cfg.Auth.SessionTTL)
		}
	}

	router := api.NewRouter(api.Config{
		Log:            log,
		Tracer:         tp.Tracer(cfg.App.Name),
		Stores:         stores,
		Notifiers:      notifiers(cfg, log, rdb),
		Sessions:       sessions,
		Metrics:        metrics.NewServerMetrics(reg, "api"),
		CORSOrigins:    cfg.HTTP.CORSOrigins,
		MaxBodySize:    cfg.HTTP.MaxBodySize,
		RateLimitRPS:   cfg.HTTP.RateLimitRPS,
		RateLimitBurst: cfg.HTTP.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "listening", "addr", srv.Addr, "tls", cfg.App.TLSCert != "", "cors_origins", cfg.HTTP.CORSOrigins)
		if cfg.App.TLSCert != "" {
			errCh <- srv.ListenAndServeTLS(cfg.App.TLSCert, cfg.App.TLSKey)
			return
		}
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "server closed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "shutdown", "error", err)
		return err
	}
	return nil
}

func needsRedis(cfg *config.Config) bool {
	if cfg.Store.Backend == "redis" {
		return true
	}
	for _, a := range cfg.Notify.Actions {
		if a == "publish" {
			return true
		}
	}
	return false
}

// notifiers registers the configured delivery status actions.
func notifiers(cfg *config.Config, log *logger.Logger, rdb *redis.Client) *notify.Registry {
	reg := notify.NewRegistry()
	for _, action := range cfg.Notify.Actions {
		switch action {
		case "log":
			reg.Register(action, notify.Log(log))
		case "publish":
			reg.Register(action, notify.Publish(rdb, cfg.Notify.Channel))
		}
	}
	return reg
}
