package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"tripcost/cfg"
	"tripcost/internal/airport"
	"tripcost/internal/flight"
	"tripcost/internal/savedtrip"
	"tripcost/internal/trip"
	"tripcost/pkg/cache"
	"tripcost/pkg/db"
	"tripcost/pkg/idgen"
	"tripcost/pkg/logger"
	"tripcost/pkg/metrics"

	_ "tripcost/cmd/travel/docs" // swagger docs

	"github.com/gin-gonic/gin"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           Trip Cost API
// @version         1.0
// @description     Prices multi-city trips: synthetic flights, ground transport, food and hotels.
// @BasePath        /
// @schemes         http
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Otel
	// ============
	if config.Observability.OTLPEndpoint == "" {
		zlogger.Info("OTLP endpoint not set, telemetry export disabled")
	} else {
		shutdownOtel, err := initOtel(ctx, &config.Observability, zlogger)
		if err != nil {
			log.Fatalf("failed to initialize OpenTelemetry: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOtel(ctx); err != nil {
				zlogger.Error("failed to shutdown OpenTelemetry", logger.Field{Key: "err", Value: err})
			}
		}()
	}

	// ============
	// Store
	// ============
	store, closeStore, err := initStore(ctx, config)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	// ============
	// Metrics
	// ============
	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(promRegistry)

	// ============
	// Id generator
	// ============
	ids, err := idgen.NewSnowflakeGenerator(config.SnowflakeNodeID)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// Internal Service
	// ============
	flightSvc := flight.NewService(store, config.CacheTTLMinutes, component(zlogger, "flight"), appMetrics)
	tripSvc := trip.NewService(component(zlogger, "trip"), appMetrics, ids, nil)
	savedStore := savedtrip.NewStore(store, ids, component(zlogger, "savedtrip"), appMetrics, savedtrip.WithKey(config.SavedTripsKey))

	// ============
	// HTTP
	// ============
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(config.Observability.ServiceName))
	r.Use(RequestIDMiddleware())
	r.Use(TraceLoggerMiddleware(zlogger))

	airport.NewHandler().RegisterRoutes(r)
	flight.NewFlightHandler(flightSvc).RegisterRoutes(r)
	trip.NewTripHandler(tripSvc).RegisterRoutes(r)
	savedtrip.NewHandler(savedStore).RegisterRoutes(r)

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))
	r.GET("/healthz", healthHandler([]healthCheck{store.Ping}))
	initSwagger(r)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.AppPort),
		Handler:           edgeHandler(r, config),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zlogger.Info("Starting server", logger.Field{Key: "addr", Value: srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	zlogger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlogger.Error("Server shutdown failed", logger.Field{Key: "err", Value: err})
	}
}

// edgeHandler applies CORS and per-IP rate limiting in front of the router.
func edgeHandler(r http.Handler, config *cfg.Config) http.Handler {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: config.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})

	var h http.Handler = corsHandler.Handler(r)
	if config.RateLimitPerMinute > 0 {
		h = httprate.LimitByIP(config.RateLimitPerMinute, time.Minute)(h)
	}
	return h
}

type healthCheck func(ctx context.Context) error

// component tags every line of a service's logger with its name.
func component(l *logger.ZeroLogger, name string) logger.Client {
	return l.With(logger.Field{Key: "component", Value: name})
}

// initStore builds the key-value store shared by the flight cache and the
// saved-trip store.
func initStore(ctx context.Context, config *cfg.Config) (cache.Cache, func(), error) {
	switch config.StoreBackend {
	case cfg.StorePostgres:
		client, err := db.NewSQLClient(ctx, db.DriverName, config.Postgres.DSN())
		if err != nil {
			return nil, nil, err
		}
		return db.NewKVStore(client), func() { _ = client.Close() }, nil
	default:
		rdb := redis.NewClient(&redis.Options{
			Addr:     config.Redis.Host + ":" + config.Redis.Port,
			Password: config.Redis.Password,
		})
		return cache.NewRedisCacheWithClient(rdb), func() { _ = rdb.Close() }, nil
	}
}

func healthHandler(checks []healthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		for _, check := range checks {
			if err := check(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>Trip Cost API</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(200, html)
	})
}
