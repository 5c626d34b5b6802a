package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-redis/redis/v9"
	"github.com/joho/godotenv"
	"github.com/tmaxmax/go-sse"

	"github.com/codecraft26/aeroniva-console/internal/api"
	"github.com/codecraft26/aeroniva-console/internal/bus"
	"github.com/codecraft26/aeroniva-console/internal/geo"
	"github.com/codecraft26/aeroniva-console/internal/options"
	"github.com/codecraft26/aeroniva-console/internal/upstream"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	port := getenv("PORT", "8085")
	apiBase := getenv("REPORTS_API_BASE", "https://backend.otito.in/api")
	natsURL := getenv("NATS_URL", "")
	redisAddr := getenv("REDIS_ADDR", "")
	mapConfigPath := getenv("MAP_CONFIG", "")
	optionsTTL := time.Duration(getenvInt("FILTER_OPTIONS_TTL", 300)) * time.Second
	uploadDelay := time.Duration(getenvInt("UPLOAD_REFRESH_DELAY", 3)) * time.Second
	maxUploadMiB := int64(getenvInt("MAX_UPLOAD_MIB", 10))

	bounds := geo.DefaultBounds()
	palette := geo.MarkerColor
	if mapConfigPath != "" {
		mapCfg, err := geo.LoadConfig(mapConfigPath)
		if err != nil {
			logger.Error("failed to load map config", slog.String("error", err.Error()))
			os.Exit(1)
		}
		bounds = mapCfg.Bounds
		palette = mapCfg.Palette()
	}

	client := upstream.NewClient(apiBase, logger)

	var store options.Store
	if redisAddr != "" {
		redisStore := options.NewRedis(&redis.Options{Addr: redisAddr}, optionsTTL)
		defer redisStore.Close()
		store = redisStore
	} else {
		store = options.NewMemory(optionsTTL)
	}
	optionCache := options.NewCache(store, client.FilterOptions)

	var publisher *bus.Publisher
	if natsURL != "" {
		var err error
		publisher, err = bus.NewPublisher(natsURL)
		if err != nil {
			logger.Error("failed to connect to nats", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer publisher.Close()
	}

	handler := &api.Handler{
		Upstream:     client,
		Options:      optionCache,
		Bus:          publisher,
		SSE:          sse.NewServer(),
		Logger:       logger,
		Bounds:       bounds,
		Palette:      palette,
		UploadDelay:  uploadDelay,
		MaxUploadMiB: maxUploadMiB,
	}
	fetcher := upstream.NewFetcher(client)
	handler.Refresher = upstream.NewRefresher(fetcher, logger, handler.PublishSnapshot)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	handler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     r,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-shutdown
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}()

	logger.Info("aeroniva console listening",
		slog.String("port", port),
		slog.String("reports_api", apiBase))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("error", err.Error()))
	}
}

func getenv(key, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}

func getenvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	if parsed, err := strconv.Atoi(val); err == nil {
		return parsed
	}
	return fallback
}
