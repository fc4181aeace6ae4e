package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gallery-viewer/internal/catalog"
	"gallery-viewer/internal/config"
	"gallery-viewer/internal/observability"
	"gallery-viewer/internal/platform/server"
	"gallery-viewer/internal/platform/storage"
	"gallery-viewer/internal/web/handlers"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	obsCfg := observability.LoadConfig()
	obsCfg.Environment = cfg.Environment
	logger := observability.NewLogger(obsCfg)
	otel.SetErrorHandler(otel.ErrorHandlerFunc(logger.OTELErrorHandler()))

	ctx := context.Background()

	provider, err := observability.NewProvider(ctx, obsCfg)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to initialize telemetry")
		os.Exit(1)
	}

	var bucket *storage.MinIOClient
	if catalog.Kind(cfg.Gallery.Source) == catalog.KindBucket {
		bucket, err = storage.NewMinIOClient(ctx, cfg.Storage)
		if err != nil {
			logger.Error(ctx).Err(err).Msg("Failed to connect to storage")
			os.Exit(1)
		}
	}

	loaded, err := loadCatalog(ctx, cfg, bucket)
	if err != nil {
		logger.Error(ctx).Err(err).Str("source", cfg.Gallery.Source).Msg("Failed to load catalog")
		os.Exit(1)
	}
	logger.Info(ctx).
		Str("source", cfg.Gallery.Source).
		Str("path", cfg.Gallery.SourcePath).
		Int("items", loaded.Catalog.Len()).
		Msg("Catalog loaded")

	title := cfg.Gallery.Title
	if loaded.Title != "" {
		title = loaded.Title
	}

	httpMetrics, err := observability.NewHTTPMetrics(observability.GetMeter())
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to create HTTP metrics")
		os.Exit(1)
	}
	galleryMetrics, err := observability.NewGalleryMetrics(observability.GetGalleryMeter())
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to create gallery metrics")
		os.Exit(1)
	}

	deps := handlers.Dependencies{
		Catalog:        loaded.Catalog,
		Title:          title,
		Options:        cfg.Gallery.ViewerOptions(),
		MediaPrefix:    cfg.Gallery.MediaPrefix,
		Logger:         logger,
		Tracer:         observability.GetTracer(),
		HTTPMetrics:    httpMetrics,
		GalleryMetrics: galleryMetrics,
	}
	switch catalog.Kind(cfg.Gallery.Source) {
	case catalog.KindBucket:
		deps.Bucket = bucket
	case catalog.KindDir:
		deps.MediaDir = os.DirFS(cfg.Gallery.SourcePath)
	}

	handler, err := handlers.New(deps)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to create handlers")
		os.Exit(1)
	}

	srv := server.New(cfg.Host, cfg.Port, handler.Routes(), cfg.Server)

	go func() {
		logger.Info(ctx).
			Str("addr", srv.Addr).
			Str("mode", cfg.Gallery.Mode).
			Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx).Err(err).Msg("Server failed to start")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx).Msg("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx).Err(err).Msg("Server forced to shutdown")
	}
	if err := provider.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to flush telemetry")
	}

	logger.Info(ctx).Msg("Server exited")
}

func loadCatalog(ctx context.Context, cfg *config.Config, bucket *storage.MinIOClient) (*catalog.Result, error) {
	req := catalog.Request{
		Kind:        catalog.Kind(cfg.Gallery.Source),
		Path:        cfg.Gallery.SourcePath,
		MediaPrefix: cfg.Gallery.MediaPrefix,
	}
	if bucket == nil {
		return catalog.Load(ctx, req, nil)
	}
	return catalog.Load(ctx, req, bucket)
}
