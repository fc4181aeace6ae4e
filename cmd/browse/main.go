package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"gallery-viewer/internal/catalog"
	"gallery-viewer/internal/config"
	"gallery-viewer/internal/observability"
	"gallery-viewer/internal/platform/storage"
	"gallery-viewer/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "browse: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The program owns the terminal, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if path := cfg.Logging.Output; path != "" && path != "stdout" && path != "stderr" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	obsCfg := observability.LoadConfig()
	obsCfg.Environment = cfg.Environment
	logger := observability.NewLoggerTo(obsCfg, logOut).With("host", "tui")

	ctx := context.Background()

	req := catalog.Request{
		Kind:        catalog.Kind(cfg.Gallery.Source),
		Path:        cfg.Gallery.SourcePath,
		MediaPrefix: cfg.Gallery.MediaPrefix,
	}
	var loaded *catalog.Result
	if req.Kind == catalog.KindBucket {
		bucket, err := storage.NewMinIOClient(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
		loaded, err = catalog.Load(ctx, req, bucket)
		if err != nil {
			return err
		}
	} else {
		loaded, err = catalog.Load(ctx, req, nil)
		if err != nil {
			return err
		}
	}
	logger.Info(ctx).Int("items", loaded.Catalog.Len()).Str("source", cfg.Gallery.Source).Msg("Catalog loaded")

	title := cfg.Gallery.Title
	if loaded.Title != "" {
		title = loaded.Title
	}

	galleryMetrics, err := observability.NewGalleryMetrics(observability.GetGalleryMeter())
	if err != nil {
		return fmt.Errorf("failed to create gallery metrics: %w", err)
	}
	opts := cfg.Gallery.ViewerOptions()
	opts.Listener = galleryMetrics.Listener(ctx, logger, "tui")

	model, err := tui.NewModel(title, loaded.Catalog, opts)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
