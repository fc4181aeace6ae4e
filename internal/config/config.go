// Package config provides application configuration management
// with validation and environment parsing
package config

import (
	"os"
	"strconv"
	"time"

	"gallery-viewer/internal/gallery"
)

// Config represents the application configuration
type Config struct {
	Environment string
	Port        string
	Host        string
	Gallery     GalleryConfig
	Storage     StorageConfig
	Logging     *LoggingConfig
	Server      *ServerConfig
}

// GalleryConfig holds the viewer behaviour and where its items come from
type GalleryConfig struct {
	Title          string
	Mode           string
	BatchSize      int
	InitialBatches int
	PerPage        int
	PagerWindow    int
	RevealMargin   int
	AutoScroll     bool
	ScrollDelay    time.Duration

	// Source is one of markup, manifest, dir or bucket
	Source     string
	SourcePath string
	// MediaPrefix is the URL path under which dir and bucket images are served
	MediaPrefix string
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
	Region          string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
	Output string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load creates a new configuration from environment variables with validation
func Load() (*Config, error) {
	useSSL, _ := strconv.ParseBool(getEnv("STORAGE_USE_SSL", "false"))

	readTimeout, _ := time.ParseDuration(getEnv("READ_TIMEOUT", "10s"))
	writeTimeout, _ := time.ParseDuration(getEnv("WRITE_TIMEOUT", "10s"))
	idleTimeout, _ := time.ParseDuration(getEnv("SERVER_TIMEOUT", "30s"))

	config := &Config{
		Environment: getEnv("GO_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		Host:        getEnv("HOST", "localhost"),
		Gallery:     loadGallery(),
		Storage: StorageConfig{
			Endpoint:        getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
			BucketName:      getEnv("STORAGE_BUCKET", "images"),
			UseSSL:          useSSL,
			Region:          getEnv("STORAGE_REGION", "us-east-1"),
		},
		Logging: &LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			Output: getEnv("LOG_OUTPUT", "stdout"),
		},
		Server: &ServerConfig{
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func loadGallery() GalleryConfig {
	// Unparseable numbers become 0 or -1 and are reported by Validate
	batchSize, _ := strconv.Atoi(getEnv("GALLERY_BATCH_SIZE", "12"))
	initialBatches, err := strconv.Atoi(getEnv("GALLERY_INITIAL_BATCHES", "1"))
	if err != nil {
		initialBatches = -1
	}
	perPage, _ := strconv.Atoi(getEnv("GALLERY_PER_PAGE", "12"))
	pagerWindow, _ := strconv.Atoi(getEnv("GALLERY_PAGER_WINDOW", "7"))
	revealMargin, err := strconv.Atoi(getEnv("GALLERY_REVEAL_MARGIN", "300"))
	if err != nil {
		revealMargin = -1
	}
	autoScroll, _ := strconv.ParseBool(getEnv("GALLERY_AUTO_SCROLL", "true"))
	scrollDelay, err := time.ParseDuration(getEnv("GALLERY_SCROLL_DELAY", "60ms"))
	if err != nil {
		scrollDelay = -1
	}

	return GalleryConfig{
		Title:          getEnv("GALLERY_TITLE", "Gallery"),
		Mode:           getEnv("GALLERY_MODE", string(gallery.ModePaged)),
		BatchSize:      batchSize,
		InitialBatches: initialBatches,
		PerPage:        perPage,
		PagerWindow:    pagerWindow,
		RevealMargin:   revealMargin,
		AutoScroll:     autoScroll,
		ScrollDelay:    scrollDelay,
		Source:         getEnv("GALLERY_SOURCE", "dir"),
		SourcePath:     getEnv("GALLERY_SOURCE_PATH", "images"),
		MediaPrefix:    getEnv("GALLERY_MEDIA_PREFIX", "/media"),
	}
}

// ViewerOptions converts the gallery settings into viewer options. Hosts
// fill in the scroller, scheduler, location and listener they provide.
func (g GalleryConfig) ViewerOptions() gallery.Options {
	mode, err := gallery.ParseMode(g.Mode)
	if err != nil {
		mode = gallery.ModePaged
	}

	return gallery.Options{
		Mode:           mode,
		BatchSize:      g.BatchSize,
		PerPage:        g.PerPage,
		PagerWindow:    g.PagerWindow,
		RevealMargin:   g.RevealMargin,
		InitialBatches: g.InitialBatches,
		AutoScroll:     g.AutoScroll,
		ScrollDelay:    g.ScrollDelay,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
