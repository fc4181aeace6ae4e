package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGallery() GalleryConfig {
	return GalleryConfig{
		Mode:           "paged",
		BatchSize:      12,
		InitialBatches: 1,
		PerPage:        12,
		PagerWindow:    7,
		RevealMargin:   300,
		ScrollDelay:    60 * time.Millisecond,
		Source:         "dir",
		SourcePath:     "images",
		MediaPrefix:    "/media",
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
		errorCount  int
	}{
		{
			name:        "valid development config",
			mutate:      func(c *Config) {},
			expectError: false,
		},
		{
			name: "storage ignored unless bucket source",
			mutate: func(c *Config) {
				c.Storage = StorageConfig{}
			},
			expectError: false,
		},
		{
			name: "bucket source validates storage",
			mutate: func(c *Config) {
				c.Gallery.Source = "bucket"
				c.Gallery.SourcePath = ""
				c.Storage = StorageConfig{}
			},
			expectError: true,
			errorCount:  2,
		},
		{
			name: "production bucket rejects default credentials",
			mutate: func(c *Config) {
				c.Environment = "production"
				c.Gallery.Source = "bucket"
			},
			expectError: true,
			errorCount:  2,
		},
		{
			name: "unknown mode and source",
			mutate: func(c *Config) {
				c.Gallery.Mode = "carousel"
				c.Gallery.Source = "ftp"
			},
			expectError: true,
			errorCount:  2,
		},
		{
			name: "non-positive sizes",
			mutate: func(c *Config) {
				c.Gallery.BatchSize = 0
				c.Gallery.PerPage = 0
				c.Gallery.PagerWindow = 0
				c.Gallery.InitialBatches = -1
			},
			expectError: true,
			errorCount:  4,
		},
		{
			name: "per page too large",
			mutate: func(c *Config) {
				c.Gallery.PerPage = 1000
			},
			expectError: true,
			errorCount:  1,
		},
		{
			name: "missing source path",
			mutate: func(c *Config) {
				c.Gallery.Source = "manifest"
				c.Gallery.SourcePath = ""
			},
			expectError: true,
			errorCount:  1,
		},
		{
			name: "relative media prefix and slow scroll",
			mutate: func(c *Config) {
				c.Gallery.MediaPrefix = "media"
				c.Gallery.ScrollDelay = 10 * time.Second
			},
			expectError: true,
			errorCount:  2,
		},
		{
			name: "bad port and log level",
			mutate: func(c *Config) {
				c.Port = "http"
				c.Logging.Level = "verbose"
			},
			expectError: true,
			errorCount:  2,
		},
		{
			name: "zero timeouts",
			mutate: func(c *Config) {
				c.Server = &ServerConfig{}
			},
			expectError: true,
			errorCount:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{
				Environment: "development",
				Port:        "8080",
				Host:        "localhost",
				Gallery:     validGallery(),
				Storage: StorageConfig{
					Endpoint:        "localhost:9000",
					AccessKeyID:     "minioadmin",
					SecretAccessKey: "minioadmin",
					BucketName:      "images",
					Region:          "us-east-1",
				},
				Logging: &LoggingConfig{
					Level:  "info",
					Format: "json",
					Output: "stdout",
				},
				Server: &ServerConfig{
					ReadTimeout:  10 * time.Second,
					WriteTimeout: 10 * time.Second,
					IdleTimeout:  30 * time.Second,
				},
			}
			tt.mutate(config)

			err := config.Validate()

			if tt.expectError {
				require.Error(t, err)

				ve, ok := err.(ValidationErrors)
				require.True(t, ok, "expected ValidationErrors, got %T", err)
				assert.Len(t, ve, tt.errorCount, "Expected %d validation errors, got %v", tt.errorCount, ve)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Field:   "test_field",
		Value:   "test_value",
		Message: "test message",
	}

	expected := "config validation failed for test_field: test message (value: test_value)"
	assert.Equal(t, expected, err.Error())
}

func TestBucketNameValidation(t *testing.T) {
	tests := []struct {
		name   string
		bucket string
		valid  bool
	}{
		{"valid lowercase", "my-bucket", true},
		{"valid with numbers", "bucket123", true},
		{"valid mixed", "my-bucket-123", true},
		{"too short", "ab", false},
		{"too long", strings.Repeat("a", 64), false},
		{"uppercase", "MyBucket", false},
		{"starts with hyphen", "-bucket", false},
		{"ends with hyphen", "bucket-", false},
		{"consecutive hyphens", "my--bucket", false},
		{"ip address format", "192.168.1.1", false},
		{"underscore", "my_bucket", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isValidBucketName(tt.bucket)
			assert.Equal(t, tt.valid, result, "Bucket name '%s' validation failed", tt.bucket)
		})
	}
}

func TestLoadWithEnvironmentValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("GO_ENV", "staging")

	config, err := Load()
	assert.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, "staging", config.Environment)

	t.Setenv("GO_ENV", "qa")
	_, err = Load()
	assert.Error(t, err)
}
