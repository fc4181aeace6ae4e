package config

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"gallery-viewer/internal/gallery"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed for %s: %s (value: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("configuration validation failed: %s", strings.Join(messages, "; "))
}

var (
	environments  = []string{"development", "production", "test", "staging"}
	sources       = []string{"markup", "manifest", "dir", "bucket"}
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{"json", "text", "console"}
	bucketPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,61}[a-z0-9]$`)
)

// checker collects failed expectations
type checker struct {
	errs ValidationErrors
}

func (c *checker) expect(ok bool, field string, value interface{}, message string) {
	if !ok {
		c.errs = append(c.errs, ValidationError{Field: field, Value: value, Message: message})
	}
}

// Validate checks the whole configuration and reports every problem at once
func (c *Config) Validate() error {
	v := &checker{}

	c.validateServer(v)
	c.validateGallery(v)
	// Storage is only dialled for the bucket source
	if c.Gallery.Source == "bucket" {
		c.validateStorage(v)
	}
	if c.Logging != nil {
		c.validateLogging(v)
	}
	if c.Server != nil {
		c.validateTimeouts(v)
	}

	if len(v.errs) > 0 {
		return v.errs
	}
	return nil
}

func (c *Config) validateServer(v *checker) {
	port, err := strconv.Atoi(c.Port)
	switch {
	case c.Port == "":
		v.expect(false, "port", c.Port, "port cannot be empty")
	case err != nil:
		v.expect(false, "port", c.Port, "port must be a valid integer")
	default:
		v.expect(port >= 1 && port <= 65535, "port", c.Port, "port must be between 1 and 65535")
	}

	v.expect(c.Environment == "" || slices.Contains(environments, c.Environment),
		"environment", c.Environment, "environment must be one of: "+strings.Join(environments, ", "))
}

func (c *Config) validateGallery(v *checker) {
	g := c.Gallery

	_, err := gallery.ParseMode(g.Mode)
	v.expect(err == nil, "gallery.mode", g.Mode, "gallery mode must be one of: all, batch, paged")
	v.expect(g.BatchSize > 0, "gallery.batch_size", g.BatchSize, "batch size must be greater than 0")
	v.expect(g.InitialBatches >= 0, "gallery.initial_batches", g.InitialBatches, "initial batches cannot be negative")

	if g.PerPage < 1 {
		v.expect(false, "gallery.per_page", g.PerPage, "items per page must be greater than 0")
	} else {
		v.expect(g.PerPage <= 500, "gallery.per_page", g.PerPage, "items per page cannot exceed 500")
	}

	v.expect(g.PagerWindow > 0, "gallery.pager_window", g.PagerWindow, "pager window must be greater than 0")
	v.expect(g.RevealMargin >= 0, "gallery.reveal_margin", g.RevealMargin, "reveal margin must be a non-negative integer")
	v.expect(g.ScrollDelay >= 0 && g.ScrollDelay <= 5*time.Second,
		"gallery.scroll_delay", g.ScrollDelay, "scroll delay must be a duration between 0 and 5s")

	if !slices.Contains(sources, g.Source) {
		v.expect(false, "gallery.source", g.Source, "gallery source must be one of: "+strings.Join(sources, ", "))
	} else {
		v.expect(g.Source == "bucket" || g.SourcePath != "",
			"gallery.source_path", g.SourcePath, "source path is required for markup, manifest and dir sources")
	}

	v.expect(strings.HasPrefix(g.MediaPrefix, "/"), "gallery.media_prefix", g.MediaPrefix, "media prefix must be an absolute URL path")
}

func (c *Config) validateStorage(v *checker) {
	s := c.Storage

	v.expect(s.Endpoint != "", "storage.endpoint", s.Endpoint, "storage endpoint cannot be empty")

	if s.BucketName == "" {
		v.expect(false, "storage.bucket_name", s.BucketName, "storage bucket name cannot be empty")
	} else {
		v.expect(isValidBucketName(s.BucketName), "storage.bucket_name", s.BucketName,
			"storage bucket name must be 3-63 characters, lowercase alphanumeric and hyphens only")
	}

	if c.Environment == "production" {
		v.expect(s.AccessKeyID != "" && s.AccessKeyID != "minioadmin",
			"storage.access_key_id", s.AccessKeyID, "storage access key ID must be set for production environment")
		v.expect(s.SecretAccessKey != "" && s.SecretAccessKey != "minioadmin",
			"storage.secret_access_key", "[REDACTED]", "storage secret access key must be set for production environment")
	}
}

func (c *Config) validateLogging(v *checker) {
	level := strings.ToLower(c.Logging.Level)
	format := strings.ToLower(c.Logging.Format)

	v.expect(slices.Contains(logLevels, level), "logging.level", c.Logging.Level,
		"logging level must be one of: "+strings.Join(logLevels, ", "))
	v.expect(slices.Contains(logFormats, format), "logging.format", c.Logging.Format,
		"logging format must be one of: "+strings.Join(logFormats, ", "))
}

func (c *Config) validateTimeouts(v *checker) {
	limit := func(field string, d time.Duration) {
		if d <= 0 {
			v.expect(false, field, d, "timeout must be greater than 0")
			return
		}
		v.expect(d <= 5*time.Minute, field, d, "timeout should not exceed 5 minutes")
	}

	limit("server.read_timeout", c.Server.ReadTimeout)
	limit("server.write_timeout", c.Server.WriteTimeout)
	v.expect(c.Server.IdleTimeout > 0, "server.idle_timeout", c.Server.IdleTimeout, "idle timeout must be greater than 0")
}

// isValidBucketName applies the S3 naming rules a MinIO bucket must follow
func isValidBucketName(name string) bool {
	return bucketPattern.MatchString(name) && !strings.Contains(name, "--")
}
