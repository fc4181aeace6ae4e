package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"gallery-viewer/internal/platform/storage"
)

const mediaCacheControl = "public, max-age=3600"

// mediaHandler streams a catalog image from the bucket or the image directory
func (h *Handler) mediaHandler(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
	// Only what the catalog lists is served, never arbitrary keys or files
	if _, ok := h.catalog.IndexOfBySource(h.mediaPrefix + "/" + key); key == "" || !ok {
		http.NotFound(w, r)
		return
	}

	if h.bucket != nil {
		h.streamObject(w, r, key)
		return
	}

	w.Header().Set("Cache-Control", mediaCacheControl)
	http.ServeFileFS(w, r, h.mediaDir, key)
}

func (h *Handler) streamObject(w http.ResponseWriter, r *http.Request, key string) {
	ctx, span := h.tracer.Start(r.Context(), "StreamObject")
	defer span.End()
	span.SetAttributes(attribute.String("storage.key", key))

	body, info, err := h.bucket.Open(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			http.NotFound(w, r)
			return
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to open object")
		h.logger.Error(ctx).Err(err).Str("key", key).Msg("Failed to open object")
		http.Error(w, "Failed to read image", http.StatusBadGateway)
		return
	}
	defer body.Close()

	if info.ETag != "" {
		etag := `"` + strings.Trim(info.ETag, `"`) + `"`
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", mediaCacheControl)
	if info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	if !info.LastModified.IsZero() {
		w.Header().Set("Last-Modified", info.LastModified.UTC().Format(http.TimeFormat))
	}

	n, err := io.Copy(w, body)
	span.SetAttributes(attribute.Int64("storage.bytes", n))
	if err != nil {
		span.RecordError(err)
		h.logger.Warn(ctx).Err(err).Str("key", key).Int64("bytes", n).Msg("Image stream interrupted")
	}
}

