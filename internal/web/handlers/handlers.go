package handlers

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"

	"gallery-viewer/internal/gallery"
	"gallery-viewer/internal/observability"
	"gallery-viewer/internal/platform/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

// ObjectSource streams bucket objects behind the media route
type ObjectSource interface {
	Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error)
	Health(ctx context.Context) error
}

// Dependencies wires a Handler. Only Catalog is required.
type Dependencies struct {
	Catalog *gallery.Catalog
	Title   string
	Options gallery.Options

	// MediaPrefix is the URL path serving images from Bucket or MediaDir
	MediaPrefix string
	Bucket      ObjectSource
	MediaDir    fs.FS

	Logger         *observability.Logger
	Tracer         trace.Tracer
	HTTPMetrics    *observability.HTTPMetrics
	GalleryMetrics *observability.GalleryMetrics
}

type Handler struct {
	catalog *gallery.Catalog
	title   string
	options gallery.Options

	mediaPrefix string
	bucket      ObjectSource
	mediaDir    fs.FS

	logger         *observability.Logger
	tracer         trace.Tracer
	httpMetrics    *observability.HTTPMetrics
	galleryMetrics *observability.GalleryMetrics

	page *template.Template
}

func New(deps Dependencies) (*Handler, error) {
	if deps.Catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	page, err := template.New("gallery.html").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/gallery.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	h := &Handler{
		catalog:        deps.Catalog,
		title:          deps.Title,
		options:        deps.Options,
		mediaPrefix:    "/" + strings.Trim(deps.MediaPrefix, "/"),
		bucket:         deps.Bucket,
		mediaDir:       deps.MediaDir,
		logger:         deps.Logger,
		tracer:         deps.Tracer,
		httpMetrics:    deps.HTTPMetrics,
		galleryMetrics: deps.GalleryMetrics,
		page:           page,
	}
	if h.title == "" {
		h.title = "Gallery"
	}
	if h.mediaPrefix == "/" {
		h.mediaPrefix = "/media"
	}
	if h.logger == nil {
		h.logger = observability.NewNopLogger()
	}
	if h.tracer == nil {
		h.tracer = observability.GetTracer()
	}

	return h, nil
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(observability.TracingMiddleware(h.tracer))
	if h.httpMetrics != nil {
		r.Use(observability.MetricsMiddleware(h.httpMetrics))
	}

	r.Get("/healthz", h.healthzHandler)
	r.Get("/readyz", h.readyzHandler)

	r.Get("/", h.indexHandler)
	r.Get("/gallery", h.galleryHandler)

	r.Route("/api/gallery", func(r chi.Router) {
		r.Get("/items", h.listItemsHandler)
		r.Get("/view", h.viewHandler)
		r.Post("/input", h.inputHandler)
	})

	if h.bucket != nil || h.mediaDir != nil {
		r.Get(h.mediaPrefix+"/*", h.mediaHandler)
	}

	return r
}

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/gallery", http.StatusFound)
}
