package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"gallery-viewer/internal/gallery"
)

const galleryInstrumentationName = "gallery-viewer/gallery"

// GalleryMetrics holds the viewer interaction instruments
type GalleryMetrics struct {
	opens       metric.Int64Counter
	closes      metric.Int64Counter
	steps       metric.Int64Counter
	reveals     metric.Int64Counter
	pageChanges metric.Int64Counter
	shown       metric.Int64Histogram
}

// NewGalleryMetrics creates and registers the viewer instruments
func NewGalleryMetrics(meter metric.Meter) (*GalleryMetrics, error) {
	opens, err := meter.Int64Counter(
		"gallery.viewer.opens",
		metric.WithDescription("Number of times the modal was opened"),
		metric.WithUnit("{open}"),
	)
	if err != nil {
		return nil, err
	}

	closes, err := meter.Int64Counter(
		"gallery.viewer.closes",
		metric.WithDescription("Number of times the modal was closed"),
		metric.WithUnit("{close}"),
	)
	if err != nil {
		return nil, err
	}

	steps, err := meter.Int64Counter(
		"gallery.viewer.steps",
		metric.WithDescription("Number of prev/next navigations inside the modal"),
		metric.WithUnit("{step}"),
	)
	if err != nil {
		return nil, err
	}

	reveals, err := meter.Int64Counter(
		"gallery.viewer.reveals",
		metric.WithDescription("Number of batch reveals"),
		metric.WithUnit("{reveal}"),
	)
	if err != nil {
		return nil, err
	}

	pageChanges, err := meter.Int64Counter(
		"gallery.viewer.page_changes",
		metric.WithDescription("Number of page changes"),
		metric.WithUnit("{change}"),
	)
	if err != nil {
		return nil, err
	}

	shown, err := meter.Int64Histogram(
		"gallery.viewer.shown",
		metric.WithDescription("Revealed item count after a batch reveal"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, err
	}

	return &GalleryMetrics{
		opens:       opens,
		closes:      closes,
		steps:       steps,
		reveals:     reveals,
		pageChanges: pageChanges,
		shown:       shown,
	}, nil
}

// GetGalleryMeter returns a meter for viewer metrics
func GetGalleryMeter() metric.Meter {
	return otel.Meter(galleryInstrumentationName)
}

// Listener returns a gallery.Listener recording into m and logging at debug
// level. ctx carries the request span so log lines and exemplars correlate.
// Both m and logger may be nil.
func (m *GalleryMetrics) Listener(ctx context.Context, logger *Logger, host string) gallery.Listener {
	return &galleryListener{ctx: ctx, metrics: m, logger: logger, host: attribute.String("gallery.host", host)}
}

type galleryListener struct {
	ctx     context.Context
	metrics *GalleryMetrics
	logger  *Logger
	host    attribute.KeyValue
}

func (l *galleryListener) OnOpen(index int, item gallery.Item) {
	if l.metrics != nil {
		l.metrics.opens.Add(l.ctx, 1, metric.WithAttributes(l.host))
	}
	if l.logger != nil {
		l.logger.Debug(l.ctx).Int("index", index).Str("source", item.Source).Msg("Modal opened")
	}
}

func (l *galleryListener) OnClose() {
	if l.metrics != nil {
		l.metrics.closes.Add(l.ctx, 1, metric.WithAttributes(l.host))
	}
	if l.logger != nil {
		l.logger.Debug(l.ctx).Msg("Modal closed")
	}
}

func (l *galleryListener) OnStep(direction, index int) {
	dir := "next"
	if direction < 0 {
		dir = "prev"
	}
	if l.metrics != nil {
		l.metrics.steps.Add(l.ctx, 1, metric.WithAttributes(l.host, attribute.String("direction", dir)))
	}
	if l.logger != nil {
		l.logger.Debug(l.ctx).Str("direction", dir).Int("index", index).Msg("Modal stepped")
	}
}

func (l *galleryListener) OnReveal(shown int) {
	if l.metrics != nil {
		l.metrics.reveals.Add(l.ctx, 1, metric.WithAttributes(l.host))
		l.metrics.shown.Record(l.ctx, int64(shown), metric.WithAttributes(l.host))
	}
	if l.logger != nil {
		l.logger.Debug(l.ctx).Int("shown", shown).Msg("Batch revealed")
	}
}

func (l *galleryListener) OnPage(page int) {
	if l.metrics != nil {
		l.metrics.pageChanges.Add(l.ctx, 1, metric.WithAttributes(l.host))
	}
	if l.logger != nil {
		l.logger.Debug(l.ctx).Int("page", page).Msg("Page changed")
	}
}
