package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusOK        = "ok"
	healthStatusUnhealthy = "unhealthy"

	readinessTimeout = 2 * time.Second
)

// HealthResponse is the body of both probes
type HealthResponse struct {
	Status string            `json:"status"`
	Mode   string            `json:"mode,omitempty"`
	Media  string            `json:"media,omitempty"`
	Checks map[string]string `json:"checks,omitempty"`
}

// healthzHandler answers liveness probes; the process is alive if it answers
func (h *Handler) healthzHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: healthStatusOK})
}

// readyzHandler answers readiness probes. The catalog is loaded before the
// server starts, so only a bucket backend can make the host unready.
func (h *Handler) readyzHandler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status: healthStatusOK,
		Mode:   string(h.options.Mode),
		Media:  h.mediaBackend(),
		Checks: map[string]string{
			"catalog": strconv.Itoa(h.catalog.Len()) + " items",
		},
	}

	if h.bucket != nil {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		resp.Checks["storage"] = healthStatusHealthy
		if err := h.bucket.Health(ctx); err != nil {
			h.logger.Warn(ctx).Err(err).Msg("Storage readiness check failed")
			resp.Checks["storage"] = healthStatusUnhealthy + ": " + err.Error()
			resp.Status = healthStatusUnhealthy
		}
	}

	status := http.StatusOK
	if resp.Status != healthStatusOK {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// mediaBackend names what serves the media route
func (h *Handler) mediaBackend() string {
	switch {
	case h.bucket != nil:
		return "bucket"
	case h.mediaDir != nil:
		return "dir"
	default:
		return "none"
	}
}
