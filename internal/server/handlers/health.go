package handlers

import (
	"log/slog"
	"net/http"
	"time"

	ferrors "git.home.luguber.info/inful/sportcal/internal/foundation/errors"
	"git.home.luguber.info/inful/sportcal/internal/server/responses"
	"git.home.luguber.info/inful/sportcal/internal/version"
)

// MonitoringHandlers contains health and status endpoints.
type MonitoringHandlers struct {
	startTime    time.Time
	errorAdapter *ferrors.HTTPErrorAdapter
}

// NewMonitoringHandlers creates the monitoring handler set.
func NewMonitoringHandlers(startTime time.Time) *MonitoringHandlers {
	return &MonitoringHandlers{
		startTime:    startTime,
		errorAdapter: ferrors.NewHTTPErrorAdapter(slog.Default()),
	}
}

// HandleHealth handles GET /health.
func (h *MonitoringHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, responses.HealthResponse{Status: "ok"}); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r,
			ferrors.WrapError(err, ferrors.CategoryInternal, "failed to write health response").Build())
	}
}

// HandleStatus handles GET /status on the admin port.
func (h *MonitoringHandlers) HandleStatus(w http.ResponseWriter, r *http.Request) {
	status := responses.StatusResponse{
		Status:    "running",
		Version:   version.Version,
		Uptime:    time.Since(h.startTime).Seconds(),
		StartTime: h.startTime.UTC(),
	}
	if err := writeJSONPretty(w, r, http.StatusOK, status); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r,
			ferrors.WrapError(err, ferrors.CategoryInternal, "failed to write status response").Build())
	}
}
