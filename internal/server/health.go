package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// DirectoryProber reports the size of the directory being served.
type DirectoryProber interface {
	Len() int
}

type HealthChecker struct {
	dir        DirectoryProber
	apiURL     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewHealthChecker builds the /healthz handler. apiURL is probed with a HEAD
// request to confirm the directory API listener answers.
func NewHealthChecker(dir DirectoryProber, apiURL string, log *slog.Logger) *HealthChecker {
	clientTO := 5
	return &HealthChecker{
		dir:        dir,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: time.Duration(clientTO) * time.Second},
		log:        log,
	}
}

func (h *HealthChecker) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	h.log.DebugContext(req.Context(), "Performing health checks...")

	var err error
	status := make(map[string]string)
	overallStatus := http.StatusOK

	if h.dir == nil {
		status["directory"] = "unavailable"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(req.Context(), "Health check failed: directory is not initialised")
	} else {
		status["directory"] = "ok"
		status["records"] = strconv.Itoa(h.dir.Len())
	}

	resp, err := h.httpClient.Head(h.apiURL) //nolint:noctx // ctx is overhead for this healthcheck
	switch {
	case err != nil:
		status["api"] = "unreachable"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(req.Context(), "Health check failed: API unreachable", "url", h.apiURL, "error", err)
	case resp.StatusCode >= http.StatusBadRequest:
		status["api"] = "degraded"
		overallStatus = http.StatusServiceUnavailable
		h.log.WarnContext(
			req.Context(),
			"Health check failed: API returned error status",
			"url",
			h.apiURL,
			"status_code",
			resp.StatusCode,
		)
	default:
		status["api"] = "ok"
	}
	if resp != nil {
		if err = resp.Body.Close(); err != nil {
			h.log.WarnContext(req.Context(), "Failed to close response body", "error", err)
		}
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(overallStatus)
	if err = json.NewEncoder(writer).Encode(status); err != nil {
		h.log.ErrorContext(req.Context(), "Failed to write health check response", "error", err)
	}

	h.log.DebugContext(req.Context(), "Health checks completed", "status", overallStatus)
}
