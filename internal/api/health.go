package api

import (
	"net/http"
	"time"
)

type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// HealthHandler reports process health. The service is stateless with no
// local collaborators, so it is healthy whenever it can answer.
type HealthHandler struct {
	version   string
	startTime time.Time
}

func NewHealthHandler(version string, startTime time.Time) *HealthHandler {
	return &HealthHandler{version: version, startTime: startTime}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:        "healthy",
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	})
}
