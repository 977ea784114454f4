package handlers

import (
	"net/http"

	"github.com/cecil-the-coder/animal-fact-kit/pkg/backendtypes"
)

type HealthHandler struct {
	version string
}

func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// HealthCheck returns simple liveness status
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	SendJSON(w, http.StatusOK, backendtypes.HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}
