package handler

import (
	"net/http"

	"github.com/suar-net/bestsellers-gw/internal/model"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct{}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports liveness only; the upstream is not contacted.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	respondWithJson(w, http.StatusOK, model.Health{Healthy: true, Status: "OK"})
}
