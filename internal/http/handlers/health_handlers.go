package handlers

import (
	"net/http"
	"time"
)

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResult
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, HealthResult{
		Status:  "ok",
		Service: "ink-to-doc-api",
		Time:    time.Now().Format(time.RFC3339),
	})
}
