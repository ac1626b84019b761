package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/LootForge_Go/internal/database"
	"github.com/osse101/LootForge_Go/internal/logger"
)

// readinessTimeout bounds the database ping of a readiness probe
const readinessTimeout = 2 * time.Second

// Health statuses
const (
	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
	checkDatabase           = "database"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: healthStatusOK})
	}
}

// HandleReadyz provides a readiness check that validates database connectivity
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic (database connected)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		start := time.Now()
		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error("Readiness check failed", "check", checkDatabase, "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  healthStatusUnavailable,
				Message: "database connection failed",
				Checks:  map[string]string{checkDatabase: healthStatusUnavailable},
			})
			return
		}
		logger.FromContext(r.Context()).Debug("Readiness check passed", "ping_ms", time.Since(start).Milliseconds())

		respondJSON(w, http.StatusOK, HealthResponse{
			Status: healthStatusOK,
			Checks: map[string]string{checkDatabase: healthStatusOK},
		})
	}
}
