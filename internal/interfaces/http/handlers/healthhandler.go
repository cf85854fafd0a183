package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/estatehub/internal/infrastructure/scheduler"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// Pinger checks one backing dependency.
type Pinger func(ctx context.Context) error

// SweepReporter exposes the outcome of the last background SLA sweep.
type SweepReporter interface {
	LastSweep() (scheduler.SweepRun, bool)
}

type HealthHandler struct {
	checks map[string]Pinger
	sweeps SweepReporter
	logger logger.Interface
}

func NewHealthHandler(checks map[string]Pinger, logger logger.Interface) *HealthHandler {
	return &HealthHandler{checks: checks, logger: logger}
}

// SetSweepReporter adds the last sweep to the health body. It never changes the status code.
func (h *HealthHandler) SetSweepReporter(r SweepReporter) {
	h.sweeps = r
}

// HealthCheck handles GET /health. Any failing dependency turns the response into a 503.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	components := make(map[string]string, len(h.checks))
	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			h.logger.Warnw("health check failed", "component", name, "error", err)
			components[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		components[name] = "up"
	}

	overall := "healthy"
	if status != http.StatusOK {
		overall = "unhealthy"
	}
	body := gin.H{"status": overall, "components": components}
	if h.sweeps != nil {
		if run, ok := h.sweeps.LastSweep(); ok {
			sweep := gin.H{
				"started_at":  run.StartedAt.Format(time.RFC3339),
				"duration_ms": run.Duration.Milliseconds(),
				"notified":    run.Notified,
			}
			if run.Err != nil {
				sweep["error"] = run.Err.Error()
			}
			body["sla_sweep"] = sweep
		}
	}
	c.JSON(status, body)
}
