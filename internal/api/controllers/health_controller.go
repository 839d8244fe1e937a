package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"founderkit/pkg/utils"
)

// Pinger checks a backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthController struct {
	checks map[string]Pinger
}

func NewHealthController(checks map[string]Pinger) *HealthController {
	return &HealthController{checks: checks}
}

// GET /healthz
func (hc *HealthController) HealthHandler(c *gin.Context) {
	status := map[string]string{}
	healthy := true
	for name, check := range hc.checks {
		if err := check.Ping(c.Request.Context()); err != nil {
			utils.Logger(c).Sugar().Warnw("health check failed", "check", name, "error", err)
			status[name] = "down"
			healthy = false
			continue
		}
		status[name] = "up"
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, utils.APIResponse{
			Status:  "error",
			Code:    http.StatusServiceUnavailable,
			Message: "Service unhealthy",
			TraceID: c.GetString("trace_id"),
			Data:    status,
		})
		return
	}
	utils.RespondSuccess(c, status, "ok")
}
