package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	apperrors "github.com/hireloop/interview-api/pkg/errors"
	"github.com/hireloop/interview-api/pkg/response"
)

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	db *sqlx.DB
}

// NewHealthHandler creates a health handler.
func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// RegisterRoutes mounts the probe endpoints.
func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.Live)
	r.GET("/readyz", h.Ready)
}

// Live reports process liveness.
func (h *HealthHandler) Live(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}

// Ready reports dependency readiness.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		response.Error(c, apperrors.Wrap(err, "NOT_READY", 503, "database unreachable"))
		return
	}
	response.OK(c, gin.H{"status": "ready"})
}
