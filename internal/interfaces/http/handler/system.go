package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bizsuite/backend/internal/infrastructure/scheduler"
	"github.com/bizsuite/backend/internal/interfaces/http/dto"
)

// Pinger reports backing-store liveness
type Pinger interface {
	Ping() error
}

// SchedulerStatus reports the payroll scheduler's current state and
// accepts manual run triggers
type SchedulerStatus interface {
	GetStatus() map[string]any
	TriggerManualRun(ctx context.Context) error
}

// SystemHandler handles health and operational status endpoints
type SystemHandler struct {
	BaseHandler
	db        Pinger
	scheduler SchedulerStatus
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger, scheduler SchedulerStatus) *SystemHandler {
	return &SystemHandler{
		db:        db,
		scheduler: scheduler,
	}
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/system/scheduler", h.Scheduler)
	rg.POST("/system/scheduler/runs", h.TriggerSchedulerRun)
}

// Health reports service and database liveness
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			status = "degraded"
			dbStatus = "unreachable"
		}
	}
	h.Success(c, gin.H{
		"status":   status,
		"database": dbStatus,
	})
}

// Scheduler reports the payroll scheduler state
func (h *SystemHandler) Scheduler(c *gin.Context) {
	if h.scheduler == nil {
		h.NotFound(c, "Scheduler is not configured")
		return
	}
	h.Success(c, h.scheduler.GetStatus())
}

// TriggerSchedulerRun starts an immediate payroll run for the previous
// month across all tenants
func (h *SystemHandler) TriggerSchedulerRun(c *gin.Context) {
	if h.scheduler == nil {
		h.NotFound(c, "Scheduler is not configured")
		return
	}
	if err := h.scheduler.TriggerManualRun(c.Request.Context()); err != nil {
		if errors.Is(err, scheduler.ErrSchedulerNotRunning) {
			h.Error(c, http.StatusUnprocessableEntity, dto.ErrCodeInvalidState, "Scheduler is not running")
			return
		}
		h.InternalError(c, "Failed to trigger payroll run")
		return
	}
	c.JSON(http.StatusAccepted, dto.NewSuccessResponse(gin.H{"status": "accepted"}))
}
