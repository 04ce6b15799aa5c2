package handlers

import (
	"net/http"

	"procuredesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SchedulerHandler exposes the watcher's in-memory state for operators.
type SchedulerHandler struct {
	inspector usecase.ISchedulerInspector
}

func NewSchedulerHandler(inspector usecase.ISchedulerInspector) *SchedulerHandler {
	return &SchedulerHandler{inspector: inspector}
}

func (h *SchedulerHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.inspector.Status())
}
