package routes

import (
	"procuredesk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequirements = "/requirements"
	PathScheduler    = "/scheduler"
)

func addProcurementRoutes(rg *gin.RouterGroup, requirementHandler *handlers.RequirementHandler, schedulerHandler *handlers.SchedulerHandler) {
	requirements := rg.Group(PathRequirements)
	{
		requirements.GET("/:req_id", requirementHandler.GetRequirementContext)
		requirements.POST("/:req_id/evaluation", requirementHandler.EvaluateRequirement)
	}

	scheduler := rg.Group(PathScheduler)
	{
		scheduler.GET("/status", schedulerHandler.GetStatus)
	}
}
