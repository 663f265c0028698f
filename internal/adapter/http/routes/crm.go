package routes

import (
	"rental_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads     = "/crm/leads"
	PathAuditLogs = "/audit-logs"
)

var interactionPaths = []string{"notes", "calls", "tasks", "emails"}

func addCRMRoutes(rg *gin.RouterGroup, leadHandler *handlers.LeadHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.GET("", leadHandler.List)
		leads.POST("/sync", leadHandler.Sync)
		leads.GET("/:id", leadHandler.Get)
		leads.PATCH("/:id/status", leadHandler.UpdateStatus)
		leads.POST("/:id/convert", leadHandler.Convert)
		leads.DELETE("/:id", leadHandler.Delete)
		for _, kind := range interactionPaths {
			leads.POST("/:id/"+kind, leadHandler.AddInteraction)
			leads.GET("/:id/"+kind, leadHandler.ListInteractions)
		}
	}
}

func addAuditRoutes(rg *gin.RouterGroup, auditHandler *handlers.AuditHandler) {
	rg.GET(PathAuditLogs, auditHandler.List)
}
