package routes

import (
	"caza_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathInspection = "/inspection"

func addInspectionRoutes(rg *gin.RouterGroup, h *handlers.InspectionHandler) {
	inspection := rg.Group(PathInspection)
	{
		inspection.GET("/inscriptions", h.SearchInscriptions)
		inspection.GET("/permits", h.SearchPermits)
	}
}
