package routes

import (
	"caza_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathEntities = "/entities"

func addEntityRoutes(rg *gin.RouterGroup, entities *handlers.EntityHandler, dispatch *handlers.DispatchHandler) {
	kind := rg.Group(PathEntities + "/:kind")
	{
		kind.GET("", entities.ListEntities)
		kind.GET("/:entity_id/status", entities.GetEntityStatus)
		kind.GET("/:entity_id/payments", entities.ListPayments)
		kind.PATCH("/:entity_id/payment-status", entities.UpdatePaymentStatus)

		kind.POST("/:entity_id/payment-link", dispatch.SendPaymentLink)
		kind.POST("/:entity_id/credential", dispatch.SendCredential)
		kind.POST("/:entity_id/document", dispatch.SendDocument)
	}
}
