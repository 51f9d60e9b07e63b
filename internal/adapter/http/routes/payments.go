package routes

import (
	"caza_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/webhook", h.Webhook)
		payments.POST("/:payment_id/backfill", h.Backfill)
	}
}
