package routes

import (
	"github.com/gin-gonic/gin"
)

// addLegacyRoutes keeps the paths already registered with Mercado Pago and the
// staff frontend working.
func addLegacyRoutes(router *gin.Engine, h Handlers) {
	api := router.Group("/api")
	{
		api.POST("/mercadopago-webhook", h.Payments.Webhook)
		api.GET("/inscripciones", func(c *gin.Context) {
			c.Params = append(c.Params, gin.Param{Key: "kind", Value: "inscription"})
			h.Entities.ListEntities(c)
		})
	}
}
