package routes

import (
	"foodhub-api/controllers"
	"foodhub-api/middlewares"
	"foodhub-api/services"

	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine, admin *controllers.AdminController, auth *services.AuthService) {
	group := server.Group("/admin", middlewares.Authenticate(auth), middlewares.RequireAdmin())
	{
		group.GET("/orders", admin.GetOrders)
		group.DELETE("/orders/:orderId", admin.DeleteOrder)
		group.POST("/menu/:id/toggle", admin.ToggleAvailability)
		group.GET("/whatsapp", admin.GetWhatsAppNumber)
		group.PUT("/whatsapp", admin.SetWhatsAppNumber)
	}
}
