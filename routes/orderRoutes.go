package routes

import (
	"foodhub-api/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, orders *controllers.OrderController) {
	server.POST("/checkout", orders.Checkout)
	server.GET("/orders/:orderId", orders.GetOrder)
}
