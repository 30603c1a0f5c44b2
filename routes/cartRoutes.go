package routes

import (
	"foodhub-api/controllers"

	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine, cart *controllers.CartController) {
	server.GET("/cart", cart.GetCart)
	server.POST("/cart/items", cart.AddCartItem)
	server.PATCH("/cart/items/:itemId", cart.UpdateCartItem)
	server.DELETE("/cart/items/:itemId", cart.RemoveCartItem)
	server.DELETE("/cart", cart.ClearCart)
}
