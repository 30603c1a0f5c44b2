package routes

import (
	"foodhub-api/controllers"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(server *gin.Engine, menu *controllers.MenuController) {
	server.GET("/menu", menu.GetMenu)
	server.GET("/menu/categories", menu.GetCategories)
	server.GET("/menu/featured", menu.GetFeatured)
	server.GET("/menu/:id", menu.GetMenuItem)
}
