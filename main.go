package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"foodhub-api/controllers"
	"foodhub-api/initializers"
	"foodhub-api/routes"
	"foodhub-api/services"
)

func main() {
	initializers.LoadEnv()
	cfg := initializers.LoadConfig()
	st := initializers.ConnectStore(cfg)

	cartService := services.NewCartService(st)
	menuService := services.NewMenuService(st)
	orderService := services.NewOrderService(st, cartService, cfg.AdminWhatsApp, cfg.CountryCode, cfg.NotifyOnCheckout)
	adminService := services.NewAdminService(st)
	authService := services.NewAuthService(cfg.JWTSecret)

	if err := authService.SeedAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Println("Failed to seed admin account:", err)
	}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://foodhub.store"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.MenuRoutes(server, controllers.NewMenuController(menuService))
	routes.CartRoutes(server, controllers.NewCartController(cartService, menuService))
	routes.OrderRoutes(server, controllers.NewOrderController(orderService))
	routes.AuthRoutes(server, controllers.NewAuthController(authService))
	routes.AdminRoutes(server, controllers.NewAdminController(adminService, orderService), authService)

	server.Run(":" + cfg.Port)
}
