package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the FoodHub API 🍽️.

The following are the endpoints for this API:

MENU
- GET "/menu" - Browse the catalog (?category=&search=&sort=popularity|price-asc|price-desc)
- GET "/menu/categories" - List categories
- GET "/menu/featured" - Featured items
- GET "/menu/{id}" - Item detail

CART
- GET "/cart" - Current cart with totals
- POST "/cart/items" - Add an item {itemId, quantity}
- PATCH "/cart/items/{itemId}" - Update quantity {quantity}
- DELETE "/cart/items/{itemId}" - Remove an item
- DELETE "/cart" - Clear the cart

CHECKOUT
- POST "/checkout" - Submit delivery form, creates an order and a WhatsApp hand-off link
- GET "/orders/{orderId}" - Look up a placed order

AUTH (demo only)
- POST "/auth/signup" - Create account
- POST "/auth/login" - Get a token

ADMIN (requires admin token)
- GET "/admin/orders" - Order history
- DELETE "/admin/orders/{orderId}" - Delete an order
- POST "/admin/menu/{id}/toggle" - Toggle item availability
- GET "/admin/whatsapp" - Current hand-off number
- PUT "/admin/whatsapp" - Update hand-off number`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
