package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodhub-api/models"
	"foodhub-api/services"
)

type CartController struct {
	Cart *services.CartService
	Menu *services.MenuService
}

func NewCartController(cart *services.CartService, menu *services.MenuService) *CartController {
	return &CartController{Cart: cart, Menu: menu}
}

// GetCart returns the lines plus the derived totals the cart page renders.
func (c *CartController) GetCart(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items":       c.Cart.Items(),
		"count":       c.Cart.Count(),
		"subtotal":    c.Cart.Subtotal(),
		"deliveryFee": models.DeliveryFee,
		"total":       c.Cart.Total(),
	})
}

// AddCartItem adds a catalog item to the cart. Unknown ids are a lookup miss
// and out-of-stock items are rejected before the cart is touched.
func (c *CartController) AddCartItem(ctx *gin.Context) {
	var input models.AddToCartInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	item, ok := models.FindMenuItem(input.ItemID)
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, msgItemNotFound)
		return
	}
	if c.Menu.IsUnavailable(ctx.Request.Context(), input.ItemID) {
		sendErrorResponse(ctx, http.StatusConflict, msgItemUnavailable)
		return
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}
	c.Cart.AddItem(ctx.Request.Context(), item, quantity)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": item.Name + " added to cart",
		"count":   c.Cart.Count(),
	})
}

// UpdateCartItem sets a line quantity; zero or less removes the line.
func (c *CartController) UpdateCartItem(ctx *gin.Context) {
	itemID, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var input models.UpdateQuantityInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	c.Cart.UpdateQuantity(ctx.Request.Context(), itemID, input.Quantity)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items": c.Cart.Items(),
		"count": c.Cart.Count(),
		"total": c.Cart.Total(),
	})
}

func (c *CartController) RemoveCartItem(ctx *gin.Context) {
	itemID, err := strconv.Atoi(ctx.Param("itemId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid item ID")
		return
	}

	c.Cart.RemoveItem(ctx.Request.Context(), itemID)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Item removed from cart",
		"count":   c.Cart.Count(),
	})
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	c.Cart.Clear(ctx.Request.Context())
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgCartCleared})
}
