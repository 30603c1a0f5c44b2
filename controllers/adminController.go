package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"foodhub-api/services"
)

type AdminController struct {
	Admin  *services.AdminService
	Orders *services.OrderService
}

func NewAdminController(admin *services.AdminService, orders *services.OrderService) *AdminController {
	return &AdminController{Admin: admin, Orders: orders}
}

// ToggleAvailability flips an item in or out of the out-of-stock set.
func (c *AdminController) ToggleAvailability(ctx *gin.Context) {
	itemID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid item ID")
		return
	}

	unavailable := c.Admin.ToggleAvailability(ctx.Request.Context(), itemID)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message":     msgAvailabilityOK,
		"itemId":      itemID,
		"unavailable": unavailable,
	})
}

// GetOrders returns the order history, newest first.
func (c *AdminController) GetOrders(ctx *gin.Context) {
	orders := c.Orders.Orders(ctx.Request.Context())
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"orders": orders,
		"count":  len(orders),
	})
}

// DeleteOrder removes an order from history; deleting an unknown id changes
// nothing.
func (c *AdminController) DeleteOrder(ctx *gin.Context) {
	if !c.Orders.DeleteOrder(ctx.Request.Context(), ctx.Param("orderId")) {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgOrderDeleted})
}

func (c *AdminController) GetWhatsAppNumber(ctx *gin.Context) {
	sendJSONResponse(ctx, http.StatusOK, gin.H{"number": c.Admin.WhatsAppNumber(ctx.Request.Context())})
}

func (c *AdminController) SetWhatsAppNumber(ctx *gin.Context) {
	var input struct {
		Number string `json:"number"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	c.Admin.SetWhatsAppNumber(ctx.Request.Context(), input.Number)
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgWhatsAppUpdated})
}
