package controllers

import "github.com/gin-gonic/gin"

// Standard response messages
const (
	msgInvalidInput       = "Invalid request body"
	msgItemNotFound       = "Menu item not found"
	msgItemUnavailable    = "This item is currently out of stock"
	msgOrderNotFound      = "Order not found"
	msgCartCleared        = "Cart cleared"
	msgOrderDeleted       = "Order deleted successfully."
	msgCheckFields        = "Please fill in all required fields"
	msgEmptyCart          = "Your cart is empty. Add items to proceed."
	msgUserExists         = "User with this email already exists"
	msgInvalidCredentials = "Invalid email or password"
	msgSignupOK           = "Account created! (Demo: accounts are not persisted)"
	msgAvailabilityOK     = "Item availability updated"
	msgWhatsAppUpdated    = "Admin WhatsApp number updated"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}
