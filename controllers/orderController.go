package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub-api/models"
	"foodhub-api/services"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// Checkout submits the delivery form. Validation failures come back as a
// per-field error map with nothing mutated; success returns the recorded
// order together with the WhatsApp hand-off link. The order is considered
// placed as soon as it is persisted, whether or not the hand-off succeeds.
func (c *OrderController) Checkout(ctx *gin.Context) {
	var form models.CheckoutInput
	if err := ctx.ShouldBindJSON(&form); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	result, err := c.Orders.Checkout(ctx.Request.Context(), form)
	if err != nil {
		var fieldErrs services.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			sendJSONResponse(ctx, http.StatusUnprocessableEntity, gin.H{
				"message": msgCheckFields,
				"errors":  fieldErrs,
			})
		case errors.Is(err, services.ErrEmptyCart):
			sendErrorResponse(ctx, http.StatusBadRequest, msgEmptyCart)
		default:
			log.Println("Checkout error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to place order")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":           "Order placed successfully! It has been sent to the restaurant on WhatsApp.",
		"order":             result.Order,
		"whatsappMessage":   result.Message,
		"whatsappUrl":       result.ChatURL,
		"estimatedDelivery": services.EstimatedDelivery,
	})
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	order, ok := c.Orders.Order(ctx.Request.Context(), ctx.Param("orderId"))
	if !ok {
		sendErrorResponse(ctx, http.StatusNotFound, msgOrderNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}
