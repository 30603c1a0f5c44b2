package models

import "time"

// OrderStatusConfirmed is assigned to every successfully submitted order.
const OrderStatusConfirmed = "Confirmed"

type Order struct {
	OrderID      string      `json:"orderId"`
	CustomerName string      `json:"customerName"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email,omitempty"`
	Address      string      `json:"address"`
	City         string      `json:"city"`
	Notes        string      `json:"notes,omitempty"`
	Items        []OrderItem `json:"items"`
	Subtotal     int         `json:"subtotal"`
	DeliveryFee  int         `json:"deliveryFee"`
	Total        int         `json:"total"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// OrderItem is a point-in-time copy of a cart line. It references the catalog
// by id only; later catalog or price changes never touch a placed order.
type OrderItem struct {
	ItemID   int    `json:"itemId"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// CheckoutInput is the delivery form submitted from the checkout page.
type CheckoutInput struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Notes    string `json:"notes"`
}
