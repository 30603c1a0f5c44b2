package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"foodhub-api/models"
	"foodhub-api/store"
	"foodhub-api/utils"
)

// ErrEmptyCart rejects a checkout when there is nothing to order.
var ErrEmptyCart = errors.New("cart is empty")

// FieldErrors maps form field names to validation messages. A non-empty map
// blocks the submission without mutating cart or history.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

var (
	phonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]{7,}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// EstimatedDelivery is quoted to the customer on every confirmed order.
const EstimatedDelivery = "30-45 minutes"

// CheckoutResult carries everything produced by a successful submission: the
// persisted order, the WhatsApp message text and the pre-filled chat link.
type CheckoutResult struct {
	Order   models.Order `json:"order"`
	Message string       `json:"message"`
	ChatURL string       `json:"chatUrl"`
}

// OrderService validates checkout submissions, snapshots the cart into
// immutable order records and maintains the order history.
type OrderService struct {
	mu                 sync.Mutex
	store              *store.Store
	cart               *CartService
	defaultAdminNumber string
	countryCode        string
	notify             bool
}

func NewOrderService(st *store.Store, cart *CartService, adminNumber, countryCode string, notify bool) *OrderService {
	return &OrderService{
		store:              st,
		cart:               cart,
		defaultAdminNumber: adminNumber,
		countryCode:        countryCode,
		notify:             notify,
	}
}

// ValidateCheckout checks the delivery form without touching any state.
func ValidateCheckout(form models.CheckoutInput) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(form.FullName) == "" {
		errs["fullName"] = "Full name is required"
	}
	if strings.TrimSpace(form.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !phonePattern.MatchString(strings.TrimSpace(form.Phone)) {
		errs["phone"] = "Invalid phone number"
	}
	if strings.TrimSpace(form.Address) == "" {
		errs["address"] = "Delivery address is required"
	}
	if strings.TrimSpace(form.City) == "" {
		errs["city"] = "City is required"
	}
	if email := strings.TrimSpace(form.Email); email != "" && !emailPattern.MatchString(email) {
		errs["email"] = "Invalid email address"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Checkout turns the current cart plus a valid delivery form into a confirmed
// order: the order is persisted first, then the cart is cleared, then the
// WhatsApp hand-off is prepared. Each successful call creates a new order;
// double-submission guarding belongs to the caller's UI, not here.
func (s *OrderService) Checkout(ctx context.Context, form models.CheckoutInput) (CheckoutResult, error) {
	if errs := ValidateCheckout(form); errs != nil {
		return CheckoutResult{}, errs
	}

	lines := s.cart.Items()
	if len(lines) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(lines))
	subtotal := 0
	for _, line := range lines {
		subtotal += line.LineTotal()
		items = append(items, models.OrderItem{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Price:    line.Price,
			Quantity: line.Quantity,
		})
	}

	order := models.Order{
		OrderID:      utils.GenerateOrderID(),
		CustomerName: strings.TrimSpace(form.FullName),
		Phone:        strings.TrimSpace(form.Phone),
		Email:        strings.TrimSpace(form.Email),
		Address:      strings.TrimSpace(form.Address),
		City:         strings.TrimSpace(form.City),
		Notes:        strings.TrimSpace(form.Notes),
		Items:        items,
		Subtotal:     subtotal,
		DeliveryFee:  models.DeliveryFee,
		Total:        subtotal + models.DeliveryFee,
		Status:       models.OrderStatusConfirmed,
		CreatedAt:    time.Now(),
	}

	s.mu.Lock()
	orders := append(s.store.LoadOrders(ctx), order)
	s.store.SaveOrders(ctx, orders)
	s.mu.Unlock()

	s.cart.Clear(ctx)

	message := buildWhatsAppMessage(order)
	chatURL := utils.BuildChatLink(s.adminNumber(ctx), s.countryCode, message)
	if s.notify {
		go utils.OpenChatLink(chatURL)
	}

	return CheckoutResult{Order: order, Message: message, ChatURL: chatURL}, nil
}

// Orders returns the history newest first.
func (s *OrderService) Orders(ctx context.Context) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.store.LoadOrders(ctx)
	reversed := make([]models.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		reversed = append(reversed, orders[i])
	}
	return reversed
}

// Order looks a single order up by id.
func (s *OrderService) Order(ctx context.Context, orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.store.LoadOrders(ctx) {
		if order.OrderID == orderID {
			return order, true
		}
	}
	return models.Order{}, false
}

// DeleteOrder removes the matching order from history. Deleting an unknown id
// leaves the history untouched and reports false.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.store.LoadOrders(ctx)
	for i, order := range orders {
		if order.OrderID == orderID {
			orders = append(orders[:i], orders[i+1:]...)
			s.store.SaveOrders(ctx, orders)
			return true
		}
	}
	return false
}

func (s *OrderService) adminNumber(ctx context.Context) string {
	if number := s.store.LoadAdminWhatsApp(ctx); number != "" {
		return number
	}
	return s.defaultAdminNumber
}

// buildWhatsAppMessage formats the order summary sent to the restaurant.
func buildWhatsAppMessage(order models.Order) string {
	var b strings.Builder

	b.WriteString("🍽️ *FoodHub Order Confirmation*\n\n")
	fmt.Fprintf(&b, "📦 *Order ID:* %s\n", order.OrderID)
	fmt.Fprintf(&b, "👤 *Name:* %s\n", order.CustomerName)
	fmt.Fprintf(&b, "📱 *Phone:* %s\n", order.Phone)
	fmt.Fprintf(&b, "📍 *Delivery Address:* %s, %s\n\n", order.Address, order.City)

	b.WriteString("📋 *Order Items:*\n")
	for i, item := range order.Items {
		fmt.Fprintf(&b, "%d. %s (×%d) = %s\n", i+1, item.Name, item.Quantity, FormatPrice(item.Price*item.Quantity))
	}

	b.WriteString("\n💰 *Price Summary:*\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", FormatPrice(order.Subtotal))
	fmt.Fprintf(&b, "Delivery Fee: %s\n", FormatPrice(order.DeliveryFee))
	fmt.Fprintf(&b, "*Total: %s*\n\n", FormatPrice(order.Total))

	if order.Notes != "" {
		fmt.Fprintf(&b, "📝 *Special Instructions:* %s\n\n", order.Notes)
	}

	fmt.Fprintf(&b, "⏱️ *Estimated Delivery Time:* %s\n", EstimatedDelivery)
	fmt.Fprintf(&b, "✅ *Status:* Order %s\n\n", order.Status)
	b.WriteString("Thank you for ordering from FoodHub! 🙏")

	return b.String()
}

// FormatPrice renders a naira amount with thousands separators.
func FormatPrice(amount int) string {
	digits := fmt.Sprintf("%d", amount)
	negative := strings.HasPrefix(digits, "-")
	if negative {
		digits = digits[1:]
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if negative {
		return "₦-" + b.String()
	}
	return "₦" + b.String()
}
