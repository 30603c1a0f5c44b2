package models

// CartLine is one cart entry. Item fields are copied at add time so the line
// keeps rendering even if the catalog entry changes or disappears later.
type CartLine struct {
	ItemID   int    `json:"itemId"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int    `json:"price"`
	ImageUrl string `json:"imageUrl"`
	Quantity int    `json:"quantity"`
}

// LineTotal is price times quantity for this line.
func (l CartLine) LineTotal() int {
	return l.Price * l.Quantity
}

type AddToCartInput struct {
	ItemID   int `json:"itemId" binding:"required"`
	Quantity int `json:"quantity"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}
