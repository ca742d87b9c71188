package request

import "github.com/google/uuid"

// AddCartItemRequest represents adding a product to the cart
type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest represents updating a cart line.
// Omitted fields are left unchanged.
type UpdateCartItemRequest struct {
	Quantity        *int     `json:"quantity"`
	DiscountPercent *float64 `json:"discount_percent"`
	GSTPercent      *float64 `json:"gst_percent"`
}
