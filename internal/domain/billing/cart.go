package billing

import (
	"math"

	"github.com/google/uuid"
	"github.com/mobishop/pos-api/pkg/apperror"
)

// Line is one cart entry. At most one line exists per product; quantity
// increments fold into the existing line.
type Line struct {
	ProductID       uuid.UUID `json:"product_id"`
	Name            string    `json:"name"`
	Rate            float64   `json:"rate"`
	Quantity        int       `json:"quantity"`
	DiscountPercent float64   `json:"discount_percent"`
	GSTPercent      float64   `json:"gst_percent"`
}

// Cart is a session-scoped, in-memory working bill. It performs no I/O;
// callers pass the live stock level on every mutation. Stock is checked,
// never reserved, so the final authority is the decrement at issuance.
type Cart struct {
	lines []Line
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// AddProduct adds one unit of a product to the cart. A product with no stock
// is rejected outright; an existing line only grows while below stock.
func (c *Cart) AddProduct(productID uuid.UUID, name string, rate float64, stock int) error {
	if stock <= 0 {
		return apperror.ErrOutOfStock
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			if c.lines[i].Quantity >= stock {
				return apperror.ErrInsufficientStock
			}
			c.lines[i].Quantity++
			return nil
		}
	}
	c.lines = append(c.lines, Line{
		ProductID: productID,
		Name:      name,
		Rate:      rate,
		Quantity:  1,
	})
	return nil
}

// Remove deletes a product's line. Removing an absent product is a no-op.
func (c *Cart) Remove(productID uuid.UUID) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets a line's quantity. Zero or negative removes the line.
// A quantity above stock is rejected and the stored quantity is unchanged.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity, stock int) error {
	if quantity <= 0 {
		c.Remove(productID)
		return nil
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			if quantity > stock {
				return apperror.ErrInsufficientStock
			}
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return apperror.NewNotFoundError("Cart item")
}

// SetDiscountPercent sets a line's discount percentage. NaN clamps to zero.
func (c *Cart) SetDiscountPercent(productID uuid.UUID, percent float64) error {
	if math.IsNaN(percent) {
		percent = 0
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].DiscountPercent = percent
			return nil
		}
	}
	return apperror.NewNotFoundError("Cart item")
}

// SetGSTPercent sets a line's GST percentage. NaN clamps to zero.
func (c *Cart) SetGSTPercent(productID uuid.UUID, percent float64) error {
	if math.IsNaN(percent) {
		percent = 0
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].GSTPercent = percent
			return nil
		}
	}
	return apperror.NewNotFoundError("Cart item")
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.lines = nil
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart lines in insertion order
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}
