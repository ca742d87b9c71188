package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mobishop/pos-api/internal/application/service"
	"github.com/mobishop/pos-api/internal/presentation/http/dto/request"
	"github.com/mobishop/pos-api/internal/presentation/http/dto/response"
)

// CartHandler handles cart-related HTTP requests
type CartHandler struct {
	cartService *service.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Get returns the session's cart with running totals
func (h *CartHandler) Get(c *gin.Context) {
	view := h.cartService.Get(c.Request.Context(), GetCartSession(c))
	response.OK(c, "Cart retrieved successfully", view)
}

// AddItem adds one unit of a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	var req request.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.cartService.AddItem(c.Request.Context(), GetCartSession(c), req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", view)
}

// UpdateItem changes quantity, discount, or GST of a cart line
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.cartService.UpdateItem(c.Request.Context(), GetCartSession(c), productID, &service.UpdateItemInput{
		Quantity:        req.Quantity,
		DiscountPercent: req.DiscountPercent,
		GSTPercent:      req.GSTPercent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart item updated", view)
}

// RemoveItem removes a product's line from the cart
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	view := h.cartService.RemoveItem(c.Request.Context(), GetCartSession(c), productID)
	response.OK(c, "Cart item removed", view)
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	h.cartService.Clear(c.Request.Context(), GetCartSession(c))
	response.OK(c, "Cart cleared", nil)
}
