package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mobishop/pos-api/internal/domain/billing"
	"github.com/mobishop/pos-api/internal/domain/repository"
	"github.com/mobishop/pos-api/pkg/apperror"
)

// CartService holds the session-scoped working carts. Carts live in memory
// only; an issued invoice is the durable record, not the cart.
type CartService struct {
	productRepo repository.ProductRepository

	mu    sync.Mutex
	carts map[string]*billing.Cart
}

// NewCartService creates a new cart service
func NewCartService(productRepo repository.ProductRepository) *CartService {
	return &CartService{
		productRepo: productRepo,
		carts:       make(map[string]*billing.Cart),
	}
}

// CartView is the cart with its running totals
type CartView struct {
	Lines   []billing.Line        `json:"lines"`
	Pricing billing.PricingResult `json:"pricing"`
}

// cart returns the session's cart, creating it on first use.
// Callers must hold s.mu.
func (s *CartService) cart(session string) *billing.Cart {
	c, ok := s.carts[session]
	if !ok {
		c = billing.NewCart()
		s.carts[session] = c
	}
	return c
}

// view builds a CartView. Callers must hold s.mu.
func (s *CartService) view(c *billing.Cart) *CartView {
	lines := c.Lines()
	return &CartView{
		Lines:   lines,
		Pricing: billing.Price(lines, 0),
	}
}

// Get returns the session's cart with running totals
func (s *CartService) Get(ctx context.Context, session string) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view(s.cart(session))
}

// AddItem adds one unit of a product to the session's cart, validating
// against the live catalog stock
func (s *CartService) AddItem(ctx context.Context, session string, productID uuid.UUID) (*CartView, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(session)
	if err := c.AddProduct(product.ID, product.Name, product.GetPriceDecimal(), product.Quantity); err != nil {
		return nil, err
	}
	return s.view(c), nil
}

// UpdateItemInput carries the mutable fields of a cart line. Nil fields are
// left unchanged.
type UpdateItemInput struct {
	Quantity        *int
	DiscountPercent *float64
	GSTPercent      *float64
}

// UpdateItem changes quantity, discount, or GST of a cart line
func (s *CartService) UpdateItem(ctx context.Context, session string, productID uuid.UUID, input *UpdateItemInput) (*CartView, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(session)
	if input.Quantity != nil {
		if err := c.SetQuantity(productID, *input.Quantity, product.Quantity); err != nil {
			return nil, err
		}
	}
	if input.DiscountPercent != nil {
		if err := c.SetDiscountPercent(productID, *input.DiscountPercent); err != nil {
			return nil, err
		}
	}
	if input.GSTPercent != nil {
		if err := c.SetGSTPercent(productID, *input.GSTPercent); err != nil {
			return nil, err
		}
	}
	return s.view(c), nil
}

// RemoveItem removes a product's line from the session's cart
func (s *CartService) RemoveItem(ctx context.Context, session string, productID uuid.UUID) *CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(session)
	c.Remove(productID)
	return s.view(c)
}

// Clear empties the session's cart
func (s *CartService) Clear(ctx context.Context, session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, session)
}

// Lines returns the session's cart lines in insertion order
func (s *CartService) Lines(session string) []billing.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(session).Lines()
}
