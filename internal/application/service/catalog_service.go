package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mobishop/pos-api/internal/domain/entity"
	"github.com/mobishop/pos-api/internal/domain/repository"
	"github.com/mobishop/pos-api/pkg/apperror"
)

// CatalogService handles product catalog business logic
type CatalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
	}
}

// CreateProductInput represents the input for creating a product
type CreateProductInput struct {
	Name          string
	Price         float64
	Quantity      int
	QuantityAlert int
	Description   *string
	Image         *string
}

// CreateProduct creates a new catalog product
func (s *CatalogService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price must not be negative")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity must not be negative")
	}

	product := &entity.Product{
		Name:          input.Name,
		Quantity:      input.Quantity,
		QuantityAlert: input.QuantityAlert,
		Description:   input.Description,
		Image:         input.Image,
	}
	product.SetPriceFromDecimal(input.Price)

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetProduct retrieves a product by ID
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the input for updating a product
type UpdateProductInput struct {
	Name          string
	Price         float64
	Quantity      int
	QuantityAlert int
	Description   *string
	Image         *string
}

// UpdateProduct updates an existing product. Past invoices are unaffected
// because line items snapshot product data at issuance.
func (s *CatalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price must not be negative")
	}
	if input.Quantity < 0 {
		return nil, apperror.NewBadRequestError("Quantity must not be negative")
	}

	product.Name = input.Name
	product.Quantity = input.Quantity
	product.QuantityAlert = input.QuantityAlert
	product.Description = input.Description
	product.Image = input.Image
	product.SetPriceFromDecimal(input.Price)

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog
func (s *CatalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts returns catalog products with search and pagination
func (s *CatalogService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return s.productRepo.List(ctx, params)
}

// GetLowStock returns products at or below their alert threshold
func (s *CatalogService) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}
