package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/mobishop/pos-api/internal/domain/entity"
	"github.com/mobishop/pos-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	GetLowStock(ctx context.Context) ([]entity.Product, error)
	Count(ctx context.Context) (int64, error)
	// DecrementBatch decrements stock for all products in one transaction.
	// Quantities are decremented exactly as requested, without a floor check;
	// the cart re-validates against live stock at issuance time.
	DecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) error
	// IncrementBatch restores stock for multiple products (issuance rollback)
	IncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	LowStock   bool
	SortBy     string
	SortOrder  string
}
