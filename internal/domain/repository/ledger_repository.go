package repository

import (
	"context"
	"time"

	"github.com/mobishop/pos-api/internal/domain/entity"
	"github.com/mobishop/pos-api/pkg/pagination"
)

// LedgerRepository is the append-only sales ledger. Invoices are written once
// and read many times; the interface deliberately has no update or delete.
type LedgerRepository interface {
	Append(ctx context.Context, invoice *entity.Invoice) error
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	// List returns invoices newest first with optional search and date filters
	List(ctx context.Context, params *LedgerFilterParams) ([]entity.Invoice, int64, error)
	// ListBetween returns invoices in issuance order for reporting.
	// Nil bounds are unbounded; both bounds are inclusive.
	ListBetween(ctx context.Context, from, to *time.Time) ([]entity.Invoice, error)
	Count(ctx context.Context) (int64, error)
	// TotalSales sums grand totals in cents across the whole ledger
	TotalSales(ctx context.Context) (int64, error)
}

// LedgerFilterParams contains filtering parameters for ledger queries.
// Search matches invoice number, customer name, or customer phone.
type LedgerFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	From       *time.Time
	To         *time.Time
}
