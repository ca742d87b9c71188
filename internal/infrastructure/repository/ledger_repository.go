package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mobishop/pos-api/internal/domain/entity"
	domainRepo "github.com/mobishop/pos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new sales ledger repository
func NewLedgerRepository(db *gorm.DB) domainRepo.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Append(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *ledgerRepository) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&invoice, "invoice_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *ledgerRepository) List(ctx context.Context, params *domainRepo.LedgerFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("invoice_number LIKE ? OR customer_name LIKE ? OR customer_phone LIKE ?",
			like, like, like)
	}

	if params.From != nil {
		query = query.Where("issued_at >= ?", *params.From)
	}
	if params.To != nil {
		query = query.Where("issued_at <= ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("issued_at DESC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *ledgerRepository) ListBetween(ctx context.Context, from, to *time.Time) ([]entity.Invoice, error) {
	var invoices []entity.Invoice

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})
	if from != nil {
		query = query.Where("issued_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("issued_at <= ?", *to)
	}

	err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("issued_at ASC, created_at ASC").
		Find(&invoices).Error

	return invoices, err
}

func (r *ledgerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).Count(&total).Error
	return total, err
}

// TotalSales sums grand totals in cents across the whole ledger
func (r *ledgerRepository) TotalSales(ctx context.Context) (int64, error) {
	var total *int64
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Select("SUM(grand_total)").
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}
