package service

import (
	"context"

	"github.com/mobishop/pos-api/internal/domain/entity"
	"github.com/mobishop/pos-api/internal/domain/repository"
)

// DashboardService provides the at-a-glance shop overview
type DashboardService struct {
	productRepo repository.ProductRepository
	ledgerRepo  repository.LedgerRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(productRepo repository.ProductRepository, ledgerRepo repository.LedgerRepository) *DashboardService {
	return &DashboardService{
		productRepo: productRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalProducts int64            `json:"total_products"`
	TotalInvoices int64            `json:"total_invoices"`
	TotalSales    float64          `json:"total_sales"`
	LowStockCount int64            `json:"low_stock_count"`
	LowStockItems []entity.Product `json:"low_stock_items"`
}

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalProducts = productCount

	invoiceCount, err := s.ledgerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalInvoices = invoiceCount

	totalSales, err := s.ledgerRepo.TotalSales(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalSales = float64(totalSales) / 100

	lowStock, err := s.productRepo.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	stats.LowStockItems = lowStock
	stats.LowStockCount = int64(len(lowStock))

	return stats, nil
}
