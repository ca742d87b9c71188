package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobishop/pos-api/internal/domain/entity"
	infraRepo "github.com/mobishop/pos-api/internal/infrastructure/repository"
)

func TestDashboardStats(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewDashboardService(infraRepo.NewProductRepository(db), infraRepo.NewLedgerRepository(db))
	ctx := context.Background()

	seedProduct(t, db, "Charger", 100, 1, 2)
	seedProduct(t, db, "Cable", 50, 10, 2)
	seedInvoice(t, db, "INV-000001", day("2026-08-01 09:00"), []entity.InvoiceItem{
		{Name: "Charger", Quantity: 1, TaxableValue: 10000, GSTPercent: 5, GSTAmount: 500, Total: 10500},
	})

	stats, err := svc.GetDashboardStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.TotalInvoices)
	assert.InDelta(t, 105.0, stats.TotalSales, 1e-9)
	assert.Equal(t, int64(1), stats.LowStockCount)
	require.Len(t, stats.LowStockItems, 1)
	assert.Equal(t, "Charger", stats.LowStockItems[0].Name)
}

func TestDashboardStatsEmptyLedger(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewDashboardService(infraRepo.NewProductRepository(db), infraRepo.NewLedgerRepository(db))

	stats, err := svc.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalInvoices)
	assert.Zero(t, stats.TotalSales)
}
