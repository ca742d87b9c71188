package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mobishop/pos-api/internal/domain/entity"
	domainRepo "github.com/mobishop/pos-api/internal/domain/repository"
	"github.com/mobishop/pos-api/pkg/pagination"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Product{},
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.InvoiceSequence{},
		&entity.ShopSettings{},
		&entity.IdempotencyKey{},
	))
	return db
}

func TestSequenceNextIsMonotonic(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewSequenceRepository(db)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := repo.Next(ctx, entity.DefaultSequenceName)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSequenceSurvivesNewRepository(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	ctx := context.Background()

	_, err := NewSequenceRepository(db).Next(ctx, entity.DefaultSequenceName)
	require.NoError(t, err)

	// A fresh repository over the same store continues, not restarts
	got, err := NewSequenceRepository(db).Next(ctx, entity.DefaultSequenceName)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)
}

func TestSequencePeekDoesNotIncrement(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewSequenceRepository(db)
	ctx := context.Background()

	peeked, err := repo.Peek(ctx, entity.DefaultSequenceName)
	require.NoError(t, err)
	assert.Equal(t, int64(1), peeked)

	peeked, err = repo.Peek(ctx, entity.DefaultSequenceName)
	require.NoError(t, err)
	assert.Equal(t, int64(1), peeked)

	got, err := repo.Next(ctx, entity.DefaultSequenceName)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	peeked, err = repo.Peek(ctx, entity.DefaultSequenceName)
	require.NoError(t, err)
	assert.Equal(t, int64(2), peeked)
}

func appendInvoice(t *testing.T, db *gorm.DB, number, customer, phone string, issuedAt time.Time) {
	t.Helper()

	invoice := &entity.Invoice{
		InvoiceNumber: number,
		IssuedAt:      issuedAt,
		CustomerName:  customer,
		CustomerPhone: phone,
		GrandTotal:    10000,
		Items: []entity.InvoiceItem{
			{Name: "Item", Quantity: 1, TaxableValue: 10000, Total: 10000},
		},
	}
	require.NoError(t, NewLedgerRepository(db).Append(context.Background(), invoice))
}

func TestLedgerListSearch(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	appendInvoice(t, db, "INV-000001", "Ravi Kumar", "9876543210", base)
	appendInvoice(t, db, "INV-000002", "Anita Shah", "9123456780", base.Add(time.Hour))

	for _, search := range []string{"INV-000002", "Anita", "912345"} {
		invoices, total, err := repo.List(ctx, &domainRepo.LedgerFilterParams{
			Pagination: pagination.DefaultPagination(),
			Search:     search,
		})
		require.NoError(t, err, search)
		require.Len(t, invoices, 1, search)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "INV-000002", invoices[0].InvoiceNumber)
	}
}

func TestLedgerListNewestFirst(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	appendInvoice(t, db, "INV-000001", "Ravi", "9876543210", base)
	appendInvoice(t, db, "INV-000002", "Ravi", "9876543210", base.Add(time.Hour))

	invoices, _, err := repo.List(ctx, &domainRepo.LedgerFilterParams{
		Pagination: pagination.DefaultPagination(),
	})
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "INV-000002", invoices[0].InvoiceNumber)
}

func TestLedgerItemsKeepCartOrder(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	invoice := &entity.Invoice{
		InvoiceNumber: "INV-000001",
		IssuedAt:      time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		CustomerName:  "Ravi",
		CustomerPhone: "9876543210",
		Items: []entity.InvoiceItem{
			{Position: 0, Name: "First", Quantity: 1},
			{Position: 1, Name: "Second", Quantity: 1},
			{Position: 2, Name: "Third", Quantity: 1},
		},
	}
	require.NoError(t, repo.Append(ctx, invoice))

	fetched, err := repo.GetByNumber(ctx, "INV-000001")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Len(t, fetched.Items, 3)
	assert.Equal(t, "First", fetched.Items[0].Name)
	assert.Equal(t, "Second", fetched.Items[1].Name)
	assert.Equal(t, "Third", fetched.Items[2].Name)
}

func TestProductDecrementBatchHasNoFloor(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	product := &entity.Product{Name: "Charger", Quantity: 1}
	require.NoError(t, db.Create(product).Error)

	require.NoError(t, repo.DecrementBatch(ctx, map[uuid.UUID]int{product.ID: 3}))

	var stored entity.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, -2, stored.Quantity)
}

func TestIdempotencyKeyRoundTrip(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	repo := NewIdempotencyRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	missing, err := repo.GetByKey(ctx, "abc", userID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.Create(ctx, &entity.IdempotencyKey{
		Key:          "abc",
		UserID:       userID,
		Endpoint:     "POST /billing/invoices",
		ResponseCode: 201,
		ResponseBody: `{"success":true}`,
		ExpiresAt:    time.Now().Add(time.Hour),
	}))

	stored, err := repo.GetByKey(ctx, "abc", userID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, 201, stored.ResponseCode)
	assert.False(t, stored.IsExpired())
}
