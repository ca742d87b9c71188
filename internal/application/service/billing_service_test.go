package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mobishop/pos-api/internal/domain/entity"
	infraRepo "github.com/mobishop/pos-api/internal/infrastructure/repository"
	"github.com/mobishop/pos-api/pkg/apperror"
)

func newBillingFixture(t *testing.T) (*gorm.DB, *CartService, *BillingService) {
	t.Helper()

	db := setupTestDB(t)
	productRepo := infraRepo.NewProductRepository(db)
	cartSvc := NewCartService(productRepo)
	billingSvc := NewBillingService(
		cartSvc,
		productRepo,
		infraRepo.NewLedgerRepository(db),
		infraRepo.NewSequenceRepository(db),
	)
	return db, cartSvc, billingSvc
}

func floatPtr(v float64) *float64 { return &v }

func TestIssueInvoice(t *testing.T) {
	t.Parallel()

	db, cartSvc, billingSvc := newBillingFixture(t)
	ctx := context.Background()
	product := seedProduct(t, db, "Charger", 100, 5, 1)

	_, err := cartSvc.AddItem(ctx, "s1", product.ID)
	require.NoError(t, err)
	_, err = cartSvc.AddItem(ctx, "s1", product.ID)
	require.NoError(t, err)
	_, err = cartSvc.UpdateItem(ctx, "s1", product.ID, &UpdateItemInput{
		DiscountPercent: floatPtr(10),
		GSTPercent:      floatPtr(5),
	})
	require.NoError(t, err)

	invoice, err := billingSvc.Issue(ctx, "s1", &IssueInput{
		Customer: CustomerInput{Name: "Ravi", Phone: "9876543210"},
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-000001", invoice.InvoiceNumber)
	assert.Equal(t, int64(20000), invoice.Subtotal)
	assert.Equal(t, int64(2000), invoice.TotalItemDiscount)
	assert.Equal(t, int64(18000), invoice.TotalTaxable)
	assert.Equal(t, int64(900), invoice.TotalGST)
	assert.Equal(t, int64(18900), invoice.GrandTotal)
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, 2, invoice.Items[0].Quantity)
	assert.Equal(t, int64(18900), invoice.Items[0].Total)

	// Stock decremented by exactly the sold quantity
	var stored entity.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, 3, stored.Quantity)

	// Cart cleared after issuance
	assert.Empty(t, cartSvc.Lines("s1"))

	// Appended to the ledger
	fetched, err := billingSvc.GetInvoice(ctx, "INV-000001")
	require.NoError(t, err)
	assert.Equal(t, invoice.ID, fetched.ID)
}

func TestIssueSequentialNumbers(t *testing.T) {
	t.Parallel()

	db, cartSvc, billingSvc := newBillingFixture(t)
	ctx := context.Background()
	product := seedProduct(t, db, "Cable", 50, 10, 1)

	for i, want := range []string{"INV-000001", "INV-000002"} {
		session := "s1"
		_, err := cartSvc.AddItem(ctx, session, product.ID)
		require.NoError(t, err)

		invoice, err := billingSvc.Issue(ctx, session, &IssueInput{
			Customer: CustomerInput{Name: "Ravi", Phone: "9876543210"},
		})
		require.NoError(t, err, "issue %d", i)
		assert.Equal(t, want, invoice.InvoiceNumber)
	}
}

func TestIssueEmptyCart(t *testing.T) {
	t.Parallel()

	_, _, billingSvc := newBillingFixture(t)

	_, err := billingSvc.Issue(context.Background(), "s1", &IssueInput{
		Customer: CustomerInput{Name: "Ravi", Phone: "9876543210"},
	})
	assert.Equal(t, apperror.ErrEmptyCart, err)
}

func TestIssueMissingCustomerInfo(t *testing.T) {
	t.Parallel()

	db, cartSvc, billingSvc := newBillingFixture(t)
	ctx := context.Background()
	product := seedProduct(t, db, "Cable", 50, 10, 1)

	_, err := cartSvc.AddItem(ctx, "s1", product.ID)
	require.NoError(t, err)

	_, err = billingSvc.Issue(ctx, "s1", &IssueInput{
		Customer: CustomerInput{Name: "Ravi", Phone: "   "},
	})
	assert.Equal(t, apperror.ErrMissingCustomerInfo, err)

	// Nothing was consumed
	var stored entity.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, 10, stored.Quantity)
	assert.Len(t, cartSvc.Lines("s1"), 1)
}

func TestPreviewHasNoSideEffects(t *testing.T) {
	t.Parallel()

	db, cartSvc, billingSvc := newBillingFixture(t)
	ctx := context.Background()
	product := seedProduct(t, db, "Charger", 100, 5, 1)

	_, err := cartSvc.AddItem(ctx, "s1", product.ID)
	require.NoError(t, err)

	preview, err := billingSvc.Preview(ctx, "s1", &IssueInput{
		Customer: CustomerInput{Name: "Ravi", Phone: "9876543210"},
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-000001", preview.InvoiceNumber)

	// No ledger entry, no stock change, cart intact
	var count int64
	require.NoError(t, db.Model(&entity.Invoice{}).Count(&count).Error)
	assert.Zero(t, count)

	var stored entity.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	assert.Equal(t, 5, stored.Quantity)
	assert.Len(t, cartSvc.Lines("s1"), 1)

	// The previewed number is still the one issued next
	invoice, err := billingSvc.Issue(ctx, "s1", &IssueInput{
		Customer: CustomerInput{Name: "Ravi", Phone: "9876543210"},
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-000001", invoice.InvoiceNumber)
}

func TestIssueStoresPostDiscountTaxable(t *testing.T) {
	t.Parallel()

	db, cartSvc, billingSvc := newBillingFixture(t)
	ctx := context.Background()
	product := seedProduct(t, db, "Charger", 100, 5, 1)

	_, err := cartSvc.AddItem(ctx, "s1", product.ID)
	require.NoError(t, err)
	_, err = cartSvc.UpdateItem(ctx, "s1", product.ID, &UpdateItemInput{
		Quantity:   intPtr(2),
		GSTPercent: floatPtr(5),
	})
	require.NoError(t, err)

	invoice, err := billingSvc.Issue(ctx, "s1", &IssueInput{
		Customer:            CustomerInput{Name: "Ravi", Phone: "9876543210"},
		BillDiscountPercent: 10,
	})
	require.NoError(t, err)

	// 200 taxable, 10% bill discount -> 180 stored; GST stays on the
	// pre-discount base (10), grand total 190.
	assert.Equal(t, int64(2000), invoice.BillDiscountAmount)
	assert.Equal(t, int64(18000), invoice.TotalTaxable)
	assert.Equal(t, int64(1000), invoice.TotalGST)
	assert.Equal(t, int64(19000), invoice.GrandTotal)
}

func intPtr(v int) *int { return &v }
