package service

import (
	"bytes"
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mobishop/pos-api/internal/domain/entity"
	infraRepo "github.com/mobishop/pos-api/internal/infrastructure/repository"
)

func seedInvoice(t *testing.T, db *gorm.DB, number string, issuedAt time.Time, items []entity.InvoiceItem) {
	t.Helper()

	invoice := &entity.Invoice{
		InvoiceNumber: number,
		IssuedAt:      issuedAt,
		CustomerName:  "Ravi",
		CustomerPhone: "9876543210",
	}
	for i := range items {
		items[i].Position = i
		invoice.TotalTaxable += items[i].TaxableValue
		invoice.TotalGST += items[i].GSTAmount
	}
	invoice.GrandTotal = invoice.TotalTaxable + invoice.TotalGST
	invoice.Items = items
	require.NoError(t, infraRepo.NewLedgerRepository(db).Append(context.Background(), invoice))
}

func newReportFixture(t *testing.T) (*gorm.DB, *ReportService) {
	t.Helper()

	db := setupTestDB(t)
	svc := NewReportService(infraRepo.NewLedgerRepository(db), infraRepo.NewProductRepository(db))
	return db, svc
}

func day(d string) time.Time {
	ts, _ := time.Parse("2006-01-02 15:04", d)
	return ts
}

func TestDailyReportGroupsInEncounterOrder(t *testing.T) {
	t.Parallel()

	db, svc := newReportFixture(t)

	seedInvoice(t, db, "INV-000001", day("2026-08-01 09:00"), []entity.InvoiceItem{
		{Name: "Charger", Quantity: 1, TaxableValue: 10000, GSTPercent: 5, GSTAmount: 500, Total: 10500},
	})
	seedInvoice(t, db, "INV-000002", day("2026-08-02 10:00"), []entity.InvoiceItem{
		{Name: "Cable", Quantity: 1, TaxableValue: 5000, Total: 5000},
	})
	seedInvoice(t, db, "INV-000003", day("2026-08-01 17:00"), []entity.InvoiceItem{
		{Name: "Charger", Quantity: 1, TaxableValue: 10000, GSTPercent: 5, GSTAmount: 500, Total: 10500},
	})

	rows, err := svc.Daily(context.Background(), &ReportRange{})
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "2026-08-01", rows[0].Period)
	assert.Equal(t, 2, rows[0].InvoiceCount)
	assert.InDelta(t, 210.0, rows[0].TotalSales, 1e-9)
	assert.InDelta(t, 10.0, rows[0].TotalGST, 1e-9)
	assert.Equal(t, "2026-08-02", rows[1].Period)
	assert.Equal(t, 1, rows[1].InvoiceCount)
}

func TestDailyReportListsDistinctProductsSold(t *testing.T) {
	t.Parallel()

	db, svc := newReportFixture(t)

	seedInvoice(t, db, "INV-000001", day("2026-08-01 09:00"), []entity.InvoiceItem{
		{Name: "Charger", Quantity: 1, TaxableValue: 10000, Total: 10000},
		{Name: "Cable", Quantity: 2, TaxableValue: 5000, Total: 5000},
	})
	seedInvoice(t, db, "INV-000002", day("2026-08-01 17:00"), []entity.InvoiceItem{
		{Name: "Charger", Quantity: 1, TaxableValue: 10000, Total: 10000},
		{Name: "Screen Guard", Quantity: 1, TaxableValue: 2000, Total: 2000},
	})
	seedInvoice(t, db, "INV-000003", day("2026-08-02 10:00"), []entity.InvoiceItem{
		{Name: "Cable", Quantity: 1, TaxableValue: 5000, Total: 5000},
	})

	rows, err := svc.Daily(context.Background(), &ReportRange{})
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Charger", "Cable", "Screen Guard"}, rows[0].Products)
	assert.Equal(t, []string{"Cable"}, rows[1].Products)
}

func TestMonthlyReport(t *testing.T) {
	t.Parallel()

	db, svc := newReportFixture(t)

	seedInvoice(t, db, "INV-000001", day("2026-07-15 09:00"), []entity.InvoiceItem{
		{Name: "Charger", Quantity: 1, TaxableValue: 10000, Total: 10000},
	})
	seedInvoice(t, db, "INV-000002", day("2026-08-01 09:00"), []entity.InvoiceItem{
		{Name: "Charger", Quantity: 1, TaxableValue: 20000, Total: 20000},
	})

	rows, err := svc.Monthly(context.Background(), &ReportRange{})
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "2026-07", rows[0].Period)
	assert.Equal(t, "2026-08", rows[1].Period)
	assert.InDelta(t, 200.0, rows[1].TotalSales, 1e-9)
	assert.Equal(t, []string{"Charger"}, rows[0].Products)
}

func TestDailyReportDateRangeInclusive(t *testing.T) {
	t.Parallel()

	db, svc := newReportFixture(t)

	seedInvoice(t, db, "INV-000001", day("2026-08-01 09:00"), []entity.InvoiceItem{
		{Name: "A", Quantity: 1, TaxableValue: 100, Total: 100},
	})
	seedInvoice(t, db, "INV-000002", day("2026-08-05 09:00"), []entity.InvoiceItem{
		{Name: "B", Quantity: 1, TaxableValue: 100, Total: 100},
	})
	seedInvoice(t, db, "INV-000003", day("2026-08-09 09:00"), []entity.InvoiceItem{
		{Name: "C", Quantity: 1, TaxableValue: 100, Total: 100},
	})

	from := day("2026-08-01 09:00")
	to := day("2026-08-05 09:00")
	rows, err := svc.Daily(context.Background(), &ReportRange{From: &from, To: &to})
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "2026-08-01", rows[0].Period)
	assert.Equal(t, "2026-08-05", rows[1].Period)
}

func TestTaxReportExcludesZeroRateFromBreakdown(t *testing.T) {
	t.Parallel()

	db, svc := newReportFixture(t)

	seedInvoice(t, db, "INV-000001", day("2026-08-01 09:00"), []entity.InvoiceItem{
		{Name: "Charger", Quantity: 1, TaxableValue: 10000, GSTPercent: 18, GSTAmount: 1800, Total: 11800},
		{Name: "Book", Quantity: 1, TaxableValue: 5000, GSTPercent: 0, Total: 5000},
		{Name: "Cable", Quantity: 1, TaxableValue: 2000, GSTPercent: 18, GSTAmount: 360, Total: 2360},
	})

	report, err := svc.Tax(context.Background(), &ReportRange{})
	require.NoError(t, err)

	// Only the 18% bucket appears, but totals include the zero-rated line
	require.Len(t, report.Rows, 1)
	assert.Equal(t, 18.0, report.Rows[0].GSTPercent)
	assert.InDelta(t, 120.0, report.Rows[0].TaxableValue, 1e-9)
	assert.InDelta(t, 21.6, report.Rows[0].GSTAmount, 1e-9)
	assert.InDelta(t, 170.0, report.TotalTaxable, 1e-9)
	assert.InDelta(t, 21.6, report.TotalGST, 1e-9)
}

func TestTaxReportTotalsReflectBillDiscount(t *testing.T) {
	t.Parallel()

	db, svc := newReportFixture(t)

	// 10% bill discount: taxable stored post-discount, item values untouched
	invoice := &entity.Invoice{
		InvoiceNumber:       "INV-000001",
		IssuedAt:            day("2026-08-01 09:00"),
		CustomerName:        "Ravi",
		CustomerPhone:       "9876543210",
		Subtotal:            10000,
		BillDiscountPercent: 10,
		BillDiscountAmount:  1000,
		TotalTaxable:        9000,
		TotalGST:            500,
		GrandTotal:          9500,
		Items: []entity.InvoiceItem{
			{Name: "Charger", Quantity: 1, Rate: 10000, TaxableValue: 10000, GSTPercent: 5, GSTAmount: 500, Total: 10500},
		},
	}
	require.NoError(t, infraRepo.NewLedgerRepository(db).Append(context.Background(), invoice))

	report, err := svc.Tax(context.Background(), &ReportRange{})
	require.NoError(t, err)

	// The per-rate row keeps the pre-discount item value; the total is the
	// invoice's discounted taxable base
	require.Len(t, report.Rows, 1)
	assert.InDelta(t, 100.0, report.Rows[0].TaxableValue, 1e-9)
	assert.InDelta(t, 90.0, report.TotalTaxable, 1e-9)
	assert.InDelta(t, 5.0, report.TotalGST, 1e-9)
}

func TestTopSellersSortedByRevenue(t *testing.T) {
	t.Parallel()

	db, svc := newReportFixture(t)

	seedInvoice(t, db, "INV-000001", day("2026-08-01 09:00"), []entity.InvoiceItem{
		{Name: "Cable", Quantity: 3, Total: 15000},
		{Name: "Charger", Quantity: 1, Total: 50000},
	})
	seedInvoice(t, db, "INV-000002", day("2026-08-02 09:00"), []entity.InvoiceItem{
		{Name: "Cable", Quantity: 2, Total: 10000},
	})

	rows, err := svc.TopSellers(context.Background(), &ReportRange{})
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Charger", rows[0].Name)
	assert.InDelta(t, 500.0, rows[0].Revenue, 1e-9)
	assert.Equal(t, "Cable", rows[1].Name)
	assert.Equal(t, 5, rows[1].Quantity)
	assert.InDelta(t, 250.0, rows[1].Revenue, 1e-9)
}

func TestLowStockBoundaryInclusive(t *testing.T) {
	t.Parallel()

	db, svc := newReportFixture(t)

	seedProduct(t, db, "At threshold", 10, 5, 5)
	seedProduct(t, db, "Below", 10, 2, 5)
	seedProduct(t, db, "Above", 10, 6, 5)

	products, err := svc.LowStock(context.Background())
	require.NoError(t, err)

	require.Len(t, products, 2)
	names := []string{products[0].Name, products[1].Name}
	assert.Contains(t, names, "At threshold")
	assert.Contains(t, names, "Below")
}

func TestWriteSalesCSV(t *testing.T) {
	t.Parallel()

	rows := []SalesReportRow{
		{Period: "2026-08-01", InvoiceCount: 2, TotalSales: 210, TotalGST: 10, Products: []string{"Charger", "Cable"}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSalesCSV(&buf, "Date", rows))

	assert.Equal(t, "Date,Invoices,Total Sales,Total GST,Products Sold\n"+
		`2026-08-01,2,210.00,10.00,"Charger, Cable"`+"\n", buf.String())
}

func TestWriteTaxCSVIncludesTotalsRow(t *testing.T) {
	t.Parallel()

	report := &TaxReport{
		Rows:         []TaxReportRow{{GSTPercent: 18, TaxableValue: 120, GSTAmount: 21.6}},
		TotalTaxable: 170,
		TotalGST:     21.6,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTaxCSV(&buf, report))

	assert.Equal(t, "GST %,Taxable Value,GST Amount\n18,120.00,21.60\nTotal,170.00,21.60\n", buf.String())
}

func TestAmountDegradesNonFinite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.00", amount(math.NaN()))
	assert.Equal(t, "0.00", amount(math.Inf(1)))
	assert.Equal(t, "0.00", amount(math.Inf(-1)))
	assert.Equal(t, "12.30", amount(12.3))
}
