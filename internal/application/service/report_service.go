package service

import (
	"context"
	"encoding/csv"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mobishop/pos-api/internal/domain/entity"
	"github.com/mobishop/pos-api/internal/domain/repository"
)

// TopSellerLimit caps the top sellers report
const TopSellerLimit = 20

// ReportService derives reports from the sales ledger. Every report is a
// fold over invoices in issuance order; groups appear in the order their
// first invoice was encountered.
type ReportService struct {
	ledgerRepo  repository.LedgerRepository
	productRepo repository.ProductRepository
}

// NewReportService creates a new report service
func NewReportService(ledgerRepo repository.LedgerRepository, productRepo repository.ProductRepository) *ReportService {
	return &ReportService{
		ledgerRepo:  ledgerRepo,
		productRepo: productRepo,
	}
}

// ReportRange is an inclusive date filter. Nil bounds are unbounded.
type ReportRange struct {
	From *time.Time
	To   *time.Time
}

// SalesReportRow is one period (day or month) of sales. Products holds the
// distinct product names sold in the period, in first-sold order.
type SalesReportRow struct {
	Period       string   `json:"period"`
	InvoiceCount int      `json:"invoice_count"`
	TotalSales   float64  `json:"total_sales"`
	TotalGST     float64  `json:"total_gst"`
	Products     []string `json:"products"`
}

// TaxReportRow is the collected GST for one rate
type TaxReportRow struct {
	GSTPercent   float64 `json:"gst_percent"`
	TaxableValue float64 `json:"taxable_value"`
	GSTAmount    float64 `json:"gst_amount"`
}

// TaxReport is the GST breakdown by rate. Zero-rated lines are excluded from
// the breakdown rows; the totals are summed per invoice, so they include
// zero-rated lines and reflect any bill discount.
type TaxReport struct {
	Rows         []TaxReportRow `json:"rows"`
	TotalTaxable float64        `json:"total_taxable"`
	TotalGST     float64        `json:"total_gst"`
}

// TopSellerRow is one product's aggregated sales
type TopSellerRow struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// Daily returns per-day sales totals within the range
func (s *ReportService) Daily(ctx context.Context, rng *ReportRange) ([]SalesReportRow, error) {
	return s.salesByPeriod(ctx, rng, "2006-01-02")
}

// Monthly returns per-month sales totals within the range
func (s *ReportService) Monthly(ctx context.Context, rng *ReportRange) ([]SalesReportRow, error) {
	return s.salesByPeriod(ctx, rng, "2006-01")
}

func (s *ReportService) salesByPeriod(ctx context.Context, rng *ReportRange, layout string) ([]SalesReportRow, error) {
	invoices, err := s.ledgerRepo.ListBetween(ctx, rng.From, rng.To)
	if err != nil {
		return nil, err
	}

	rows := []SalesReportRow{}
	index := make(map[string]int)
	seen := make(map[string]map[string]bool)
	for _, inv := range invoices {
		period := inv.IssuedAt.Format(layout)
		i, ok := index[period]
		if !ok {
			i = len(rows)
			index[period] = i
			rows = append(rows, SalesReportRow{Period: period, Products: []string{}})
			seen[period] = make(map[string]bool)
		}
		rows[i].InvoiceCount++
		rows[i].TotalSales += float64(inv.GrandTotal) / 100
		rows[i].TotalGST += float64(inv.TotalGST) / 100
		for _, item := range inv.Items {
			if !seen[period][item.Name] {
				seen[period][item.Name] = true
				rows[i].Products = append(rows[i].Products, item.Name)
			}
		}
	}
	return rows, nil
}

// Tax returns the GST breakdown by rate within the range
func (s *ReportService) Tax(ctx context.Context, rng *ReportRange) (*TaxReport, error) {
	invoices, err := s.ledgerRepo.ListBetween(ctx, rng.From, rng.To)
	if err != nil {
		return nil, err
	}

	report := &TaxReport{Rows: []TaxReportRow{}}
	index := make(map[float64]int)
	for _, inv := range invoices {
		// Totals come from the invoice, so a bill discount shrinks the
		// reported taxable base; the per-rate rows stay item-derived.
		report.TotalTaxable += float64(inv.TotalTaxable) / 100
		report.TotalGST += float64(inv.TotalGST) / 100

		for _, item := range inv.Items {
			taxable := float64(item.TaxableValue) / 100
			gst := float64(item.GSTAmount) / 100

			if item.GSTPercent == 0 {
				continue
			}
			i, ok := index[item.GSTPercent]
			if !ok {
				i = len(report.Rows)
				index[item.GSTPercent] = i
				report.Rows = append(report.Rows, TaxReportRow{GSTPercent: item.GSTPercent})
			}
			report.Rows[i].TaxableValue += taxable
			report.Rows[i].GSTAmount += gst
		}
	}
	return report, nil
}

// TopSellers returns the highest-revenue products within the range,
// revenue descending with stable ties, capped at TopSellerLimit
func (s *ReportService) TopSellers(ctx context.Context, rng *ReportRange) ([]TopSellerRow, error) {
	invoices, err := s.ledgerRepo.ListBetween(ctx, rng.From, rng.To)
	if err != nil {
		return nil, err
	}

	rows := []TopSellerRow{}
	index := make(map[string]int)
	for _, inv := range invoices {
		for _, item := range inv.Items {
			i, ok := index[item.Name]
			if !ok {
				i = len(rows)
				index[item.Name] = i
				rows = append(rows, TopSellerRow{Name: item.Name})
			}
			rows[i].Quantity += item.Quantity
			rows[i].Revenue += float64(item.Total) / 100
		}
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Revenue > rows[b].Revenue
	})
	if len(rows) > TopSellerLimit {
		rows = rows[:TopSellerLimit]
	}
	return rows, nil
}

// LowStock returns products at or below their alert threshold
func (s *ReportService) LowStock(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// amount renders a money value with two decimals. Non-finite values render
// as "0.00" so a single bad record never breaks an export.
func amount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// WriteSalesCSV writes a daily or monthly sales report as CSV
func WriteSalesCSV(w io.Writer, periodHeader string, rows []SalesReportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{periodHeader, "Invoices", "Total Sales", "Total GST", "Products Sold"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Period,
			strconv.Itoa(row.InvoiceCount),
			amount(row.TotalSales),
			amount(row.TotalGST),
			strings.Join(row.Products, ", "),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTaxCSV writes the tax report as CSV with a trailing totals row
func WriteTaxCSV(w io.Writer, report *TaxReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"GST %", "Taxable Value", "GST Amount"}); err != nil {
		return err
	}
	for _, row := range report.Rows {
		record := []string{
			strconv.FormatFloat(row.GSTPercent, 'f', -1, 64),
			amount(row.TaxableValue),
			amount(row.GSTAmount),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"Total", amount(report.TotalTaxable), amount(report.TotalGST)}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// WriteTopSellersCSV writes the top sellers report as CSV
func WriteTopSellersCSV(w io.Writer, rows []TopSellerRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Product", "Quantity Sold", "Revenue"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Name,
			strconv.Itoa(row.Quantity),
			amount(row.Revenue),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteLowStockCSV writes the low stock report as CSV
func WriteLowStockCSV(w io.Writer, products []entity.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Product", "Quantity", "Alert Level"}); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			p.Name,
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.QuantityAlert),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
