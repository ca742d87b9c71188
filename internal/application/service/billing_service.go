package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mobishop/pos-api/internal/domain/billing"
	"github.com/mobishop/pos-api/internal/domain/entity"
	"github.com/mobishop/pos-api/internal/domain/repository"
	"github.com/mobishop/pos-api/pkg/apperror"
	"github.com/mobishop/pos-api/pkg/utils"
)

// BillingService turns a session cart into an issued invoice: pricing,
// numbering, stock decrement, and the ledger append.
type BillingService struct {
	cartService *CartService
	productRepo repository.ProductRepository
	ledgerRepo  repository.LedgerRepository
	seqRepo     repository.SequenceRepository
}

// NewBillingService creates a new billing service
func NewBillingService(
	cartService *CartService,
	productRepo repository.ProductRepository,
	ledgerRepo repository.LedgerRepository,
	seqRepo repository.SequenceRepository,
) *BillingService {
	return &BillingService{
		cartService: cartService,
		productRepo: productRepo,
		ledgerRepo:  ledgerRepo,
		seqRepo:     seqRepo,
	}
}

// CustomerInput is the buyer data printed on the invoice
type CustomerInput struct {
	Name         string
	Phone        string
	GSTIN        *string
	WarrantyNote *string
}

// IssueInput represents the input for issuing or previewing an invoice
type IssueInput struct {
	Customer            CustomerInput
	BillDiscountPercent float64
}

func (in *IssueInput) validate(lines []billing.Line) error {
	if len(lines) == 0 {
		return apperror.ErrEmptyCart
	}
	if strings.TrimSpace(in.Customer.Name) == "" || strings.TrimSpace(in.Customer.Phone) == "" {
		return apperror.ErrMissingCustomerInfo
	}
	return nil
}

// billDiscount sanitizes the bill-level discount percentage
func (in *IssueInput) billDiscount() float64 {
	if math.IsNaN(in.BillDiscountPercent) {
		return 0
	}
	return in.BillDiscountPercent
}

// Preview computes the invoice the cart would produce, including the next
// invoice number, without writing anything
func (s *BillingService) Preview(ctx context.Context, session string, input *IssueInput) (*entity.Invoice, error) {
	lines := s.cartService.Lines(session)
	if err := input.validate(lines); err != nil {
		return nil, err
	}

	seq, err := s.seqRepo.Peek(ctx, entity.DefaultSequenceName)
	if err != nil {
		return nil, err
	}

	result := billing.Price(lines, input.billDiscount())
	return buildInvoice(utils.FormatInvoiceNumber(seq), time.Now(), &input.Customer, result), nil
}

// Issue creates the invoice: validates, prices, draws the next number,
// decrements stock, and appends to the ledger. The cart is cleared only on
// success. A failed append restores the decremented stock.
func (s *BillingService) Issue(ctx context.Context, session string, input *IssueInput) (*entity.Invoice, error) {
	lines := s.cartService.Lines(session)
	if err := input.validate(lines); err != nil {
		return nil, err
	}

	seq, err := s.seqRepo.Next(ctx, entity.DefaultSequenceName)
	if err != nil {
		return nil, err
	}

	result := billing.Price(lines, input.billDiscount())
	invoice := buildInvoice(utils.FormatInvoiceNumber(seq), time.Now(), &input.Customer, result)

	decrements := make(map[uuid.UUID]int, len(lines))
	for _, line := range lines {
		decrements[line.ProductID] = line.Quantity
	}
	if err := s.productRepo.DecrementBatch(ctx, decrements); err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.Append(ctx, invoice); err != nil {
		if restoreErr := s.productRepo.IncrementBatch(ctx, decrements); restoreErr != nil {
			return nil, restoreErr
		}
		return nil, err
	}

	s.cartService.Clear(ctx, session)
	return invoice, nil
}

// ListInvoices returns ledger entries newest first with search and date filters
func (s *BillingService) ListInvoices(ctx context.Context, params *repository.LedgerFilterParams) ([]entity.Invoice, int64, error) {
	return s.ledgerRepo.List(ctx, params)
}

// GetInvoice retrieves a ledger entry by invoice number
func (s *BillingService) GetInvoice(ctx context.Context, number string) (*entity.Invoice, error) {
	invoice, err := s.ledgerRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// buildInvoice materializes a priced cart as an invoice entity. Amounts are
// rounded to cents here; the stored grand total is kept additive as
// total taxable plus total GST in cents.
func buildInvoice(number string, issuedAt time.Time, customer *CustomerInput, result billing.PricingResult) *entity.Invoice {
	invoice := &entity.Invoice{
		InvoiceNumber:       number,
		IssuedAt:            issuedAt,
		CustomerName:        strings.TrimSpace(customer.Name),
		CustomerPhone:       strings.TrimSpace(customer.Phone),
		CustomerGSTIN:       customer.GSTIN,
		WarrantyNote:        customer.WarrantyNote,
		Subtotal:            cents(result.Subtotal),
		TotalItemDiscount:   cents(result.TotalItemDiscount),
		BillDiscountPercent: result.BillDiscountPercent,
		BillDiscountAmount:  cents(result.BillDiscountAmount),
		TotalTaxable:        cents(result.FinalTaxable),
		TotalGST:            cents(result.TotalGST),
	}
	invoice.GrandTotal = invoice.TotalTaxable + invoice.TotalGST

	for i, lp := range result.Lines {
		invoice.Items = append(invoice.Items, entity.InvoiceItem{
			ProductID:       lp.Line.ProductID,
			Position:        i,
			Name:            lp.Line.Name,
			Quantity:        lp.Line.Quantity,
			Rate:            cents(lp.Line.Rate),
			DiscountPercent: lp.Line.DiscountPercent,
			Discount:        cents(lp.Discount),
			TaxableValue:    cents(lp.Taxable),
			GSTPercent:      lp.Line.GSTPercent,
			GSTAmount:       cents(lp.GST),
			Total:           cents(lp.Total),
		})
	}

	return invoice
}

// cents rounds a decimal amount to integer cents. Non-finite values collapse
// to zero rather than corrupting the ledger.
func cents(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int64(math.Round(v * 100))
}
