package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mobishop/pos-api/internal/application/service"
	"github.com/mobishop/pos-api/internal/domain/repository"
	"github.com/mobishop/pos-api/internal/presentation/http/dto/request"
	"github.com/mobishop/pos-api/internal/presentation/http/dto/response"
	"github.com/mobishop/pos-api/pkg/pagination"
)

// BillingHandler handles invoice issuance and ledger HTTP requests
type BillingHandler struct {
	billingService *service.BillingService
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

func issueInput(req *request.IssueInvoiceRequest) *service.IssueInput {
	return &service.IssueInput{
		Customer: service.CustomerInput{
			Name:         req.CustomerName,
			Phone:        req.CustomerPhone,
			GSTIN:        req.CustomerGSTIN,
			WarrantyNote: req.WarrantyNote,
		},
		BillDiscountPercent: req.BillDiscountPercent,
	}
}

// Preview computes the invoice the cart would produce without issuing it
func (h *BillingHandler) Preview(c *gin.Context) {
	var req request.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.billingService.Preview(c.Request.Context(), GetCartSession(c), issueInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice preview", invoice)
}

// Issue creates an invoice from the session's cart
func (h *BillingHandler) Issue(c *gin.Context) {
	var req request.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	invoice, err := h.billingService.Issue(c.Request.Context(), GetCartSession(c), issueInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice issued successfully", invoice)
}

// ListInvoices handles listing the sales ledger
func (h *BillingHandler) ListInvoices(c *gin.Context) {
	var filter request.LedgerFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.LedgerFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}

	if from, err := time.Parse("2006-01-02", filter.From); err == nil && filter.From != "" {
		params.From = &from
	}
	if to, err := time.Parse("2006-01-02", filter.To); err == nil && filter.To != "" {
		// Inclusive upper bound: extend to end of day
		end := to.Add(24*time.Hour - time.Nanosecond)
		params.To = &end
	}

	invoices, total, err := h.billingService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(invoices,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// GetInvoice handles retrieving a single ledger entry by invoice number
func (h *BillingHandler) GetInvoice(c *gin.Context) {
	invoice, err := h.billingService.GetInvoice(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}
