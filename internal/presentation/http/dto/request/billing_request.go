package request

// IssueInvoiceRequest represents issuing or previewing an invoice
type IssueInvoiceRequest struct {
	CustomerName        string  `json:"customer_name" binding:"required"`
	CustomerPhone       string  `json:"customer_phone" binding:"required"`
	CustomerGSTIN       *string `json:"customer_gstin"`
	WarrantyNote        *string `json:"warranty_note"`
	BillDiscountPercent float64 `json:"bill_discount_percent"`
}

// LedgerFilterRequest represents invoice history filter parameters
type LedgerFilterRequest struct {
	Search  string `form:"search"`
	From    string `form:"from"` // YYYY-MM-DD, inclusive
	To      string `form:"to"`   // YYYY-MM-DD, inclusive
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
