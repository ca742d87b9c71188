package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice represents an issued bill in the sales ledger.
// Rows are append-only: nothing updates or deletes an invoice once created.
type Invoice struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string    `gorm:"size:50;uniqueIndex;not null" json:"invoice_number"`
	IssuedAt      time.Time `gorm:"not null;index" json:"issued_at"`

	CustomerName  string  `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone string  `gorm:"size:50;not null" json:"customer_phone"`
	CustomerGSTIN *string `gorm:"size:50" json:"customer_gstin,omitempty"`
	WarrantyNote  *string `gorm:"type:text" json:"warranty_note,omitempty"`

	// Money stored in cents
	Subtotal            int64   `gorm:"default:0" json:"subtotal"`
	TotalItemDiscount   int64   `gorm:"default:0" json:"total_item_discount"`
	BillDiscountPercent float64 `gorm:"default:0" json:"bill_discount_percent"`
	BillDiscountAmount  int64   `gorm:"default:0" json:"bill_discount_amount"`
	TotalTaxable        int64   `gorm:"default:0" json:"total_taxable"` // After bill discount
	TotalGST            int64   `gorm:"default:0" json:"total_gst"`
	GrandTotal          int64   `gorm:"default:0" json:"grand_total"`

	CreatedAt time.Time `json:"created_at"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceJSON is a helper struct for JSON marshaling with decimal amounts
type InvoiceJSON struct {
	ID                  uuid.UUID     `json:"id"`
	InvoiceNumber       string        `json:"invoice_number"`
	IssuedAt            time.Time     `json:"issued_at"`
	CustomerName        string        `json:"customer_name"`
	CustomerPhone       string        `json:"customer_phone"`
	CustomerGSTIN       *string       `json:"customer_gstin,omitempty"`
	WarrantyNote        *string       `json:"warranty_note,omitempty"`
	Subtotal            float64       `json:"subtotal"`
	TotalItemDiscount   float64       `json:"total_item_discount"`
	BillDiscountPercent float64       `json:"bill_discount_percent"`
	BillDiscountAmount  float64       `json:"bill_discount_amount"`
	TotalTaxable        float64       `json:"total_taxable"`
	TotalGST            float64       `json:"total_gst"`
	GrandTotal          float64       `json:"grand_total"`
	CreatedAt           time.Time     `json:"created_at"`
	Items               []InvoiceItem `json:"items"`
}

// MarshalJSON converts Invoice to JSON with decimal amounts
func (i Invoice) MarshalJSON() ([]byte, error) {
	return json.Marshal(InvoiceJSON{
		ID:                  i.ID,
		InvoiceNumber:       i.InvoiceNumber,
		IssuedAt:            i.IssuedAt,
		CustomerName:        i.CustomerName,
		CustomerPhone:       i.CustomerPhone,
		CustomerGSTIN:       i.CustomerGSTIN,
		WarrantyNote:        i.WarrantyNote,
		Subtotal:            float64(i.Subtotal) / 100,
		TotalItemDiscount:   float64(i.TotalItemDiscount) / 100,
		BillDiscountPercent: i.BillDiscountPercent,
		BillDiscountAmount:  float64(i.BillDiscountAmount) / 100,
		TotalTaxable:        float64(i.TotalTaxable) / 100,
		TotalGST:            float64(i.TotalGST) / 100,
		GrandTotal:          float64(i.GrandTotal) / 100,
		CreatedAt:           i.CreatedAt,
		Items:               i.Items,
	})
}

// InvoiceItem is a denormalized line snapshot. Product data is copied at
// issuance so later catalog edits or deletions never change past invoices.
type InvoiceItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	ProductID uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Position  int       `gorm:"not null" json:"position"` // Preserves cart line order

	Name     string `gorm:"size:255;not null" json:"name"`
	Quantity int    `gorm:"not null" json:"quantity"`

	// Money stored in cents
	Rate            int64   `gorm:"default:0" json:"rate"`
	DiscountPercent float64 `gorm:"default:0" json:"discount_percent"`
	Discount        int64   `gorm:"default:0" json:"discount"`
	TaxableValue    int64   `gorm:"default:0" json:"taxable_value"`
	GSTPercent      float64 `gorm:"default:0" json:"gst_percent"`
	GSTAmount       int64   `gorm:"default:0" json:"gst_amount"`
	Total           int64   `gorm:"default:0" json:"total"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// InvoiceItemJSON is a helper struct for JSON marshaling with decimal amounts
type InvoiceItemJSON struct {
	ID              uuid.UUID `json:"id"`
	ProductID       uuid.UUID `json:"product_id"`
	Position        int       `json:"position"`
	Name            string    `json:"name"`
	Quantity        int       `json:"quantity"`
	Rate            float64   `json:"rate"`
	DiscountPercent float64   `json:"discount_percent"`
	Discount        float64   `json:"discount"`
	TaxableValue    float64   `json:"taxable_value"`
	GSTPercent      float64   `json:"gst_percent"`
	GSTAmount       float64   `json:"gst_amount"`
	Total           float64   `json:"total"`
}

// MarshalJSON converts InvoiceItem to JSON with decimal amounts
func (it InvoiceItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(InvoiceItemJSON{
		ID:              it.ID,
		ProductID:       it.ProductID,
		Position:        it.Position,
		Name:            it.Name,
		Quantity:        it.Quantity,
		Rate:            float64(it.Rate) / 100,
		DiscountPercent: it.DiscountPercent,
		Discount:        float64(it.Discount) / 100,
		TaxableValue:    float64(it.TaxableValue) / 100,
		GSTPercent:      it.GSTPercent,
		GSTAmount:       float64(it.GSTAmount) / 100,
		Total:           float64(it.Total) / 100,
	})
}

// InvoiceSequence is a persisted monotonic counter backing invoice numbering.
// A single named row is incremented inside a transaction per issued invoice.
type InvoiceSequence struct {
	Name      string    `gorm:"size:50;primary_key" json:"name"`
	Value     int64     `gorm:"not null;default:0" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the InvoiceSequence model
func (InvoiceSequence) TableName() string {
	return "invoice_sequences"
}

// DefaultSequenceName is the row used for invoice numbering
const DefaultSequenceName = "invoice"
