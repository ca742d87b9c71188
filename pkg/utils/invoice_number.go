package utils

import "fmt"

// InvoiceNumberPrefix prefixes every issued invoice number
const InvoiceNumberPrefix = "INV-"

// FormatInvoiceNumber renders a sequence value as a zero-padded invoice number,
// e.g. 1 -> "INV-000001". Values beyond six digits keep their full width.
func FormatInvoiceNumber(seq int64) string {
	return fmt.Sprintf("%s%06d", InvoiceNumberPrefix, seq)
}
