package billing

// LinePricing carries the computed amounts for one cart line
type LinePricing struct {
	Line     Line    `json:"line"`
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Taxable  float64 `json:"taxable"`
	GST      float64 `json:"gst"`
	Total    float64 `json:"total"`
}

// PricingResult is the full bill computation for a cart
type PricingResult struct {
	Lines               []LinePricing `json:"lines"`
	Subtotal            float64       `json:"subtotal"`
	TotalItemDiscount   float64       `json:"total_item_discount"`
	TotalTaxable        float64       `json:"total_taxable"` // Before bill discount
	BillDiscountPercent float64       `json:"bill_discount_percent"`
	BillDiscountAmount  float64       `json:"bill_discount_amount"`
	FinalTaxable        float64       `json:"final_taxable"`
	TotalGST            float64       `json:"total_gst"`
	GrandTotal          float64       `json:"grand_total"`
}

// Price computes all bill amounts for the given lines and bill-level discount.
// Per line: subtotal = rate * qty, discount = subtotal * discount% / 100,
// taxable = subtotal - discount, gst = taxable * gst% / 100, total = taxable + gst.
// The bill discount reduces the aggregate taxable base only; line GST amounts
// are not recomputed against the discounted base, so the grand total is
// finalTaxable + the GST collected per line. Amounts stay at full float64
// precision here; rounding happens at persistence and presentation.
func Price(lines []Line, billDiscountPercent float64) PricingResult {
	result := PricingResult{
		Lines:               make([]LinePricing, 0, len(lines)),
		BillDiscountPercent: billDiscountPercent,
	}

	for _, line := range lines {
		subtotal := line.Rate * float64(line.Quantity)
		discount := subtotal * line.DiscountPercent / 100
		taxable := subtotal - discount
		gst := taxable * line.GSTPercent / 100

		lp := LinePricing{
			Line:     line,
			Subtotal: subtotal,
			Discount: discount,
			Taxable:  taxable,
			GST:      gst,
			Total:    taxable + gst,
		}
		result.Lines = append(result.Lines, lp)

		result.Subtotal += subtotal
		result.TotalItemDiscount += discount
		result.TotalTaxable += taxable
		result.TotalGST += gst
	}

	result.BillDiscountAmount = result.TotalTaxable * billDiscountPercent / 100
	result.FinalTaxable = result.TotalTaxable - result.BillDiscountAmount
	result.GrandTotal = result.FinalTaxable + result.TotalGST

	return result
}
