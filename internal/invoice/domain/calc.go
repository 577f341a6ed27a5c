package domain

// Totals are the derived monetary fields of an invoice.
type Totals struct {
	Subtotal       float64
	TaxAmount      float64
	DiscountAmount float64
	TotalAmount    float64
}

// Calculate sums the job costs and derives tax, discount and total.
// Percentages carry no upper bound: a discount above 100% legally
// drives the total negative.
func Calculate(costs []float64, taxPercent, discountPercent float64) Totals {
	var subtotal float64
	for _, cost := range costs {
		subtotal += cost
	}
	return Derive(subtotal, taxPercent, discountPercent)
}

// Derive recomputes the dependent amounts from an already known
// subtotal. Prior derived amounts are always discarded, never
// accumulated.
func Derive(subtotal, taxPercent, discountPercent float64) Totals {
	tax := subtotal * taxPercent / 100
	discount := subtotal * discountPercent / 100
	return Totals{
		Subtotal:       subtotal,
		TaxAmount:      tax,
		DiscountAmount: discount,
		TotalAmount:    subtotal + tax - discount,
	}
}
