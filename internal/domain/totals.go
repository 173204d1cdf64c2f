package domain

// Shipping rule: orders at or above the threshold ship free, everything
// below pays the flat fee. Both values are in the store's base currency.
const (
	FreeShippingThreshold = 100.0
	FlatShippingFee       = 9.99
)

type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Totals derives subtotal, shipping and total from a cart. Discounts apply
// per unit before multiplying by quantity. No rounding happens here; display
// formatting is the caller's problem.
func Totals(state CartState) CartTotals {
	subtotal := 0.0
	for _, it := range state.Items {
		subtotal += it.Product.DiscountedPrice() * float64(it.Quantity)
	}
	shipping := FlatShippingFee
	if subtotal >= FreeShippingThreshold {
		shipping = 0
	}
	return CartTotals{Subtotal: subtotal, Shipping: shipping, Total: subtotal + shipping}
}

// ItemCount sums quantities across all lines.
func ItemCount(state CartState) int {
	count := 0
	for _, it := range state.Items {
		count += it.Quantity
	}
	return count
}
