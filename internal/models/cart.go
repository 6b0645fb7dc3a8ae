package models

// CartLine is one product plus its requested quantity within a cart.
// Quantity is always >= 1; a line driven to zero is removed, never stored.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartSnapshot is a point-in-time read of a cart: the ordered lines plus the
// totals derived from them. Totals are recomputed from the line set on every
// read so they can never drift from it.
type CartSnapshot struct {
	Lines      []CartLine `json:"lines"`
	TotalItems int        `json:"total_items"`
	TotalPrice int64      `json:"total_price"`
}

// IsEmpty reports whether the cart has no lines.
func (s CartSnapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}
