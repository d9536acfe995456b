package models

// ProductSelection captures the buyer's choice for a single product on the drop page
type ProductSelection struct {
	Selected bool   `json:"selected"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// OrderSubmission represents the order form payload coming from the landing page.
// Pricing fields are computed client-side and passed through untouched; the relay
// never recomputes or cross-checks them.
type OrderSubmission struct {
	CustomerName     string                      `json:"customerName" binding:"required"`
	CustomerCity     string                      `json:"customerCity" binding:"required"`
	CustomerPhone    string                      `json:"customerPhone"`
	SelectedProducts map[string]ProductSelection `json:"selectedProducts"`
	OrderTotal       float64                     `json:"orderTotal"`
	Subtotal         float64                     `json:"subtotal"`
	Discount         float64                     `json:"discount"`
}
