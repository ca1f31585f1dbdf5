package models

import "time"

// POSTaxRate is the sales tax applied to orders created at the till.
// Orders imported from the converted sales history carry their own stored
// tax (18% GST) which is never recomputed; see Order.Tax.
const POSTaxRate = 0.10

type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"` // price at time of sale × quantity
}

// Order is an immutable historical record. The stored Total/Tax/GrandTotal
// fields are snapshots taken when the order was created; analytics reads
// them as-is and never derives them from current catalog prices.
type Order struct {
	ID            string      `json:"id"`
	Items         []OrderItem `json:"items"`
	CustomerName  string      `json:"customer_name,omitempty"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	PaymentMethod string      `json:"payment_method"` // "cash" or "online"
	Timestamp     string      `json:"timestamp"`      // RFC3339 / ISO 8601
	SalespersonID string      `json:"salesperson_id"`
	ShopID        string      `json:"shop_id"`
	Total         float64     `json:"total"`
	Tax           float64     `json:"tax"`
	GrandTotal    float64     `json:"grand_total"`
}

// Subtotal sums the line subtotals of a set of items.
func Subtotal(items []OrderItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Subtotal
	}
	return sum
}

// SaleTax computes the POS tax for a new order's items.
func SaleTax(items []OrderItem) float64 {
	return Subtotal(items) * POSTaxRate
}

// OrderGrandTotal computes subtotal plus POS tax for a new order's items.
func OrderGrandTotal(items []OrderItem) float64 {
	return Subtotal(items) + SaleTax(items)
}

// NewOrder builds a POS order with derived totals fixed at creation time.
func NewOrder(id, salespersonID, shopID, paymentMethod, customerName, customerPhone string, items []OrderItem, placedAt time.Time) Order {
	return Order{
		ID:            id,
		Items:         items,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		PaymentMethod: paymentMethod,
		Timestamp:     placedAt.Format(time.RFC3339),
		SalespersonID: salespersonID,
		ShopID:        shopID,
		Total:         Subtotal(items),
		Tax:           SaleTax(items),
		GrandTotal:    OrderGrandTotal(items),
	}
}

// TotalItems is the total unit quantity across all line items.
func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

func (o *Order) IsEmpty() bool {
	return len(o.Items) == 0
}

// Time parses the order timestamp. ok is false when the timestamp cannot be
// parsed; each engine decides whether such orders stay in its totals.
func (o *Order) Time() (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, o.Timestamp); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
