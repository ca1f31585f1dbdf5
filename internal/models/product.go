package models

// Product is a paint SKU as stocked by a shop. Price is the current list
// price; order line items snapshot their own subtotal at sale time.
type Product struct {
	ID               string  `json:"id"`
	ColorName        string  `json:"color_name"`
	ColorCode        string  `json:"color_code"` // hex, e.g. "#DC143C"
	ManufacturedDate string  `json:"manufactured_date"`
	ExpiryDate       string  `json:"expiry_date"`
	Price            float64 `json:"price"` // per litre
	Quality          string  `json:"quality"`
	Quantity         int     `json:"quantity"` // litres in stock
	Texture          string  `json:"texture"`
	Batch            string  `json:"batch"`
	Plant            string  `json:"plant"`
	Brand            string  `json:"brand"`
}

// StockValue is the list-price value of the units on hand.
func (p *Product) StockValue() float64 {
	return p.Price * float64(p.Quantity)
}
