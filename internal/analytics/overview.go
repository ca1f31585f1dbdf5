package analytics

import (
	"github.com/kavyamurthy/paintsight/internal/models"
)

type ShopPerformance struct {
	ShopID  string  `json:"shop_id"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type BusinessOverview struct {
	TotalRevenue       float64           `json:"total_revenue"`
	TotalOrders        int               `json:"total_orders"`
	AverageOrderValue  float64           `json:"average_order_value"`
	TopPerformingShops []ShopPerformance `json:"top_performing_shops"`
}

type ColorStock struct {
	ColorName string `json:"color_name"`
	Quantity  int    `json:"quantity"`
}

type InventorySummary struct {
	ShopID        string       `json:"shop_id"`
	TotalProducts int          `json:"total_products"`
	LowStockItems int          `json:"low_stock_items"`
	TotalValue    float64      `json:"total_value"`
	TopColors     []ColorStock `json:"top_colors"`
}

const lowStockThreshold = 50

// AnalyzeBusiness rolls the whole order history up into distributor-level
// revenue and shop-performance figures.
func AnalyzeBusiness(orders []models.Order) BusinessOverview {
	revenueByShop := NewCounter()
	ordersByShop := NewCounter()
	for _, order := range orders {
		revenueByShop.Add(order.ShopID, order.GrandTotal)
		ordersByShop.Add(order.ShopID, 1)
	}

	topShops := make([]ShopPerformance, 0, 5)
	for _, ranked := range revenueByShop.Top(5) {
		topShops = append(topShops, ShopPerformance{
			ShopID:  ranked.Key,
			Revenue: ranked.Weight,
			Orders:  int(ordersByShop.Get(ranked.Key)),
		})
	}

	totalRevenue := Revenue(orders)
	return BusinessOverview{
		TotalRevenue:       totalRevenue,
		TotalOrders:        len(orders),
		AverageOrderValue:  SafeDiv(totalRevenue, float64(len(orders))),
		TopPerformingShops: topShops,
	}
}

// SummarizeInventory reports stock posture per shop inventory: product
// count, items under the low-stock threshold, list value on hand and the
// top five colors by unit quantity.
func SummarizeInventory(shopID string, inventory []models.Product) InventorySummary {
	lowStock := 0
	var totalValue float64
	colorQty := NewCounter()
	for _, product := range inventory {
		if product.Quantity < lowStockThreshold {
			lowStock++
		}
		totalValue += product.StockValue()
		colorQty.Add(product.ColorName, float64(product.Quantity))
	}

	topColors := make([]ColorStock, 0, 5)
	for _, ranked := range colorQty.Top(5) {
		topColors = append(topColors, ColorStock{ColorName: ranked.Key, Quantity: int(ranked.Weight)})
	}

	return InventorySummary{
		ShopID:        shopID,
		TotalProducts: len(inventory),
		LowStockItems: lowStock,
		TotalValue:    totalValue,
		TopColors:     topColors,
	}
}
