package analytics

import (
	"testing"

	"github.com/kavyamurthy/paintsight/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBusiness(t *testing.T) {
	orders := []models.Order{
		{ShopID: "BLR001", GrandTotal: 5000},
		{ShopID: "BLR001", GrandTotal: 3000},
		{ShopID: "BLR002", GrandTotal: 10000},
	}

	overview := AnalyzeBusiness(orders)
	assert.Equal(t, 18000.0, overview.TotalRevenue)
	assert.Equal(t, 3, overview.TotalOrders)
	assert.Equal(t, 6000.0, overview.AverageOrderValue)

	require.Len(t, overview.TopPerformingShops, 2)
	assert.Equal(t, "BLR002", overview.TopPerformingShops[0].ShopID)
	assert.Equal(t, 10000.0, overview.TopPerformingShops[0].Revenue)
	assert.Equal(t, 1, overview.TopPerformingShops[0].Orders)
	assert.Equal(t, 2, overview.TopPerformingShops[1].Orders)
}

func TestAnalyzeBusinessEmpty(t *testing.T) {
	overview := AnalyzeBusiness(nil)
	assert.Zero(t, overview.TotalRevenue)
	assert.Zero(t, overview.AverageOrderValue)
	assert.Empty(t, overview.TopPerformingShops)
}

func TestSummarizeInventory(t *testing.T) {
	inventory := []models.Product{
		{ID: "P1", ColorName: "Pure White", Price: 500, Quantity: 100},
		{ID: "P2", ColorName: "Ocean Blue", Price: 800, Quantity: 20}, // low stock
		{ID: "P3", ColorName: "Pure White", Price: 300, Quantity: 60},
	}

	summary := SummarizeInventory("BLR001", inventory)
	assert.Equal(t, "BLR001", summary.ShopID)
	assert.Equal(t, 3, summary.TotalProducts)
	assert.Equal(t, 1, summary.LowStockItems)
	assert.Equal(t, 500.0*100+800*20+300*60, summary.TotalValue)

	require.NotEmpty(t, summary.TopColors)
	assert.Equal(t, "Pure White", summary.TopColors[0].ColorName)
	assert.Equal(t, 160, summary.TopColors[0].Quantity)
}
