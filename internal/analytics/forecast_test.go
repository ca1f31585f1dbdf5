package analytics

import (
	"testing"
	"time"

	"github.com/kavyamurthy/paintsight/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var forecastNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

var forecastShops = []models.Shop{
	{ID: "BLR001", City: "Bengaluru"},
	{ID: "MYS001", City: "Mysuru"},
}

func forecastOrder(shopID string, daysAgo, quantity int, color string) models.Order {
	return models.Order{
		ID:        shopID + color,
		ShopID:    shopID,
		Timestamp: forecastNow.AddDate(0, 0, -daysAgo).Format(time.RFC3339),
		Items: []models.OrderItem{
			{Product: models.Product{ID: "P-" + color, ColorName: color}, Quantity: quantity},
		},
	}
}

func TestPredictCitySalesArithmetic(t *testing.T) {
	// 60 units of Ocean Blue in the window: base 10/month, trend +6
	orders := []models.Order{
		forecastOrder("BLR001", 30, 60, "Ocean Blue"),
	}

	predictions := PredictCitySales(orders, forecastShops, 7, 2025, forecastNow)
	require.Len(t, predictions, 1)

	city := predictions[0]
	assert.Equal(t, "Bengaluru", city.City)
	assert.Equal(t, "July", city.Month)
	assert.Equal(t, 2025, city.Year)

	require.Len(t, city.ColorPredictions, 1)
	color := city.ColorPredictions[0]
	assert.Equal(t, "Ocean Blue", color.ColorName)
	assert.Equal(t, 16, color.PredictedQuantity) // round(10 + 6)
	assert.InDelta(t, 80.6, color.Confidence, 0.001)
	assert.Equal(t, "+60.0%", color.Trend)
}

func TestPredictCitySalesConfidenceBounds(t *testing.T) {
	orders := []models.Order{
		forecastOrder("BLR001", 10, 5000, "Pure White"), // pushes past the cap
	}
	predictions := PredictCitySales(orders, forecastShops, 7, 2025, forecastNow)
	require.Len(t, predictions, 1)
	assert.Equal(t, 95.0, predictions[0].ColorPredictions[0].Confidence)
}

func TestPredictCitySalesWindowExcludesOldOrders(t *testing.T) {
	orders := []models.Order{
		forecastOrder("BLR001", 30, 10, "Ocean Blue"),
		forecastOrder("BLR001", 400, 100, "Ocean Blue"), // outside the 6-month window
	}

	predictions := PredictCitySales(orders, forecastShops, 7, 2025, forecastNow)
	require.Len(t, predictions, 1)
	color := predictions[0].ColorPredictions[0]
	// only the in-window 10 units count: round(10/6 + 1) = 3
	assert.Equal(t, 3, color.PredictedQuantity)
}

func TestPredictCitySalesUnknownShopCity(t *testing.T) {
	orders := []models.Order{
		forecastOrder("GONE01", 30, 10, "Teal"),
	}
	predictions := PredictCitySales(orders, forecastShops, 7, 2025, forecastNow)
	require.Len(t, predictions, 1)
	assert.Equal(t, "Unknown City", predictions[0].City)
}

func TestPredictCitySalesGroupsAndSorts(t *testing.T) {
	orders := []models.Order{
		forecastOrder("MYS001", 20, 12, "Teal"),
		forecastOrder("BLR001", 20, 6, "Charcoal"),
		forecastOrder("BLR001", 25, 30, "Ocean Blue"),
	}

	predictions := PredictCitySales(orders, forecastShops, 8, 2025, forecastNow)
	require.Len(t, predictions, 2)

	// cities come back sorted by name
	assert.Equal(t, "Bengaluru", predictions[0].City)
	assert.Equal(t, "Mysuru", predictions[1].City)

	// colors within a city rank by predicted quantity
	blr := predictions[0].ColorPredictions
	require.Len(t, blr, 2)
	assert.Equal(t, "Ocean Blue", blr[0].ColorName)
	assert.Greater(t, blr[0].PredictedQuantity, blr[1].PredictedQuantity)
}

func TestPredictCitySalesEmpty(t *testing.T) {
	assert.Empty(t, PredictCitySales(nil, forecastShops, 7, 2025, forecastNow))
}
