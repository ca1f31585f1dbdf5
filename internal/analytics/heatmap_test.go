package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/kavyamurthy/paintsight/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderAt(ts time.Time, grandTotal float64) models.Order {
	return models.Order{
		ID:         fmt.Sprintf("ORD-%d", ts.UnixNano()),
		Timestamp:  ts.Format(time.RFC3339),
		ShopID:     "BLR001",
		GrandTotal: grandTotal,
	}
}

func TestAnalyzeTimeSlotsBucketsByHour(t *testing.T) {
	day := time.Date(2025, time.May, 14, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderAt(day.Add(7*time.Hour), 1000),  // Early Morning
		orderAt(day.Add(10*time.Hour), 2000), // Morning
		orderAt(day.Add(10*time.Hour+30*time.Minute), 1000),
		orderAt(day.Add(14*time.Hour), 6000), // Afternoon, premium
		orderAt(day.Add(20*time.Hour), 800),  // Night, budget
	}

	slots := AnalyzeTimeSlots(orders)
	require.Len(t, slots, 5)

	assert.Equal(t, "Early Morning", slots[0].TimeSlot)
	assert.Equal(t, 1, slots[0].TotalOrders)

	assert.Equal(t, "Morning", slots[1].TimeSlot)
	assert.Equal(t, 2, slots[1].TotalOrders)
	assert.Equal(t, 3000.0, slots[1].TotalRevenue)
	assert.Equal(t, 1500.0, slots[1].AvgOrderValue)

	assert.Equal(t, 100.0, slots[2].CustomerType.Premium)
	assert.Equal(t, 100.0, slots[4].CustomerType.Budget)
}

func TestAnalyzeTimeSlotsExcludesOutsideWindow(t *testing.T) {
	day := time.Date(2025, time.May, 14, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		orderAt(day.Add(3*time.Hour), 1000),  // before 06:00
		orderAt(day.Add(22*time.Hour), 1000), // after 21:00
		orderAt(day.Add(9*time.Hour), 1000),
	}

	slots := AnalyzeTimeSlots(orders)
	total := 0
	for _, slot := range slots {
		total += slot.TotalOrders
	}
	assert.Equal(t, 1, total)
}

func TestAnalyzeTimeSlotsEmptyInput(t *testing.T) {
	slots := AnalyzeTimeSlots(nil)
	require.Len(t, slots, 5)
	for _, slot := range slots {
		assert.Zero(t, slot.TotalOrders)
		assert.Zero(t, slot.TotalRevenue)
		assert.Zero(t, slot.AvgOrderValue)
		assert.Zero(t, slot.CustomerType.Premium)
	}
}

func TestAnalyzeDaysOfWeek(t *testing.T) {
	sunday := time.Date(2025, time.May, 11, 10, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	orders := []models.Order{
		orderAt(sunday, 1000),
		orderAt(sunday.Add(time.Hour), 2000),
		orderAt(sunday.Add(time.Hour+10*time.Minute), 500),
		orderAt(sunday.AddDate(0, 0, 1), 700), // Monday
	}

	days := AnalyzeDaysOfWeek(orders)
	require.Len(t, days, 7)

	assert.Equal(t, "Sunday", days[0].Day)
	assert.Equal(t, 0, days[0].DayIndex)
	assert.Equal(t, 3, days[0].TotalOrders)
	assert.Equal(t, 3500.0, days[0].TotalRevenue)
	assert.Equal(t, 11, days[0].PeakHour) // two orders in the 11h hour

	assert.Equal(t, "Monday", days[1].Day)
	assert.Equal(t, 1, days[1].TotalOrders)
}

func TestAnalyzeDaysOfWeekDefaultPeakHour(t *testing.T) {
	days := AnalyzeDaysOfWeek(nil)
	for _, day := range days {
		assert.Equal(t, 12, day.PeakHour)
		assert.Len(t, day.TopCategories, 3)
	}
}

func TestAnalyzeSeasonsFestivalBoost(t *testing.T) {
	// one order per month so the flat average is easy to reason about
	var orders []models.Order
	for m := time.January; m <= time.December; m++ {
		ts := time.Date(2025, m, 10, 12, 0, 0, 0, time.UTC)
		orders = append(orders, orderAt(ts, 1200))
	}

	seasons := AnalyzeSeasons(orders)
	require.Len(t, seasons, 12)

	// every month equals the average: festival months report 0 boost too
	for _, season := range seasons {
		assert.Zero(t, season.FestivalBoost, season.Month)
	}

	// double up October revenue: total 15600, avg 1300, boost (2400-1300)/1300
	orders = append(orders, orderAt(time.Date(2025, time.October, 12, 12, 0, 0, 0, time.UTC), 1200))
	seasons = AnalyzeSeasons(orders)
	assert.InDelta(t, (2400.0-1300.0)/1300.0*100, seasons[9].FestivalBoost, 0.001)

	// non-festival months report 0 regardless of their revenue
	assert.Zero(t, seasons[0].FestivalBoost)
	assert.Equal(t, "Jan", seasons[0].Month)
}

func TestBuildBehaviorHeatmapInsights(t *testing.T) {
	day := time.Date(2025, time.May, 14, 0, 0, 0, 0, time.UTC) // Wednesday
	orders := []models.Order{
		orderAt(day.Add(13*time.Hour), 8000), // Afternoon, premium
		orderAt(day.Add(13*time.Hour+30*time.Minute), 6000),
		orderAt(day.Add(7*time.Hour), 400), // Early Morning, budget
	}

	heatmap := BuildBehaviorHeatmap(orders)
	assert.Equal(t, "Afternoon", heatmap.Insights.PeakTime)
	assert.Equal(t, "Wednesday", heatmap.Insights.PeakDay)
	assert.Equal(t, "Afternoon", heatmap.Insights.PremiumBuyingTime)
	assert.Equal(t, "Early Morning", heatmap.Insights.BudgetBuyingTime)
}

func TestHeatmapIntensity(t *testing.T) {
	assert.Equal(t, 50.0, HeatmapIntensity(5, 10))
	assert.Equal(t, 100.0, HeatmapIntensity(15, 10))
	assert.Equal(t, 0.0, HeatmapIntensity(5, 0))
}

func TestHeatmapBand(t *testing.T) {
	cases := map[float64]string{
		95: "critical",
		80: "critical",
		79: "high",
		60: "high",
		45: "medium",
		25: "low",
		10: "minimal",
		0:  "minimal",
	}
	for intensity, want := range cases {
		assert.Equal(t, want, HeatmapBand(intensity), "intensity %v", intensity)
	}
}
