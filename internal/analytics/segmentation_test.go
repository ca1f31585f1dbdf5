package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/kavyamurthy/paintsight/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var segNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func orderFor(name string, daysAgo int, grandTotal float64, payment string) models.Order {
	return models.Order{
		ID:            fmt.Sprintf("ORD-%s-%d", name, daysAgo),
		CustomerName:  name,
		PaymentMethod: payment,
		Timestamp:     segNow.AddDate(0, 0, -daysAgo).Format(time.RFC3339),
		ShopID:        "BLR001",
		GrandTotal:    grandTotal,
	}
}

func repeatOrders(name string, n, daysAgo int, each float64) []models.Order {
	orders := make([]models.Order, 0, n)
	for i := 0; i < n; i++ {
		orders = append(orders, orderFor(name, daysAgo+i, each, models.PaymentMethodCash))
	}
	return orders
}

func profileByName(t *testing.T, profiles []CustomerProfile, name string) CustomerProfile {
	t.Helper()
	for _, p := range profiles {
		if p.CustomerName == name {
			return p
		}
	}
	t.Fatalf("no profile for %s", name)
	return CustomerProfile{}
}

func TestClassifySegments(t *testing.T) {
	cases := []struct {
		name     string
		spent    float64
		orders   int
		lastDays int
		want     string
	}{
		{"vip", 60000, 25, 10, models.SegmentVIP},
		{"premium", 30000, 12, 10, models.SegmentPremium},
		{"regular", 12000, 6, 10, models.SegmentRegular},
		{"below regular orders", 12000, 4, 10, models.SegmentNew},
		{"below regular spend", 9000, 6, 10, models.SegmentNew},
		{"dormant beats vip", 60000, 25, 200, models.SegmentDormant},
		{"exactly at boundary stays active", 60000, 25, 180, models.SegmentVIP},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dates := []time.Time{segNow.AddDate(0, 0, -tc.lastDays)}
			got := classify(tc.spent, tc.orders, dates, segNow, DefaultDormantDays)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyWithoutDatesNeverDormant(t *testing.T) {
	got := classify(60000, 25, nil, segNow, DefaultDormantDays)
	assert.Equal(t, models.SegmentVIP, got)
}

func TestAnalyzeCustomersCollapsesWalkIns(t *testing.T) {
	orders := []models.Order{
		orderFor("", 5, 1000, models.PaymentMethodCash),
		orderFor("", 6, 2000, models.PaymentMethodCash),
		orderFor("Kavya", 7, 500, models.PaymentMethodOnline),
	}

	profiles := AnalyzeCustomers(orders, segNow, DefaultDormantDays)
	require.Len(t, profiles, 2)

	walkIn := profileByName(t, profiles, models.WalkInCustomer)
	assert.Equal(t, 2, walkIn.TotalOrders)
	assert.Equal(t, 3000.0, walkIn.TotalSpent)
}

func TestAnalyzeCustomersSortsBySpend(t *testing.T) {
	orders := append(repeatOrders("Asha", 3, 10, 100), repeatOrders("Bina", 2, 10, 5000)...)

	profiles := AnalyzeCustomers(orders, segNow, DefaultDormantDays)
	require.Len(t, profiles, 2)
	assert.Equal(t, "Bina", profiles[0].CustomerName)
	assert.Equal(t, 10000.0, profiles[0].TotalSpent)
}

func TestPaymentPreferenceRequiresDoubleMajority(t *testing.T) {
	// 5 cash vs 2 online: 5 > 2*2, so cash
	orders := repeatOrders("Cash Heavy", 5, 10, 100)
	orders = append(orders,
		orderFor("Cash Heavy", 30, 100, models.PaymentMethodOnline),
		orderFor("Cash Heavy", 31, 100, models.PaymentMethodOnline),
	)
	profiles := AnalyzeCustomers(orders, segNow, DefaultDormantDays)
	assert.Equal(t, models.PaymentPreferenceCash, profiles[0].PaymentPreference)

	// 3 cash vs 2 online: 3 <= 4, stays mixed
	orders = repeatOrders("Mixed", 3, 10, 100)
	orders = append(orders,
		orderFor("Mixed", 30, 100, models.PaymentMethodOnline),
		orderFor("Mixed", 31, 100, models.PaymentMethodOnline),
	)
	profiles = AnalyzeCustomers(orders, segNow, DefaultDormantDays)
	assert.Equal(t, models.PaymentPreferenceMixed, profiles[0].PaymentPreference)
}

func TestPurchaseFrequency(t *testing.T) {
	orders := []models.Order{
		orderFor("Deep", 20, 100, models.PaymentMethodCash),
		orderFor("Deep", 10, 100, models.PaymentMethodCash),
		orderFor("Deep", 0, 100, models.PaymentMethodCash),
	}

	profiles := AnalyzeCustomers(orders, segNow, DefaultDormantDays)
	// 20 days across 2 gaps
	assert.InDelta(t, 10.0, profiles[0].PurchaseFrequency, 0.001)
	assert.Equal(t, segNow.AddDate(0, 0, -20).Format(time.RFC3339), profiles[0].FirstPurchase)
	assert.Equal(t, segNow.Format(time.RFC3339), profiles[0].LastPurchase)
}

func TestFavoritesRankedByQuantity(t *testing.T) {
	order := orderFor("Esha", 5, 3000, models.PaymentMethodCash)
	order.Items = []models.OrderItem{
		{Product: models.Product{ID: "P1", ColorName: "Ocean Blue", Brand: "Dulux"}, Quantity: 1, Subtotal: 500},
		{Product: models.Product{ID: "P2", ColorName: "Pure White", Brand: "Asian Paints"}, Quantity: 4, Subtotal: 2000},
	}

	profiles := AnalyzeCustomers([]models.Order{order}, segNow, DefaultDormantDays)
	p := profiles[0]

	require.NotEmpty(t, p.FavoriteColors)
	assert.Equal(t, "Pure White", p.FavoriteColors[0].ColorName)
	assert.Equal(t, 4.0, p.FavoriteColors[0].Purchases)
	assert.Equal(t, 2000.0, p.FavoriteColors[0].TotalSpent)
	assert.Equal(t, "Asian Paints", p.FavoriteBrands[0].BrandName)
}

func TestUnparseableTimestampsStayInTotals(t *testing.T) {
	orders := []models.Order{
		{ID: "bad", CustomerName: "Faiza", Timestamp: "not-a-date", GrandTotal: 700},
		orderFor("Faiza", 3, 300, models.PaymentMethodCash),
	}

	profiles := AnalyzeCustomers(orders, segNow, DefaultDormantDays)
	p := profiles[0]
	assert.Equal(t, 2, p.TotalOrders)
	assert.Equal(t, 1000.0, p.TotalSpent)
	// date-derived fields only see the one parseable order
	assert.Equal(t, p.FirstPurchase, p.LastPurchase)
	assert.Equal(t, 0.0, p.PurchaseFrequency)
}

func TestSummarizeCustomers(t *testing.T) {
	orders := append(repeatOrders("Vip Singh", 25, 10, 2400), repeatOrders("Newbie", 2, 10, 100)...)
	orders = append(orders, repeatOrders("Lapsed", 25, 300, 2400)...)

	profiles := AnalyzeCustomers(orders, segNow, DefaultDormantDays)
	summary := SummarizeCustomers(profiles)

	assert.Equal(t, 3, summary.TotalCustomers)
	assert.Equal(t, 1, summary.VIPCustomers)
	assert.Equal(t, 1, summary.NewCustomers)
	assert.Equal(t, 1, summary.DormantCustomers)
	assert.Equal(t, 52, summary.TotalOrders)
	assert.Equal(t, 120200.0, summary.TotalRevenue)
	assert.InDelta(t, 120200.0/3, summary.AverageCustomerValue, 0.001)
	assert.Contains(t, []string{"Vip Singh", "Lapsed"}, summary.TopCustomerName)
}

func TestSummarizeCustomersEmpty(t *testing.T) {
	summary := SummarizeCustomers(nil)
	assert.Equal(t, 0, summary.TotalCustomers)
	assert.Equal(t, 0.0, summary.AverageCustomerValue)
	assert.Empty(t, summary.TopCustomerName)
}
