package analytics

import (
	"sort"
	"time"

	"github.com/kavyamurthy/paintsight/internal/models"
)

type ColorPreference struct {
	ColorName  string  `json:"color_name"`
	ColorCode  string  `json:"color_code"`
	Purchases  float64 `json:"purchases"`
	TotalSpent float64 `json:"total_spent"`
}

type BrandPreference struct {
	BrandName  string  `json:"brand_name"`
	Purchases  float64 `json:"purchases"`
	TotalSpent float64 `json:"total_spent"`
}

type ShopPreference struct {
	ShopID     string  `json:"shop_id"`
	Visits     int     `json:"visits"`
	TotalSpent float64 `json:"total_spent"`
}

type MonthlySpend struct {
	Month      string  `json:"month"`
	Orders     int     `json:"orders"`
	TotalSpent float64 `json:"total_spent"`
}

// CustomerProfile is derived from the order history on every analytics pass;
// it is never persisted.
type CustomerProfile struct {
	CustomerName      string            `json:"customer_name"`
	CustomerPhone     string            `json:"customer_phone"`
	TotalOrders       int               `json:"total_orders"`
	TotalSpent        float64           `json:"total_spent"`
	AverageOrderValue float64           `json:"average_order_value"`
	FirstPurchase     string            `json:"first_purchase,omitempty"`
	LastPurchase      string            `json:"last_purchase,omitempty"`
	FavoriteColors    []ColorPreference `json:"favorite_colors"`
	FavoriteBrands    []BrandPreference `json:"favorite_brands"`
	PreferredShops    []ShopPreference  `json:"preferred_shops"`
	PurchaseFrequency float64           `json:"purchase_frequency"` // average days between orders
	Segment           string            `json:"segment"`
	PaymentPreference string            `json:"payment_preference"`
	SeasonalTrends    []MonthlySpend    `json:"seasonal_trends"`
	OrderHistory      []models.Order    `json:"order_history"`
}

type CustomerSummary struct {
	TotalCustomers       int     `json:"total_customers"`
	VIPCustomers         int     `json:"vip_customers"`
	PremiumCustomers     int     `json:"premium_customers"`
	RegularCustomers     int     `json:"regular_customers"`
	NewCustomers         int     `json:"new_customers"`
	DormantCustomers     int     `json:"dormant_customers"`
	TotalRevenue         float64 `json:"total_revenue"`
	AverageCustomerValue float64 `json:"average_customer_value"`
	TotalOrders          int     `json:"total_orders"`
	TopCustomerName      string  `json:"top_customer_name,omitempty"`
	TopCustomerSpent     float64 `json:"top_customer_spent"`
	TopCustomerOrders    int     `json:"top_customer_orders"`
}

type segmentThreshold struct {
	minSpent  float64
	minOrders int
}

// Lifetime-value cutoffs checked after the recency check: a lapsed buyer is
// Dormant no matter how much they spent.
var segmentThresholds = map[string]segmentThreshold{
	models.SegmentVIP:     {minSpent: 50000, minOrders: 20},
	models.SegmentPremium: {minSpent: 25000, minOrders: 10},
	models.SegmentRegular: {minSpent: 10000, minOrders: 5},
}

const DefaultDormantDays = 180

// AnalyzeCustomers builds one profile per unique customer key. Orders without
// a name collapse into the walk-in bucket. Orders with unparseable timestamps
// stay in count/revenue totals but are dropped from every date-derived metric.
// Profiles come back sorted by total spent, highest first.
func AnalyzeCustomers(orders []models.Order, now time.Time, dormantAfterDays float64) []CustomerProfile {
	if dormantAfterDays <= 0 {
		dormantAfterDays = DefaultDormantDays
	}

	groups := GroupOrders(orders, func(o models.Order) string {
		if o.CustomerName == "" {
			return models.WalkInCustomer
		}
		return o.CustomerName
	})

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	profiles := make([]CustomerProfile, 0, len(groups))
	for _, name := range names {
		profiles = append(profiles, buildProfile(name, groups[name], now, dormantAfterDays))
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		return profiles[i].TotalSpent > profiles[j].TotalSpent
	})
	return profiles
}

func buildProfile(name string, orders []models.Order, now time.Time, dormantAfterDays float64) CustomerProfile {
	totalOrders := len(orders)
	totalSpent := Revenue(orders)

	var dates []time.Time
	for _, order := range orders {
		if t, ok := order.Time(); ok {
			dates = append(dates, t)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	var firstPurchase, lastPurchase string
	if len(dates) > 0 {
		firstPurchase = dates[0].Format(time.RFC3339)
		lastPurchase = dates[len(dates)-1].Format(time.RFC3339)
	}

	frequency := 0.0
	if len(dates) > 1 {
		totalDays := dates[len(dates)-1].Sub(dates[0]).Hours() / 24
		frequency = totalDays / float64(len(dates)-1)
	}

	colorQty, colorSpend := NewCounter(), NewCounter()
	brandQty, brandSpend := NewCounter(), NewCounter()
	for _, order := range orders {
		for _, item := range order.Items {
			colorQty.Add(item.Product.ColorName, float64(item.Quantity))
			colorSpend.Add(item.Product.ColorName, item.Subtotal)
			brandQty.Add(item.Product.Brand, float64(item.Quantity))
			brandSpend.Add(item.Product.Brand, item.Subtotal)
		}
	}

	favoriteColors := make([]ColorPreference, 0, 5)
	for _, ranked := range colorQty.Top(5) {
		favoriteColors = append(favoriteColors, ColorPreference{
			ColorName:  ranked.Key,
			ColorCode:  models.ColorCode(ranked.Key),
			Purchases:  ranked.Weight,
			TotalSpent: colorSpend.Get(ranked.Key),
		})
	}

	favoriteBrands := make([]BrandPreference, 0, 3)
	for _, ranked := range brandQty.Top(3) {
		favoriteBrands = append(favoriteBrands, BrandPreference{
			BrandName:  ranked.Key,
			Purchases:  ranked.Weight,
			TotalSpent: brandSpend.Get(ranked.Key),
		})
	}

	shopVisits, shopSpend := NewCounter(), NewCounter()
	for _, order := range orders {
		shopVisits.Add(order.ShopID, 1)
		shopSpend.Add(order.ShopID, order.GrandTotal)
	}
	preferredShops := make([]ShopPreference, 0, 3)
	for _, ranked := range shopVisits.Top(3) {
		preferredShops = append(preferredShops, ShopPreference{
			ShopID:     ranked.Key,
			Visits:     int(ranked.Weight),
			TotalSpent: shopSpend.Get(ranked.Key),
		})
	}

	segment := classify(totalSpent, totalOrders, dates, now, dormantAfterDays)

	cashOrders, onlineOrders := 0, 0
	for _, order := range orders {
		switch order.PaymentMethod {
		case models.PaymentMethodCash:
			cashOrders++
		case models.PaymentMethodOnline:
			onlineOrders++
		}
	}
	preference := models.PaymentPreferenceMixed
	if cashOrders > onlineOrders*2 {
		preference = models.PaymentPreferenceCash
	} else if onlineOrders > cashOrders*2 {
		preference = models.PaymentPreferenceOnline
	}

	monthOrders, monthSpend := NewCounter(), NewCounter()
	for _, order := range orders {
		t, ok := order.Time()
		if !ok {
			continue
		}
		month := t.Month().String()
		monthOrders.Add(month, 1)
		monthSpend.Add(month, order.GrandTotal)
	}
	seasonal := make([]MonthlySpend, 0, monthSpend.Len())
	for _, ranked := range monthSpend.Top(0) {
		seasonal = append(seasonal, MonthlySpend{
			Month:      ranked.Key,
			Orders:     int(monthOrders.Get(ranked.Key)),
			TotalSpent: ranked.Weight,
		})
	}

	history := make([]models.Order, len(orders))
	copy(history, orders)
	sort.SliceStable(history, func(i, j int) bool {
		ti, _ := history[i].Time()
		tj, _ := history[j].Time()
		return ti.After(tj)
	})

	return CustomerProfile{
		CustomerName:      name,
		CustomerPhone:     orders[0].CustomerPhone,
		TotalOrders:       totalOrders,
		TotalSpent:        totalSpent,
		AverageOrderValue: SafeDiv(totalSpent, float64(totalOrders)),
		FirstPurchase:     firstPurchase,
		LastPurchase:      lastPurchase,
		FavoriteColors:    favoriteColors,
		FavoriteBrands:    favoriteBrands,
		PreferredShops:    preferredShops,
		PurchaseFrequency: frequency,
		Segment:           segment,
		PaymentPreference: preference,
		SeasonalTrends:    seasonal,
		OrderHistory:      history,
	}
}

// classify picks the first matching segment: the recency check runs before
// the value tiers, so dormancy overrides lifetime value. A customer with no
// parseable purchase date can never be Dormant.
func classify(totalSpent float64, totalOrders int, dates []time.Time, now time.Time, dormantAfterDays float64) string {
	if len(dates) > 0 {
		daysSinceLast := now.Sub(dates[len(dates)-1]).Hours() / 24
		if daysSinceLast > dormantAfterDays {
			return models.SegmentDormant
		}
	}
	for _, segment := range []string{models.SegmentVIP, models.SegmentPremium, models.SegmentRegular} {
		threshold := segmentThresholds[segment]
		if totalSpent >= threshold.minSpent && totalOrders >= threshold.minOrders {
			return segment
		}
	}
	return models.SegmentNew
}

// SummarizeCustomers aggregates segment counts over a profile set.
func SummarizeCustomers(profiles []CustomerProfile) CustomerSummary {
	summary := CustomerSummary{TotalCustomers: len(profiles)}
	for _, profile := range profiles {
		switch profile.Segment {
		case models.SegmentVIP:
			summary.VIPCustomers++
		case models.SegmentPremium:
			summary.PremiumCustomers++
		case models.SegmentRegular:
			summary.RegularCustomers++
		case models.SegmentDormant:
			summary.DormantCustomers++
		default:
			summary.NewCustomers++
		}
		summary.TotalRevenue += profile.TotalSpent
		summary.TotalOrders += profile.TotalOrders
	}
	summary.AverageCustomerValue = SafeDiv(summary.TotalRevenue, float64(len(profiles)))
	if len(profiles) > 0 {
		summary.TopCustomerName = profiles[0].CustomerName
		summary.TopCustomerSpent = profiles[0].TotalSpent
		summary.TopCustomerOrders = profiles[0].TotalOrders
	}
	return summary
}
