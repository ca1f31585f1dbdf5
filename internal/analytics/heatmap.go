package analytics

import (
	"sort"
	"strconv"
	"time"

	"github.com/kavyamurthy/paintsight/internal/models"
)

type TimeSlot struct {
	Name  string
	Start int // inclusive hour
	End   int // exclusive hour
}

// The five fixed shop-floor slots. Orders outside 06:00-21:00 are excluded
// from the time-of-day view only; the weekday and monthly passes still see
// them.
var TimeSlots = []TimeSlot{
	{Name: "Early Morning", Start: 6, End: 9},
	{Name: "Morning", Start: 9, End: 12},
	{Name: "Afternoon", Start: 12, End: 15},
	{Name: "Evening", Start: 15, End: 18},
	{Name: "Night", Start: 18, End: 21},
}

// Festival months (0-based): March, April, October, November — Holi and
// Diwali season demand spikes.
var festivalMonths = map[int]bool{2: true, 3: true, 9: true, 10: true}

var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

type SlotProduct struct {
	ProductID string  `json:"product_id"`
	ColorName string  `json:"color_name"`
	Count     float64 `json:"count"`
}

type CustomerTypeMix struct {
	Premium  float64 `json:"premium"` // percentage of the slot's orders
	Budget   float64 `json:"budget"`
	Standard float64 `json:"standard"`
}

type TimeSlotBehavior struct {
	TimeSlot      string          `json:"time_slot"`
	Hour          int             `json:"hour"`
	TotalOrders   int             `json:"total_orders"`
	TotalRevenue  float64         `json:"total_revenue"`
	AvgOrderValue float64         `json:"avg_order_value"`
	TopProducts   []SlotProduct   `json:"top_products"`
	CustomerType  CustomerTypeMix `json:"customer_type"`
}

type DayOfWeekBehavior struct {
	Day               string   `json:"day"`
	DayIndex          int      `json:"day_index"` // Sunday=0 .. Saturday=6
	TotalOrders       int      `json:"total_orders"`
	TotalRevenue      float64  `json:"total_revenue"`
	PeakHour          int      `json:"peak_hour"`
	TopCategories     []string `json:"top_categories"` // quality tiers ranked by line-item count
	AverageBasketSize float64  `json:"average_basket_size"`
}

type SeasonalBehavior struct {
	Month         string   `json:"month"`
	MonthIndex    int      `json:"month_index"`
	TotalOrders   int      `json:"total_orders"`
	TotalRevenue  float64  `json:"total_revenue"`
	FestivalBoost float64  `json:"festival_boost"` // percent vs flat monthly average, 0 outside festival months
	TopColors     []string `json:"top_colors"`
}

type HeatmapInsights struct {
	PeakTime          string `json:"peak_time"`
	PeakDay           string `json:"peak_day"`
	SlowestTime       string `json:"slowest_time"`
	SlowestDay        string `json:"slowest_day"`
	PremiumBuyingTime string `json:"premium_buying_time"`
	BudgetBuyingTime  string `json:"budget_buying_time"`
}

type BehaviorHeatmap struct {
	TimeSlots  []TimeSlotBehavior  `json:"time_slots"`
	DaysOfWeek []DayOfWeekBehavior `json:"days_of_week"`
	Seasonal   []SeasonalBehavior  `json:"seasonal"`
	Insights   HeatmapInsights     `json:"insights"`
}

// Order grand totals above premiumOrderValue count as premium buys; below
// budgetOrderValue as budget.
const (
	premiumOrderValue = 5000.0
	budgetOrderValue  = 1500.0
)

// AnalyzeTimeSlots buckets orders into the five fixed time-of-day slots.
// Unparseable timestamps and hours outside 06:00-21:00 are skipped.
func AnalyzeTimeSlots(orders []models.Order) []TimeSlotBehavior {
	slotOrders := make([][]models.Order, len(TimeSlots))
	for _, order := range orders {
		t, ok := order.Time()
		if !ok {
			continue
		}
		hour := t.Hour()
		for i, slot := range TimeSlots {
			if hour >= slot.Start && hour < slot.End {
				slotOrders[i] = append(slotOrders[i], order)
				break
			}
		}
	}

	behaviors := make([]TimeSlotBehavior, len(TimeSlots))
	for i, slot := range TimeSlots {
		bucket := slotOrders[i]
		revenue := Revenue(bucket)

		premium, budget, standard := 0, 0, 0
		for _, order := range bucket {
			switch {
			case order.GrandTotal > premiumOrderValue:
				premium++
			case order.GrandTotal < budgetOrderValue:
				budget++
			default:
				standard++
			}
		}

		productQty := NewCounter()
		colorByProduct := make(map[string]string)
		for _, order := range bucket {
			for _, item := range order.Items {
				productQty.Add(item.Product.ID, float64(item.Quantity))
				colorByProduct[item.Product.ID] = item.Product.ColorName
			}
		}
		topProducts := make([]SlotProduct, 0, 3)
		for _, ranked := range productQty.Top(3) {
			topProducts = append(topProducts, SlotProduct{
				ProductID: ranked.Key,
				ColorName: colorByProduct[ranked.Key],
				Count:     ranked.Weight,
			})
		}

		total := float64(len(bucket))
		behaviors[i] = TimeSlotBehavior{
			TimeSlot:      slot.Name,
			Hour:          slot.Start,
			TotalOrders:   len(bucket),
			TotalRevenue:  revenue,
			AvgOrderValue: SafeDiv(revenue, total),
			TopProducts:   topProducts,
			CustomerType: CustomerTypeMix{
				Premium:  SafeDiv(float64(premium), total) * 100,
				Budget:   SafeDiv(float64(budget), total) * 100,
				Standard: SafeDiv(float64(standard), total) * 100,
			},
		}
	}
	return behaviors
}

// AnalyzeDaysOfWeek buckets orders by weekday (Sunday=0). Orders with
// unparseable timestamps are dropped from this view.
func AnalyzeDaysOfWeek(orders []models.Order) []DayOfWeekBehavior {
	dayOrders := make([][]models.Order, 7)
	for _, order := range orders {
		t, ok := order.Time()
		if !ok {
			continue
		}
		idx := int(t.Weekday())
		dayOrders[idx] = append(dayOrders[idx], order)
	}

	behaviors := make([]DayOfWeekBehavior, 7)
	for idx := 0; idx < 7; idx++ {
		bucket := dayOrders[idx]

		totalItems := 0
		for _, order := range bucket {
			totalItems += order.TotalItems()
		}

		// ties keep the first hour encountered in the order sequence
		hourCounts := NewCounter()
		for _, order := range bucket {
			if t, ok := order.Time(); ok {
				hourCounts.Add(strconv.Itoa(t.Hour()), 1)
			}
		}
		peakHour := 12
		if top := hourCounts.Top(1); len(top) > 0 {
			if hour, err := strconv.Atoi(top[0].Key); err == nil {
				peakHour = hour
			}
		}

		tierCounts := NewCounter()
		tierCounts.Add(models.QualityPremium, 0)
		tierCounts.Add(models.QualityStandard, 0)
		tierCounts.Add(models.QualityEconomy, 0)
		for _, order := range bucket {
			for _, item := range order.Items {
				switch item.Product.Quality {
				case models.QualityPremium:
					tierCounts.Add(models.QualityPremium, 1)
				case models.QualityStandard:
					tierCounts.Add(models.QualityStandard, 1)
				default:
					tierCounts.Add(models.QualityEconomy, 1)
				}
			}
		}
		topCategories := make([]string, 0, 3)
		for _, ranked := range tierCounts.Top(0) {
			topCategories = append(topCategories, ranked.Key)
		}

		behaviors[idx] = DayOfWeekBehavior{
			Day:               time.Weekday(idx).String(),
			DayIndex:          idx,
			TotalOrders:       len(bucket),
			TotalRevenue:      Revenue(bucket),
			PeakHour:          peakHour,
			TopCategories:     topCategories,
			AverageBasketSize: SafeDiv(float64(totalItems), float64(len(bucket))),
		}
	}
	return behaviors
}

// AnalyzeSeasons buckets orders by calendar month. The festival boost
// compares a festival month's revenue against the flat yearly average
// (total revenue / 12); all other months report exactly 0.
func AnalyzeSeasons(orders []models.Order) []SeasonalBehavior {
	monthOrders := make([][]models.Order, 12)
	for _, order := range orders {
		t, ok := order.Time()
		if !ok {
			continue
		}
		idx := int(t.Month()) - 1
		monthOrders[idx] = append(monthOrders[idx], order)
	}

	var totalRevenue float64
	for idx := 0; idx < 12; idx++ {
		totalRevenue += Revenue(monthOrders[idx])
	}
	avgMonthlyRevenue := totalRevenue / 12

	behaviors := make([]SeasonalBehavior, 12)
	for idx := 0; idx < 12; idx++ {
		bucket := monthOrders[idx]
		revenue := Revenue(bucket)

		boost := 0.0
		if festivalMonths[idx] && avgMonthlyRevenue > 0 {
			boost = (revenue - avgMonthlyRevenue) / avgMonthlyRevenue * 100
		}

		colorQty := NewCounter()
		for _, order := range bucket {
			for _, item := range order.Items {
				colorQty.Add(item.Product.ColorName, float64(item.Quantity))
			}
		}
		topColors := make([]string, 0, 5)
		for _, ranked := range colorQty.Top(5) {
			topColors = append(topColors, ranked.Key)
		}

		behaviors[idx] = SeasonalBehavior{
			Month:         monthNames[idx],
			MonthIndex:    idx,
			TotalOrders:   len(bucket),
			TotalRevenue:  revenue,
			FestivalBoost: boost,
			TopColors:     topColors,
		}
	}
	return behaviors
}

// BuildBehaviorHeatmap runs the three passes and derives the global
// insights by post-processing their tables.
func BuildBehaviorHeatmap(orders []models.Order) BehaviorHeatmap {
	timeSlots := AnalyzeTimeSlots(orders)
	daysOfWeek := AnalyzeDaysOfWeek(orders)
	seasonal := AnalyzeSeasons(orders)

	byRevenue := make([]TimeSlotBehavior, len(timeSlots))
	copy(byRevenue, timeSlots)
	sort.SliceStable(byRevenue, func(i, j int) bool {
		return byRevenue[i].TotalRevenue > byRevenue[j].TotalRevenue
	})

	daysByRevenue := make([]DayOfWeekBehavior, len(daysOfWeek))
	copy(daysByRevenue, daysOfWeek)
	sort.SliceStable(daysByRevenue, func(i, j int) bool {
		return daysByRevenue[i].TotalRevenue > daysByRevenue[j].TotalRevenue
	})

	byPremium := make([]TimeSlotBehavior, len(timeSlots))
	copy(byPremium, timeSlots)
	sort.SliceStable(byPremium, func(i, j int) bool {
		return byPremium[i].CustomerType.Premium > byPremium[j].CustomerType.Premium
	})

	byBudget := make([]TimeSlotBehavior, len(timeSlots))
	copy(byBudget, timeSlots)
	sort.SliceStable(byBudget, func(i, j int) bool {
		return byBudget[i].CustomerType.Budget > byBudget[j].CustomerType.Budget
	})

	return BehaviorHeatmap{
		TimeSlots:  timeSlots,
		DaysOfWeek: daysOfWeek,
		Seasonal:   seasonal,
		Insights: HeatmapInsights{
			PeakTime:          byRevenue[0].TimeSlot,
			SlowestTime:       byRevenue[len(byRevenue)-1].TimeSlot,
			PeakDay:           daysByRevenue[0].Day,
			SlowestDay:        daysByRevenue[len(daysByRevenue)-1].Day,
			PremiumBuyingTime: byPremium[0].TimeSlot,
			BudgetBuyingTime:  byBudget[0].TimeSlot,
		},
	}
}

// HeatmapIntensity maps a cell value into 0-100 against the table maximum.
func HeatmapIntensity(value, maxValue float64) float64 {
	if maxValue == 0 {
		return 0
	}
	intensity := value / maxValue * 100
	if intensity > 100 {
		return 100
	}
	return intensity
}

// HeatmapBand labels an intensity for rendering. Kept as a pure function so
// the banding thresholds are testable without a chart in front of them.
func HeatmapBand(intensity float64) string {
	switch {
	case intensity >= 80:
		return "critical"
	case intensity >= 60:
		return "high"
	case intensity >= 40:
		return "medium"
	case intensity >= 20:
		return "low"
	default:
		return "minimal"
	}
}
