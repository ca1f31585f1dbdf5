package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/kavyamurthy/paintsight/internal/models"
)

type ColorPrediction struct {
	ColorName         string  `json:"color_name"`
	ColorCode         string  `json:"color_code"`
	PredictedQuantity int     `json:"predicted_quantity"`
	Confidence        float64 `json:"confidence"` // bounded 60-95
	Trend             string  `json:"trend"`      // e.g. "+60.0%"
}

type CityPrediction struct {
	City             string            `json:"city"`
	Month            string            `json:"month"`
	Year             int               `json:"year"`
	ColorPredictions []ColorPrediction `json:"color_predictions"`
}

// trailing window the extrapolation averages over, in months
const forecastWindowMonths = 6

// PredictCitySales extrapolates per-city color demand for a target month
// from the trailing six months of orders, grouped through the shop→city
// table. This is a placeholder heuristic (flat average plus a linear 10%
// trend bump), not a real forecasting model — it stands in until one exists.
// Orders with unparseable timestamps fall outside the window by definition.
func PredictCitySales(orders []models.Order, shops []models.Shop, targetMonth, targetYear int, now time.Time) []CityPrediction {
	cityByShop := make(map[string]string, len(shops))
	for _, shop := range shops {
		cityByShop[shop.ID] = shop.City
	}

	windowStart := now.AddDate(0, -forecastWindowMonths, 0)

	type colorStats struct {
		total float64
		trend float64
	}
	cityColors := make(map[string]map[string]*colorStats)
	colorOrder := make(map[string][]string)

	for _, order := range orders {
		t, ok := order.Time()
		if !ok || t.Before(windowStart) {
			continue
		}
		city := cityByShop[order.ShopID]
		if city == "" {
			city = "Unknown City"
		}
		colors, ok := cityColors[city]
		if !ok {
			colors = make(map[string]*colorStats)
			cityColors[city] = colors
		}
		for _, item := range order.Items {
			stats, ok := colors[item.Product.ColorName]
			if !ok {
				stats = &colorStats{}
				colors[item.Product.ColorName] = stats
				colorOrder[city] = append(colorOrder[city], item.Product.ColorName)
			}
			stats.total += float64(item.Quantity)
			stats.trend += float64(item.Quantity) * 0.1
		}
	}

	cities := make([]string, 0, len(cityColors))
	for city := range cityColors {
		cities = append(cities, city)
	}
	sort.Strings(cities)

	monthName := time.Month(targetMonth).String()
	predictions := make([]CityPrediction, 0, len(cities))
	for _, city := range cities {
		colors := cityColors[city]
		colorPredictions := make([]ColorPrediction, 0, len(colors))
		for _, colorName := range colorOrder[city] {
			stats := colors[colorName]
			base := stats.total / forecastWindowMonths
			predicted := int(math.Round(base + stats.trend))
			if predicted < 0 {
				predicted = 0
			}

			confidence := 80 + stats.total/100
			if confidence > 95 {
				confidence = 95
			}
			if confidence < 60 {
				confidence = 60
			}

			trendPct := SafeDiv(stats.trend, base) * 100
			trendLabel := fmt.Sprintf("%.1f%%", trendPct)
			if stats.trend > 0 {
				trendLabel = "+" + trendLabel
			}

			colorPredictions = append(colorPredictions, ColorPrediction{
				ColorName:         colorName,
				ColorCode:         models.ColorCode(colorName),
				PredictedQuantity: predicted,
				Confidence:        confidence,
				Trend:             trendLabel,
			})
		}

		sort.SliceStable(colorPredictions, func(i, j int) bool {
			return colorPredictions[i].PredictedQuantity > colorPredictions[j].PredictedQuantity
		})

		predictions = append(predictions, CityPrediction{
			City:             city,
			Month:            monthName,
			Year:             targetYear,
			ColorPredictions: colorPredictions,
		})
	}
	return predictions
}
